// internal/model/campaign.go
package model

// Sector identifies the regulated financial vertical a campaign belongs to.
type Sector string

const (
    SectorBanking     Sector = "banking"
    SectorInsurance   Sector = "insurance"
    SectorNBFC        Sector = "nbfc"
    SectorMutualFunds Sector = "mutual_funds"
)

// Language is the spoken/written language for the call and follow-up.
type Language string

const (
    LanguageEnglish Language = "en"
    LanguageHindi   Language = "hi"
    LanguageTamil   Language = "ta"
    LanguageTelugu  Language = "te"
)

// Channel is the follow-up messaging medium used after the voice call.
type Channel string

const (
    ChannelWhatsApp Channel = "whatsapp"
    ChannelSMS      Channel = "sms"
    ChannelEmail    Channel = "email"
)

// CampaignType is the business reason for contacting the customer. Each type
// maps to exactly one message template.
type CampaignType string

const (
    CampaignEMIReminder       CampaignType = "emi_reminder"
    CampaignPolicyRenewal     CampaignType = "policy_renewal"
    CampaignLoanOffer         CampaignType = "loan_offer"
    CampaignClaimUpdate       CampaignType = "claim_update"
    CampaignDebtRecovery      CampaignType = "debt_recovery"
    CampaignLeadGeneration    CampaignType = "lead_generation"
    CampaignCreditRepair      CampaignType = "credit_repair"
    CampaignSIPDebitReminder  CampaignType = "sip_debit_reminder"
    CampaignKYCUpdateReminder CampaignType = "kyc_update_reminder"
    CampaignSIPFailureNotice  CampaignType = "sip_failure_notification"
)

// CampaignRequest is one end-to-end engagement attempt for a single customer:
// a voice call followed by a message on the chosen channel.
type CampaignRequest struct {
    DestinationPhone string       `json:"phone_number"`
    CustomerName     string       `json:"customer_name,omitempty"`
    CampaignType     CampaignType `json:"campaign_type"`
    Sector           Sector       `json:"sector"`
    Language         Language     `json:"language"`
    FollowUpChannel  Channel      `json:"follow_up_channel"`
    Email            string       `json:"email,omitempty"`
    Amount           string       `json:"amount,omitempty"`
    DueDate          string       `json:"due_date,omitempty"`
    CallbackBaseURL  string       `json:"callback_base_url"`
}

// CustomerData carries the customer-specific fields substituted into templates.
type CustomerData struct {
    Name    string `json:"name,omitempty"`
    Email   string `json:"email,omitempty"`
    Amount  string `json:"amount,omitempty"`
    DueDate string `json:"due_date,omitempty"`
}

// CustomerData extracts the template fields from a request.
func (r CampaignRequest) CustomerData() CustomerData {
    return CustomerData{
        Name:    r.CustomerName,
        Email:   r.Email,
        Amount:  r.Amount,
        DueDate: r.DueDate,
    }
}
