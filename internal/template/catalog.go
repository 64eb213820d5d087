// internal/template/catalog.go
package template

import (
    "strings"

    "github.com/engagevox/campaign-backend/internal/model"
)

// DefaultType is used whenever a campaign type is unrecognized, so rendering
// is total and the orchestration never stalls on content selection.
const DefaultType = model.CampaignEMIReminder

var english = map[model.CampaignType]string{
    model.CampaignEMIReminder: "Hello {name}, this is a reminder from your bank. " +
        "Your EMI payment of Rs. {amount} is due on {due_date}. " +
        "Please ensure sufficient balance in your account to avoid late fees. Thank you.",
    model.CampaignPolicyRenewal: "Hello {name}, your insurance policy is due for renewal on {due_date}. " +
        "The renewal premium is Rs. {amount}. " +
        "Please renew on time to keep your coverage active. Thank you.",
    model.CampaignLoanOffer: "Hello {name}, you are eligible for a pre-approved loan of Rs. {amount}. " +
        "The offer is valid until {due_date}. Contact us to know more. Thank you.",
    model.CampaignClaimUpdate: "Hello {name}, there is an update on your insurance claim. " +
        "An amount of Rs. {amount} has been approved and will be processed by {due_date}. Thank you.",
    model.CampaignDebtRecovery: "Hello {name}, this is regarding your overdue amount of Rs. {amount}. " +
        "A one-time resolution offer is available until {due_date}. " +
        "Please get in touch to settle. Thank you.",
    model.CampaignLeadGeneration: "Hello {name}, you have been pre-approved for a personal loan of up to Rs. {amount}. " +
        "Apply before {due_date} to avail this offer. Thank you.",
    model.CampaignCreditRepair: "Hello {name}, a free credit health check is available for your account until {due_date}. " +
        "Improve your score and unlock offers of up to Rs. {amount}. Thank you.",
    model.CampaignSIPDebitReminder: "Hello {name}, this is a reminder from your mutual fund service provider. " +
        "Your SIP installment of Rs. {amount} is scheduled to be deducted on {due_date}. " +
        "Please ensure sufficient balance in your bank account. Thank you.",
    model.CampaignKYCUpdateReminder: "Hello {name}, this is an important message from your mutual fund service provider. " +
        "Our records show that your KYC needs to be updated. " +
        "Please complete it before {due_date} to continue uninterrupted investments. Thank you.",
    model.CampaignSIPFailureNotice: "Hello {name}, your recent SIP transaction of Rs. {amount} could not be processed " +
        "due to insufficient balance. Please update your bank balance to avoid future SIP failures. Thank you.",
}

// Hindi and Tamil cover the mutual-fund campaigns; everything else falls back
// to English.
var hindi = map[model.CampaignType]string{
    model.CampaignSIPDebitReminder: "नमस्कार, यह आपके म्यूचुअल फंड सेवा प्रदाता की ओर से एक रिमाइंडर है। " +
        "आपकी SIP की राशि ₹{amount}, {due_date} को कटने वाली है। " +
        "कृपया अपने बैंक खाते में पर्याप्त बैलेंस सुनिश्चित करें। धन्यवाद।",
    model.CampaignKYCUpdateReminder: "नमस्कार, यह आपके म्यूचुअल फंड सेवा प्रदाता की ओर से एक महत्वपूर्ण सूचना है। " +
        "हमारे रिकॉर्ड के अनुसार आपका KYC अपडेट लंबित है। " +
        "कृपया बिना किसी रुकावट के निवेश जारी रखने के लिए जल्द से जल्द KYC पूरा करें। धन्यवाद।",
    model.CampaignSIPFailureNotice: "नमस्कार, यह आपके म्यूचुअल फंड सेवा प्रदाता की ओर से एक सूचना है। " +
        "अपर्याप्त बैलेंस के कारण आपकी हाल की SIP प्रक्रिया पूरी नहीं हो पाई। " +
        "कृपया भविष्य में SIP फेल होने से बचने के लिए अपना बैंक बैलेंस अपडेट करें। धन्यवाद।",
}

var tamil = map[model.CampaignType]string{
    model.CampaignSIPDebitReminder: "வணக்கம், இது உங்கள் மியூச்சுவல் ஃபண்ட் சேவை வழங்குநரிடமிருந்து வரும் நினைவூட்டல். " +
        "உங்கள் SIP தொகை ரூ.{amount}, {due_date} அன்று பிடித்தம் செய்யப்படும். " +
        "உங்கள் வங்கி கணக்கில் போதிய இருப்பு இருப்பதை உறுதி செய்யுங்கள். நன்றி.",
    model.CampaignKYCUpdateReminder: "வணக்கம், இது உங்கள் மியூச்சுவல் ஃபண்ட் சேவை வழங்குநரிடமிருந்து வரும் முக்கிய தகவல். " +
        "உங்கள் KYC புதுப்பிக்கப்பட வேண்டியுள்ளது. " +
        "உங்கள் முதலீடுகள் தடையின்றி தொடர, தயவுசெய்து KYC-யை விரைவில் முடிக்கவும். நன்றி.",
    model.CampaignSIPFailureNotice: "வணக்கம், இது உங்கள் மியூச்சுவல் ஃபண்ட் சேவை வழங்குநரிடமிருந்து வரும் அறிவிப்பு. " +
        "போதிய இருப்பு இல்லாததால், உங்கள் சமீபத்திய SIP பரிவர்த்தனை செயல்படுத்தப்படவில்லை. " +
        "எதிர்கால SIP தோல்விகளைத் தவிர்க்க, உங்கள் வங்கி இருப்பை புதுப்பிக்கவும். நன்றி.",
}

var catalogs = map[model.Language]map[model.CampaignType]string{
    model.LanguageEnglish: english,
    model.LanguageHindi:   hindi,
    model.LanguageTamil:   tamil,
}

var subjects = map[model.CampaignType]string{
    model.CampaignEMIReminder:       "EMI Payment Reminder",
    model.CampaignPolicyRenewal:     "Policy Renewal Reminder",
    model.CampaignLoanOffer:         "Pre-Approved Loan Offer",
    model.CampaignClaimUpdate:       "Update on Your Insurance Claim",
    model.CampaignDebtRecovery:      "Resolution Offer on Your Outstanding Dues",
    model.CampaignLeadGeneration:    "Pre-Approved Personal Loan Offer",
    model.CampaignCreditRepair:      "Your Free Credit Health Check",
    model.CampaignSIPDebitReminder:  "Upcoming SIP Debit Reminder",
    model.CampaignKYCUpdateReminder: "KYC Update Required",
    model.CampaignSIPFailureNotice:  "SIP Transaction Failed",
}

// Render produces the follow-up message body for a campaign type. It never
// fails: unknown types use the default template and the second return value
// reports that fallback; missing customer fields get placeholder text.
func Render(ct model.CampaignType, lang model.Language, data model.CustomerData) (string, bool) {
    fellBack := false
    if _, known := english[ct]; !known {
        ct = DefaultType
        fellBack = true
    }

    body, ok := catalogs[lang][ct]
    if !ok {
        body = english[ct]
    }

    body = replace(body, "{name}", data.Name, "Customer")
    body = replace(body, "{amount}", data.Amount, "N/A")
    body = replace(body, "{due_date}", data.DueDate, "N/A")
    return body, fellBack
}

// Subject returns the email subject line for a campaign type.
func Subject(ct model.CampaignType) string {
    if s, ok := subjects[ct]; ok {
        return s
    }
    return subjects[DefaultType]
}

func replace(body, placeholder, value, fallback string) string {
    if value == "" {
        value = fallback
    }
    return strings.ReplaceAll(body, placeholder, value)
}
