package template_test

import (
    "strings"
    "testing"

    "github.com/engagevox/campaign-backend/internal/model"
    "github.com/engagevox/campaign-backend/internal/template"
)

func TestRenderSubstitutesCustomerFields(t *testing.T) {
    data := model.CustomerData{Name: "Rajesh Kumar", Amount: "25000", DueDate: "2025-02-05"}

    body, fellBack := template.Render(model.CampaignEMIReminder, model.LanguageEnglish, data)
    if fellBack {
        t.Errorf("expected no fallback for a known campaign type")
    }
    for _, want := range []string{"Rajesh Kumar", "25000", "2025-02-05"} {
        if !strings.Contains(body, want) {
            t.Errorf("expected %q in body, got %q", want, body)
        }
    }
    if strings.Contains(body, "{") {
        t.Errorf("unreplaced placeholder left in body: %q", body)
    }
}

func TestRenderMissingFieldsUsePlaceholders(t *testing.T) {
    body, _ := template.Render(model.CampaignEMIReminder, model.LanguageEnglish, model.CustomerData{})

    if !strings.Contains(body, "Customer") {
        t.Errorf("expected 'Customer' placeholder for missing name, got %q", body)
    }
    if !strings.Contains(body, "N/A") {
        t.Errorf("expected 'N/A' placeholder for missing amount, got %q", body)
    }
}

func TestRenderUnknownTypeFallsBackToDefault(t *testing.T) {
    data := model.CustomerData{Name: "Priya", Amount: "5000", DueDate: "2025-03-05"}

    got, fellBack := template.Render(model.CampaignType("festival_greeting"), model.LanguageEnglish, data)
    if !fellBack {
        t.Errorf("expected fallback for unknown campaign type")
    }

    want, _ := template.Render(model.CampaignEMIReminder, model.LanguageEnglish, data)
    if got != want {
        t.Errorf("unknown type should render the default template\n got: %q\nwant: %q", got, want)
    }
}

func TestRenderLocalizedCatalogs(t *testing.T) {
    data := model.CustomerData{Amount: "5000", DueDate: "05-03-2025"}

    hi, fellBack := template.Render(model.CampaignSIPDebitReminder, model.LanguageHindi, data)
    if fellBack {
        t.Errorf("sip_debit_reminder is a known type, expected no fallback")
    }
    if !strings.Contains(hi, "5000") {
        t.Errorf("expected amount in hindi body, got %q", hi)
    }

    en, _ := template.Render(model.CampaignSIPDebitReminder, model.LanguageEnglish, data)
    if hi == en {
        t.Errorf("expected a localized hindi body, got the english one")
    }
}

func TestRenderMissingLanguageFallsBackToEnglish(t *testing.T) {
    data := model.CustomerData{Name: "Anand", Amount: "1200", DueDate: "2025-04-01"}

    te, _ := template.Render(model.CampaignEMIReminder, model.LanguageTelugu, data)
    en, _ := template.Render(model.CampaignEMIReminder, model.LanguageEnglish, data)
    if te != en {
        t.Errorf("telugu has no emi_reminder template, expected the english body")
    }

    // hindi covers only the mutual fund campaigns
    hi, _ := template.Render(model.CampaignLoanOffer, model.LanguageHindi, data)
    enLoan, _ := template.Render(model.CampaignLoanOffer, model.LanguageEnglish, data)
    if hi != enLoan {
        t.Errorf("hindi has no loan_offer template, expected the english body")
    }
}

func TestSubject(t *testing.T) {
    if got := template.Subject(model.CampaignSIPDebitReminder); got != "Upcoming SIP Debit Reminder" {
        t.Errorf("unexpected subject: %q", got)
    }
    if got := template.Subject(model.CampaignType("festival_greeting")); got != template.Subject(model.CampaignEMIReminder) {
        t.Errorf("unknown type should use the default subject, got %q", got)
    }
}
