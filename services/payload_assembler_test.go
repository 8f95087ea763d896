package services

import (
	"testing"

	"loan-portal-api/models"
	"loan-portal-api/utils"
)

func assembledValue(t *testing.T, p *Payload, key string) FormValue {
	t.Helper()
	fv, ok := p.Fields[key]
	if !ok {
		t.Fatalf("payload is missing key %q", key)
	}
	return fv
}

func TestAssemblePayloadContainsEveryFileSlot(t *testing.T) {
	draft := models.NewLoanDraft("d1", "sess-1")
	draft.Files["signature"] = &models.Attachment{FileName: "sig.png", Data: []byte{1}}

	payload := AssemblePayload(draft, utils.LocaleArabic)

	fileKeys := []string{
		"requester_signature", "requester_national_address_image",
		"requester_imam_recommendation", "requester_najiz_report",
		"requester_credit_report", "requester_valid_id",
		"requester_iban_certificate", "requester_promissory_note",
		"requester_income_proof", "guarantor_signature",
		"guarantor_national_address_image", "guarantor_valid_id",
		"guarantor_income_proof", "guarantor_credit_report",
	}
	for _, key := range fileKeys {
		fv := assembledValue(t, payload, key)
		if key == "requester_signature" {
			if fv.File == nil || fv.File.FileName != "sig.png" {
				t.Fatalf("expected attached signature file, got %+v", fv)
			}
			continue
		}
		if fv.File != nil || fv.Value != "" {
			t.Errorf("expected empty string for unattached slot %q, got %+v", key, fv)
		}
	}
}

func TestAssemblePayloadSerializesBooleans(t *testing.T) {
	draft := models.NewLoanDraft("d1", "sess-1")
	draft.Flags["hasPreviousLoan"] = true

	payload := AssemblePayload(draft, utils.LocaleArabic)

	if got := assembledValue(t, payload, "has_previous_loan").Value; got != "true" {
		t.Fatalf("expected literal \"true\", got %q", got)
	}
	if got := assembledValue(t, payload, "is_current_guarantor").Value; got != "false" {
		t.Fatalf("expected literal \"false\", got %q", got)
	}
}

func TestAssemblePayloadMapsSentinelSelectsToEmpty(t *testing.T) {
	draft := models.NewLoanDraft("d1", "sess-1")

	payload := AssemblePayload(draft, utils.LocaleArabic)
	if got := assembledValue(t, payload, "requester_nationality_id").Value; got != "" {
		t.Fatalf("expected empty nationality for sentinel, got %q", got)
	}

	draft.Values["nationality"] = "7"
	payload = AssemblePayload(draft, utils.LocaleArabic)
	if got := assembledValue(t, payload, "requester_nationality_id").Value; got != "7" {
		t.Fatalf("expected chosen nationality, got %q", got)
	}
}

func TestAssemblePayloadHidesUndisclosedDetails(t *testing.T) {
	draft := models.NewLoanDraft("d1", "sess-1")

	// Stale values with their toggles off must not leak into the payload.
	draft.Values["totalMonthlyInstallments"] = "999"
	draft.Values["guaranteedBorrowerName"] = "stale name"
	draft.Flags["isPreviousLoanPaid"] = true

	payload := AssemblePayload(draft, utils.LocaleArabic)

	if got := assembledValue(t, payload, "total_monthly_installments").Value; got != "" {
		t.Fatalf("expected hidden installments total to be empty, got %q", got)
	}
	if got := assembledValue(t, payload, "guaranteed_borrower_name").Value; got != "" {
		t.Fatalf("expected hidden borrower name to be empty, got %q", got)
	}
	if got := assembledValue(t, payload, "is_previous_loan_paid").Value; got != "false" {
		t.Fatalf("expected hidden paid flag to serialize false, got %q", got)
	}
}

func TestAssemblePayloadOtherCommitmentsFallback(t *testing.T) {
	draft := models.NewLoanDraft("d1", "sess-1")

	payload := AssemblePayload(draft, utils.LocaleArabic)
	want := utils.T(utils.LocaleArabic, utils.MsgNoOtherCommitments)
	if got := assembledValue(t, payload, "other_commitments_details").Value; got != want {
		t.Fatalf("expected fallback phrase %q, got %q", want, got)
	}

	draft.Flags["hasOtherCommitments"] = true
	draft.Values["otherCommitmentsDetails"] = "قرض سيارة"
	payload = AssemblePayload(draft, utils.LocaleArabic)
	if got := assembledValue(t, payload, "other_commitments_details").Value; got != "قرض سيارة" {
		t.Fatalf("expected entered details, got %q", got)
	}
}

func TestAssemblePayloadNormalizesDates(t *testing.T) {
	draft := models.NewLoanDraft("d1", "sess-1")
	draft.Applicant = models.ApplicantProfile{IDExpiryDate: "07/03/2030"}
	draft.Values["guarantorIdExpiryDate"] = "15-06-2031"
	draft.Values["jobStartDate"] = "2020-01-01"

	payload := AssemblePayload(draft, utils.LocaleArabic)

	if got := assembledValue(t, payload, "requester_id_expiry_date").Value; got != "2030-03-07" {
		t.Fatalf("expected normalized expiry date, got %q", got)
	}
	if got := assembledValue(t, payload, "guarantor_id_expiry_date").Value; got != "2031-06-15" {
		t.Fatalf("expected normalized guarantor expiry date, got %q", got)
	}
	if got := assembledValue(t, payload, "requester_job_start_date").Value; got != "2020-01-01" {
		t.Fatalf("expected canonical job start date unchanged, got %q", got)
	}
}

func TestAssemblePayloadCopiesApplicantProfile(t *testing.T) {
	draft := models.NewLoanDraft("d1", "sess-1")
	draft.Applicant = models.ApplicantProfile{
		Name:       "محمد أحمد",
		Email:      "m@example.com",
		Phone:      "966500000000",
		NationalID: "1234567890",
	}

	payload := AssemblePayload(draft, utils.LocaleArabic)

	if got := assembledValue(t, payload, "requester_name").Value; got != "محمد أحمد" {
		t.Fatalf("expected applicant name, got %q", got)
	}
	if got := assembledValue(t, payload, "requester_national_id").Value; got != "1234567890" {
		t.Fatalf("expected applicant national id, got %q", got)
	}
}
