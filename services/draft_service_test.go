package services

import (
	"errors"
	"sync"
	"testing"

	"loan-portal-api/models"
	"loan-portal-api/utils"
)

func TestOpenReturnsSameDraftForSession(t *testing.T) {
	store := NewDraftService()

	first := store.Open("sess-1")
	second := store.Open("sess-1")
	if first.ID != second.ID {
		t.Fatalf("expected the same draft, got %s and %s", first.ID, second.ID)
	}

	other := store.Open("sess-2")
	if other.ID == first.ID {
		t.Fatal("expected a distinct draft per session")
	}
}

func TestNewDraftDefaults(t *testing.T) {
	store := NewDraftService()
	draft := store.Open("sess-1")

	if draft.Values["nationality"] != models.SelectSentinel {
		t.Fatalf("expected nationality sentinel, got %q", draft.Values["nationality"])
	}
	if draft.Values["loanAmount"] != "1000" {
		t.Fatalf("expected starting loan amount 1000, got %q", draft.Values["loanAmount"])
	}
	if draft.Flags["hasPreviousLoan"] {
		t.Fatal("expected toggles to start false")
	}
}

func TestApplyFieldClearsDetailsWhenToggleGoesFalse(t *testing.T) {
	store := NewDraftService()
	store.Open("sess-1")

	mustApply := func(field, value string) {
		t.Helper()
		if err := store.ApplyField("sess-1", utils.LocaleArabic, field, value); err != nil {
			t.Fatalf("ApplyField(%s, %s) failed: %v", field, value, err)
		}
	}
	current := func() *models.LoanDraft {
		t.Helper()
		draft, err := store.Get("sess-1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		return draft
	}

	mustApply("hasPreviousLoan", "true")
	mustApply("isPreviousLoanPaid", "true")
	mustApply("hasMonthlyInstallments", "true")
	mustApply("totalMonthlyInstallments", "500")
	mustApply("guarantorHasActiveLoan", "true")
	mustApply("guarantorRemainingLoanAmount", "2500")

	mustApply("hasPreviousLoan", "false")
	if current().Flags["isPreviousLoanPaid"] {
		t.Fatal("expected isPreviousLoanPaid reset to false")
	}

	mustApply("hasMonthlyInstallments", "false")
	if got := current().Values["totalMonthlyInstallments"]; got != "" {
		t.Fatalf("expected cleared installments total, got %q", got)
	}

	mustApply("guarantorHasActiveLoan", "false")
	if got := current().Values["guarantorRemainingLoanAmount"]; got != "" {
		t.Fatalf("expected cleared remaining amount, got %q", got)
	}
}

func TestApplyFieldRejectsInvalidValues(t *testing.T) {
	store := NewDraftService()
	store.Open("sess-1")

	err := store.ApplyField("sess-1", utils.LocaleArabic, "loanAmount", "12a")
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fieldErr.Field != "loanAmount" {
		t.Fatalf("expected error on loanAmount, got %s", fieldErr.Field)
	}

	if err := store.ApplyField("sess-1", utils.LocaleArabic, "noSuchField", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := store.ApplyField("sess-1", utils.LocaleArabic, "fullName", "x"); !errors.Is(err, ErrReadOnlyField) {
		t.Fatalf("expected ErrReadOnlyField, got %v", err)
	}
}

func TestAttachFileSingleSlot(t *testing.T) {
	store := NewDraftService()
	store.Open("sess-1")

	first := &models.Attachment{FileName: "a.pdf"}
	second := &models.Attachment{FileName: "b.pdf"}

	if err := store.AttachFile("sess-1", "signature", first); err != nil {
		t.Fatalf("AttachFile failed: %v", err)
	}
	if err := store.AttachFile("sess-1", "signature", second); err != nil {
		t.Fatalf("AttachFile replace failed: %v", err)
	}
	draft, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if draft.Files["signature"].FileName != "b.pdf" {
		t.Fatalf("expected slot to hold the replacement, got %q", draft.Files["signature"].FileName)
	}

	if err := store.AttachFile("sess-1", "city", first); !errors.Is(err, ErrNotFileField) {
		t.Fatalf("expected ErrNotFileField, got %v", err)
	}

	if err := store.RemoveFile("sess-1", "signature"); err != nil {
		t.Fatalf("RemoveFile failed: %v", err)
	}
	if draft, err = store.Get("sess-1"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if draft.Files["signature"] != nil {
		t.Fatal("expected slot to be empty after removal")
	}
}

func TestSnapshotsAreIsolatedFromLaterEdits(t *testing.T) {
	store := NewDraftService()
	store.Open("sess-1")
	store.SetAcknowledgements("sess-1", models.AcknowledgementState{BorrowerTerms1: true, BorrowerTerms2: true, GuarantorTerms: true})

	snapshot, err := store.BeginSubmit("sess-1")
	if err != nil {
		t.Fatalf("BeginSubmit failed: %v", err)
	}
	store.EndSubmit("sess-1", false)

	if err := store.ApplyField("sess-1", utils.LocaleArabic, "city", "جدة"); err != nil {
		t.Fatalf("ApplyField failed: %v", err)
	}
	if snapshot.Values["city"] != "" {
		t.Fatalf("expected the snapshot frozen at submit time, got %q", snapshot.Values["city"])
	}

	// Writing into a snapshot must not leak back into the store.
	snapshot.Values["address"] = "mutated"
	current, err := store.Get("sess-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if current.Values["address"] != "" {
		t.Fatalf("expected the stored draft untouched, got %q", current.Values["address"])
	}
}

// Field edits and draft reads from different goroutines must never touch the
// same maps: assembly and JSON rendering run on clones taken under the
// store's lock.
func TestConcurrentEditsAndAssembly(t *testing.T) {
	store := NewDraftService()
	store.Open("sess-1")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = store.ApplyField("sess-1", utils.LocaleArabic, "city", "جدة")
			_ = store.ApplyField("sess-1", utils.LocaleArabic, "hasPreviousLoan", "true")
			_ = store.ApplyField("sess-1", utils.LocaleArabic, "hasPreviousLoan", "false")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			draft, err := store.Get("sess-1")
			if err != nil {
				continue
			}
			_ = AssemblePayload(draft, utils.LocaleArabic)
		}
	}()
	wg.Wait()
}

func TestBeginSubmitRequiresAcknowledgements(t *testing.T) {
	store := NewDraftService()
	store.Open("sess-1")

	if _, err := store.BeginSubmit("sess-1"); !errors.Is(err, ErrGateNotSatisfied) {
		t.Fatalf("expected ErrGateNotSatisfied, got %v", err)
	}

	// Two of three is still blocked.
	store.SetAcknowledgements("sess-1", models.AcknowledgementState{BorrowerTerms1: true, BorrowerTerms2: true})
	if _, err := store.BeginSubmit("sess-1"); !errors.Is(err, ErrGateNotSatisfied) {
		t.Fatalf("expected ErrGateNotSatisfied with partial acks, got %v", err)
	}

	store.SetAcknowledgements("sess-1", models.AcknowledgementState{BorrowerTerms1: true, BorrowerTerms2: true, GuarantorTerms: true})
	if _, err := store.BeginSubmit("sess-1"); err != nil {
		t.Fatalf("expected submit to start, got %v", err)
	}
}

func TestBeginSubmitIsNotReentrant(t *testing.T) {
	store := NewDraftService()
	store.Open("sess-1")
	store.SetAcknowledgements("sess-1", models.AcknowledgementState{BorrowerTerms1: true, BorrowerTerms2: true, GuarantorTerms: true})

	if _, err := store.BeginSubmit("sess-1"); err != nil {
		t.Fatalf("first BeginSubmit failed: %v", err)
	}
	if _, err := store.BeginSubmit("sess-1"); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	// A failed attempt returns to Idle with the draft kept.
	store.EndSubmit("sess-1", false)
	if _, err := store.Get("sess-1"); err != nil {
		t.Fatalf("expected draft to survive a failed submit: %v", err)
	}
	if _, err := store.BeginSubmit("sess-1"); err != nil {
		t.Fatalf("expected resubmit after failure, got %v", err)
	}

	// A successful attempt discards the draft.
	store.EndSubmit("sess-1", true)
	if _, err := store.Get("sess-1"); !errors.Is(err, ErrNoDraft) {
		t.Fatalf("expected draft discarded after success, got %v", err)
	}
}
