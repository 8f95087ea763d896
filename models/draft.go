package models

import "time"

// Attachment is one uploaded file held in memory for the current submission
// attempt. A slot holds at most one attachment.
type Attachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// AcknowledgementState carries the three attestation checkboxes that gate
// submission. All must be true before any network call is made.
type AcknowledgementState struct {
	BorrowerTerms1 bool `json:"borrowerTerms1"`
	BorrowerTerms2 bool `json:"borrowerTerms2"`
	GuarantorTerms bool `json:"guarantorTerms"`
}

// All reports whether every acknowledgement flag is set.
func (a AcknowledgementState) All() bool {
	return a.BorrowerTerms1 && a.BorrowerTerms2 && a.GuarantorTerms
}

// LoanDraft is the workflow-scoped aggregate of the whole loan application:
// borrower request, financial status, guarantor section, attachments and the
// acknowledgement gate. It lives in memory only and is discarded on
// successful submission. Field values are keyed by the registry so the
// toggle/detail invariants are enforced in one place instead of per field.
type LoanDraft struct {
	ID         string               `json:"id"`
	SessionKey string               `json:"-"`
	Applicant  ApplicantProfile     `json:"applicant"`
	Countries  []Country            `json:"countries"`
	Values     map[string]string    `json:"values"`
	Flags      map[string]bool      `json:"flags"`
	Files      map[string]*Attachment `json:"files"`
	Acks       AcknowledgementState `json:"acknowledgements"`
	CreatedAt  time.Time            `json:"created_at"`

	// Submitting is the re-entrancy guard: exactly one request per submit
	// click, a second click while in flight is ignored.
	Submitting bool `json:"-"`
}

// NewLoanDraft returns an empty draft with the selects holding their
// sentinel placeholder and the loan amount at its starting value.
func NewLoanDraft(id, sessionKey string) *LoanDraft {
	d := &LoanDraft{
		ID:         id,
		SessionKey: sessionKey,
		Values:     make(map[string]string),
		Flags:      make(map[string]bool),
		Files:      make(map[string]*Attachment),
		CreatedAt:  time.Now(),
	}
	for key, spec := range FieldRegistry {
		switch spec.Kind {
		case FieldSelect:
			d.Values[key] = SelectSentinel
		case FieldBool:
			d.Flags[key] = false
		case FieldFile:
			// slots stay empty until a file is attached
		default:
			if spec.ReadOnly {
				continue
			}
			d.Values[key] = ""
		}
	}
	d.Values["loanAmount"] = "1000"
	return d
}

// Clone returns a deep copy of the draft. The store only hands out clones,
// so no caller ever reads the live maps while the reducer writes them.
// Attachment pointers are shared: an attachment is never mutated after it is
// stored, a replacement swaps the pointer.
func (d *LoanDraft) Clone() *LoanDraft {
	c := *d
	c.Values = make(map[string]string, len(d.Values))
	for k, v := range d.Values {
		c.Values[k] = v
	}
	c.Flags = make(map[string]bool, len(d.Flags))
	for k, v := range d.Flags {
		c.Flags[k] = v
	}
	c.Files = make(map[string]*Attachment, len(d.Files))
	for k, v := range d.Files {
		c.Files[k] = v
	}
	c.Countries = append([]Country(nil), d.Countries...)
	return &c
}

// Disclosed reports whether a field is currently relevant: either it has no
// governing toggle, or that toggle is true. The rendering layer and the
// assembler both query this instead of re-deriving it.
func (d *LoanDraft) Disclosed(field string) bool {
	spec, ok := FieldRegistry[field]
	if !ok {
		return false
	}
	if spec.ClearedBy == "" {
		return true
	}
	return d.Flags[spec.ClearedBy]
}
