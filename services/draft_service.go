package services

import (
	"errors"
	"sync"

	"loan-portal-api/models"
	"loan-portal-api/utils"

	"github.com/google/uuid"
)

var (
	// ErrNoDraft is returned when the session has no open draft.
	ErrNoDraft = errors.New("no open loan draft for session")
	// ErrUnknownField is returned for field keys absent from the registry.
	ErrUnknownField = errors.New("unknown field")
	// ErrReadOnlyField is returned for profile-sourced fields.
	ErrReadOnlyField = errors.New("field is read-only")
	// ErrNotFileField is returned when an attachment targets a non-file slot.
	ErrNotFileField = errors.New("field is not a file slot")
	// ErrSubmissionInFlight signals a submit while a prior one is running.
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrGateNotSatisfied signals unchecked acknowledgement boxes.
	ErrGateNotSatisfied = errors.New("acknowledgements incomplete")
)

// FieldError is a local validation failure attached to a single field. It is
// recoverable and never blocks other fields.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// DraftService owns every open loan draft, keyed by the upstream session ID.
// Drafts live in memory only; a draft is discarded on successful submission
// and never persisted. The live draft never leaves the critical section:
// every accessor returns a point-in-time clone, so handlers can marshal or
// assemble a draft while the reducer keeps writing the original.
type DraftService struct {
	mu     sync.Mutex
	drafts map[string]*models.LoanDraft
}

// NewDraftService constructs an empty draft store.
func NewDraftService() *DraftService {
	return &DraftService{drafts: make(map[string]*models.LoanDraft)}
}

// Drafts is the store shared by the HTTP handlers.
var Drafts = NewDraftService()

// Open returns a snapshot of the session's draft, creating a fresh draft if
// none exists.
func (s *DraftService) Open(sessionKey string) *models.LoanDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionKey]
	if !ok {
		draft = models.NewLoanDraft(uuid.NewString(), sessionKey)
		s.drafts[sessionKey] = draft
	}
	return draft.Clone()
}

// Get returns a snapshot of the session's draft without creating one.
func (s *DraftService) Get(sessionKey string) (*models.LoanDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionKey]
	if !ok {
		return nil, ErrNoDraft
	}
	return draft.Clone(), nil
}

// SetApplicant fills the read-only profile block and the country reference
// list. Called once when the workflow opens; a failed fetch leaves the
// zero defaults in place.
func (s *DraftService) SetApplicant(sessionKey string, profile models.ApplicantProfile, countries []models.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionKey]
	if !ok {
		return ErrNoDraft
	}
	draft.Applicant = profile
	draft.Countries = countries
	return nil
}

// ApplyField is the reducer: it updates one field by key, validating the
// value against its registry kind. Setting a toggle to false synchronously
// clears every detail field that toggle governs, keeping the flag/detail
// pair in lock-step.
func (s *DraftService) ApplyField(sessionKey, locale, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionKey]
	if !ok {
		return ErrNoDraft
	}

	spec, ok := models.FieldRegistry[field]
	if !ok {
		return ErrUnknownField
	}
	if spec.ReadOnly {
		return ErrReadOnlyField
	}

	switch spec.Kind {
	case models.FieldBool:
		on := value == "true"
		draft.Flags[field] = on
		if !on {
			for _, detail := range models.DetailFields(field) {
				if models.FieldRegistry[detail].Kind == models.FieldBool {
					draft.Flags[detail] = false
				} else {
					draft.Values[detail] = ""
				}
			}
		}
		return nil
	case models.FieldFile:
		return ErrNotFileField
	default:
		if ok, msg := utils.ValidateField(locale, spec, value); !ok {
			return &FieldError{Field: field, Message: msg}
		}
		draft.Values[field] = value
		return nil
	}
}

// AttachFile places a file in a slot, replacing any previous one. A slot
// never holds more than a single file.
func (s *DraftService) AttachFile(sessionKey, field string, file *models.Attachment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionKey]
	if !ok {
		return ErrNoDraft
	}
	spec, ok := models.FieldRegistry[field]
	if !ok {
		return ErrUnknownField
	}
	if spec.Kind != models.FieldFile {
		return ErrNotFileField
	}
	draft.Files[field] = file
	return nil
}

// RemoveFile empties a file slot.
func (s *DraftService) RemoveFile(sessionKey, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionKey]
	if !ok {
		return ErrNoDraft
	}
	spec, ok := models.FieldRegistry[field]
	if !ok {
		return ErrUnknownField
	}
	if spec.Kind != models.FieldFile {
		return ErrNotFileField
	}
	delete(draft.Files, field)
	return nil
}

// SetAcknowledgements replaces the three attestation flags.
func (s *DraftService) SetAcknowledgements(sessionKey string, acks models.AcknowledgementState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionKey]
	if !ok {
		return ErrNoDraft
	}
	draft.Acks = acks
	return nil
}

// BeginSubmit moves the draft from Idle to Submitting and returns a snapshot
// taken under the lock, so assembly and upload read a frozen draft while
// field edits keep landing on the original. It fails without any side effect
// when the acknowledgement gate is not satisfied or another submission is
// already in flight, so no network call happens in either case.
func (s *DraftService) BeginSubmit(sessionKey string) (*models.LoanDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionKey]
	if !ok {
		return nil, ErrNoDraft
	}
	if draft.Submitting {
		return nil, ErrSubmissionInFlight
	}
	if !draft.Acks.All() {
		return nil, ErrGateNotSatisfied
	}
	draft.Submitting = true
	return draft.Clone(), nil
}

// EndSubmit returns the draft to Idle. On success the draft is discarded;
// on failure it stays populated for another attempt.
func (s *DraftService) EndSubmit(sessionKey string, succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[sessionKey]
	if !ok {
		return
	}
	draft.Submitting = false
	if succeeded {
		delete(s.drafts, sessionKey)
	}
}

// Discard drops the session's draft, if any.
func (s *DraftService) Discard(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionKey)
}
