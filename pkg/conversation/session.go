package conversation

import "time"

// Mode is the session's current conversational state. Exactly one mode is
// active at a time.
type Mode string

const (
	ModeCollectingBasics     Mode = "COLLECTING_BASICS"
	ModeIntroChoice          Mode = "INTRO_CHOICE"
	ModeRecordCheckChoice    Mode = "RECORD_CHECK_CHOICE"
	ModeRecordCheckEmail     Mode = "RECORD_CHECK_EMAIL"
	ModeAwaitingVerification Mode = "AWAITING_VERIFICATION"
	ModeConfirmChoice        Mode = "CONFIRM_CHOICE"
	ModeFormConfirmChoice    Mode = "FORM_CONFIRM_CHOICE"
	ModeAwaitingState        Mode = "AWAITING_STATE"
	ModeBrowsingOptions      Mode = "BROWSING_OPTIONS"
	ModeAIFreeform           Mode = "AI_FREEFORM"
)

// Answer keys collected by the scripted flow.
const (
	AnswerName  = "name"
	AnswerPhone = "phone"
	AnswerState = "state"
)

// ClientRecord is the read-only record the lookup collaborator returns.
// TitleRemedy is free text and may mention one or more form codes.
type ClientRecord struct {
	Name         string
	Phone        string
	Email        string
	VehicleYear  string
	VehicleMake  string
	VehicleModel string
	State        string
	TitleStatus  string
	TitleRemedy  string
}

// Session is the per-conversation state. One exists per active widget; it is
// owned by the session repository and mutated only through the engine.
type Session struct {
	ID      string
	Mode    Mode
	Answers map[string]string

	// PendingRecord is held only between a successful lookup and the end of
	// the verification/confirm cycle.
	PendingRecord *ClientRecord

	// PendingForms carries matched form codes between the confirm-yes step
	// and the form link confirmation.
	PendingForms []string

	// GreetedByName gates the one-time personalization prefix.
	GreetedByName bool

	// CodeHash is the bcrypt hash of the expected verification code, set by
	// the CodeAuthenticator when a record lookup succeeds.
	CodeHash []byte

	CreatedAt time.Time
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Mode:      ModeCollectingBasics,
		Answers:   make(map[string]string),
		CreatedAt: time.Now(),
	}
}

// Reset returns the session to its initial state, dropping everything
// collected so far.
func (s *Session) Reset() {
	s.Mode = ModeCollectingBasics
	s.Answers = make(map[string]string)
	s.clearPendingRecord()
	s.PendingForms = nil
	s.GreetedByName = false
}

func (s *Session) clearPendingRecord() {
	s.PendingRecord = nil
	s.CodeHash = nil
}
