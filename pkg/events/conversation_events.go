package events

import "time"

// Event type codes emitted by the conversation flow.
const (
	TypeLeadCaptured   = "LEAD_CAPTURED"
	TypeRecordVerified = "RECORD_VERIFIED"
	TypeLookupFailed   = "LOOKUP_FAILED"
)

// NewLeadCaptured fires once the scripted flow has collected the visitor's
// name and phone number.
func NewLeadCaptured(sessionID, name, phone string) Event {
	return BaseEvent{
		Type: TypeLeadCaptured,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"name":       name,
			"phone":      phone,
		},
		OccurredAt: time.Now(),
	}
}

// NewRecordVerified fires when a visitor proves ownership of a record via the
// verification code.
func NewRecordVerified(sessionID, email string) Event {
	return BaseEvent{
		Type: TypeRecordVerified,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"email":      email,
		},
		OccurredAt: time.Now(),
	}
}

// NewLookupFailed fires when the record store errors during a lookup. The
// conversation degrades to the manual flow; this event is for operators.
func NewLookupFailed(sessionID, email, reason string) Event {
	return BaseEvent{
		Type: TypeLookupFailed,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"email":      email,
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	}
}
