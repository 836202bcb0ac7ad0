package entity

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptMessage is one persisted line of a widget conversation. Role is
// "user", "model" or "system"; OptionID is set when the line was a button
// selection rather than typed text.
type TranscriptMessage struct {
	Id        uuid.UUID
	SessionID string
	Role      string
	Content   string
	OptionID  string
	Mode      string // conversation mode at the time of the message
	CreatedAt time.Time
}
