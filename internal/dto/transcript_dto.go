package dto

// TranscriptLineMessage is the bus payload for one conversation line on its
// way to persistence.
type TranscriptLineMessage struct {
	SessionId string `json:"session_id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	OptionId  string `json:"option_id,omitempty"`
	Mode      string `json:"mode,omitempty"`
}
