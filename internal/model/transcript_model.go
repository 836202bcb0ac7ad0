package model

import (
	"time"

	"github.com/google/uuid"
)

type TranscriptMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionID string    `gorm:"type:varchar(64);not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	OptionID  string    `gorm:"type:varchar(64)"`
	Mode      string    `gorm:"type:varchar(40)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TranscriptMessage) TableName() string {
	return "transcript_messages"
}
