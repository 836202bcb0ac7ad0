package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ClientRecord struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;index"`
	Phone        string    `gorm:"type:varchar(50);index"`
	PhoneDigits  string    `gorm:"type:varchar(50);index"` // phone with non-digits stripped, for lookup
	VehicleYear  string    `gorm:"type:varchar(10)"`
	VehicleMake  string    `gorm:"type:varchar(100)"`
	VehicleModel string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:varchar(50)"`
	TitleStatus  string    `gorm:"type:text"`
	TitleRemedy  string    `gorm:"type:text"`
	Source       string    `gorm:"type:varchar(100)"`
	Metadata     datatypes.JSON
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (ClientRecord) TableName() string {
	return "client_records"
}
