package mapper

import (
	"encoding/json"
	"time"

	"title-assist-be/internal/entity"
	"title-assist-be/internal/model"

	"gorm.io/datatypes"
)

type RecordMapper struct{}

func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

func (m *RecordMapper) ClientRecordToEntity(r *model.ClientRecord) *entity.ClientRecord {
	if r == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(r.Metadata) > 0 {
		// Unreadable metadata is tolerated; the record itself is still usable.
		_ = json.Unmarshal(r.Metadata, &metadata)
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.ClientRecord{
		Id:           r.Id,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		VehicleYear:  r.VehicleYear,
		VehicleMake:  r.VehicleMake,
		VehicleModel: r.VehicleModel,
		State:        r.State,
		TitleStatus:  r.TitleStatus,
		TitleRemedy:  r.TitleRemedy,
		Source:       r.Source,
		Metadata:     metadata,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *RecordMapper) ClientRecordToModel(r *entity.ClientRecord) *model.ClientRecord {
	if r == nil {
		return nil
	}

	var metadata datatypes.JSON
	if r.Metadata != nil {
		if b, err := json.Marshal(r.Metadata); err == nil {
			metadata = b
		}
	}

	return &model.ClientRecord{
		Id:           r.Id,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		PhoneDigits:  DigitsOnly(r.Phone),
		VehicleYear:  r.VehicleYear,
		VehicleMake:  r.VehicleMake,
		VehicleModel: r.VehicleModel,
		State:        r.State,
		TitleStatus:  r.TitleStatus,
		TitleRemedy:  r.TitleRemedy,
		Source:       r.Source,
		Metadata:     metadata,
	}
}

// DigitsOnly strips everything but 0-9, used for phone matching.
func DigitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
