package mapper

import (
	"title-assist-be/internal/entity"
	"title-assist-be/internal/model"
)

type TranscriptMapper struct{}

func NewTranscriptMapper() *TranscriptMapper {
	return &TranscriptMapper{}
}

func (m *TranscriptMapper) ToEntity(t *model.TranscriptMessage) *entity.TranscriptMessage {
	if t == nil {
		return nil
	}
	return &entity.TranscriptMessage{
		Id:        t.Id,
		SessionID: t.SessionID,
		Role:      t.Role,
		Content:   t.Content,
		OptionID:  t.OptionID,
		Mode:      t.Mode,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TranscriptMapper) ToModel(t *entity.TranscriptMessage) *model.TranscriptMessage {
	if t == nil {
		return nil
	}
	return &model.TranscriptMessage{
		Id:        t.Id,
		SessionID: t.SessionID,
		Role:      t.Role,
		Content:   t.Content,
		OptionID:  t.OptionID,
		Mode:      t.Mode,
	}
}

func (m *TranscriptMapper) ToEntities(models []*model.TranscriptMessage) []*entity.TranscriptMessage {
	entities := make([]*entity.TranscriptMessage, len(models))
	for i, t := range models {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
