package contract

import (
	"context"

	"title-assist-be/internal/entity"
	"title-assist-be/internal/repository/specification"
)

type TranscriptRepository interface {
	Create(ctx context.Context, message *entity.TranscriptMessage) error
	FindBySession(ctx context.Context, sessionID string) ([]*entity.TranscriptMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
