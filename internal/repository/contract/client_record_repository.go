package contract

import (
	"context"

	"title-assist-be/internal/entity"
	"title-assist-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ClientRecordRepository interface {
	Create(ctx context.Context, record *entity.ClientRecord) error
	Update(ctx context.Context, record *entity.ClientRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClientRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	FindByEmail(ctx context.Context, email string) (*entity.ClientRecord, error)
	FindByPhone(ctx context.Context, phone string) (*entity.ClientRecord, error)
}
