package implementation

import (
	"context"
	"errors"
	"strings"

	"title-assist-be/internal/entity"
	"title-assist-be/internal/mapper"
	"title-assist-be/internal/model"
	"title-assist-be/internal/repository/contract"
	"title-assist-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecordMapper
}

func NewClientRecordRepository(db *gorm.DB) contract.ClientRecordRepository {
	return &ClientRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecordMapper(),
	}
}

func (r *ClientRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ClientRecordRepositoryImpl) Create(ctx context.Context, record *entity.ClientRecord) error {
	m := r.mapper.ClientRecordToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ClientRecordToEntity(m)
	return nil
}

func (r *ClientRecordRepositoryImpl) Update(ctx context.Context, record *entity.ClientRecord) error {
	m := r.mapper.ClientRecordToModel(record)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ClientRecordToEntity(m)
	return nil
}

func (r *ClientRecordRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ClientRecord{}, id).Error
}

func (r *ClientRecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClientRecord, error) {
	var m model.ClientRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ClientRecordToEntity(&m), nil
}

func (r *ClientRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClientRecord, error) {
	var models []*model.ClientRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ClientRecord, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ClientRecordToEntity(m)
	}
	return entities, nil
}

func (r *ClientRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ClientRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ClientRecordRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.ClientRecord, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	return r.FindOne(ctx, specification.ByEmailInsensitive{Email: email})
}

func (r *ClientRecordRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*entity.ClientRecord, error) {
	digits := mapper.DigitsOnly(phone)
	if digits == "" {
		return nil, nil
	}
	return r.FindOne(ctx, specification.ByPhoneDigits{Digits: digits})
}
