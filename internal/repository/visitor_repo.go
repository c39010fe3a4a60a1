package repository

import (
	"context"
	"errors"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitorRepository interface {
	Create(ctx context.Context, visitor *entity.Visitor) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Visitor, error)
	Update(ctx context.Context, visitor *entity.Visitor) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Visitor, error)
}

type visitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

func (r *visitorRepository) Create(ctx context.Context, visitor *entity.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

func (r *visitorRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Visitor, error) {
	var visitor entity.Visitor
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&visitor).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &visitor, err
}

func (r *visitorRepository) Update(ctx context.Context, visitor *entity.Visitor) error {
	return r.db.WithContext(ctx).Save(visitor).Error
}

func (r *visitorRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Visitor, error) {
	var visitors []entity.Visitor
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&visitors).Error; err != nil {
		return nil, err
	}
	return visitors, nil
}
