package repository

import (
	"context"
	"errors"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceOfferingRepository interface {
	Create(ctx context.Context, offering *entity.ServiceOffering) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.ServiceOffering, error)
	Update(ctx context.Context, offering *entity.ServiceOffering) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.ServiceOffering, error)
}

type serviceOfferingRepository struct {
	db *gorm.DB
}

func NewServiceOfferingRepository(db *gorm.DB) ServiceOfferingRepository {
	return &serviceOfferingRepository{db: db}
}

func (r *serviceOfferingRepository) Create(ctx context.Context, offering *entity.ServiceOffering) error {
	return r.db.WithContext(ctx).Create(offering).Error
}

func (r *serviceOfferingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.ServiceOffering, error) {
	var offering entity.ServiceOffering
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&offering).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &offering, err
}

func (r *serviceOfferingRepository) Update(ctx context.Context, offering *entity.ServiceOffering) error {
	return r.db.WithContext(ctx).Save(offering).Error
}

func (r *serviceOfferingRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.ServiceOffering, error) {
	var offerings []entity.ServiceOffering
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&offerings).Error; err != nil {
		return nil, err
	}
	return offerings, nil
}
