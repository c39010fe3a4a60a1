package repository

import (
	"context"
	"errors"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *entity.Opportunity) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Opportunity, error)
	Update(ctx context.Context, opportunity *entity.Opportunity) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Opportunity, error)
}

type opportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Create(ctx context.Context, opportunity *entity.Opportunity) error {
	return r.db.WithContext(ctx).Create(opportunity).Error
}

func (r *opportunityRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Opportunity, error) {
	var opportunity entity.Opportunity
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&opportunity).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &opportunity, err
}

func (r *opportunityRepository) Update(ctx context.Context, opportunity *entity.Opportunity) error {
	return r.db.WithContext(ctx).Save(opportunity).Error
}

func (r *opportunityRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Opportunity, error) {
	var opportunities []entity.Opportunity
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&opportunities).Error; err != nil {
		return nil, err
	}
	return opportunities, nil
}
