package repository

import (
	"context"
	"errors"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *entity.Membership) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Membership, error)
	Update(ctx context.Context, membership *entity.Membership) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Membership, error)
	CountActiveByClient(ctx context.Context, tenantID, clientID uuid.UUID) (int64, error)
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *membershipRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Membership, error) {
	var membership entity.Membership
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&membership).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &membership, err
}

func (r *membershipRepository) Update(ctx context.Context, membership *entity.Membership) error {
	return r.db.WithContext(ctx).Save(membership).Error
}

func (r *membershipRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Membership, error) {
	var memberships []entity.Membership
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *membershipRepository) CountActiveByClient(ctx context.Context, tenantID, clientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Membership{}).
		Where("tenant_id = ? AND client_id = ? AND status = ?", tenantID, clientID, entity.MembershipStatusActive).
		Count(&count).Error
	return count, err
}
