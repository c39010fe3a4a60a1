package repository

import (
	"context"
	"errors"
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessCredentialRepository interface {
	Create(ctx context.Context, credential *entity.AccessCredential) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.AccessCredential, error)
	FindActiveByTypeValue(ctx context.Context, tenantID uuid.UUID, credentialType entity.CredentialType, value string) (*entity.AccessCredential, error)
	Deactivate(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, activeOnly bool, limit, offset int) ([]entity.AccessCredential, error)
}

type accessCredentialRepository struct {
	db *gorm.DB
}

func NewAccessCredentialRepository(db *gorm.DB) AccessCredentialRepository {
	return &accessCredentialRepository{db: db}
}

func (r *accessCredentialRepository) Create(ctx context.Context, credential *entity.AccessCredential) error {
	return r.db.WithContext(ctx).Create(credential).Error
}

func (r *accessCredentialRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.AccessCredential, error) {
	var credential entity.AccessCredential
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&credential).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &credential, err
}

func (r *accessCredentialRepository) FindActiveByTypeValue(ctx context.Context, tenantID uuid.UUID, credentialType entity.CredentialType, value string) (*entity.AccessCredential, error) {
	var credential entity.AccessCredential
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND type = ? AND value = ? AND is_active = true", tenantID, credentialType, value).
		First(&credential).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &credential, err
}

func (r *accessCredentialRepository) Deactivate(ctx context.Context, tenantID, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.AccessCredential{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(map[string]any{
			"is_active":      false,
			"deactivated_at": &now,
		}).
		Error
}

func (r *accessCredentialRepository) List(ctx context.Context, tenantID uuid.UUID, activeOnly bool, limit, offset int) ([]entity.AccessCredential, error) {
	var credentials []entity.AccessCredential
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = true")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&credentials).Error; err != nil {
		return nil, err
	}
	return credentials, nil
}
