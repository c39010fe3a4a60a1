package repository

import (
	"context"
	"errors"
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertTypeCount struct {
	Type  entity.AlertType `json:"type"`
	Count int64            `json:"count"`
}

type AccessAlertRepository interface {
	Create(ctx context.Context, alert *entity.AccessAlert) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.AccessAlert, error)
	Resolve(ctx context.Context, tenantID, id, resolvedBy uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, unresolvedOnly bool, limit, offset int) ([]entity.AccessAlert, error)
	CountByType(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]AlertTypeCount, error)
}

type accessAlertRepository struct {
	db *gorm.DB
}

func NewAccessAlertRepository(db *gorm.DB) AccessAlertRepository {
	return &accessAlertRepository{db: db}
}

func (r *accessAlertRepository) Create(ctx context.Context, alert *entity.AccessAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *accessAlertRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.AccessAlert, error) {
	var alert entity.AccessAlert
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&alert).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &alert, err
}

func (r *accessAlertRepository) Resolve(ctx context.Context, tenantID, id, resolvedBy uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.AccessAlert{}).
		Where("tenant_id = ? AND id = ? AND resolved_at IS NULL", tenantID, id).
		Updates(map[string]any{
			"resolved_at":    &now,
			"resolved_by_id": resolvedBy,
		}).
		Error
}

func (r *accessAlertRepository) List(ctx context.Context, tenantID uuid.UUID, unresolvedOnly bool, limit, offset int) ([]entity.AccessAlert, error) {
	var alerts []entity.AccessAlert
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC")
	if unresolvedOnly {
		query = query.Where("resolved_at IS NULL")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *accessAlertRepository) CountByType(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]AlertTypeCount, error) {
	var counts []AlertTypeCount
	err := r.db.WithContext(ctx).
		Model(&entity.AccessAlert{}).
		Select("type, COUNT(*) AS count").
		Where("tenant_id = ? AND created_at >= ? AND created_at < ?", tenantID, from, to).
		Group("type").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
