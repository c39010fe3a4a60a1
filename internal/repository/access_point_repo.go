package repository

import (
	"context"
	"errors"
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessPointRepository interface {
	Create(ctx context.Context, point *entity.AccessPoint) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.AccessPoint, error)
	Update(ctx context.Context, point *entity.AccessPoint) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.AccessPoint, error)
	AdjustOccupancy(ctx context.Context, id uuid.UUID, delta int) error
	RelockExpired(ctx context.Context, now time.Time) (int64, error)
	CompleteRestarts(ctx context.Context, now time.Time) (int64, error)
	OccupancySnapshot(ctx context.Context, tenantID uuid.UUID) ([]entity.AccessPoint, error)
}

type accessPointRepository struct {
	db *gorm.DB
}

func NewAccessPointRepository(db *gorm.DB) AccessPointRepository {
	return &accessPointRepository{db: db}
}

func (r *accessPointRepository) Create(ctx context.Context, point *entity.AccessPoint) error {
	return r.db.WithContext(ctx).Create(point).Error
}

func (r *accessPointRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.AccessPoint, error) {
	var point entity.AccessPoint
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&point).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &point, err
}

func (r *accessPointRepository) Update(ctx context.Context, point *entity.AccessPoint) error {
	return r.db.WithContext(ctx).Save(point).Error
}

func (r *accessPointRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.AccessPoint, error) {
	var points []entity.AccessPoint
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// AdjustOccupancy applies the delta in SQL so concurrent grants do not lose
// updates; the counter is clamped at zero.
func (r *accessPointRepository) AdjustOccupancy(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&entity.AccessPoint{}).
		Where("id = ?", id).
		Update("occupancy_count", gorm.Expr("GREATEST(occupancy_count + ?, 0)", delta)).
		Error
}

// RelockExpired closes out temporary unlocks whose deadline has passed.
// Runs tenant-wide; the deadline is persisted so any instance may finish the
// transition.
func (r *accessPointRepository) RelockExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.AccessPoint{}).
		Where("unlock_expires_at IS NOT NULL AND unlock_expires_at <= ?", now).
		Updates(map[string]any{
			"door_status":       entity.DoorStatusLocked,
			"unlock_expires_at": nil,
		})
	return result.RowsAffected, result.Error
}

// CompleteRestarts returns points whose restart window has elapsed to ACTIVE.
func (r *accessPointRepository) CompleteRestarts(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.AccessPoint{}).
		Where("restart_completes_at IS NOT NULL AND restart_completes_at <= ?", now).
		Updates(map[string]any{
			"status":               entity.AccessPointStatusActive,
			"restart_completes_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *accessPointRepository) OccupancySnapshot(ctx context.Context, tenantID uuid.UUID) ([]entity.AccessPoint, error) {
	var points []entity.AccessPoint
	err := r.db.WithContext(ctx).
		Select("id", "name", "occupancy_count", "config").
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}
