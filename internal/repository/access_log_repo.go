package repository

import (
	"context"
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessLogFilter struct {
	AccessPointID *uuid.UUID
	EventType     *entity.AccessEventType
	Granted       *bool
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

// EventTypeCount and PointCount are group-by projections for analytics.
type EventTypeCount struct {
	EventType entity.AccessEventType `json:"event_type"`
	Count     int64                  `json:"count"`
}

type PointCount struct {
	AccessPointID uuid.UUID `json:"access_point_id"`
	Count         int64     `json:"count"`
}

type AccessLogRepository interface {
	Create(ctx context.Context, log *entity.AccessLog) error
	List(ctx context.Context, tenantID uuid.UUID, filter AccessLogFilter) ([]entity.AccessLog, error)
	CountInRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time, granted *bool) (int64, error)
	CountByEventType(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]EventTypeCount, error)
	CountByPoint(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit int) ([]PointCount, error)
}

type accessLogRepository struct {
	db *gorm.DB
}

func NewAccessLogRepository(db *gorm.DB) AccessLogRepository {
	return &accessLogRepository{db: db}
}

func (r *accessLogRepository) Create(ctx context.Context, log *entity.AccessLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *accessLogRepository) List(ctx context.Context, tenantID uuid.UUID, filter AccessLogFilter) ([]entity.AccessLog, error) {
	var logs []entity.AccessLog
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC")
	if filter.AccessPointID != nil {
		query = query.Where("access_point_id = ?", *filter.AccessPointID)
	}
	if filter.EventType != nil {
		query = query.Where("event_type = ?", *filter.EventType)
	}
	if filter.Granted != nil {
		query = query.Where("granted = ?", *filter.Granted)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *accessLogRepository) CountInRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time, granted *bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entity.AccessLog{}).
		Where("tenant_id = ? AND created_at >= ? AND created_at < ?", tenantID, from, to)
	if granted != nil {
		query = query.Where("granted = ?", *granted)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *accessLogRepository) CountByEventType(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]EventTypeCount, error) {
	var counts []EventTypeCount
	err := r.db.WithContext(ctx).
		Model(&entity.AccessLog{}).
		Select("event_type, COUNT(*) AS count").
		Where("tenant_id = ? AND created_at >= ? AND created_at < ?", tenantID, from, to).
		Group("event_type").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *accessLogRepository) CountByPoint(ctx context.Context, tenantID uuid.UUID, from, to time.Time, limit int) ([]PointCount, error) {
	var counts []PointCount
	query := r.db.WithContext(ctx).
		Model(&entity.AccessLog{}).
		Select("access_point_id, COUNT(*) AS count").
		Where("tenant_id = ? AND created_at >= ? AND created_at < ?", tenantID, from, to).
		Group("access_point_id").
		Order("count DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
