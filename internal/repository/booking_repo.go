package repository

import (
	"context"
	"errors"
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Booking, error)
	CountActiveByClient(ctx context.Context, tenantID, clientID uuid.UUID) (int64, error)
	FindOverlapping(ctx context.Context, tenantID uuid.UUID, resource string, startsAt, endsAt time.Time, excludeID *uuid.UUID) (*entity.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&booking).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("starts_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) CountActiveByClient(ctx context.Context, tenantID, clientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("tenant_id = ? AND client_id = ? AND status IN ?", tenantID, clientID,
			[]entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed}).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, tenantID uuid.UUID, resource string, startsAt, endsAt time.Time, excludeID *uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	query := r.db.WithContext(ctx).
		Where("tenant_id = ? AND resource = ? AND status = ?", tenantID, resource, entity.BookingStatusConfirmed).
		Where("starts_at < ? AND ends_at > ?", endsAt, startsAt)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.First(&booking).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}
