package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

type Booking struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Client   Client    `gorm:"constraint:OnDelete:CASCADE"`

	ServiceOfferingID *uuid.UUID       `gorm:"type:uuid;index"`
	ServiceOffering   *ServiceOffering `gorm:"constraint:OnDelete:SET NULL"`

	Resource string `gorm:"type:varchar(255);not null;index"`

	StartsAt time.Time `gorm:"not null;index"`
	EndsAt   time.Time `gorm:"not null"`

	Status BookingStatus `gorm:"type:varchar(20);default:'PENDING';not null"`
	Notes  *string       `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
