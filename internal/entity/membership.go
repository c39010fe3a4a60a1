package entity

import (
	"time"

	"github.com/google/uuid"
)

type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "ACTIVE"
	MembershipStatusPaused    MembershipStatus = "PAUSED"
	MembershipStatusCancelled MembershipStatus = "CANCELLED"
)

type Membership struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Client   Client    `gorm:"constraint:OnDelete:CASCADE"`

	Plan       string `gorm:"type:varchar(100);not null"`
	PriceCents int64  `gorm:"not null"`

	StartsAt time.Time  `gorm:"not null"`
	EndsAt   *time.Time

	Status MembershipStatus `gorm:"type:varchar(20);default:'ACTIVE';not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
