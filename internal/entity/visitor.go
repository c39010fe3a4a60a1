package entity

import (
	"time"

	"github.com/google/uuid"
)

type Visitor struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name  string  `gorm:"type:varchar(255);not null"`
	Email *string `gorm:"type:varchar(255)"`

	HostClientID *uuid.UUID `gorm:"type:uuid;index"`
	HostClient   *Client    `gorm:"constraint:OnDelete:SET NULL"`

	CheckedInAt  *time.Time
	CheckedOutAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
