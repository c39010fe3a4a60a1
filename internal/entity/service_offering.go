package entity

import (
	"time"

	"github.com/google/uuid"
)

type ServiceOffering struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name     string `gorm:"type:varchar(255);not null"`
	Category string `gorm:"type:varchar(100);not null"`

	PriceCents int64  `gorm:"not null"`
	Currency   string `gorm:"type:varchar(3);default:'USD';not null"`

	IsActive bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
