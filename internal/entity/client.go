package entity

import (
	"time"

	"github.com/google/uuid"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

type Client struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Tenant   Tenant    `gorm:"constraint:OnDelete:CASCADE"`

	Name    string  `gorm:"type:varchar(255);not null"`
	Email   string  `gorm:"type:varchar(255);not null;index"`
	Phone   *string `gorm:"type:varchar(30)"`
	Company *string `gorm:"type:varchar(255)"`
	Notes   *string `gorm:"type:text"`

	Status ClientStatus `gorm:"type:varchar(20);default:'ACTIVE';not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
