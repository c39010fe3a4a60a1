package entity

import (
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusQualified LeadStatus = "QUALIFIED"
	LeadStatusConverted LeadStatus = "CONVERTED"
	LeadStatusLost      LeadStatus = "LOST"
)

type Lead struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name   string  `gorm:"type:varchar(255);not null"`
	Email  string  `gorm:"type:varchar(255);not null"`
	Phone  *string `gorm:"type:varchar(30)"`
	Source *string `gorm:"type:varchar(100)"`

	Status LeadStatus `gorm:"type:varchar(20);default:'NEW';not null"`

	ConvertedClientID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
