package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AccessEventType string

const (
	AccessEventEntry  AccessEventType = "ENTRY"
	AccessEventExit   AccessEventType = "EXIT"
	AccessEventForced AccessEventType = "FORCED"
)

// AccessLog is append-only; rows are never mutated after creation.
type AccessLog struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	AccessPointID uuid.UUID   `gorm:"type:uuid;not null;index"`
	AccessPoint   AccessPoint `gorm:"constraint:OnDelete:CASCADE"`

	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	VisitorID    *uuid.UUID `gorm:"type:uuid;index"`
	CredentialID *uuid.UUID `gorm:"type:uuid;index"`

	EventType AccessEventType `gorm:"type:varchar(20);not null;index"`
	Granted   bool            `gorm:"not null;index"`
	Reason    string          `gorm:"type:varchar(100);not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time `gorm:"index"`
}
