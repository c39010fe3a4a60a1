package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CredentialType string

const (
	CredentialTypeBadge     CredentialType = "BADGE"
	CredentialTypePin       CredentialType = "PIN"
	CredentialTypeQR        CredentialType = "QR"
	CredentialTypeBiometric CredentialType = "BIOMETRIC"
)

// AccessCredential binds a user or a visitor (exactly one of the two) to a
// credential value. Credentials are deactivated, never destroyed. Among
// active credentials of a tenant, (type, value) must be unique.
type AccessCredential struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	VisitorID *uuid.UUID `gorm:"type:uuid;index"`

	Type  CredentialType `gorm:"type:varchar(20);not null;index:idx_credentials_type_value"`
	Value string         `gorm:"type:varchar(255);not null;index:idx_credentials_type_value"`

	// Schedule restricts when the credential is honored; empty means always.
	Schedule datatypes.JSON

	IsActive      bool       `gorm:"default:true;not null"`
	DeactivatedAt *time.Time

	IssuedByID uuid.UUID `gorm:"type:uuid;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CredentialSchedule is the parsed form of the Schedule JSON blob.
// Days uses Go's time.Weekday numbering (Sunday = 0). Start and End are
// "HH:MM" wall-clock bounds, inclusive start, exclusive end.
type CredentialSchedule struct {
	Days  []int  `json:"days"`
	Start string `json:"start"`
	End   string `json:"end"`
}
