package entity

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertTypeDeniedAccess   AlertType = "DENIED_ACCESS"
	AlertTypeForcedEntry    AlertType = "FORCED_ENTRY"
	AlertTypeTailgating     AlertType = "TAILGATING"
	AlertTypeOccupancyLimit AlertType = "OCCUPANCY_LIMIT"
)

type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "LOW"
	AlertSeverityMedium   AlertSeverity = "MEDIUM"
	AlertSeverityHigh     AlertSeverity = "HIGH"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

// AccessAlert is derived synchronously from the access log entry that
// triggered it.
type AccessAlert struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`

	AccessPointID uuid.UUID `gorm:"type:uuid;not null;index"`
	AccessLogID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AccessLog     AccessLog `gorm:"constraint:OnDelete:CASCADE"`

	Type     AlertType     `gorm:"type:varchar(30);not null;index"`
	Severity AlertSeverity `gorm:"type:varchar(20);not null"`
	Message  string        `gorm:"type:text;not null"`

	ResolvedAt   *time.Time
	ResolvedByID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
}
