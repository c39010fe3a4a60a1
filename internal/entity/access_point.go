package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AccessPointType string

const (
	AccessPointTypeDoor      AccessPointType = "DOOR"
	AccessPointTypeGate      AccessPointType = "GATE"
	AccessPointTypeTurnstile AccessPointType = "TURNSTILE"
	AccessPointTypeElevator  AccessPointType = "ELEVATOR"
)

type AccessPointStatus string

const (
	AccessPointStatusActive        AccessPointStatus = "ACTIVE"
	AccessPointStatusMaintenance   AccessPointStatus = "MAINTENANCE"
	AccessPointStatusEmergencyOpen AccessPointStatus = "EMERGENCY_OPEN"
)

type DoorStatus string

const (
	DoorStatusLocked   DoorStatus = "LOCKED"
	DoorStatusUnlocked DoorStatus = "UNLOCKED"
	DoorStatusOpen     DoorStatus = "OPEN"
	DoorStatusClosed   DoorStatus = "CLOSED"
)

// AccessPoint rows are never hard-deleted; decommissioned points are moved
// to MAINTENANCE instead.
type AccessPoint struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Tenant   Tenant    `gorm:"constraint:OnDelete:CASCADE"`

	Name string          `gorm:"type:varchar(255);not null"`
	Type AccessPointType `gorm:"type:varchar(20);not null"`

	Status     AccessPointStatus `gorm:"type:varchar(20);default:'ACTIVE';not null"`
	DoorStatus DoorStatus        `gorm:"type:varchar(20);default:'LOCKED';not null"`

	Location datatypes.JSON
	Hardware datatypes.JSON
	Config   datatypes.JSON

	OccupancyCount int `gorm:"default:0;not null"`

	// Persisted deadlines replace in-process timers: a temporary unlock and a
	// restart each record when they elapse, so any instance (or a restarted
	// process) can finish the transition.
	UnlockExpiresAt    *time.Time `gorm:"index"`
	RestartCompletesAt *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccessPointConfig is the parsed form of the Config JSON blob.
type AccessPointConfig struct {
	OccupancyLimit  int  `json:"occupancy_limit"`
	RequireSchedule bool `json:"require_schedule"`
	AlertOnDenied   bool `json:"alert_on_denied"`
}
