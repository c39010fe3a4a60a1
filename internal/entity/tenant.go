package entity

import (
	"time"

	"github.com/google/uuid"
)

type TenantPlan string

const (
	TenantPlanStarter TenantPlan = "starter"
	TenantPlanGrowth  TenantPlan = "growth"
	TenantPlanCampus  TenantPlan = "campus"
)

type Tenant struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Slug string    `gorm:"type:varchar(100);uniqueIndex;not null"`

	Plan     TenantPlan `gorm:"type:varchar(20);default:'starter';not null"`
	IsActive bool       `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
