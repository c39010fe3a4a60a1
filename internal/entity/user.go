package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleMember  UserRole = "member"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_users_tenant_email"`
	Tenant   Tenant    `gorm:"constraint:OnDelete:CASCADE"`

	Email        string   `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_tenant_email"`
	PasswordHash *string  `gorm:"type:text"`
	Role         UserRole `gorm:"type:varchar(20);default:'member';not null"`

	EmailVerifiedAt *time.Time
	IsActive        bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Sessions  []Session
	MFASecret *MFASecret
}
