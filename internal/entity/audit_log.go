package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditAction string

const (
	AuditLoginSuccess   AuditAction = "login_success"
	AuditLoginFailed    AuditAction = "login_failed"
	AuditLogout         AuditAction = "logout"
	AuditPasswordReset  AuditAction = "password_reset"
	AuditMFAFailed      AuditAction = "mfa_failed"
	AuditSessionRevoked AuditAction = "session_revoked"
	AuditTenantCreated  AuditAction = "tenant_created"
)

// AuditLog is append-only; rows are never updated after creation.
type AuditLog struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID *uuid.UUID `gorm:"type:uuid;index"`

	UserID *uuid.UUID `gorm:"type:uuid;index"`
	User   *User      `gorm:"constraint:OnDelete:SET NULL"`

	IPAddress *string     `gorm:"type:varchar(45)"`
	Action    AuditAction `gorm:"type:varchar(40);not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time
}
