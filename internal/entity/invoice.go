package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	InvoiceStatusSent  InvoiceStatus = "SENT"
	InvoiceStatusPaid  InvoiceStatus = "PAID"
	InvoiceStatusVoid  InvoiceStatus = "VOID"
)

type Invoice struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_tenant_number"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Client   Client    `gorm:"constraint:OnDelete:CASCADE"`

	Number string `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_tenant_number"`

	Status      InvoiceStatus `gorm:"type:varchar(20);default:'DRAFT';not null"`
	AmountCents int64         `gorm:"not null"`
	Currency    string        `gorm:"type:varchar(3);default:'USD';not null"`

	// Line items serialized as JSON; parsed back on read.
	Lines datatypes.JSON

	DueAt  *time.Time
	SentAt *time.Time
	PaidAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
