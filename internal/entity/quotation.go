package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "DRAFT"
	QuotationStatusSent     QuotationStatus = "SENT"
	QuotationStatusAccepted QuotationStatus = "ACCEPTED"
	QuotationStatusRejected QuotationStatus = "REJECTED"
	QuotationStatusExpired  QuotationStatus = "EXPIRED"
)

type Quotation struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_quotations_tenant_number"`

	OpportunityID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Opportunity   Opportunity `gorm:"constraint:OnDelete:CASCADE"`

	Number string `gorm:"type:varchar(50);not null;uniqueIndex:idx_quotations_tenant_number"`

	Status     QuotationStatus `gorm:"type:varchar(20);default:'DRAFT';not null"`
	Lines      datatypes.JSON
	TotalCents int64 `gorm:"not null"`

	ValidUntil *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
