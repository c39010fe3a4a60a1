package dto

import (
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateInvoiceRequest struct {
	ClientID    uuid.UUID      `json:"client_id" validate:"required"`
	Number      string         `json:"number" validate:"required,min=1,max=50"`
	AmountCents int64          `json:"amount_cents" validate:"gte=0"`
	Currency    string         `json:"currency" validate:"omitempty,len=3"`
	Lines       datatypes.JSON `json:"lines"`
	DueAt       *time.Time     `json:"due_at"`
}

type InvoiceResponse struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"client_id"`
	Number      string         `json:"number"`
	Status      string         `json:"status"`
	AmountCents int64          `json:"amount_cents"`
	Currency    string         `json:"currency"`
	Lines       datatypes.JSON `json:"lines,omitempty"`
	DueAt       *time.Time     `json:"due_at,omitempty"`
	SentAt      *time.Time     `json:"sent_at,omitempty"`
	PaidAt      *time.Time     `json:"paid_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func InvoiceResponseFromEntity(invoice *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          invoice.ID.String(),
		ClientID:    invoice.ClientID.String(),
		Number:      invoice.Number,
		Status:      string(invoice.Status),
		AmountCents: invoice.AmountCents,
		Currency:    invoice.Currency,
		Lines:       invoice.Lines,
		DueAt:       invoice.DueAt,
		SentAt:      invoice.SentAt,
		PaidAt:      invoice.PaidAt,
		CreatedAt:   invoice.CreatedAt,
		UpdatedAt:   invoice.UpdatedAt,
	}
}

func InvoiceResponsesFromEntities(invoices []entity.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, InvoiceResponseFromEntity(&invoices[i]))
	}
	return responses
}
