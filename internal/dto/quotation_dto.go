package dto

import (
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateQuotationRequest struct {
	OpportunityID uuid.UUID      `json:"opportunity_id" validate:"required"`
	Number        string         `json:"number" validate:"required,min=1,max=50"`
	Lines         datatypes.JSON `json:"lines"`
	TotalCents    int64          `json:"total_cents" validate:"gte=0"`
	ValidUntil    *time.Time     `json:"valid_until"`
}

type QuotationResponse struct {
	ID            string         `json:"id"`
	OpportunityID string         `json:"opportunity_id"`
	Number        string         `json:"number"`
	Status        string         `json:"status"`
	Lines         datatypes.JSON `json:"lines,omitempty"`
	TotalCents    int64          `json:"total_cents"`
	ValidUntil    *time.Time     `json:"valid_until,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func QuotationResponseFromEntity(quotation *entity.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:            quotation.ID.String(),
		OpportunityID: quotation.OpportunityID.String(),
		Number:        quotation.Number,
		Status:        string(quotation.Status),
		Lines:         quotation.Lines,
		TotalCents:    quotation.TotalCents,
		ValidUntil:    quotation.ValidUntil,
		CreatedAt:     quotation.CreatedAt,
		UpdatedAt:     quotation.UpdatedAt,
	}
}

func QuotationResponsesFromEntities(quotations []entity.Quotation) []QuotationResponse {
	responses := make([]QuotationResponse, 0, len(quotations))
	for i := range quotations {
		responses = append(responses, QuotationResponseFromEntity(&quotations[i]))
	}
	return responses
}
