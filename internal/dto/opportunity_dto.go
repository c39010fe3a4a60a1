package dto

import (
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
)

type CreateOpportunityRequest struct {
	ClientID        *uuid.UUID `json:"client_id"`
	Title           string     `json:"title" validate:"required,min=1"`
	ValueCents      int64      `json:"value_cents" validate:"gte=0"`
	ExpectedCloseAt *time.Time `json:"expected_close_at"`
}

type ChangeOpportunityStageRequest struct {
	Stage string `json:"stage" validate:"required,oneof=PROSPECTING PROPOSAL NEGOTIATION WON LOST"`
}

type OpportunityResponse struct {
	ID              string     `json:"id"`
	LeadID          *string    `json:"lead_id,omitempty"`
	ClientID        *string    `json:"client_id,omitempty"`
	Title           string     `json:"title"`
	Stage           string     `json:"stage"`
	ValueCents      int64      `json:"value_cents"`
	ExpectedCloseAt *time.Time `json:"expected_close_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func OpportunityResponseFromEntity(opportunity *entity.Opportunity) OpportunityResponse {
	response := OpportunityResponse{
		ID:              opportunity.ID.String(),
		Title:           opportunity.Title,
		Stage:           string(opportunity.Stage),
		ValueCents:      opportunity.ValueCents,
		ExpectedCloseAt: opportunity.ExpectedCloseAt,
		CreatedAt:       opportunity.CreatedAt,
		UpdatedAt:       opportunity.UpdatedAt,
	}
	if opportunity.LeadID != nil {
		lead := opportunity.LeadID.String()
		response.LeadID = &lead
	}
	if opportunity.ClientID != nil {
		client := opportunity.ClientID.String()
		response.ClientID = &client
	}
	return response
}

func OpportunityResponsesFromEntities(opportunities []entity.Opportunity) []OpportunityResponse {
	responses := make([]OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		responses = append(responses, OpportunityResponseFromEntity(&opportunities[i]))
	}
	return responses
}
