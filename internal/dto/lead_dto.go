package dto

import (
	"time"

	"coworka/internal/entity"
)

type CreateLeadRequest struct {
	Name   string  `json:"name" validate:"required,min=1"`
	Email  string  `json:"email" validate:"required,email"`
	Phone  *string `json:"phone" validate:"omitempty,max=30"`
	Source *string `json:"source" validate:"omitempty,max=100"`
}

type ChangeLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW CONTACTED QUALIFIED CONVERTED LOST"`
}

type ConvertLeadRequest struct {
	OpportunityTitle string `json:"opportunity_title" validate:"required,min=1"`
	ValueCents       int64  `json:"value_cents" validate:"gte=0"`
}

type LeadResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             *string   `json:"phone,omitempty"`
	Source            *string   `json:"source,omitempty"`
	Status            string    `json:"status"`
	ConvertedClientID *string   `json:"converted_client_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ConvertLeadResponse struct {
	Lead        LeadResponse        `json:"lead"`
	Client      ClientResponse      `json:"client"`
	Opportunity OpportunityResponse `json:"opportunity"`
}

func LeadResponseFromEntity(lead *entity.Lead) LeadResponse {
	response := LeadResponse{
		ID:        lead.ID.String(),
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Source:    lead.Source,
		Status:    string(lead.Status),
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
	if lead.ConvertedClientID != nil {
		client := lead.ConvertedClientID.String()
		response.ConvertedClientID = &client
	}
	return response
}

func LeadResponsesFromEntities(leads []entity.Lead) []LeadResponse {
	responses := make([]LeadResponse, 0, len(leads))
	for i := range leads {
		responses = append(responses, LeadResponseFromEntity(&leads[i]))
	}
	return responses
}
