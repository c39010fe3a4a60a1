package dto

import (
	"time"

	"coworka/internal/entity"
)

type CreateOfferingRequest struct {
	Name       string `json:"name" validate:"required,min=1"`
	Category   string `json:"category" validate:"required,min=1"`
	PriceCents int64  `json:"price_cents" validate:"gte=0"`
	Currency   string `json:"currency" validate:"omitempty,len=3"`
}

type UpdateOfferingRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Category   *string `json:"category" validate:"omitempty,min=1"`
	PriceCents *int64  `json:"price_cents" validate:"omitempty,gte=0"`
	Currency   *string `json:"currency" validate:"omitempty,len=3"`
	IsActive   *bool   `json:"is_active"`
}

type OfferingResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	PriceCents int64     `json:"price_cents"`
	Currency   string    `json:"currency"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func OfferingResponseFromEntity(offering *entity.ServiceOffering) OfferingResponse {
	return OfferingResponse{
		ID:         offering.ID.String(),
		Name:       offering.Name,
		Category:   offering.Category,
		PriceCents: offering.PriceCents,
		Currency:   offering.Currency,
		IsActive:   offering.IsActive,
		CreatedAt:  offering.CreatedAt,
		UpdatedAt:  offering.UpdatedAt,
	}
}

func OfferingResponsesFromEntities(offerings []entity.ServiceOffering) []OfferingResponse {
	responses := make([]OfferingResponse, 0, len(offerings))
	for i := range offerings {
		responses = append(responses, OfferingResponseFromEntity(&offerings[i]))
	}
	return responses
}
