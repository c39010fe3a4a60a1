package dto

import (
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
)

type CreateVisitorRequest struct {
	Name         string     `json:"name" validate:"required,min=1"`
	Email        *string    `json:"email" validate:"omitempty,email"`
	HostClientID *uuid.UUID `json:"host_client_id"`
}

type VisitorResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        *string    `json:"email,omitempty"`
	HostClientID *string    `json:"host_client_id,omitempty"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func VisitorResponseFromEntity(visitor *entity.Visitor) VisitorResponse {
	response := VisitorResponse{
		ID:           visitor.ID.String(),
		Name:         visitor.Name,
		Email:        visitor.Email,
		CheckedInAt:  visitor.CheckedInAt,
		CheckedOutAt: visitor.CheckedOutAt,
		CreatedAt:    visitor.CreatedAt,
	}
	if visitor.HostClientID != nil {
		host := visitor.HostClientID.String()
		response.HostClientID = &host
	}
	return response
}

func VisitorResponsesFromEntities(visitors []entity.Visitor) []VisitorResponse {
	responses := make([]VisitorResponse, 0, len(visitors))
	for i := range visitors {
		responses = append(responses, VisitorResponseFromEntity(&visitors[i]))
	}
	return responses
}
