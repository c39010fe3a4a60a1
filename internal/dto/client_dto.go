package dto

import (
	"time"

	"coworka/internal/entity"
)

type CreateClientRequest struct {
	Name    string  `json:"name" validate:"required,min=1"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Company *string `json:"company" validate:"omitempty,max=255"`
	Notes   *string `json:"notes"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Company *string `json:"company" validate:"omitempty,max=255"`
	Notes   *string `json:"notes"`
}

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ClientResponseFromEntity(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID.String(),
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Company:   client.Company,
		Notes:     client.Notes,
		Status:    string(client.Status),
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

func ClientResponsesFromEntities(clients []entity.Client) []ClientResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, ClientResponseFromEntity(&clients[i]))
	}
	return responses
}
