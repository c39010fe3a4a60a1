package dto

import (
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ClientID          uuid.UUID  `json:"client_id" validate:"required"`
	ServiceOfferingID *uuid.UUID `json:"service_offering_id"`
	Resource          string     `json:"resource" validate:"required,min=1"`
	StartsAt          time.Time  `json:"starts_at" validate:"required"`
	EndsAt            time.Time  `json:"ends_at" validate:"required"`
	Notes             *string    `json:"notes"`
}

type UpdateBookingRequest struct {
	Resource *string    `json:"resource" validate:"omitempty,min=1"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Notes    *string    `json:"notes"`
}

type BookingResponse struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"client_id"`
	ServiceOfferingID *string   `json:"service_offering_id,omitempty"`
	Resource          string    `json:"resource"`
	StartsAt          time.Time `json:"starts_at"`
	EndsAt            time.Time `json:"ends_at"`
	Status            string    `json:"status"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func BookingResponseFromEntity(booking *entity.Booking) BookingResponse {
	response := BookingResponse{
		ID:        booking.ID.String(),
		ClientID:  booking.ClientID.String(),
		Resource:  booking.Resource,
		StartsAt:  booking.StartsAt,
		EndsAt:    booking.EndsAt,
		Status:    string(booking.Status),
		Notes:     booking.Notes,
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}
	if booking.ServiceOfferingID != nil {
		offering := booking.ServiceOfferingID.String()
		response.ServiceOfferingID = &offering
	}
	return response
}

func BookingResponsesFromEntities(bookings []entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, BookingResponseFromEntity(&bookings[i]))
	}
	return responses
}
