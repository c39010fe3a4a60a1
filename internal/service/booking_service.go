package service

import (
	"context"
	"strings"
	"time"

	"coworka/internal/entity"
	"coworka/internal/repository"

	"github.com/google/uuid"
)

type BookingService struct {
	bookings  repository.BookingRepository
	clients   repository.ClientRepository
	offerings repository.ServiceOfferingRepository
}

func NewBookingService(
	bookings repository.BookingRepository,
	clients repository.ClientRepository,
	offerings repository.ServiceOfferingRepository,
) *BookingService {
	return &BookingService{bookings: bookings, clients: clients, offerings: offerings}
}

type CreateBookingInput struct {
	ClientID          uuid.UUID
	ServiceOfferingID *uuid.UUID
	Resource          string
	StartsAt          time.Time
	EndsAt            time.Time
	Notes             *string
}

func (s *BookingService) Create(ctx context.Context, tenantID uuid.UUID, input CreateBookingInput) (*entity.Booking, error) {
	if strings.TrimSpace(input.Resource) == "" {
		return nil, ErrInvalidInput
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, ErrBookingInvalidWindow
	}

	client, err := s.clients.FindByID(ctx, tenantID, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	if input.ServiceOfferingID != nil {
		offering, err := s.offerings.FindByID(ctx, tenantID, *input.ServiceOfferingID)
		if err != nil {
			return nil, err
		}
		if offering == nil {
			return nil, ErrServiceOfferingNotFound
		}
	}

	booking := &entity.Booking{
		TenantID:          tenantID,
		ClientID:          input.ClientID,
		ServiceOfferingID: input.ServiceOfferingID,
		Resource:          strings.TrimSpace(input.Resource),
		StartsAt:          input.StartsAt,
		EndsAt:            input.EndsAt,
		Status:            entity.BookingStatusPending,
		Notes:             input.Notes,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

type UpdateBookingInput struct {
	Resource *string
	StartsAt *time.Time
	EndsAt   *time.Time
	Notes    *string
}

// Update reschedules a booking. A confirmed booking keeps its slot guarantee,
// so moving it re-runs the overlap check; terminal bookings are immutable.
func (s *BookingService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateBookingInput) (*entity.Booking, error) {
	booking, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusPending && booking.Status != entity.BookingStatusConfirmed {
		return nil, ErrBookingTransition
	}

	if input.Resource != nil {
		if strings.TrimSpace(*input.Resource) == "" {
			return nil, ErrInvalidInput
		}
		booking.Resource = strings.TrimSpace(*input.Resource)
	}
	if input.StartsAt != nil {
		booking.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		booking.EndsAt = *input.EndsAt
	}
	if input.Notes != nil {
		booking.Notes = input.Notes
	}
	if !booking.EndsAt.After(booking.StartsAt) {
		return nil, ErrBookingInvalidWindow
	}

	if booking.Status == entity.BookingStatusConfirmed {
		conflict, err := s.bookings.FindOverlapping(ctx, tenantID, booking.Resource, booking.StartsAt, booking.EndsAt, &booking.ID)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, ErrBookingOverlap
		}
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Booking, error) {
	return s.bookings.List(ctx, tenantID, limit, offset)
}

// Confirm promotes a pending booking after checking the resource is free.
// Only CONFIRMED bookings block a resource; two pending requests may coexist
// until one of them is confirmed.
func (s *BookingService) Confirm(ctx context.Context, tenantID, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, ErrBookingTransition
	}

	conflict, err := s.bookings.FindOverlapping(ctx, tenantID, booking.Resource, booking.StartsAt, booking.EndsAt, &booking.ID)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, ErrBookingOverlap
	}

	booking.Status = entity.BookingStatusConfirmed
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, tenantID, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusPending && booking.Status != entity.BookingStatusConfirmed {
		return nil, ErrBookingNotCancelable
	}

	booking.Status = entity.BookingStatusCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Complete(ctx context.Context, tenantID, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return nil, ErrBookingTransition
	}

	booking.Status = entity.BookingStatusCompleted
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
