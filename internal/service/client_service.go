package service

import (
	"context"
	"strings"

	"coworka/internal/entity"
	"coworka/internal/repository"
	"coworka/internal/utils"

	"github.com/google/uuid"
)

type ClientService struct {
	clients     repository.ClientRepository
	bookings    repository.BookingRepository
	memberships repository.MembershipRepository
	invoices    repository.InvoiceRepository
}

func NewClientService(
	clients repository.ClientRepository,
	bookings repository.BookingRepository,
	memberships repository.MembershipRepository,
	invoices repository.InvoiceRepository,
) *ClientService {
	return &ClientService{
		clients:     clients,
		bookings:    bookings,
		memberships: memberships,
		invoices:    invoices,
	}
}

type CreateClientInput struct {
	Name    string
	Email   string
	Phone   *string
	Company *string
	Notes   *string
}

type UpdateClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Notes   *string
}

func (s *ClientService) Create(ctx context.Context, tenantID uuid.UUID, input CreateClientInput) (*entity.Client, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.clients.FindByEmail(ctx, tenantID, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrClientEmailExists
	}

	client := &entity.Client{
		TenantID: tenantID,
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Phone:    input.Phone,
		Company:  input.Company,
		Notes:    input.Notes,
		Status:   entity.ClientStatusActive,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clients.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Client, error) {
	return s.clients.List(ctx, tenantID, limit, offset)
}

func (s *ClientService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateClientInput) (*entity.Client, error) {
	client, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := utils.NormalizeEmail(*input.Email)
		if email != client.Email {
			existing, err := s.clients.FindByEmail(ctx, tenantID, email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != client.ID {
				return nil, ErrClientEmailExists
			}
			client.Email = email
		}
	}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrInvalidInput
		}
		client.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Company != nil {
		client.Company = input.Company
	}
	if input.Notes != nil {
		client.Notes = input.Notes
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Deactivate is the delete operation; clients are never hard-deleted.
// A client with active bookings, an active membership, or unpaid invoices
// cannot be deactivated.
func (s *ClientService) Deactivate(ctx context.Context, tenantID, id uuid.UUID) error {
	client, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return err
	}

	activeBookings, err := s.bookings.CountActiveByClient(ctx, tenantID, client.ID)
	if err != nil {
		return err
	}
	if activeBookings > 0 {
		return ErrClientHasActiveBookings
	}

	activeMemberships, err := s.memberships.CountActiveByClient(ctx, tenantID, client.ID)
	if err != nil {
		return err
	}
	if activeMemberships > 0 {
		return ErrClientHasActiveMembership
	}

	unpaidInvoices, err := s.invoices.CountUnpaidByClient(ctx, tenantID, client.ID)
	if err != nil {
		return err
	}
	if unpaidInvoices > 0 {
		return ErrClientHasUnpaidInvoices
	}

	client.Status = entity.ClientStatusInactive
	return s.clients.Update(ctx, client)
}
