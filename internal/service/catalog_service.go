package service

import (
	"context"
	"strings"

	"coworka/internal/entity"
	"coworka/internal/repository"

	"github.com/google/uuid"
)

// CatalogService manages the tenant's bookable service offerings (desks,
// meeting rooms, day passes, add-ons).
type CatalogService struct {
	offerings repository.ServiceOfferingRepository
}

func NewCatalogService(offerings repository.ServiceOfferingRepository) *CatalogService {
	return &CatalogService{offerings: offerings}
}

type CreateOfferingInput struct {
	Name       string
	Category   string
	PriceCents int64
	Currency   string
}

type UpdateOfferingInput struct {
	Name       *string
	Category   *string
	PriceCents *int64
	Currency   *string
	IsActive   *bool
}

func (s *CatalogService) Create(ctx context.Context, tenantID uuid.UUID, input CreateOfferingInput) (*entity.ServiceOffering, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Category) == "" || input.PriceCents < 0 {
		return nil, ErrInvalidInput
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "USD"
	}

	offering := &entity.ServiceOffering{
		TenantID:   tenantID,
		Name:       strings.TrimSpace(input.Name),
		Category:   strings.TrimSpace(input.Category),
		PriceCents: input.PriceCents,
		Currency:   currency,
		IsActive:   true,
	}
	if err := s.offerings.Create(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *CatalogService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.ServiceOffering, error) {
	offering, err := s.offerings.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, ErrServiceOfferingNotFound
	}
	return offering, nil
}

func (s *CatalogService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.ServiceOffering, error) {
	return s.offerings.List(ctx, tenantID, limit, offset)
}

func (s *CatalogService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateOfferingInput) (*entity.ServiceOffering, error) {
	offering, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrInvalidInput
		}
		offering.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		offering.Category = strings.TrimSpace(*input.Category)
	}
	if input.PriceCents != nil {
		if *input.PriceCents < 0 {
			return nil, ErrInvalidInput
		}
		offering.PriceCents = *input.PriceCents
	}
	if input.Currency != nil {
		offering.Currency = strings.ToUpper(strings.TrimSpace(*input.Currency))
	}
	if input.IsActive != nil {
		offering.IsActive = *input.IsActive
	}

	if err := s.offerings.Update(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}
