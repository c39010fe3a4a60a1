package service

import (
	"context"
	"strings"

	"coworka/internal/entity"
	"coworka/internal/repository"

	"github.com/google/uuid"
)

type VisitorService struct {
	visitors repository.VisitorRepository
	clients  repository.ClientRepository
	clock    Clock
}

func NewVisitorService(visitors repository.VisitorRepository, clients repository.ClientRepository, clock Clock) *VisitorService {
	return &VisitorService{visitors: visitors, clients: clients, clock: clock}
}

type CreateVisitorInput struct {
	Name         string
	Email        *string
	HostClientID *uuid.UUID
}

func (s *VisitorService) Create(ctx context.Context, tenantID uuid.UUID, input CreateVisitorInput) (*entity.Visitor, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}
	if input.HostClientID != nil {
		host, err := s.clients.FindByID(ctx, tenantID, *input.HostClientID)
		if err != nil {
			return nil, err
		}
		if host == nil {
			return nil, ErrClientNotFound
		}
	}

	visitor := &entity.Visitor{
		TenantID:     tenantID,
		Name:         strings.TrimSpace(input.Name),
		Email:        input.Email,
		HostClientID: input.HostClientID,
	}
	if err := s.visitors.Create(ctx, visitor); err != nil {
		return nil, err
	}
	return visitor, nil
}

func (s *VisitorService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Visitor, error) {
	visitor, err := s.visitors.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if visitor == nil {
		return nil, ErrVisitorNotFound
	}
	return visitor, nil
}

func (s *VisitorService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Visitor, error) {
	return s.visitors.List(ctx, tenantID, limit, offset)
}

func (s *VisitorService) CheckIn(ctx context.Context, tenantID, id uuid.UUID) (*entity.Visitor, error) {
	visitor, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if visitor.CheckedInAt != nil && visitor.CheckedOutAt == nil {
		return nil, ErrVisitorCheckedIn
	}

	now := s.clock.Now()
	visitor.CheckedInAt = &now
	visitor.CheckedOutAt = nil
	if err := s.visitors.Update(ctx, visitor); err != nil {
		return nil, err
	}
	return visitor, nil
}

func (s *VisitorService) CheckOut(ctx context.Context, tenantID, id uuid.UUID) (*entity.Visitor, error) {
	visitor, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if visitor.CheckedInAt == nil || visitor.CheckedOutAt != nil {
		return nil, ErrVisitorNotCheckedIn
	}

	now := s.clock.Now()
	visitor.CheckedOutAt = &now
	if err := s.visitors.Update(ctx, visitor); err != nil {
		return nil, err
	}
	return visitor, nil
}
