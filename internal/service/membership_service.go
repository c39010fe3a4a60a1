package service

import (
	"context"
	"strings"
	"time"

	"coworka/internal/entity"
	"coworka/internal/repository"

	"github.com/google/uuid"
)

var membershipTransitions = map[entity.MembershipStatus][]entity.MembershipStatus{
	entity.MembershipStatusActive:    {entity.MembershipStatusPaused, entity.MembershipStatusCancelled},
	entity.MembershipStatusPaused:    {entity.MembershipStatusActive, entity.MembershipStatusCancelled},
	entity.MembershipStatusCancelled: {},
}

type MembershipService struct {
	memberships repository.MembershipRepository
	clients     repository.ClientRepository
	clock       Clock
}

func NewMembershipService(memberships repository.MembershipRepository, clients repository.ClientRepository, clock Clock) *MembershipService {
	return &MembershipService{memberships: memberships, clients: clients, clock: clock}
}

type CreateMembershipInput struct {
	ClientID   uuid.UUID
	Plan       string
	PriceCents int64
	StartsAt   time.Time
	EndsAt     *time.Time
}

func (s *MembershipService) Create(ctx context.Context, tenantID uuid.UUID, input CreateMembershipInput) (*entity.Membership, error) {
	if strings.TrimSpace(input.Plan) == "" || input.PriceCents < 0 {
		return nil, ErrInvalidInput
	}
	if input.EndsAt != nil && !input.EndsAt.After(input.StartsAt) {
		return nil, ErrInvalidInput
	}

	client, err := s.clients.FindByID(ctx, tenantID, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	membership := &entity.Membership{
		TenantID:   tenantID,
		ClientID:   input.ClientID,
		Plan:       strings.TrimSpace(input.Plan),
		PriceCents: input.PriceCents,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
		Status:     entity.MembershipStatusActive,
	}
	if err := s.memberships.Create(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (s *MembershipService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Membership, error) {
	membership, err := s.memberships.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrMembershipNotFound
	}
	return membership, nil
}

func (s *MembershipService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Membership, error) {
	return s.memberships.List(ctx, tenantID, limit, offset)
}

func (s *MembershipService) ChangeStatus(ctx context.Context, tenantID, id uuid.UUID, target entity.MembershipStatus) (*entity.Membership, error) {
	membership, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	allowed := membershipTransitions[membership.Status]
	valid := false
	for _, status := range allowed {
		if status == target {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrMembershipTransition
	}

	membership.Status = target
	if target == entity.MembershipStatusCancelled && membership.EndsAt == nil {
		now := s.clock.Now()
		membership.EndsAt = &now
	}
	if err := s.memberships.Update(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}
