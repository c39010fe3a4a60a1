package service

import (
	"context"
	"strings"
	"time"

	"coworka/internal/entity"
	"coworka/internal/repository"

	"github.com/google/uuid"
)

var opportunityTransitions = map[entity.OpportunityStage][]entity.OpportunityStage{
	entity.OpportunityStageProspecting: {entity.OpportunityStageProposal, entity.OpportunityStageLost},
	entity.OpportunityStageProposal:    {entity.OpportunityStageNegotiation, entity.OpportunityStageLost},
	entity.OpportunityStageNegotiation: {entity.OpportunityStageWon, entity.OpportunityStageLost},
	entity.OpportunityStageWon:         {},
	entity.OpportunityStageLost:        {},
}

type OpportunityService struct {
	opportunities repository.OpportunityRepository
	clients       repository.ClientRepository
}

func NewOpportunityService(opportunities repository.OpportunityRepository, clients repository.ClientRepository) *OpportunityService {
	return &OpportunityService{opportunities: opportunities, clients: clients}
}

type CreateOpportunityInput struct {
	ClientID        *uuid.UUID
	Title           string
	ValueCents      int64
	ExpectedCloseAt *time.Time
}

func (s *OpportunityService) Create(ctx context.Context, tenantID uuid.UUID, input CreateOpportunityInput) (*entity.Opportunity, error) {
	if strings.TrimSpace(input.Title) == "" || input.ValueCents < 0 {
		return nil, ErrInvalidInput
	}
	if input.ClientID != nil {
		client, err := s.clients.FindByID(ctx, tenantID, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, ErrClientNotFound
		}
	}

	opportunity := &entity.Opportunity{
		TenantID:        tenantID,
		ClientID:        input.ClientID,
		Title:           strings.TrimSpace(input.Title),
		Stage:           entity.OpportunityStageProspecting,
		ValueCents:      input.ValueCents,
		ExpectedCloseAt: input.ExpectedCloseAt,
	}
	if err := s.opportunities.Create(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

func (s *OpportunityService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Opportunity, error) {
	opportunity, err := s.opportunities.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, ErrOpportunityNotFound
	}
	return opportunity, nil
}

func (s *OpportunityService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Opportunity, error) {
	return s.opportunities.List(ctx, tenantID, limit, offset)
}

func (s *OpportunityService) ChangeStage(ctx context.Context, tenantID, id uuid.UUID, target entity.OpportunityStage) (*entity.Opportunity, error) {
	opportunity, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if !opportunityStageAllowed(opportunity.Stage, target) {
		return nil, ErrOpportunityTransition
	}

	opportunity.Stage = target
	if err := s.opportunities.Update(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

func opportunityStageAllowed(from, to entity.OpportunityStage) bool {
	for _, stage := range opportunityTransitions[from] {
		if stage == to {
			return true
		}
	}
	return false
}
