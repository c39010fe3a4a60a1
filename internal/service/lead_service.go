package service

import (
	"context"
	"strings"

	"coworka/internal/entity"
	"coworka/internal/repository"
	"coworka/internal/utils"

	"github.com/google/uuid"
)

var leadTransitions = map[entity.LeadStatus][]entity.LeadStatus{
	entity.LeadStatusNew:       {entity.LeadStatusContacted, entity.LeadStatusLost},
	entity.LeadStatusContacted: {entity.LeadStatusQualified, entity.LeadStatusLost},
	entity.LeadStatusQualified: {entity.LeadStatusConverted, entity.LeadStatusLost},
	entity.LeadStatusConverted: {},
	entity.LeadStatusLost:      {entity.LeadStatusContacted},
}

type LeadService struct {
	leads         repository.LeadRepository
	clients       repository.ClientRepository
	opportunities repository.OpportunityRepository
}

func NewLeadService(
	leads repository.LeadRepository,
	clients repository.ClientRepository,
	opportunities repository.OpportunityRepository,
) *LeadService {
	return &LeadService{leads: leads, clients: clients, opportunities: opportunities}
}

type CreateLeadInput struct {
	Name   string
	Email  string
	Phone  *string
	Source *string
}

func (s *LeadService) Create(ctx context.Context, tenantID uuid.UUID, input CreateLeadInput) (*entity.Lead, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, ErrInvalidInput
	}

	lead := &entity.Lead{
		TenantID: tenantID,
		Name:     strings.TrimSpace(input.Name),
		Email:    utils.NormalizeEmail(input.Email),
		Phone:    input.Phone,
		Source:   input.Source,
		Status:   entity.LeadStatusNew,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leads.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

func (s *LeadService) List(ctx context.Context, tenantID uuid.UUID, status *entity.LeadStatus, limit, offset int) ([]entity.Lead, error) {
	return s.leads.List(ctx, tenantID, status, limit, offset)
}

func (s *LeadService) ChangeStatus(ctx context.Context, tenantID, id uuid.UUID, target entity.LeadStatus) (*entity.Lead, error) {
	lead, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if target == entity.LeadStatusConverted {
		// Conversion goes through Convert so the client and opportunity are
		// created alongside the status change.
		return nil, ErrLeadTransition
	}
	if !leadTransitionAllowed(lead.Status, target) {
		return nil, ErrLeadTransition
	}

	lead.Status = target
	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

type ConvertLeadResult struct {
	Lead        *entity.Lead
	Client      *entity.Client
	Opportunity *entity.Opportunity
}

// Convert turns a qualified lead into a client plus an opportunity. If an
// active client already has the lead's email, that client is reused instead
// of failing the conversion.
func (s *LeadService) Convert(ctx context.Context, tenantID, id uuid.UUID, opportunityTitle string, valueCents int64) (*ConvertLeadResult, error) {
	lead, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if lead.Status != entity.LeadStatusQualified {
		return nil, ErrLeadNotQualified
	}
	if strings.TrimSpace(opportunityTitle) == "" || valueCents < 0 {
		return nil, ErrInvalidInput
	}

	client, err := s.clients.FindByEmail(ctx, tenantID, lead.Email)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &entity.Client{
			TenantID: tenantID,
			Name:     lead.Name,
			Email:    lead.Email,
			Phone:    lead.Phone,
			Status:   entity.ClientStatusActive,
		}
		if err := s.clients.Create(ctx, client); err != nil {
			return nil, err
		}
	}

	opportunity := &entity.Opportunity{
		TenantID:   tenantID,
		LeadID:     &lead.ID,
		ClientID:   &client.ID,
		Title:      strings.TrimSpace(opportunityTitle),
		Stage:      entity.OpportunityStageProspecting,
		ValueCents: valueCents,
	}
	if err := s.opportunities.Create(ctx, opportunity); err != nil {
		return nil, err
	}

	lead.Status = entity.LeadStatusConverted
	lead.ConvertedClientID = &client.ID
	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	return &ConvertLeadResult{Lead: lead, Client: client, Opportunity: opportunity}, nil
}

func leadTransitionAllowed(from, to entity.LeadStatus) bool {
	for _, status := range leadTransitions[from] {
		if status == to {
			return true
		}
	}
	return false
}
