package service

import (
	"context"
	"strings"
	"time"

	"coworka/internal/entity"
	"coworka/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuotationService struct {
	quotations    repository.QuotationRepository
	opportunities repository.OpportunityRepository
	clock         Clock
}

func NewQuotationService(
	quotations repository.QuotationRepository,
	opportunities repository.OpportunityRepository,
	clock Clock,
) *QuotationService {
	return &QuotationService{quotations: quotations, opportunities: opportunities, clock: clock}
}

type CreateQuotationInput struct {
	OpportunityID uuid.UUID
	Number        string
	Lines         datatypes.JSON
	TotalCents    int64
	ValidUntil    *time.Time
}

func (s *QuotationService) Create(ctx context.Context, tenantID uuid.UUID, input CreateQuotationInput) (*entity.Quotation, error) {
	if strings.TrimSpace(input.Number) == "" || input.TotalCents < 0 {
		return nil, ErrInvalidInput
	}

	opportunity, err := s.opportunities.FindByID(ctx, tenantID, input.OpportunityID)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, ErrOpportunityNotFound
	}

	number := strings.TrimSpace(input.Number)
	existing, err := s.quotations.FindByNumber(ctx, tenantID, number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrQuotationNumberExists
	}

	quotation := &entity.Quotation{
		TenantID:      tenantID,
		OpportunityID: input.OpportunityID,
		Number:        number,
		Status:        entity.QuotationStatusDraft,
		Lines:         input.Lines,
		TotalCents:    input.TotalCents,
		ValidUntil:    input.ValidUntil,
	}
	if err := s.quotations.Create(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

func (s *QuotationService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotations.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, ErrQuotationNotFound
	}
	return s.expireIfDue(ctx, quotation)
}

func (s *QuotationService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Quotation, error) {
	quotations, err := s.quotations.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range quotations {
		updated, err := s.expireIfDue(ctx, &quotations[i])
		if err != nil {
			return nil, err
		}
		quotations[i] = *updated
	}
	return quotations, nil
}

func (s *QuotationService) Send(ctx context.Context, tenantID, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if quotation.Status != entity.QuotationStatusDraft {
		return nil, ErrQuotationTransition
	}

	quotation.Status = entity.QuotationStatusSent
	if err := s.quotations.Update(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

// Accept marks a sent quotation accepted and moves its opportunity to WON.
func (s *QuotationService) Accept(ctx context.Context, tenantID, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if quotation.Status != entity.QuotationStatusSent {
		return nil, ErrQuotationTransition
	}

	quotation.Status = entity.QuotationStatusAccepted
	if err := s.quotations.Update(ctx, quotation); err != nil {
		return nil, err
	}

	opportunity, err := s.opportunities.FindByID(ctx, tenantID, quotation.OpportunityID)
	if err == nil && opportunity != nil && opportunity.Stage != entity.OpportunityStageWon {
		opportunity.Stage = entity.OpportunityStageWon
		_ = s.opportunities.Update(ctx, opportunity)
	}
	return quotation, nil
}

func (s *QuotationService) Reject(ctx context.Context, tenantID, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if quotation.Status != entity.QuotationStatusSent {
		return nil, ErrQuotationTransition
	}

	quotation.Status = entity.QuotationStatusRejected
	if err := s.quotations.Update(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

// expireIfDue applies the validity deadline on read; a SENT quotation past
// its valid_until becomes EXPIRED without needing a background job.
func (s *QuotationService) expireIfDue(ctx context.Context, quotation *entity.Quotation) (*entity.Quotation, error) {
	if quotation.Status != entity.QuotationStatusSent || quotation.ValidUntil == nil {
		return quotation, nil
	}
	if s.clock.Now().Before(*quotation.ValidUntil) {
		return quotation, nil
	}
	quotation.Status = entity.QuotationStatusExpired
	if err := s.quotations.Update(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}
