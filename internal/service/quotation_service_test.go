package service

import (
	"context"
	"testing"
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
)

func newTestQuotationService(t *testing.T) (*QuotationService, *fakeQuotationRepo, *fakeOpportunityRepo, *fixedClock, uuid.UUID, uuid.UUID) {
	t.Helper()
	quotations := newFakeQuotationRepo()
	opportunities := newFakeOpportunityRepo()
	clock := &fixedClock{now: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)}

	tenantID := uuid.New()
	opportunity := &entity.Opportunity{
		TenantID: tenantID,
		Title:    "Office expansion",
		Stage:    entity.OpportunityStageProposal,
	}
	if err := opportunities.Create(context.Background(), opportunity); err != nil {
		t.Fatalf("seed opportunity: %v", err)
	}

	svc := NewQuotationService(quotations, opportunities, clock)
	return svc, quotations, opportunities, clock, tenantID, opportunity.ID
}

func TestQuotationNumberUnique(t *testing.T) {
	svc, _, _, _, tenantID, opportunityID := newTestQuotationService(t)

	if _, err := svc.Create(context.Background(), tenantID, CreateQuotationInput{
		OpportunityID: opportunityID,
		Number:        "Q-1",
		TotalCents:    500_00,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.Create(context.Background(), tenantID, CreateQuotationInput{
		OpportunityID: opportunityID,
		Number:        "Q-1",
		TotalCents:    500_00,
	})
	if err != ErrQuotationNumberExists {
		t.Fatalf("err = %v, want ErrQuotationNumberExists", err)
	}
}

func TestQuotationAcceptMovesOpportunityToWon(t *testing.T) {
	svc, _, opportunities, _, tenantID, opportunityID := newTestQuotationService(t)

	quotation, err := svc.Create(context.Background(), tenantID, CreateQuotationInput{
		OpportunityID: opportunityID,
		Number:        "Q-1",
		TotalCents:    500_00,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Accept(context.Background(), tenantID, quotation.ID); err != ErrQuotationTransition {
		t.Fatalf("accept draft: err = %v, want ErrQuotationTransition", err)
	}

	if _, err := svc.Send(context.Background(), tenantID, quotation.ID); err != nil {
		t.Fatalf("Send: %v", err)
	}
	accepted, err := svc.Accept(context.Background(), tenantID, quotation.ID)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if accepted.Status != entity.QuotationStatusAccepted {
		t.Errorf("status = %s, want ACCEPTED", accepted.Status)
	}
	if opportunities.opportunities[opportunityID].Stage != entity.OpportunityStageWon {
		t.Errorf("opportunity stage = %s, want WON", opportunities.opportunities[opportunityID].Stage)
	}
}

func TestQuotationExpiresOnRead(t *testing.T) {
	svc, quotations, _, clock, tenantID, opportunityID := newTestQuotationService(t)

	validUntil := clock.Now().Add(24 * time.Hour)
	quotation, err := svc.Create(context.Background(), tenantID, CreateQuotationInput{
		OpportunityID: opportunityID,
		Number:        "Q-1",
		TotalCents:    500_00,
		ValidUntil:    &validUntil,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Send(context.Background(), tenantID, quotation.ID); err != nil {
		t.Fatalf("Send: %v", err)
	}

	// Still valid one hour before the deadline.
	clock.Advance(23 * time.Hour)
	read, err := svc.Get(context.Background(), tenantID, quotation.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if read.Status != entity.QuotationStatusSent {
		t.Fatalf("status = %s, want SENT", read.Status)
	}

	clock.Advance(2 * time.Hour)
	read, err = svc.Get(context.Background(), tenantID, quotation.ID)
	if err != nil {
		t.Fatalf("Get after deadline: %v", err)
	}
	if read.Status != entity.QuotationStatusExpired {
		t.Errorf("status = %s, want EXPIRED", read.Status)
	}
	if quotations.quotations[quotation.ID].Status != entity.QuotationStatusExpired {
		t.Error("expiry should be persisted")
	}

	if _, err := svc.Accept(context.Background(), tenantID, quotation.ID); err != ErrQuotationTransition {
		t.Errorf("accept expired: err = %v, want ErrQuotationTransition", err)
	}
}

func TestQuotationListAppliesExpiry(t *testing.T) {
	svc, quotations, _, clock, tenantID, opportunityID := newTestQuotationService(t)

	validUntil := clock.Now().Add(time.Hour)
	quotation, err := svc.Create(context.Background(), tenantID, CreateQuotationInput{
		OpportunityID: opportunityID,
		Number:        "Q-1",
		TotalCents:    500_00,
		ValidUntil:    &validUntil,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Send(context.Background(), tenantID, quotation.ID); err != nil {
		t.Fatalf("Send: %v", err)
	}

	clock.Advance(2 * time.Hour)
	listed, err := svc.List(context.Background(), tenantID, 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed = %d quotations, want 1", len(listed))
	}
	if listed[0].Status != entity.QuotationStatusExpired {
		t.Errorf("listed status = %s, want EXPIRED", listed[0].Status)
	}
	if quotations.quotations[quotation.ID].Status != entity.QuotationStatusExpired {
		t.Error("list-side expiry should be persisted")
	}
}
