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

type InvoiceService struct {
	invoices    repository.InvoiceRepository
	clients     repository.ClientRepository
	emailSender EmailSender
	clock       Clock
}

func NewInvoiceService(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	emailSender EmailSender,
	clock Clock,
) *InvoiceService {
	return &InvoiceService{invoices: invoices, clients: clients, emailSender: emailSender, clock: clock}
}

type CreateInvoiceInput struct {
	ClientID    uuid.UUID
	Number      string
	AmountCents int64
	Currency    string
	Lines       datatypes.JSON
	DueAt       *time.Time
}

func (s *InvoiceService) Create(ctx context.Context, tenantID uuid.UUID, input CreateInvoiceInput) (*entity.Invoice, error) {
	if strings.TrimSpace(input.Number) == "" || input.AmountCents < 0 {
		return nil, ErrInvalidInput
	}

	client, err := s.clients.FindByID(ctx, tenantID, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	number := strings.TrimSpace(input.Number)
	existing, err := s.invoices.FindByNumber(ctx, tenantID, number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrInvoiceNumberExists
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "USD"
	}

	invoice := &entity.Invoice{
		TenantID:    tenantID,
		ClientID:    input.ClientID,
		Number:      number,
		Status:      entity.InvoiceStatusDraft,
		AmountCents: input.AmountCents,
		Currency:    currency,
		Lines:       input.Lines,
		DueAt:       input.DueAt,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) Get(ctx context.Context, tenantID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoices.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

func (s *InvoiceService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.Invoice, error) {
	return s.invoices.List(ctx, tenantID, limit, offset)
}

// Send moves a draft invoice to SENT and emails the client. The email is
// best-effort; a delivery failure does not roll the status back.
func (s *InvoiceService) Send(ctx context.Context, tenantID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != entity.InvoiceStatusDraft {
		return nil, ErrInvoiceTransition
	}

	now := s.clock.Now()
	invoice.Status = entity.InvoiceStatusSent
	invoice.SentAt = &now
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if s.emailSender != nil {
		client, err := s.clients.FindByID(ctx, tenantID, invoice.ClientID)
		if err == nil && client != nil {
			_ = s.emailSender.SendInvoiceEmail(ctx, client.Email, invoice.Number, invoice.AmountCents, invoice.Currency)
		}
	}
	return invoice, nil
}

func (s *InvoiceService) MarkPaid(ctx context.Context, tenantID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != entity.InvoiceStatusSent {
		return nil, ErrInvoiceTransition
	}

	now := s.clock.Now()
	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaidAt = &now
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) Void(ctx context.Context, tenantID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status != entity.InvoiceStatusDraft && invoice.Status != entity.InvoiceStatusSent {
		return nil, ErrInvoiceTransition
	}

	invoice.Status = entity.InvoiceStatusVoid
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}
