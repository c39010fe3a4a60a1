package service

import (
	"context"
	"time"

	"coworka/internal/entity"
	"coworka/internal/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests.

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// ── Access points ────────────────────────────────────────────────────────────

type fakeAccessPointRepo struct {
	points map[uuid.UUID]*entity.AccessPoint
}

func newFakeAccessPointRepo() *fakeAccessPointRepo {
	return &fakeAccessPointRepo{points: make(map[uuid.UUID]*entity.AccessPoint)}
}

func (r *fakeAccessPointRepo) Create(_ context.Context, point *entity.AccessPoint) error {
	if point.ID == uuid.Nil {
		point.ID = uuid.New()
	}
	copied := *point
	r.points[point.ID] = &copied
	return nil
}

func (r *fakeAccessPointRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.AccessPoint, error) {
	point, ok := r.points[id]
	if !ok || point.TenantID != tenantID {
		return nil, nil
	}
	copied := *point
	return &copied, nil
}

func (r *fakeAccessPointRepo) Update(_ context.Context, point *entity.AccessPoint) error {
	copied := *point
	r.points[point.ID] = &copied
	return nil
}

func (r *fakeAccessPointRepo) List(_ context.Context, tenantID uuid.UUID, _, _ int) ([]entity.AccessPoint, error) {
	var points []entity.AccessPoint
	for _, point := range r.points {
		if point.TenantID == tenantID {
			points = append(points, *point)
		}
	}
	return points, nil
}

func (r *fakeAccessPointRepo) AdjustOccupancy(_ context.Context, id uuid.UUID, delta int) error {
	point, ok := r.points[id]
	if !ok {
		return nil
	}
	point.OccupancyCount += delta
	if point.OccupancyCount < 0 {
		point.OccupancyCount = 0
	}
	return nil
}

func (r *fakeAccessPointRepo) RelockExpired(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, point := range r.points {
		if point.UnlockExpiresAt != nil && !now.Before(*point.UnlockExpiresAt) {
			point.DoorStatus = entity.DoorStatusLocked
			point.UnlockExpiresAt = nil
			count++
		}
	}
	return count, nil
}

func (r *fakeAccessPointRepo) CompleteRestarts(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, point := range r.points {
		if point.RestartCompletesAt != nil && !now.Before(*point.RestartCompletesAt) {
			point.Status = entity.AccessPointStatusActive
			point.RestartCompletesAt = nil
			count++
		}
	}
	return count, nil
}

func (r *fakeAccessPointRepo) OccupancySnapshot(_ context.Context, tenantID uuid.UUID) ([]entity.AccessPoint, error) {
	return r.List(context.Background(), tenantID, 0, 0)
}

// ── Credentials ──────────────────────────────────────────────────────────────

type fakeCredentialRepo struct {
	credentials map[uuid.UUID]*entity.AccessCredential
}

func newFakeCredentialRepo() *fakeCredentialRepo {
	return &fakeCredentialRepo{credentials: make(map[uuid.UUID]*entity.AccessCredential)}
}

func (r *fakeCredentialRepo) Create(_ context.Context, credential *entity.AccessCredential) error {
	if credential.ID == uuid.Nil {
		credential.ID = uuid.New()
	}
	copied := *credential
	r.credentials[credential.ID] = &copied
	return nil
}

func (r *fakeCredentialRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.AccessCredential, error) {
	credential, ok := r.credentials[id]
	if !ok || credential.TenantID != tenantID {
		return nil, nil
	}
	copied := *credential
	return &copied, nil
}

func (r *fakeCredentialRepo) FindActiveByTypeValue(_ context.Context, tenantID uuid.UUID, credentialType entity.CredentialType, value string) (*entity.AccessCredential, error) {
	for _, credential := range r.credentials {
		if credential.TenantID == tenantID && credential.Type == credentialType &&
			credential.Value == value && credential.IsActive {
			copied := *credential
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCredentialRepo) Deactivate(_ context.Context, tenantID, id uuid.UUID) error {
	credential, ok := r.credentials[id]
	if ok && credential.TenantID == tenantID {
		credential.IsActive = false
		now := time.Now()
		credential.DeactivatedAt = &now
	}
	return nil
}

func (r *fakeCredentialRepo) List(_ context.Context, tenantID uuid.UUID, activeOnly bool, _, _ int) ([]entity.AccessCredential, error) {
	var credentials []entity.AccessCredential
	for _, credential := range r.credentials {
		if credential.TenantID != tenantID {
			continue
		}
		if activeOnly && !credential.IsActive {
			continue
		}
		credentials = append(credentials, *credential)
	}
	return credentials, nil
}

// ── Access logs ──────────────────────────────────────────────────────────────

type fakeAccessLogRepo struct {
	logs []entity.AccessLog
}

func newFakeAccessLogRepo() *fakeAccessLogRepo {
	return &fakeAccessLogRepo{}
}

func (r *fakeAccessLogRepo) Create(_ context.Context, log *entity.AccessLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeAccessLogRepo) List(_ context.Context, tenantID uuid.UUID, filter repository.AccessLogFilter) ([]entity.AccessLog, error) {
	var logs []entity.AccessLog
	for _, log := range r.logs {
		if log.TenantID != tenantID {
			continue
		}
		if filter.AccessPointID != nil && log.AccessPointID != *filter.AccessPointID {
			continue
		}
		if filter.EventType != nil && log.EventType != *filter.EventType {
			continue
		}
		if filter.Granted != nil && log.Granted != *filter.Granted {
			continue
		}
		logs = append(logs, log)
	}
	return logs, nil
}

func (r *fakeAccessLogRepo) CountInRange(_ context.Context, tenantID uuid.UUID, _, _ time.Time, granted *bool) (int64, error) {
	var count int64
	for _, log := range r.logs {
		if log.TenantID != tenantID {
			continue
		}
		if granted != nil && log.Granted != *granted {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeAccessLogRepo) CountByEventType(_ context.Context, tenantID uuid.UUID, _, _ time.Time) ([]repository.EventTypeCount, error) {
	counts := make(map[entity.AccessEventType]int64)
	for _, log := range r.logs {
		if log.TenantID == tenantID {
			counts[log.EventType]++
		}
	}
	var result []repository.EventTypeCount
	for eventType, count := range counts {
		result = append(result, repository.EventTypeCount{EventType: eventType, Count: count})
	}
	return result, nil
}

func (r *fakeAccessLogRepo) CountByPoint(_ context.Context, tenantID uuid.UUID, _, _ time.Time, _ int) ([]repository.PointCount, error) {
	counts := make(map[uuid.UUID]int64)
	for _, log := range r.logs {
		if log.TenantID == tenantID {
			counts[log.AccessPointID]++
		}
	}
	var result []repository.PointCount
	for pointID, count := range counts {
		result = append(result, repository.PointCount{AccessPointID: pointID, Count: count})
	}
	return result, nil
}

// ── Alerts ───────────────────────────────────────────────────────────────────

type fakeAlertRepo struct {
	alerts []entity.AccessAlert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{}
}

func (r *fakeAlertRepo) Create(_ context.Context, alert *entity.AccessAlert) error {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	r.alerts = append(r.alerts, *alert)
	return nil
}

func (r *fakeAlertRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.AccessAlert, error) {
	for i := range r.alerts {
		if r.alerts[i].ID == id && r.alerts[i].TenantID == tenantID {
			copied := r.alerts[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertRepo) Resolve(_ context.Context, tenantID, id, resolvedBy uuid.UUID) error {
	for i := range r.alerts {
		if r.alerts[i].ID == id && r.alerts[i].TenantID == tenantID {
			now := time.Now()
			r.alerts[i].ResolvedAt = &now
			r.alerts[i].ResolvedByID = &resolvedBy
		}
	}
	return nil
}

func (r *fakeAlertRepo) List(_ context.Context, tenantID uuid.UUID, unresolvedOnly bool, _, _ int) ([]entity.AccessAlert, error) {
	var alerts []entity.AccessAlert
	for _, alert := range r.alerts {
		if alert.TenantID != tenantID {
			continue
		}
		if unresolvedOnly && alert.ResolvedAt != nil {
			continue
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

func (r *fakeAlertRepo) CountByType(_ context.Context, tenantID uuid.UUID, _, _ time.Time) ([]repository.AlertTypeCount, error) {
	counts := make(map[entity.AlertType]int64)
	for _, alert := range r.alerts {
		if alert.TenantID == tenantID {
			counts[alert.Type]++
		}
	}
	var result []repository.AlertTypeCount
	for alertType, count := range counts {
		result = append(result, repository.AlertTypeCount{Type: alertType, Count: count})
	}
	return result, nil
}

// ── CRM fakes ────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	copied := *client
	r.clients[client.ID] = &copied
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.Client, error) {
	client, ok := r.clients[id]
	if !ok || client.TenantID != tenantID {
		return nil, nil
	}
	copied := *client
	return &copied, nil
}

func (r *fakeClientRepo) FindByEmail(_ context.Context, tenantID uuid.UUID, email string) (*entity.Client, error) {
	for _, client := range r.clients {
		if client.TenantID == tenantID && client.Email == email && client.Status == entity.ClientStatusActive {
			copied := *client
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	copied := *client
	r.clients[client.ID] = &copied
	return nil
}

func (r *fakeClientRepo) List(_ context.Context, tenantID uuid.UUID, _, _ int) ([]entity.Client, error) {
	var clients []entity.Client
	for _, client := range r.clients {
		if client.TenantID == tenantID {
			clients = append(clients, *client)
		}
	}
	return clients, nil
}

type fakeServiceOfferingRepo struct {
	offerings map[uuid.UUID]*entity.ServiceOffering
}

func newFakeServiceOfferingRepo() *fakeServiceOfferingRepo {
	return &fakeServiceOfferingRepo{offerings: make(map[uuid.UUID]*entity.ServiceOffering)}
}

func (r *fakeServiceOfferingRepo) Create(_ context.Context, offering *entity.ServiceOffering) error {
	if offering.ID == uuid.Nil {
		offering.ID = uuid.New()
	}
	copied := *offering
	r.offerings[offering.ID] = &copied
	return nil
}

func (r *fakeServiceOfferingRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.ServiceOffering, error) {
	offering, ok := r.offerings[id]
	if !ok || offering.TenantID != tenantID {
		return nil, nil
	}
	copied := *offering
	return &copied, nil
}

func (r *fakeServiceOfferingRepo) Update(_ context.Context, offering *entity.ServiceOffering) error {
	copied := *offering
	r.offerings[offering.ID] = &copied
	return nil
}

func (r *fakeServiceOfferingRepo) List(_ context.Context, tenantID uuid.UUID, _, _ int) ([]entity.ServiceOffering, error) {
	var offerings []entity.ServiceOffering
	for _, offering := range r.offerings {
		if offering.TenantID == tenantID {
			offerings = append(offerings, *offering)
		}
	}
	return offerings, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok || booking.TenantID != tenantID {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) List(_ context.Context, tenantID uuid.UUID, _, _ int) ([]entity.Booking, error) {
	var bookings []entity.Booking
	for _, booking := range r.bookings {
		if booking.TenantID == tenantID {
			bookings = append(bookings, *booking)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) CountActiveByClient(_ context.Context, tenantID, clientID uuid.UUID) (int64, error) {
	var count int64
	for _, booking := range r.bookings {
		if booking.TenantID == tenantID && booking.ClientID == clientID &&
			(booking.Status == entity.BookingStatusPending || booking.Status == entity.BookingStatusConfirmed) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) FindOverlapping(_ context.Context, tenantID uuid.UUID, resource string, startsAt, endsAt time.Time, excludeID *uuid.UUID) (*entity.Booking, error) {
	for _, booking := range r.bookings {
		if booking.TenantID != tenantID || booking.Resource != resource {
			continue
		}
		if booking.Status != entity.BookingStatusConfirmed {
			continue
		}
		if excludeID != nil && booking.ID == *excludeID {
			continue
		}
		if booking.StartsAt.Before(endsAt) && booking.EndsAt.After(startsAt) {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeMembershipRepo struct {
	memberships map[uuid.UUID]*entity.Membership
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{memberships: make(map[uuid.UUID]*entity.Membership)}
}

func (r *fakeMembershipRepo) Create(_ context.Context, membership *entity.Membership) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}
	copied := *membership
	r.memberships[membership.ID] = &copied
	return nil
}

func (r *fakeMembershipRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.Membership, error) {
	membership, ok := r.memberships[id]
	if !ok || membership.TenantID != tenantID {
		return nil, nil
	}
	copied := *membership
	return &copied, nil
}

func (r *fakeMembershipRepo) Update(_ context.Context, membership *entity.Membership) error {
	copied := *membership
	r.memberships[membership.ID] = &copied
	return nil
}

func (r *fakeMembershipRepo) List(_ context.Context, tenantID uuid.UUID, _, _ int) ([]entity.Membership, error) {
	var memberships []entity.Membership
	for _, membership := range r.memberships {
		if membership.TenantID == tenantID {
			memberships = append(memberships, *membership)
		}
	}
	return memberships, nil
}

func (r *fakeMembershipRepo) CountActiveByClient(_ context.Context, tenantID, clientID uuid.UUID) (int64, error) {
	var count int64
	for _, membership := range r.memberships {
		if membership.TenantID == tenantID && membership.ClientID == clientID &&
			membership.Status == entity.MembershipStatusActive {
			count++
		}
	}
	return count, nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	copied := *invoice
	r.invoices[invoice.ID] = &copied
	return nil
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok || invoice.TenantID != tenantID {
		return nil, nil
	}
	copied := *invoice
	return &copied, nil
}

func (r *fakeInvoiceRepo) FindByNumber(_ context.Context, tenantID uuid.UUID, number string) (*entity.Invoice, error) {
	for _, invoice := range r.invoices {
		if invoice.TenantID == tenantID && invoice.Number == number {
			copied := *invoice
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	copied := *invoice
	r.invoices[invoice.ID] = &copied
	return nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, tenantID uuid.UUID, _, _ int) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	for _, invoice := range r.invoices {
		if invoice.TenantID == tenantID {
			invoices = append(invoices, *invoice)
		}
	}
	return invoices, nil
}

func (r *fakeInvoiceRepo) CountUnpaidByClient(_ context.Context, tenantID, clientID uuid.UUID) (int64, error) {
	var count int64
	for _, invoice := range r.invoices {
		if invoice.TenantID == tenantID && invoice.ClientID == clientID &&
			invoice.Status == entity.InvoiceStatusSent {
			count++
		}
	}
	return count, nil
}

type fakeLeadRepo struct {
	leads map[uuid.UUID]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[uuid.UUID]*entity.Lead)}
}

func (r *fakeLeadRepo) Create(_ context.Context, lead *entity.Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	copied := *lead
	r.leads[lead.ID] = &copied
	return nil
}

func (r *fakeLeadRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.Lead, error) {
	lead, ok := r.leads[id]
	if !ok || lead.TenantID != tenantID {
		return nil, nil
	}
	copied := *lead
	return &copied, nil
}

func (r *fakeLeadRepo) Update(_ context.Context, lead *entity.Lead) error {
	copied := *lead
	r.leads[lead.ID] = &copied
	return nil
}

func (r *fakeLeadRepo) List(_ context.Context, tenantID uuid.UUID, status *entity.LeadStatus, _, _ int) ([]entity.Lead, error) {
	var leads []entity.Lead
	for _, lead := range r.leads {
		if lead.TenantID != tenantID {
			continue
		}
		if status != nil && lead.Status != *status {
			continue
		}
		leads = append(leads, *lead)
	}
	return leads, nil
}

type fakeOpportunityRepo struct {
	opportunities map[uuid.UUID]*entity.Opportunity
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{opportunities: make(map[uuid.UUID]*entity.Opportunity)}
}

func (r *fakeOpportunityRepo) Create(_ context.Context, opportunity *entity.Opportunity) error {
	if opportunity.ID == uuid.Nil {
		opportunity.ID = uuid.New()
	}
	copied := *opportunity
	r.opportunities[opportunity.ID] = &copied
	return nil
}

func (r *fakeOpportunityRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.Opportunity, error) {
	opportunity, ok := r.opportunities[id]
	if !ok || opportunity.TenantID != tenantID {
		return nil, nil
	}
	copied := *opportunity
	return &copied, nil
}

func (r *fakeOpportunityRepo) Update(_ context.Context, opportunity *entity.Opportunity) error {
	copied := *opportunity
	r.opportunities[opportunity.ID] = &copied
	return nil
}

func (r *fakeOpportunityRepo) List(_ context.Context, tenantID uuid.UUID, _, _ int) ([]entity.Opportunity, error) {
	var opportunities []entity.Opportunity
	for _, opportunity := range r.opportunities {
		if opportunity.TenantID == tenantID {
			opportunities = append(opportunities, *opportunity)
		}
	}
	return opportunities, nil
}

type fakeQuotationRepo struct {
	quotations map[uuid.UUID]*entity.Quotation
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{quotations: make(map[uuid.UUID]*entity.Quotation)}
}

func (r *fakeQuotationRepo) Create(_ context.Context, quotation *entity.Quotation) error {
	if quotation.ID == uuid.Nil {
		quotation.ID = uuid.New()
	}
	copied := *quotation
	r.quotations[quotation.ID] = &copied
	return nil
}

func (r *fakeQuotationRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*entity.Quotation, error) {
	quotation, ok := r.quotations[id]
	if !ok || quotation.TenantID != tenantID {
		return nil, nil
	}
	copied := *quotation
	return &copied, nil
}

func (r *fakeQuotationRepo) FindByNumber(_ context.Context, tenantID uuid.UUID, number string) (*entity.Quotation, error) {
	for _, quotation := range r.quotations {
		if quotation.TenantID == tenantID && quotation.Number == number {
			copied := *quotation
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeQuotationRepo) Update(_ context.Context, quotation *entity.Quotation) error {
	copied := *quotation
	r.quotations[quotation.ID] = &copied
	return nil
}

func (r *fakeQuotationRepo) List(_ context.Context, tenantID uuid.UUID, _, _ int) ([]entity.Quotation, error) {
	var quotations []entity.Quotation
	for _, quotation := range r.quotations {
		if quotation.TenantID == tenantID {
			quotations = append(quotations, *quotation)
		}
	}
	return quotations, nil
}
