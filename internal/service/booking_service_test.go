package service

import (
	"context"
	"testing"
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
)

func newTestBookingService(t *testing.T) (*BookingService, *fakeBookingRepo, uuid.UUID, uuid.UUID) {
	t.Helper()
	bookings := newFakeBookingRepo()
	clients := newFakeClientRepo()
	offerings := newFakeServiceOfferingRepo()

	tenantID := uuid.New()
	client := &entity.Client{
		TenantID: tenantID,
		Name:     "Acme Corp",
		Email:    "a@acme.com",
		Status:   entity.ClientStatusActive,
	}
	if err := clients.Create(context.Background(), client); err != nil {
		t.Fatalf("seed client: %v", err)
	}

	svc := NewBookingService(bookings, clients, offerings)
	return svc, bookings, tenantID, client.ID
}

func TestBookingCreateRejectsInvalidWindow(t *testing.T) {
	svc, _, tenantID, clientID := newTestBookingService(t)
	now := time.Now()

	_, err := svc.Create(context.Background(), tenantID, CreateBookingInput{
		ClientID: clientID,
		Resource: "room-1",
		StartsAt: now,
		EndsAt:   now,
	})
	if err != ErrBookingInvalidWindow {
		t.Fatalf("err = %v, want ErrBookingInvalidWindow", err)
	}
}

func TestBookingCreateUnknownClient(t *testing.T) {
	svc, _, tenantID, _ := newTestBookingService(t)
	now := time.Now()

	_, err := svc.Create(context.Background(), tenantID, CreateBookingInput{
		ClientID: uuid.New(),
		Resource: "room-1",
		StartsAt: now,
		EndsAt:   now.Add(time.Hour),
	})
	if err != ErrClientNotFound {
		t.Fatalf("err = %v, want ErrClientNotFound", err)
	}
}

func TestBookingConfirmRejectsOverlap(t *testing.T) {
	svc, _, tenantID, clientID := newTestBookingService(t)
	now := time.Now()

	first, err := svc.Create(context.Background(), tenantID, CreateBookingInput{
		ClientID: clientID,
		Resource: "room-1",
		StartsAt: now,
		EndsAt:   now.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(context.Background(), tenantID, CreateBookingInput{
		ClientID: clientID,
		Resource: "room-1",
		StartsAt: now.Add(time.Hour),
		EndsAt:   now.Add(3 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create overlapping pending: %v", err)
	}

	if _, err := svc.Confirm(context.Background(), tenantID, first.ID); err != nil {
		t.Fatalf("Confirm first: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), tenantID, second.ID); err != ErrBookingOverlap {
		t.Fatalf("err = %v, want ErrBookingOverlap", err)
	}

	// Disjoint window on the same resource still confirms.
	third, err := svc.Create(context.Background(), tenantID, CreateBookingInput{
		ClientID: clientID,
		Resource: "room-1",
		StartsAt: now.Add(2 * time.Hour),
		EndsAt:   now.Add(3 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create disjoint: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), tenantID, third.ID); err != nil {
		t.Fatalf("Confirm disjoint: %v", err)
	}
}

func TestBookingUpdateReschedules(t *testing.T) {
	svc, _, tenantID, clientID := newTestBookingService(t)
	now := time.Now()

	blocker, err := svc.Create(context.Background(), tenantID, CreateBookingInput{
		ClientID: clientID,
		Resource: "room-1",
		StartsAt: now.Add(4 * time.Hour),
		EndsAt:   now.Add(5 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create blocker: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), tenantID, blocker.ID); err != nil {
		t.Fatalf("Confirm blocker: %v", err)
	}

	booking, err := svc.Create(context.Background(), tenantID, CreateBookingInput{
		ClientID: clientID,
		Resource: "room-1",
		StartsAt: now,
		EndsAt:   now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), tenantID, booking.ID); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	// Moving a confirmed booking onto another confirmed slot is rejected.
	start := now.Add(4 * time.Hour)
	end := now.Add(5 * time.Hour)
	if _, err := svc.Update(context.Background(), tenantID, booking.ID, UpdateBookingInput{
		StartsAt: &start,
		EndsAt:   &end,
	}); err != ErrBookingOverlap {
		t.Fatalf("err = %v, want ErrBookingOverlap", err)
	}

	// A free slot works.
	start = now.Add(2 * time.Hour)
	end = now.Add(3 * time.Hour)
	updated, err := svc.Update(context.Background(), tenantID, booking.ID, UpdateBookingInput{
		StartsAt: &start,
		EndsAt:   &end,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.StartsAt.Equal(start) || !updated.EndsAt.Equal(end) {
		t.Errorf("window = %v-%v, want %v-%v", updated.StartsAt, updated.EndsAt, start, end)
	}

	// Inverted windows are rejected regardless of status.
	if _, err := svc.Update(context.Background(), tenantID, booking.ID, UpdateBookingInput{
		StartsAt: &end,
		EndsAt:   &start,
	}); err != ErrBookingInvalidWindow {
		t.Fatalf("err = %v, want ErrBookingInvalidWindow", err)
	}

	// Terminal bookings are immutable.
	if _, err := svc.Complete(context.Background(), tenantID, booking.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	resource := "room-2"
	if _, err := svc.Update(context.Background(), tenantID, booking.ID, UpdateBookingInput{
		Resource: &resource,
	}); err != ErrBookingTransition {
		t.Fatalf("update completed: err = %v, want ErrBookingTransition", err)
	}
}

func TestBookingTransitions(t *testing.T) {
	svc, bookings, tenantID, clientID := newTestBookingService(t)
	now := time.Now()

	booking, err := svc.Create(context.Background(), tenantID, CreateBookingInput{
		ClientID: clientID,
		Resource: "room-1",
		StartsAt: now,
		EndsAt:   now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Complete(context.Background(), tenantID, booking.ID); err != ErrBookingTransition {
		t.Fatalf("complete pending: err = %v, want ErrBookingTransition", err)
	}

	if _, err := svc.Confirm(context.Background(), tenantID, booking.ID); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), tenantID, booking.ID); err != ErrBookingTransition {
		t.Fatalf("confirm twice: err = %v, want ErrBookingTransition", err)
	}

	if _, err := svc.Complete(context.Background(), tenantID, booking.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if bookings.bookings[booking.ID].Status != entity.BookingStatusCompleted {
		t.Errorf("status = %s, want COMPLETED", bookings.bookings[booking.ID].Status)
	}

	if _, err := svc.Cancel(context.Background(), tenantID, booking.ID); err != ErrBookingNotCancelable {
		t.Fatalf("cancel completed: err = %v, want ErrBookingNotCancelable", err)
	}
}
