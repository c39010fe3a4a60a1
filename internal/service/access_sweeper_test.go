package service

import (
	"context"
	"testing"
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func TestSweeperFinishesExpiredDeadlines(t *testing.T) {
	points := newFakeAccessPointRepo()
	clock := &fixedClock{now: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	expired := clock.Now().Add(-time.Second)
	pending := clock.Now().Add(time.Minute)
	tenantID := uuid.New()

	unlocked := &entity.AccessPoint{
		TenantID:        tenantID,
		Name:            "front door",
		Type:            entity.AccessPointTypeDoor,
		Status:          entity.AccessPointStatusActive,
		DoorStatus:      entity.DoorStatusUnlocked,
		UnlockExpiresAt: &expired,
	}
	restarting := &entity.AccessPoint{
		TenantID:           tenantID,
		Name:               "gate",
		Type:               entity.AccessPointTypeGate,
		Status:             entity.AccessPointStatusMaintenance,
		DoorStatus:         entity.DoorStatusLocked,
		RestartCompletesAt: &expired,
	}
	untouched := &entity.AccessPoint{
		TenantID:        tenantID,
		Name:            "side door",
		Type:            entity.AccessPointTypeDoor,
		Status:          entity.AccessPointStatusActive,
		DoorStatus:      entity.DoorStatusUnlocked,
		UnlockExpiresAt: &pending,
	}
	for _, point := range []*entity.AccessPoint{unlocked, restarting, untouched} {
		if err := points.Create(context.Background(), point); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	sweeper := NewAccessSweeper(points, clock, logger, time.Second)
	sweeper.sweep(context.Background())

	if got := points.points[unlocked.ID]; got.DoorStatus != entity.DoorStatusLocked || got.UnlockExpiresAt != nil {
		t.Errorf("expired unlock not relocked: %s, deadline %v", got.DoorStatus, got.UnlockExpiresAt)
	}
	if got := points.points[restarting.ID]; got.Status != entity.AccessPointStatusActive || got.RestartCompletesAt != nil {
		t.Errorf("restart not completed: %s, deadline %v", got.Status, got.RestartCompletesAt)
	}
	if got := points.points[untouched.ID]; got.DoorStatus != entity.DoorStatusUnlocked || got.UnlockExpiresAt == nil {
		t.Errorf("future deadline should not be swept: %s", got.DoorStatus)
	}
}

func TestSweeperStartStop(t *testing.T) {
	points := newFakeAccessPointRepo()
	clock := &fixedClock{now: time.Now()}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	sweeper := NewAccessSweeper(points, clock, logger, 10*time.Millisecond)
	sweeper.Start(context.Background())
	sweeper.Stop()

	select {
	case <-sweeper.done:
	case <-time.After(time.Second):
		t.Fatal("sweeper loop did not exit")
	}
}
