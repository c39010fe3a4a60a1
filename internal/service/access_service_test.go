package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"coworka/internal/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

func newTestAccessService() (*AccessService, *fakeAccessPointRepo, *fakeCredentialRepo, *fakeAccessLogRepo, *fakeAlertRepo, *fixedClock) {
	points := newFakeAccessPointRepo()
	credentials := newFakeCredentialRepo()
	logs := newFakeAccessLogRepo()
	alerts := newFakeAlertRepo()
	clock := &fixedClock{now: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)} // a Monday

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	svc := NewAccessService(points, credentials, logs, alerts, clock, logger)
	return svc, points, credentials, logs, alerts, clock
}

func seedPoint(t *testing.T, svc *AccessService, tenantID uuid.UUID, config datatypes.JSON) *entity.AccessPoint {
	t.Helper()
	point, err := svc.CreatePoint(context.Background(), tenantID, CreateAccessPointInput{
		Name:   "main door",
		Type:   entity.AccessPointTypeDoor,
		Config: config,
	})
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}
	return point
}

func seedCredential(t *testing.T, svc *AccessService, tenantID uuid.UUID, value string, schedule datatypes.JSON) *entity.AccessCredential {
	t.Helper()
	userID := uuid.New()
	credential, err := svc.IssueCredential(context.Background(), tenantID, uuid.New(), IssueCredentialInput{
		UserID:   &userID,
		Type:     entity.CredentialTypeBadge,
		Value:    value,
		Schedule: schedule,
	})
	if err != nil {
		t.Fatalf("IssueCredential: %v", err)
	}
	return credential
}

// ── Point lifecycle ──────────────────────────────────────────────────────────

func TestCreatePointDefaults(t *testing.T) {
	svc, _, _, _, _, _ := newTestAccessService()
	tenantID := uuid.New()

	point := seedPoint(t, svc, tenantID, nil)
	if point.Status != entity.AccessPointStatusActive {
		t.Errorf("status = %s, want ACTIVE", point.Status)
	}
	if point.DoorStatus != entity.DoorStatusLocked {
		t.Errorf("door status = %s, want LOCKED", point.DoorStatus)
	}
}

func TestCreatePointRejectsBadType(t *testing.T) {
	svc, _, _, _, _, _ := newTestAccessService()

	_, err := svc.CreatePoint(context.Background(), uuid.New(), CreateAccessPointInput{
		Name: "x",
		Type: entity.AccessPointType("WINDOW"),
	})
	if err != ErrInvalidInput {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetPointScopedToTenant(t *testing.T) {
	svc, _, _, _, _, _ := newTestAccessService()
	point := seedPoint(t, svc, uuid.New(), nil)

	_, err := svc.GetPoint(context.Background(), uuid.New(), point.ID)
	if err != ErrAccessPointNotFound {
		t.Fatalf("err = %v, want ErrAccessPointNotFound", err)
	}
}

// ── Control actions ──────────────────────────────────────────────────────────

func TestControlUnlockThenLock(t *testing.T) {
	svc, _, _, _, _, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	updated, err := svc.Control(context.Background(), tenantID, point.ID, ControlActionUnlock)
	if err != nil {
		t.Fatalf("UNLOCK: %v", err)
	}
	if updated.DoorStatus != entity.DoorStatusUnlocked {
		t.Errorf("door status = %s, want UNLOCKED", updated.DoorStatus)
	}

	updated, err = svc.Control(context.Background(), tenantID, point.ID, ControlActionLock)
	if err != nil {
		t.Fatalf("LOCK: %v", err)
	}
	if updated.DoorStatus != entity.DoorStatusLocked {
		t.Errorf("door status = %s, want LOCKED", updated.DoorStatus)
	}
}

func TestControlUnlockRejectedDuringMaintenance(t *testing.T) {
	svc, points, _, _, _, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	stored := points.points[point.ID]
	stored.Status = entity.AccessPointStatusMaintenance

	_, err := svc.Control(context.Background(), tenantID, point.ID, ControlActionUnlock)
	if err != ErrControlNotAllowed {
		t.Fatalf("err = %v, want ErrControlNotAllowed", err)
	}
}

func TestControlUnknownAction(t *testing.T) {
	svc, _, _, _, _, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	_, err := svc.Control(context.Background(), tenantID, point.ID, ControlAction("EXPLODE"))
	if err != ErrInvalidControlAction {
		t.Fatalf("err = %v, want ErrInvalidControlAction", err)
	}
}

func TestControlResetClearsStateAndOccupancy(t *testing.T) {
	svc, points, _, _, _, clock := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	stored := points.points[point.ID]
	stored.Status = entity.AccessPointStatusEmergencyOpen
	stored.DoorStatus = entity.DoorStatusOpen
	stored.OccupancyCount = 7
	deadline := clock.Now().Add(time.Hour)
	stored.UnlockExpiresAt = &deadline

	updated, err := svc.Control(context.Background(), tenantID, point.ID, ControlActionReset)
	if err != nil {
		t.Fatalf("RESET: %v", err)
	}
	if updated.Status != entity.AccessPointStatusActive || updated.DoorStatus != entity.DoorStatusLocked {
		t.Errorf("state = %s/%s, want ACTIVE/LOCKED", updated.Status, updated.DoorStatus)
	}
	if updated.OccupancyCount != 0 {
		t.Errorf("occupancy = %d, want 0", updated.OccupancyCount)
	}
	if updated.UnlockExpiresAt != nil || updated.RestartCompletesAt != nil {
		t.Error("deadlines should be cleared on RESET")
	}
}

func TestControlRestartSetsDeadlineAndCompletesOnRead(t *testing.T) {
	svc, _, _, _, _, clock := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	updated, err := svc.Control(context.Background(), tenantID, point.ID, ControlActionRestart)
	if err != nil {
		t.Fatalf("RESTART: %v", err)
	}
	if updated.Status != entity.AccessPointStatusMaintenance {
		t.Errorf("status = %s, want MAINTENANCE", updated.Status)
	}
	if updated.RestartCompletesAt == nil {
		t.Fatal("RestartCompletesAt not set")
	}
	want := clock.Now().Add(svc.RestartWindow)
	if !updated.RestartCompletesAt.Equal(want) {
		t.Errorf("RestartCompletesAt = %v, want %v", updated.RestartCompletesAt, want)
	}

	clock.Advance(svc.RestartWindow + time.Second)
	read, err := svc.GetPoint(context.Background(), tenantID, point.ID)
	if err != nil {
		t.Fatalf("GetPoint: %v", err)
	}
	if read.Status != entity.AccessPointStatusActive {
		t.Errorf("status after restart window = %s, want ACTIVE", read.Status)
	}
	if read.RestartCompletesAt != nil {
		t.Error("RestartCompletesAt should be cleared after the window elapses")
	}
}

// ── Credentials ──────────────────────────────────────────────────────────────

func TestIssueCredentialRequiresOneSubject(t *testing.T) {
	svc, _, _, _, _, _ := newTestAccessService()
	tenantID := uuid.New()
	userID := uuid.New()
	visitorID := uuid.New()

	_, err := svc.IssueCredential(context.Background(), tenantID, uuid.New(), IssueCredentialInput{
		Type:  entity.CredentialTypeBadge,
		Value: "B-1",
	})
	if err != ErrCredentialSubject {
		t.Fatalf("neither subject: err = %v, want ErrCredentialSubject", err)
	}

	_, err = svc.IssueCredential(context.Background(), tenantID, uuid.New(), IssueCredentialInput{
		UserID:    &userID,
		VisitorID: &visitorID,
		Type:      entity.CredentialTypeBadge,
		Value:     "B-1",
	})
	if err != ErrCredentialSubject {
		t.Fatalf("both subjects: err = %v, want ErrCredentialSubject", err)
	}
}

func TestIssueCredentialRejectsActiveDuplicate(t *testing.T) {
	svc, _, _, _, _, _ := newTestAccessService()
	tenantID := uuid.New()
	seedCredential(t, svc, tenantID, "B-42", nil)

	userID := uuid.New()
	_, err := svc.IssueCredential(context.Background(), tenantID, uuid.New(), IssueCredentialInput{
		UserID: &userID,
		Type:   entity.CredentialTypeBadge,
		Value:  "B-42",
	})
	if err != ErrCredentialExists {
		t.Fatalf("err = %v, want ErrCredentialExists", err)
	}
}

func TestIssueCredentialAllowsReuseAfterDeactivation(t *testing.T) {
	svc, _, _, _, _, _ := newTestAccessService()
	tenantID := uuid.New()
	credential := seedCredential(t, svc, tenantID, "B-42", nil)

	if err := svc.DeactivateCredential(context.Background(), tenantID, credential.ID); err != nil {
		t.Fatalf("DeactivateCredential: %v", err)
	}
	seedCredential(t, svc, tenantID, "B-42", nil)
}

// ── Grant decisions ──────────────────────────────────────────────────────────

func TestGrantAccessGrantedEntry(t *testing.T) {
	svc, points, _, logs, alerts, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)
	credential := seedCredential(t, svc, tenantID, "B-1", nil)

	decision, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "B-1",
		EventType:       entity.AccessEventEntry,
	})
	if err != nil {
		t.Fatalf("GrantAccess: %v", err)
	}
	if !decision.Granted || decision.Reason != ReasonGranted {
		t.Fatalf("decision = %v/%s, want granted", decision.Granted, decision.Reason)
	}
	if decision.Log.CredentialID == nil || *decision.Log.CredentialID != credential.ID {
		t.Error("log should reference the credential")
	}
	if points.points[point.ID].OccupancyCount != 1 {
		t.Errorf("occupancy = %d, want 1", points.points[point.ID].OccupancyCount)
	}
	if len(logs.logs) != 1 {
		t.Errorf("log count = %d, want 1", len(logs.logs))
	}
	if len(alerts.alerts) != 0 {
		t.Errorf("alert count = %d, want 0", len(alerts.alerts))
	}
}

func TestGrantAccessUnknownCredential(t *testing.T) {
	svc, _, _, logs, alerts, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	decision, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "nope",
		EventType:       entity.AccessEventEntry,
	})
	if err != nil {
		t.Fatalf("GrantAccess: %v", err)
	}
	if decision.Granted || decision.Reason != ReasonUnknownCredential {
		t.Fatalf("decision = %v/%s, want denied unknown_credential", decision.Granted, decision.Reason)
	}
	if len(logs.logs) != 1 || logs.logs[0].Granted {
		t.Error("denied attempt should still append a log")
	}
	if len(alerts.alerts) != 1 || alerts.alerts[0].Type != entity.AlertTypeDeniedAccess {
		t.Fatalf("want one DENIED_ACCESS alert, got %+v", alerts.alerts)
	}
	if alerts.alerts[0].Severity != entity.AlertSeverityLow {
		t.Errorf("severity = %s, want LOW", alerts.alerts[0].Severity)
	}
}

func TestGrantAccessEmergencyOpenAlwaysGrants(t *testing.T) {
	svc, points, _, _, _, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)
	points.points[point.ID].Status = entity.AccessPointStatusEmergencyOpen

	decision, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "does-not-exist",
		EventType:       entity.AccessEventEntry,
	})
	if err != nil {
		t.Fatalf("GrantAccess: %v", err)
	}
	if !decision.Granted || decision.Reason != ReasonEmergencyOpen {
		t.Fatalf("decision = %v/%s, want granted emergency_open", decision.Granted, decision.Reason)
	}
}

func TestGrantAccessMaintenanceDenies(t *testing.T) {
	svc, points, _, _, _, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)
	seedCredential(t, svc, tenantID, "B-1", nil)
	points.points[point.ID].Status = entity.AccessPointStatusMaintenance

	decision, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "B-1",
		EventType:       entity.AccessEventEntry,
	})
	if err != nil {
		t.Fatalf("GrantAccess: %v", err)
	}
	if decision.Granted || decision.Reason != ReasonMaintenance {
		t.Fatalf("decision = %v/%s, want denied maintenance_mode", decision.Granted, decision.Reason)
	}
}

func TestGrantAccessOutsideSchedule(t *testing.T) {
	svc, _, _, _, _, clock := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)
	// weekdays 09:00-17:00; clock starts Monday 10:00
	schedule := datatypes.JSON(`{"days":[1,2,3,4,5],"start":"09:00","end":"17:00"}`)
	seedCredential(t, svc, tenantID, "B-1", schedule)

	decision, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "B-1",
		EventType:       entity.AccessEventEntry,
	})
	if err != nil {
		t.Fatalf("GrantAccess: %v", err)
	}
	if !decision.Granted {
		t.Fatalf("in-window attempt denied: %s", decision.Reason)
	}

	clock.Advance(8 * time.Hour) // 18:00, past the window
	decision, err = svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "B-1",
		EventType:       entity.AccessEventEntry,
	})
	if err != nil {
		t.Fatalf("GrantAccess: %v", err)
	}
	if decision.Granted || decision.Reason != ReasonOutsideSchedule {
		t.Fatalf("decision = %v/%s, want denied outside_schedule", decision.Granted, decision.Reason)
	}
}

func TestGrantAccessOccupancyLimit(t *testing.T) {
	svc, points, _, _, alerts, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, datatypes.JSON(`{"occupancy_limit":2}`))
	seedCredential(t, svc, tenantID, "B-1", nil)
	points.points[point.ID].OccupancyCount = 2

	decision, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "B-1",
		EventType:       entity.AccessEventEntry,
	})
	if err != nil {
		t.Fatalf("GrantAccess: %v", err)
	}
	if decision.Granted || decision.Reason != ReasonOccupancyLimit {
		t.Fatalf("decision = %v/%s, want denied occupancy_limit", decision.Granted, decision.Reason)
	}
	if len(alerts.alerts) != 1 || alerts.alerts[0].Type != entity.AlertTypeOccupancyLimit {
		t.Fatalf("want one OCCUPANCY_LIMIT alert, got %+v", alerts.alerts)
	}

	// An exit at the limit is still allowed.
	decision, err = svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "B-1",
		EventType:       entity.AccessEventExit,
	})
	if err != nil {
		t.Fatalf("GrantAccess exit: %v", err)
	}
	if !decision.Granted {
		t.Fatalf("exit at limit denied: %s", decision.Reason)
	}
	if points.points[point.ID].OccupancyCount != 1 {
		t.Errorf("occupancy after exit = %d, want 1", points.points[point.ID].OccupancyCount)
	}
}

func TestGrantAccessTemporaryUnlockAndRelock(t *testing.T) {
	svc, points, _, _, _, clock := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)
	seedCredential(t, svc, tenantID, "B-1", nil)

	decision, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "B-1",
		EventType:       entity.AccessEventEntry,
		DurationSeconds: 30,
	})
	if err != nil {
		t.Fatalf("GrantAccess: %v", err)
	}
	if decision.Point.DoorStatus != entity.DoorStatusUnlocked {
		t.Fatalf("door status = %s, want UNLOCKED", decision.Point.DoorStatus)
	}
	stored := points.points[point.ID]
	if stored.UnlockExpiresAt == nil {
		t.Fatal("UnlockExpiresAt not persisted")
	}
	want := clock.Now().Add(30 * time.Second)
	if !stored.UnlockExpiresAt.Equal(want) {
		t.Errorf("UnlockExpiresAt = %v, want %v", stored.UnlockExpiresAt, want)
	}

	clock.Advance(31 * time.Second)
	read, err := svc.GetPoint(context.Background(), tenantID, point.ID)
	if err != nil {
		t.Fatalf("GetPoint: %v", err)
	}
	if read.DoorStatus != entity.DoorStatusLocked {
		t.Errorf("door status after expiry = %s, want LOCKED", read.DoorStatus)
	}
	if read.UnlockExpiresAt != nil {
		t.Error("UnlockExpiresAt should be cleared after expiry")
	}
}

// ── Event recording ──────────────────────────────────────────────────────────

func TestRecordEventForcedRaisesCriticalAlert(t *testing.T) {
	svc, _, _, _, alerts, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	_, err := svc.RecordEvent(context.Background(), tenantID, RecordEventInput{
		AccessPointID: point.ID,
		EventType:     entity.AccessEventForced,
		Granted:       false,
	})
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if len(alerts.alerts) != 1 {
		t.Fatalf("alert count = %d, want 1", len(alerts.alerts))
	}
	alert := alerts.alerts[0]
	if alert.Type != entity.AlertTypeForcedEntry || alert.Severity != entity.AlertSeverityCritical {
		t.Errorf("alert = %s/%s, want FORCED_ENTRY/CRITICAL", alert.Type, alert.Severity)
	}
}

func TestRecordEventTailgating(t *testing.T) {
	svc, points, _, _, alerts, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)
	points.points[point.ID].DoorStatus = entity.DoorStatusUnlocked

	_, err := svc.RecordEvent(context.Background(), tenantID, RecordEventInput{
		AccessPointID: point.ID,
		EventType:     entity.AccessEventEntry,
		Granted:       true,
	})
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if len(alerts.alerts) != 1 {
		t.Fatalf("alert count = %d, want 1", len(alerts.alerts))
	}
	alert := alerts.alerts[0]
	if alert.Type != entity.AlertTypeTailgating || alert.Severity != entity.AlertSeverityHigh {
		t.Errorf("alert = %s/%s, want TAILGATING/HIGH", alert.Type, alert.Severity)
	}
	if points.points[point.ID].OccupancyCount != 1 {
		t.Errorf("occupancy = %d, want 1", points.points[point.ID].OccupancyCount)
	}
}

func TestGrantAccessNoTailgatingDuringEmergencyOpen(t *testing.T) {
	svc, points, _, logs, alerts, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)
	points.points[point.ID].Status = entity.AccessPointStatusEmergencyOpen
	points.points[point.ID].DoorStatus = entity.DoorStatusOpen

	for i := 0; i < 3; i++ {
		decision, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
			AccessPointID:   point.ID,
			CredentialType:  entity.CredentialTypeBadge,
			CredentialValue: "unknown",
			EventType:       entity.AccessEventEntry,
		})
		if err != nil {
			t.Fatalf("GrantAccess: %v", err)
		}
		if !decision.Granted || decision.Reason != ReasonEmergencyOpen {
			t.Fatalf("decision = %v/%s, want granted emergency_open", decision.Granted, decision.Reason)
		}
	}
	if len(logs.logs) != 3 {
		t.Errorf("log count = %d, want 3", len(logs.logs))
	}
	if len(alerts.alerts) != 0 {
		t.Errorf("alert count = %d, want 0 during an evacuation", len(alerts.alerts))
	}
}

func TestRecordEventNoTailgatingDuringEmergencyOpen(t *testing.T) {
	svc, points, _, _, alerts, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)
	points.points[point.ID].Status = entity.AccessPointStatusEmergencyOpen
	points.points[point.ID].DoorStatus = entity.DoorStatusOpen

	if _, err := svc.RecordEvent(context.Background(), tenantID, RecordEventInput{
		AccessPointID: point.ID,
		EventType:     entity.AccessEventEntry,
		Granted:       true,
	}); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if len(alerts.alerts) != 0 {
		t.Errorf("alert count = %d, want 0", len(alerts.alerts))
	}
}

func TestRecordEventSurvivesOccupancyFailure(t *testing.T) {
	points := &failingOccupancyRepo{fakeAccessPointRepo: newFakeAccessPointRepo()}
	credentials := newFakeCredentialRepo()
	logs := newFakeAccessLogRepo()
	alerts := newFakeAlertRepo()
	clock := &fixedClock{now: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	svc := NewAccessService(points, credentials, logs, alerts, clock, logger)
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	logEntry, err := svc.RecordEvent(context.Background(), tenantID, RecordEventInput{
		AccessPointID: point.ID,
		EventType:     entity.AccessEventEntry,
		Granted:       true,
	})
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if logEntry == nil {
		t.Fatal("log entry should still be returned")
	}
	if len(logs.logs) != 1 {
		t.Errorf("log count = %d, want 1", len(logs.logs))
	}
}

type failingOccupancyRepo struct {
	*fakeAccessPointRepo
}

func (r *failingOccupancyRepo) AdjustOccupancy(context.Context, uuid.UUID, int) error {
	return errors.New("connection reset")
}

func TestRecordEventNoAlertThroughLockedDoor(t *testing.T) {
	svc, _, _, _, alerts, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	_, err := svc.RecordEvent(context.Background(), tenantID, RecordEventInput{
		AccessPointID: point.ID,
		EventType:     entity.AccessEventEntry,
		Granted:       true,
	})
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if len(alerts.alerts) != 0 {
		t.Errorf("alert count = %d, want 0", len(alerts.alerts))
	}
}

// ── Alerts and analytics ─────────────────────────────────────────────────────

func TestResolveAlert(t *testing.T) {
	svc, _, _, _, alerts, _ := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, nil)

	if _, err := svc.RecordEvent(context.Background(), tenantID, RecordEventInput{
		AccessPointID: point.ID,
		EventType:     entity.AccessEventForced,
	}); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	resolver := uuid.New()
	if err := svc.ResolveAlert(context.Background(), tenantID, alerts.alerts[0].ID, resolver); err != nil {
		t.Fatalf("ResolveAlert: %v", err)
	}
	if alerts.alerts[0].ResolvedAt == nil {
		t.Error("alert not marked resolved")
	}
	if alerts.alerts[0].ResolvedByID == nil || *alerts.alerts[0].ResolvedByID != resolver {
		t.Error("resolver not recorded")
	}

	if err := svc.ResolveAlert(context.Background(), tenantID, uuid.New(), resolver); err != ErrAlertNotFound {
		t.Errorf("err = %v, want ErrAlertNotFound", err)
	}
}

func TestAnalyticsRange(t *testing.T) {
	svc, _, _, _, _, clock := newTestAccessService()
	tenantID := uuid.New()
	point := seedPoint(t, svc, tenantID, datatypes.JSON(`{"occupancy_limit":10}`))
	seedCredential(t, svc, tenantID, "B-1", nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
			AccessPointID:   point.ID,
			CredentialType:  entity.CredentialTypeBadge,
			CredentialValue: "B-1",
			EventType:       entity.AccessEventEntry,
		}); err != nil {
			t.Fatalf("GrantAccess: %v", err)
		}
	}
	if _, err := svc.GrantAccess(context.Background(), tenantID, GrantAccessInput{
		AccessPointID:   point.ID,
		CredentialType:  entity.CredentialTypeBadge,
		CredentialValue: "unknown",
		EventType:       entity.AccessEventEntry,
	}); err != nil {
		t.Fatalf("GrantAccess: %v", err)
	}

	from := clock.Now().Add(-time.Hour)
	to := clock.Now().Add(time.Hour)

	analytics, err := svc.Analytics(context.Background(), tenantID, from, to)
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if analytics.TotalAttempts != 4 || analytics.Granted != 3 || analytics.Denied != 1 {
		t.Errorf("counts = %d/%d/%d, want 4/3/1", analytics.TotalAttempts, analytics.Granted, analytics.Denied)
	}
	if len(analytics.Occupancy) != 1 || analytics.Occupancy[0].OccupancyCount != 3 {
		t.Errorf("occupancy snapshot = %+v, want one entry with count 3", analytics.Occupancy)
	}
	if analytics.Occupancy[0].OccupancyLimit != 10 {
		t.Errorf("occupancy limit = %d, want 10", analytics.Occupancy[0].OccupancyLimit)
	}

	if _, err := svc.Analytics(context.Background(), tenantID, to, from); err != ErrInvalidInput {
		t.Errorf("inverted range: err = %v, want ErrInvalidInput", err)
	}
}

// ── Schedules ────────────────────────────────────────────────────────────────

func TestScheduleAllows(t *testing.T) {
	monday10 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	sunday10 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		raw  string
		now  time.Time
		want bool
	}{
		{"empty schedule", "", monday10, true},
		{"unparseable schedule", "not json", monday10, true},
		{"within window", `{"days":[1],"start":"09:00","end":"17:00"}`, monday10, true},
		{"wrong day", `{"days":[1],"start":"09:00","end":"17:00"}`, sunday10, false},
		{"before start", `{"start":"11:00"}`, monday10, false},
		{"at end is exclusive", `{"end":"10:00"}`, monday10, false},
		{"days only", `{"days":[0]}`, sunday10, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scheduleAllows(datatypes.JSON(tc.raw), tc.now)
			if got != tc.want {
				t.Errorf("scheduleAllows(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
