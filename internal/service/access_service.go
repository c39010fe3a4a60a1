package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"coworka/internal/entity"
	"coworka/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const defaultRestartWindow = 5 * time.Second

// Grant/deny reason codes recorded on access logs.
const (
	ReasonGranted           = "granted"
	ReasonEmergencyOpen     = "emergency_open"
	ReasonMaintenance       = "maintenance_mode"
	ReasonUnknownCredential = "unknown_credential"
	ReasonOutsideSchedule   = "outside_schedule"
	ReasonOccupancyLimit    = "occupancy_limit"
)

type AccessService struct {
	points      repository.AccessPointRepository
	credentials repository.AccessCredentialRepository
	logs        repository.AccessLogRepository
	alerts      repository.AccessAlertRepository
	clock       Clock
	logger      *logrus.Logger

	RestartWindow time.Duration
}

func NewAccessService(
	points repository.AccessPointRepository,
	credentials repository.AccessCredentialRepository,
	logs repository.AccessLogRepository,
	alerts repository.AccessAlertRepository,
	clock Clock,
	logger *logrus.Logger,
) *AccessService {
	return &AccessService{
		points:        points,
		credentials:   credentials,
		logs:          logs,
		alerts:        alerts,
		clock:         clock,
		logger:        logger,
		RestartWindow: defaultRestartWindow,
	}
}

// ── Access points ────────────────────────────────────────────────────────────

type CreateAccessPointInput struct {
	Name     string
	Type     entity.AccessPointType
	Location datatypes.JSON
	Hardware datatypes.JSON
	Config   datatypes.JSON
}

func (s *AccessService) CreatePoint(ctx context.Context, tenantID uuid.UUID, input CreateAccessPointInput) (*entity.AccessPoint, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}
	switch input.Type {
	case entity.AccessPointTypeDoor, entity.AccessPointTypeGate, entity.AccessPointTypeTurnstile, entity.AccessPointTypeElevator:
	default:
		return nil, ErrInvalidInput
	}

	point := &entity.AccessPoint{
		TenantID:   tenantID,
		Name:       strings.TrimSpace(input.Name),
		Type:       input.Type,
		Status:     entity.AccessPointStatusActive,
		DoorStatus: entity.DoorStatusLocked,
		Location:   input.Location,
		Hardware:   input.Hardware,
		Config:     input.Config,
	}
	if err := s.points.Create(ctx, point); err != nil {
		return nil, err
	}
	return point, nil
}

func (s *AccessService) GetPoint(ctx context.Context, tenantID, id uuid.UUID) (*entity.AccessPoint, error) {
	point, err := s.points.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, ErrAccessPointNotFound
	}
	return s.applyDeadlines(ctx, point)
}

func (s *AccessService) ListPoints(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.AccessPoint, error) {
	points, err := s.points.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range points {
		updated, err := s.applyDeadlines(ctx, &points[i])
		if err != nil {
			return nil, err
		}
		points[i] = *updated
	}
	return points, nil
}

func (s *AccessService) UpdatePointConfig(ctx context.Context, tenantID, id uuid.UUID, config datatypes.JSON) (*entity.AccessPoint, error) {
	point, err := s.GetPoint(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	point.Config = config
	if err := s.points.Update(ctx, point); err != nil {
		return nil, err
	}
	return point, nil
}

// Control applies one of the five control actions. Every action maps to a
// fixed (status, door status) pair; the transition table gates which states
// an action may be issued from. Deferred effects (temporary unlock expiry,
// restart completion) are persisted deadlines rather than in-process timers,
// so they survive a crash and are honored by any instance.
func (s *AccessService) Control(ctx context.Context, tenantID, id uuid.UUID, action ControlAction) (*entity.AccessPoint, error) {
	point, err := s.GetPoint(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if _, known := controlTransitions[action]; !known {
		return nil, ErrInvalidControlAction
	}
	if !ValidControlTransition(action, point.Status) {
		return nil, ErrControlNotAllowed
	}

	switch action {
	case ControlActionLock:
		point.Status = entity.AccessPointStatusActive
		point.DoorStatus = entity.DoorStatusLocked
		point.UnlockExpiresAt = nil
	case ControlActionUnlock:
		point.Status = entity.AccessPointStatusActive
		point.DoorStatus = entity.DoorStatusUnlocked
		point.UnlockExpiresAt = nil
	case ControlActionEmergencyOpen:
		point.Status = entity.AccessPointStatusEmergencyOpen
		point.DoorStatus = entity.DoorStatusOpen
		point.UnlockExpiresAt = nil
		point.RestartCompletesAt = nil
	case ControlActionReset:
		point.Status = entity.AccessPointStatusActive
		point.DoorStatus = entity.DoorStatusLocked
		point.OccupancyCount = 0
		point.UnlockExpiresAt = nil
		point.RestartCompletesAt = nil
	case ControlActionRestart:
		window := s.RestartWindow
		if window <= 0 {
			window = defaultRestartWindow
		}
		completesAt := s.clock.Now().Add(window)
		point.Status = entity.AccessPointStatusMaintenance
		point.DoorStatus = entity.DoorStatusLocked
		point.UnlockExpiresAt = nil
		point.RestartCompletesAt = &completesAt
	}

	if err := s.points.Update(ctx, point); err != nil {
		return nil, err
	}
	return point, nil
}

// ── Credentials ──────────────────────────────────────────────────────────────

type IssueCredentialInput struct {
	UserID    *uuid.UUID
	VisitorID *uuid.UUID
	Type      entity.CredentialType
	Value     string
	Schedule  datatypes.JSON
}

func (s *AccessService) IssueCredential(ctx context.Context, tenantID, issuedBy uuid.UUID, input IssueCredentialInput) (*entity.AccessCredential, error) {
	if strings.TrimSpace(input.Value) == "" {
		return nil, ErrInvalidInput
	}
	switch input.Type {
	case entity.CredentialTypeBadge, entity.CredentialTypePin, entity.CredentialTypeQR, entity.CredentialTypeBiometric:
	default:
		return nil, ErrInvalidInput
	}
	if (input.UserID == nil) == (input.VisitorID == nil) {
		return nil, ErrCredentialSubject
	}

	value := strings.TrimSpace(input.Value)
	existing, err := s.credentials.FindActiveByTypeValue(ctx, tenantID, input.Type, value)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCredentialExists
	}

	credential := &entity.AccessCredential{
		TenantID:   tenantID,
		UserID:     input.UserID,
		VisitorID:  input.VisitorID,
		Type:       input.Type,
		Value:      value,
		Schedule:   input.Schedule,
		IsActive:   true,
		IssuedByID: issuedBy,
	}
	if err := s.credentials.Create(ctx, credential); err != nil {
		return nil, err
	}
	return credential, nil
}

func (s *AccessService) DeactivateCredential(ctx context.Context, tenantID, id uuid.UUID) error {
	credential, err := s.credentials.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if credential == nil {
		return ErrCredentialNotFound
	}
	return s.credentials.Deactivate(ctx, tenantID, id)
}

func (s *AccessService) ListCredentials(ctx context.Context, tenantID uuid.UUID, activeOnly bool, limit, offset int) ([]entity.AccessCredential, error) {
	return s.credentials.List(ctx, tenantID, activeOnly, limit, offset)
}

// ── Access decisions ─────────────────────────────────────────────────────────

type GrantAccessInput struct {
	AccessPointID   uuid.UUID
	CredentialType  entity.CredentialType
	CredentialValue string
	EventType       entity.AccessEventType
	DurationSeconds int
	Metadata        map[string]any
}

type AccessDecision struct {
	Granted bool
	Reason  string
	Log     *entity.AccessLog
	Point   *entity.AccessPoint
}

// GrantAccess is the credential-check path: resolve the credential, decide,
// append a log either way, keep the occupancy counter current, and open the
// door for DurationSeconds when an entry is granted on a locked door.
func (s *AccessService) GrantAccess(ctx context.Context, tenantID uuid.UUID, input GrantAccessInput) (*AccessDecision, error) {
	if input.EventType != entity.AccessEventEntry && input.EventType != entity.AccessEventExit {
		return nil, ErrInvalidInput
	}

	point, err := s.GetPoint(ctx, tenantID, input.AccessPointID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()

	credential, err := s.credentials.FindActiveByTypeValue(ctx, tenantID, input.CredentialType, strings.TrimSpace(input.CredentialValue))
	if err != nil {
		return nil, err
	}

	granted, reason := s.decide(point, credential, input.EventType, now)

	logEntry, err := s.appendLog(ctx, tenantID, point, credential, input.EventType, granted, reason, input.Metadata)
	if err != nil {
		return nil, err
	}

	if granted {
		if err := s.applyGrantEffects(ctx, point, input.EventType, input.DurationSeconds, now); err != nil {
			return nil, err
		}
	}

	return &AccessDecision{Granted: granted, Reason: reason, Log: logEntry, Point: point}, nil
}

func (s *AccessService) decide(point *entity.AccessPoint, credential *entity.AccessCredential, eventType entity.AccessEventType, now time.Time) (bool, string) {
	if point.Status == entity.AccessPointStatusEmergencyOpen {
		return true, ReasonEmergencyOpen
	}
	if point.Status == entity.AccessPointStatusMaintenance {
		return false, ReasonMaintenance
	}
	if credential == nil {
		return false, ReasonUnknownCredential
	}
	if !scheduleAllows(credential.Schedule, now) {
		return false, ReasonOutsideSchedule
	}
	if eventType == entity.AccessEventEntry {
		config := parsePointConfig(point.Config)
		if config.OccupancyLimit > 0 && point.OccupancyCount >= config.OccupancyLimit {
			return false, ReasonOccupancyLimit
		}
	}
	return true, ReasonGranted
}

func (s *AccessService) applyGrantEffects(ctx context.Context, point *entity.AccessPoint, eventType entity.AccessEventType, durationSeconds int, now time.Time) error {
	delta := 0
	switch eventType {
	case entity.AccessEventEntry:
		delta = 1
	case entity.AccessEventExit:
		delta = -1
	}
	if delta != 0 {
		if err := s.points.AdjustOccupancy(ctx, point.ID, delta); err != nil {
			return err
		}
		point.OccupancyCount += delta
		if point.OccupancyCount < 0 {
			point.OccupancyCount = 0
		}
	}

	if eventType == entity.AccessEventEntry && durationSeconds > 0 && point.DoorStatus == entity.DoorStatusLocked {
		expiresAt := now.Add(time.Duration(durationSeconds) * time.Second)
		point.DoorStatus = entity.DoorStatusUnlocked
		point.UnlockExpiresAt = &expiresAt
		return s.points.Update(ctx, point)
	}
	return nil
}

type RecordEventInput struct {
	AccessPointID uuid.UUID
	UserID        *uuid.UUID
	VisitorID     *uuid.UUID
	EventType     entity.AccessEventType
	Granted       bool
	Reason        string
	Metadata      map[string]any
}

// RecordEvent appends a hardware-reported log entry directly, e.g. a forced
// door or an entry through a held-open door. Alert conditions are evaluated
// the same way as for credential checks.
func (s *AccessService) RecordEvent(ctx context.Context, tenantID uuid.UUID, input RecordEventInput) (*entity.AccessLog, error) {
	switch input.EventType {
	case entity.AccessEventEntry, entity.AccessEventExit, entity.AccessEventForced:
	default:
		return nil, ErrInvalidInput
	}

	point, err := s.GetPoint(ctx, tenantID, input.AccessPointID)
	if err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		reason = "reported"
	}

	logEntry := &entity.AccessLog{
		TenantID:      tenantID,
		AccessPointID: point.ID,
		UserID:        input.UserID,
		VisitorID:     input.VisitorID,
		EventType:     input.EventType,
		Granted:       input.Granted,
		Reason:        reason,
	}
	if input.Metadata != nil {
		payload, err := json.Marshal(input.Metadata)
		if err != nil {
			return nil, err
		}
		logEntry.Metadata = datatypes.JSON(payload)
	}
	if err := s.logs.Create(ctx, logEntry); err != nil {
		return nil, err
	}

	s.raiseAlerts(ctx, point, logEntry, nil)

	if input.Granted {
		delta := 0
		switch input.EventType {
		case entity.AccessEventEntry:
			delta = 1
		case entity.AccessEventExit:
			delta = -1
		}
		if delta != 0 {
			if err := s.points.AdjustOccupancy(ctx, point.ID, delta); err != nil && s.logger != nil {
				s.logger.WithError(err).WithField("access_point", point.ID).Warn("occupancy adjust failed")
			}
		}
	}
	return logEntry, nil
}

func (s *AccessService) appendLog(
	ctx context.Context,
	tenantID uuid.UUID,
	point *entity.AccessPoint,
	credential *entity.AccessCredential,
	eventType entity.AccessEventType,
	granted bool,
	reason string,
	metadata map[string]any,
) (*entity.AccessLog, error) {
	logEntry := &entity.AccessLog{
		TenantID:      tenantID,
		AccessPointID: point.ID,
		EventType:     eventType,
		Granted:       granted,
		Reason:        reason,
	}
	if credential != nil {
		logEntry.CredentialID = &credential.ID
		logEntry.UserID = credential.UserID
		logEntry.VisitorID = credential.VisitorID
	}
	if metadata != nil {
		payload, err := json.Marshal(metadata)
		if err != nil {
			return nil, err
		}
		logEntry.Metadata = datatypes.JSON(payload)
	}
	if err := s.logs.Create(ctx, logEntry); err != nil {
		return nil, err
	}

	s.raiseAlerts(ctx, point, logEntry, credential)
	return logEntry, nil
}

// raiseAlerts creates the derived alert for a log entry that matches an
// alert condition. A failed alert write never fails the access decision;
// the log row already holds the ground truth.
func (s *AccessService) raiseAlerts(ctx context.Context, point *entity.AccessPoint, logEntry *entity.AccessLog, credential *entity.AccessCredential) {
	var (
		alertType entity.AlertType
		severity  entity.AlertSeverity
		message   string
	)

	switch {
	case logEntry.EventType == entity.AccessEventForced:
		alertType = entity.AlertTypeForcedEntry
		severity = entity.AlertSeverityCritical
		message = fmt.Sprintf("forced entry detected at %s", point.Name)
	case !logEntry.Granted && logEntry.Reason == ReasonOccupancyLimit:
		alertType = entity.AlertTypeOccupancyLimit
		severity = entity.AlertSeverityMedium
		message = fmt.Sprintf("occupancy limit reached at %s", point.Name)
	case !logEntry.Granted:
		alertType = entity.AlertTypeDeniedAccess
		severity = entity.AlertSeverityLow
		message = fmt.Sprintf("access denied at %s: %s", point.Name, logEntry.Reason)
	case logEntry.EventType == entity.AccessEventEntry && logEntry.CredentialID == nil && credential == nil &&
		point.Status != entity.AccessPointStatusEmergencyOpen &&
		(point.DoorStatus == entity.DoorStatusUnlocked || point.DoorStatus == entity.DoorStatusOpen):
		alertType = entity.AlertTypeTailgating
		severity = entity.AlertSeverityHigh
		message = fmt.Sprintf("entry without credential through unlocked door at %s", point.Name)
	default:
		return
	}

	alert := &entity.AccessAlert{
		TenantID:      logEntry.TenantID,
		AccessPointID: point.ID,
		AccessLogID:   logEntry.ID,
		Type:          alertType,
		Severity:      severity,
		Message:       message,
	}
	if err := s.alerts.Create(ctx, alert); err != nil && s.logger != nil {
		s.logger.WithError(err).WithField("access_point", point.ID).Warn("alert write failed")
	}
}

// ── Logs, alerts, analytics ──────────────────────────────────────────────────

func (s *AccessService) ListLogs(ctx context.Context, tenantID uuid.UUID, filter repository.AccessLogFilter) ([]entity.AccessLog, error) {
	return s.logs.List(ctx, tenantID, filter)
}

func (s *AccessService) ListAlerts(ctx context.Context, tenantID uuid.UUID, unresolvedOnly bool, limit, offset int) ([]entity.AccessAlert, error) {
	return s.alerts.List(ctx, tenantID, unresolvedOnly, limit, offset)
}

func (s *AccessService) ResolveAlert(ctx context.Context, tenantID, id, resolvedBy uuid.UUID) error {
	alert, err := s.alerts.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if alert == nil {
		return ErrAlertNotFound
	}
	return s.alerts.Resolve(ctx, tenantID, id, resolvedBy)
}

type OccupancyEntry struct {
	AccessPointID  uuid.UUID `json:"access_point_id"`
	Name           string    `json:"name"`
	OccupancyCount int       `json:"occupancy_count"`
	OccupancyLimit int       `json:"occupancy_limit"`
}

type AccessAnalytics struct {
	From          time.Time                   `json:"from"`
	To            time.Time                   `json:"to"`
	TotalAttempts int64                       `json:"total_attempts"`
	Granted       int64                       `json:"granted"`
	Denied        int64                       `json:"denied"`
	ByEventType   []repository.EventTypeCount `json:"by_event_type"`
	BusiestPoints []repository.PointCount     `json:"busiest_points"`
	AlertsByType  []repository.AlertTypeCount `json:"alerts_by_type"`
	Occupancy     []OccupancyEntry            `json:"occupancy"`
}

func (s *AccessService) Analytics(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (*AccessAnalytics, error) {
	if !to.After(from) {
		return nil, ErrInvalidInput
	}

	total, err := s.logs.CountInRange(ctx, tenantID, from, to, nil)
	if err != nil {
		return nil, err
	}
	grantedFlag := true
	granted, err := s.logs.CountInRange(ctx, tenantID, from, to, &grantedFlag)
	if err != nil {
		return nil, err
	}
	byEventType, err := s.logs.CountByEventType(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	busiest, err := s.logs.CountByPoint(ctx, tenantID, from, to, 10)
	if err != nil {
		return nil, err
	}
	alertCounts, err := s.alerts.CountByType(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	points, err := s.points.OccupancySnapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	occupancy := make([]OccupancyEntry, 0, len(points))
	for i := range points {
		config := parsePointConfig(points[i].Config)
		occupancy = append(occupancy, OccupancyEntry{
			AccessPointID:  points[i].ID,
			Name:           points[i].Name,
			OccupancyCount: points[i].OccupancyCount,
			OccupancyLimit: config.OccupancyLimit,
		})
	}

	return &AccessAnalytics{
		From:          from,
		To:            to,
		TotalAttempts: total,
		Granted:       granted,
		Denied:        total - granted,
		ByEventType:   byEventType,
		BusiestPoints: busiest,
		AlertsByType:  alertCounts,
		Occupancy:     occupancy,
	}, nil
}

// ── Deadline handling ────────────────────────────────────────────────────────

// applyDeadlines normalizes a point against its persisted deadlines on read.
// This is the read-side half of the design; the sweeper covers points nobody
// reads.
func (s *AccessService) applyDeadlines(ctx context.Context, point *entity.AccessPoint) (*entity.AccessPoint, error) {
	now := s.clock.Now()
	changed := false

	if point.RestartCompletesAt != nil && !now.Before(*point.RestartCompletesAt) {
		point.Status = entity.AccessPointStatusActive
		point.RestartCompletesAt = nil
		changed = true
	}
	if point.UnlockExpiresAt != nil && !now.Before(*point.UnlockExpiresAt) {
		point.DoorStatus = entity.DoorStatusLocked
		point.UnlockExpiresAt = nil
		changed = true
	}

	if changed {
		if err := s.points.Update(ctx, point); err != nil {
			return nil, err
		}
	}
	return point, nil
}

func parsePointConfig(raw datatypes.JSON) entity.AccessPointConfig {
	var config entity.AccessPointConfig
	if len(raw) == 0 {
		return config
	}
	_ = json.Unmarshal(raw, &config)
	return config
}

// scheduleAllows checks a credential schedule against the wall clock.
// An empty or unparseable schedule means the credential is always valid.
func scheduleAllows(raw datatypes.JSON, now time.Time) bool {
	if len(raw) == 0 {
		return true
	}
	var schedule entity.CredentialSchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return true
	}
	if len(schedule.Days) == 0 && schedule.Start == "" && schedule.End == "" {
		return true
	}

	if len(schedule.Days) > 0 {
		dayOK := false
		for _, day := range schedule.Days {
			if day == int(now.Weekday()) {
				dayOK = true
				break
			}
		}
		if !dayOK {
			return false
		}
	}

	minutes := now.Hour()*60 + now.Minute()
	if schedule.Start != "" {
		start, ok := parseClock(schedule.Start)
		if ok && minutes < start {
			return false
		}
	}
	if schedule.End != "" {
		end, ok := parseClock(schedule.End)
		if ok && minutes >= end {
			return false
		}
	}
	return true
}

func parseClock(value string) (int, bool) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
