package dto

import (
	"time"

	"coworka/internal/entity"
	"coworka/internal/service"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateAccessPointRequest struct {
	Name     string         `json:"name" validate:"required,min=1"`
	Type     string         `json:"type" validate:"required,oneof=DOOR GATE TURNSTILE ELEVATOR"`
	Location datatypes.JSON `json:"location"`
	Hardware datatypes.JSON `json:"hardware"`
	Config   datatypes.JSON `json:"config"`
}

type UpdateAccessPointConfigRequest struct {
	Config datatypes.JSON `json:"config" validate:"required"`
}

type ControlAccessPointRequest struct {
	Action string `json:"action" validate:"required,oneof=LOCK UNLOCK EMERGENCY_OPEN RESET RESTART"`
}

type AccessPointResponse struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Type               string         `json:"type"`
	Status             string         `json:"status"`
	DoorStatus         string         `json:"door_status"`
	Location           datatypes.JSON `json:"location,omitempty"`
	Hardware           datatypes.JSON `json:"hardware,omitempty"`
	Config             datatypes.JSON `json:"config,omitempty"`
	OccupancyCount     int            `json:"occupancy_count"`
	UnlockExpiresAt    *time.Time     `json:"unlock_expires_at,omitempty"`
	RestartCompletesAt *time.Time     `json:"restart_completes_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func AccessPointResponseFromEntity(point *entity.AccessPoint) AccessPointResponse {
	return AccessPointResponse{
		ID:                 point.ID.String(),
		Name:               point.Name,
		Type:               string(point.Type),
		Status:             string(point.Status),
		DoorStatus:         string(point.DoorStatus),
		Location:           point.Location,
		Hardware:           point.Hardware,
		Config:             point.Config,
		OccupancyCount:     point.OccupancyCount,
		UnlockExpiresAt:    point.UnlockExpiresAt,
		RestartCompletesAt: point.RestartCompletesAt,
		CreatedAt:          point.CreatedAt,
		UpdatedAt:          point.UpdatedAt,
	}
}

func AccessPointResponsesFromEntities(points []entity.AccessPoint) []AccessPointResponse {
	responses := make([]AccessPointResponse, 0, len(points))
	for i := range points {
		responses = append(responses, AccessPointResponseFromEntity(&points[i]))
	}
	return responses
}

type IssueCredentialRequest struct {
	UserID    *uuid.UUID     `json:"user_id"`
	VisitorID *uuid.UUID     `json:"visitor_id"`
	Type      string         `json:"type" validate:"required,oneof=BADGE PIN QR BIOMETRIC"`
	Value     string         `json:"value" validate:"required,min=1,max=255"`
	Schedule  datatypes.JSON `json:"schedule"`
}

type CredentialResponse struct {
	ID            string         `json:"id"`
	UserID        *string        `json:"user_id,omitempty"`
	VisitorID     *string        `json:"visitor_id,omitempty"`
	Type          string         `json:"type"`
	Value         string         `json:"value"`
	Schedule      datatypes.JSON `json:"schedule,omitempty"`
	IsActive      bool           `json:"is_active"`
	DeactivatedAt *time.Time     `json:"deactivated_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func CredentialResponseFromEntity(credential *entity.AccessCredential) CredentialResponse {
	response := CredentialResponse{
		ID:            credential.ID.String(),
		Type:          string(credential.Type),
		Value:         credential.Value,
		Schedule:      credential.Schedule,
		IsActive:      credential.IsActive,
		DeactivatedAt: credential.DeactivatedAt,
		CreatedAt:     credential.CreatedAt,
	}
	if credential.UserID != nil {
		user := credential.UserID.String()
		response.UserID = &user
	}
	if credential.VisitorID != nil {
		visitor := credential.VisitorID.String()
		response.VisitorID = &visitor
	}
	return response
}

func CredentialResponsesFromEntities(credentials []entity.AccessCredential) []CredentialResponse {
	responses := make([]CredentialResponse, 0, len(credentials))
	for i := range credentials {
		responses = append(responses, CredentialResponseFromEntity(&credentials[i]))
	}
	return responses
}

type GrantAccessRequest struct {
	CredentialType  string         `json:"credential_type" validate:"required,oneof=BADGE PIN QR BIOMETRIC"`
	CredentialValue string         `json:"credential_value" validate:"required,min=1"`
	EventType       string         `json:"event_type" validate:"required,oneof=ENTRY EXIT"`
	DurationSeconds int            `json:"duration_seconds" validate:"gte=0,lte=300"`
	Metadata        map[string]any `json:"metadata"`
}

type RecordEventRequest struct {
	UserID    *uuid.UUID     `json:"user_id"`
	VisitorID *uuid.UUID     `json:"visitor_id"`
	EventType string         `json:"event_type" validate:"required,oneof=ENTRY EXIT FORCED"`
	Granted   bool           `json:"granted"`
	Reason    string         `json:"reason" validate:"omitempty,max=100"`
	Metadata  map[string]any `json:"metadata"`
}

type AccessDecisionResponse struct {
	Granted bool                `json:"granted"`
	Reason  string              `json:"reason"`
	Log     AccessLogResponse   `json:"log"`
	Point   AccessPointResponse `json:"point"`
}

func AccessDecisionResponseFromResult(decision *service.AccessDecision) AccessDecisionResponse {
	return AccessDecisionResponse{
		Granted: decision.Granted,
		Reason:  decision.Reason,
		Log:     AccessLogResponseFromEntity(decision.Log),
		Point:   AccessPointResponseFromEntity(decision.Point),
	}
}

type AccessLogResponse struct {
	ID            string         `json:"id"`
	AccessPointID string         `json:"access_point_id"`
	UserID        *string        `json:"user_id,omitempty"`
	VisitorID     *string        `json:"visitor_id,omitempty"`
	CredentialID  *string        `json:"credential_id,omitempty"`
	EventType     string         `json:"event_type"`
	Granted       bool           `json:"granted"`
	Reason        string         `json:"reason"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func AccessLogResponseFromEntity(logEntry *entity.AccessLog) AccessLogResponse {
	response := AccessLogResponse{
		ID:            logEntry.ID.String(),
		AccessPointID: logEntry.AccessPointID.String(),
		EventType:     string(logEntry.EventType),
		Granted:       logEntry.Granted,
		Reason:        logEntry.Reason,
		Metadata:      logEntry.Metadata,
		CreatedAt:     logEntry.CreatedAt,
	}
	if logEntry.UserID != nil {
		user := logEntry.UserID.String()
		response.UserID = &user
	}
	if logEntry.VisitorID != nil {
		visitor := logEntry.VisitorID.String()
		response.VisitorID = &visitor
	}
	if logEntry.CredentialID != nil {
		credential := logEntry.CredentialID.String()
		response.CredentialID = &credential
	}
	return response
}

func AccessLogResponsesFromEntities(logs []entity.AccessLog) []AccessLogResponse {
	responses := make([]AccessLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, AccessLogResponseFromEntity(&logs[i]))
	}
	return responses
}

type AccessAlertResponse struct {
	ID            string     `json:"id"`
	AccessPointID string     `json:"access_point_id"`
	AccessLogID   string     `json:"access_log_id"`
	Type          string     `json:"type"`
	Severity      string     `json:"severity"`
	Message       string     `json:"message"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	ResolvedByID  *string    `json:"resolved_by_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func AccessAlertResponseFromEntity(alert *entity.AccessAlert) AccessAlertResponse {
	response := AccessAlertResponse{
		ID:            alert.ID.String(),
		AccessPointID: alert.AccessPointID.String(),
		AccessLogID:   alert.AccessLogID.String(),
		Type:          string(alert.Type),
		Severity:      string(alert.Severity),
		Message:       alert.Message,
		ResolvedAt:    alert.ResolvedAt,
		CreatedAt:     alert.CreatedAt,
	}
	if alert.ResolvedByID != nil {
		resolver := alert.ResolvedByID.String()
		response.ResolvedByID = &resolver
	}
	return response
}

func AccessAlertResponsesFromEntities(alerts []entity.AccessAlert) []AccessAlertResponse {
	responses := make([]AccessAlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, AccessAlertResponseFromEntity(&alerts[i]))
	}
	return responses
}
