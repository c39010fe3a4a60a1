package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"coworka/api/middleware"
	"coworka/internal/dto"
	"coworka/internal/entity"
	"coworka/internal/repository"
	"coworka/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AccessHandler struct {
	Service  *service.AccessService
	Validate *validator.Validate
}

func NewAccessHandler(svc *service.AccessService, validate *validator.Validate) *AccessHandler {
	return &AccessHandler{Service: svc, Validate: validate}
}

func (h *AccessHandler) CreatePoint(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreateAccessPointRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	point, err := h.Service.CreatePoint(c.Request().Context(), tenantID, service.CreateAccessPointInput{
		Name:     req.Name,
		Type:     entity.AccessPointType(req.Type),
		Location: req.Location,
		Hardware: req.Hardware,
		Config:   req.Config,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.AccessPointResponseFromEntity(point))
}

func (h *AccessHandler) GetPoint(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	point, err := h.Service.GetPoint(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.AccessPointResponseFromEntity(point))
}

func (h *AccessHandler) ListPoints(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	points, err := h.Service.ListPoints(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.AccessPointResponsesFromEntities(points))
}

func (h *AccessHandler) UpdatePointConfig(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateAccessPointConfigRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	point, err := h.Service.UpdatePointConfig(c.Request().Context(), tenantID, id, req.Config)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.AccessPointResponseFromEntity(point))
}

func (h *AccessHandler) ControlPoint(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.ControlAccessPointRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	point, err := h.Service.Control(c.Request().Context(), tenantID, id, service.ControlAction(req.Action))
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.AccessPointResponseFromEntity(point))
}

func (h *AccessHandler) IssueCredential(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	issuedBy, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.IssueCredentialRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	credential, err := h.Service.IssueCredential(c.Request().Context(), tenantID, issuedBy, service.IssueCredentialInput{
		UserID:    req.UserID,
		VisitorID: req.VisitorID,
		Type:      entity.CredentialType(req.Type),
		Value:     req.Value,
		Schedule:  req.Schedule,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.CredentialResponseFromEntity(credential))
}

func (h *AccessHandler) ListCredentials(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	activeOnly, _ := strconv.ParseBool(c.QueryParam("active"))
	credentials, err := h.Service.ListCredentials(c.Request().Context(), tenantID, activeOnly, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.CredentialResponsesFromEntities(credentials))
}

func (h *AccessHandler) DeactivateCredential(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.DeactivateCredential(c.Request().Context(), tenantID, id); err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, nil)
}

func (h *AccessHandler) GrantAccess(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	pointID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.GrantAccessRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	decision, err := h.Service.GrantAccess(c.Request().Context(), tenantID, service.GrantAccessInput{
		AccessPointID:   pointID,
		CredentialType:  entity.CredentialType(req.CredentialType),
		CredentialValue: req.CredentialValue,
		EventType:       entity.AccessEventType(req.EventType),
		DurationSeconds: req.DurationSeconds,
		Metadata:        req.Metadata,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	// A denied attempt is still a successful API call; the decision rides in
	// the payload.
	return writeData(c, http.StatusOK, dto.AccessDecisionResponseFromResult(decision))
}

func (h *AccessHandler) RecordEvent(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	pointID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.RecordEventRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	logEntry, err := h.Service.RecordEvent(c.Request().Context(), tenantID, service.RecordEventInput{
		AccessPointID: pointID,
		UserID:        req.UserID,
		VisitorID:     req.VisitorID,
		EventType:     entity.AccessEventType(req.EventType),
		Granted:       req.Granted,
		Reason:        req.Reason,
		Metadata:      req.Metadata,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.AccessLogResponseFromEntity(logEntry))
}

func (h *AccessHandler) ListLogs(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	filter, err := parseLogFilter(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	logs, err := h.Service.ListLogs(c.Request().Context(), tenantID, filter)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.AccessLogResponsesFromEntities(logs))
}

func (h *AccessHandler) ListAlerts(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	unresolvedOnly, _ := strconv.ParseBool(c.QueryParam("unresolved"))
	alerts, err := h.Service.ListAlerts(c.Request().Context(), tenantID, unresolvedOnly, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.AccessAlertResponsesFromEntities(alerts))
}

func (h *AccessHandler) ResolveAlert(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	resolvedBy, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.ResolveAlert(c.Request().Context(), tenantID, id, resolvedBy); err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, nil)
}

func (h *AccessHandler) Analytics(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	from, to, err := parseTimeRange(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	analytics, err := h.Service.Analytics(c.Request().Context(), tenantID, from, to)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, analytics)
}

func parseLogFilter(c echo.Context) (repository.AccessLogFilter, error) {
	var filter repository.AccessLogFilter
	filter.Limit, filter.Offset = parseLimitOffset(c)

	if raw := c.QueryParam("access_point_id"); raw != "" {
		pointID, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid access_point_id")
		}
		filter.AccessPointID = &pointID
	}
	if raw := c.QueryParam("event_type"); raw != "" {
		eventType := entity.AccessEventType(raw)
		filter.EventType = &eventType
	}
	if raw := c.QueryParam("granted"); raw != "" {
		granted, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("invalid granted")
		}
		filter.Granted = &granted
	}
	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid from")
		}
		filter.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid to")
		}
		filter.To = &to
	}
	return filter, nil
}

func parseTimeRange(c echo.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to")
	}
	return from, to, nil
}
