package handler

import (
	"net/http"

	"coworka/internal/dto"
	"coworka/internal/entity"
	"coworka/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type LeadHandler struct {
	Service  *service.LeadService
	Validate *validator.Validate
}

func NewLeadHandler(svc *service.LeadService, validate *validator.Validate) *LeadHandler {
	return &LeadHandler{Service: svc, Validate: validate}
}

func (h *LeadHandler) Create(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreateLeadRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	lead, err := h.Service.Create(c.Request().Context(), tenantID, service.CreateLeadInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Source: req.Source,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.LeadResponseFromEntity(lead))
}

func (h *LeadHandler) Get(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	lead, err := h.Service.Get(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.LeadResponseFromEntity(lead))
}

func (h *LeadHandler) List(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	var status *entity.LeadStatus
	if raw := c.QueryParam("status"); raw != "" {
		value := entity.LeadStatus(raw)
		status = &value
	}
	leads, err := h.Service.List(c.Request().Context(), tenantID, status, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.LeadResponsesFromEntities(leads))
}

func (h *LeadHandler) ChangeStatus(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.ChangeLeadStatusRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	lead, err := h.Service.ChangeStatus(c.Request().Context(), tenantID, id, entity.LeadStatus(req.Status))
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.LeadResponseFromEntity(lead))
}

func (h *LeadHandler) Convert(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.ConvertLeadRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	result, err := h.Service.Convert(c.Request().Context(), tenantID, id, req.OpportunityTitle, req.ValueCents)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.ConvertLeadResponse{
		Lead:        dto.LeadResponseFromEntity(result.Lead),
		Client:      dto.ClientResponseFromEntity(result.Client),
		Opportunity: dto.OpportunityResponseFromEntity(result.Opportunity),
	})
}
