package handler

import (
	"net/http"

	"coworka/internal/dto"
	"coworka/internal/entity"
	"coworka/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type OpportunityHandler struct {
	Service  *service.OpportunityService
	Validate *validator.Validate
}

func NewOpportunityHandler(svc *service.OpportunityService, validate *validator.Validate) *OpportunityHandler {
	return &OpportunityHandler{Service: svc, Validate: validate}
}

func (h *OpportunityHandler) Create(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreateOpportunityRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	opportunity, err := h.Service.Create(c.Request().Context(), tenantID, service.CreateOpportunityInput{
		ClientID:        req.ClientID,
		Title:           req.Title,
		ValueCents:      req.ValueCents,
		ExpectedCloseAt: req.ExpectedCloseAt,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.OpportunityResponseFromEntity(opportunity))
}

func (h *OpportunityHandler) Get(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	opportunity, err := h.Service.Get(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.OpportunityResponseFromEntity(opportunity))
}

func (h *OpportunityHandler) List(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	opportunities, err := h.Service.List(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.OpportunityResponsesFromEntities(opportunities))
}

func (h *OpportunityHandler) ChangeStage(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.ChangeOpportunityStageRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	opportunity, err := h.Service.ChangeStage(c.Request().Context(), tenantID, id, entity.OpportunityStage(req.Stage))
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.OpportunityResponseFromEntity(opportunity))
}
