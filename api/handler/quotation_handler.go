package handler

import (
	"context"
	"net/http"

	"coworka/internal/dto"
	"coworka/internal/entity"
	"coworka/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type QuotationHandler struct {
	Service  *service.QuotationService
	Validate *validator.Validate
}

func NewQuotationHandler(svc *service.QuotationService, validate *validator.Validate) *QuotationHandler {
	return &QuotationHandler{Service: svc, Validate: validate}
}

func (h *QuotationHandler) Create(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreateQuotationRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	quotation, err := h.Service.Create(c.Request().Context(), tenantID, service.CreateQuotationInput{
		OpportunityID: req.OpportunityID,
		Number:        req.Number,
		Lines:         req.Lines,
		TotalCents:    req.TotalCents,
		ValidUntil:    req.ValidUntil,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.QuotationResponseFromEntity(quotation))
}

func (h *QuotationHandler) Get(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	quotation, err := h.Service.Get(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.QuotationResponseFromEntity(quotation))
}

func (h *QuotationHandler) List(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	quotations, err := h.Service.List(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.QuotationResponsesFromEntities(quotations))
}

func (h *QuotationHandler) Send(c echo.Context) error {
	return h.transition(c, h.Service.Send)
}

func (h *QuotationHandler) Accept(c echo.Context) error {
	return h.transition(c, h.Service.Accept)
}

func (h *QuotationHandler) Reject(c echo.Context) error {
	return h.transition(c, h.Service.Reject)
}

func (h *QuotationHandler) transition(
	c echo.Context,
	apply func(ctx context.Context, tenantID, id uuid.UUID) (*entity.Quotation, error),
) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	quotation, err := apply(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.QuotationResponseFromEntity(quotation))
}
