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

type InvoiceHandler struct {
	Service  *service.InvoiceService
	Validate *validator.Validate
}

func NewInvoiceHandler(svc *service.InvoiceService, validate *validator.Validate) *InvoiceHandler {
	return &InvoiceHandler{Service: svc, Validate: validate}
}

func (h *InvoiceHandler) Create(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreateInvoiceRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	invoice, err := h.Service.Create(c.Request().Context(), tenantID, service.CreateInvoiceInput{
		ClientID:    req.ClientID,
		Number:      req.Number,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Lines:       req.Lines,
		DueAt:       req.DueAt,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.InvoiceResponseFromEntity(invoice))
}

func (h *InvoiceHandler) Get(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	invoice, err := h.Service.Get(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.InvoiceResponseFromEntity(invoice))
}

func (h *InvoiceHandler) List(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	invoices, err := h.Service.List(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.InvoiceResponsesFromEntities(invoices))
}

func (h *InvoiceHandler) Send(c echo.Context) error {
	return h.transition(c, h.Service.Send)
}

func (h *InvoiceHandler) MarkPaid(c echo.Context) error {
	return h.transition(c, h.Service.MarkPaid)
}

func (h *InvoiceHandler) Void(c echo.Context) error {
	return h.transition(c, h.Service.Void)
}

func (h *InvoiceHandler) transition(
	c echo.Context,
	apply func(ctx context.Context, tenantID, id uuid.UUID) (*entity.Invoice, error),
) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	invoice, err := apply(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.InvoiceResponseFromEntity(invoice))
}
