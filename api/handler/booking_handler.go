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

type BookingHandler struct {
	Service  *service.BookingService
	Validate *validator.Validate
}

func NewBookingHandler(svc *service.BookingService, validate *validator.Validate) *BookingHandler {
	return &BookingHandler{Service: svc, Validate: validate}
}

func (h *BookingHandler) Create(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreateBookingRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	booking, err := h.Service.Create(c.Request().Context(), tenantID, service.CreateBookingInput{
		ClientID:          req.ClientID,
		ServiceOfferingID: req.ServiceOfferingID,
		Resource:          req.Resource,
		StartsAt:          req.StartsAt,
		EndsAt:            req.EndsAt,
		Notes:             req.Notes,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.BookingResponseFromEntity(booking))
}

func (h *BookingHandler) Update(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateBookingRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	booking, err := h.Service.Update(c.Request().Context(), tenantID, id, service.UpdateBookingInput{
		Resource: req.Resource,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Notes:    req.Notes,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.BookingResponseFromEntity(booking))
}

func (h *BookingHandler) Get(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	booking, err := h.Service.Get(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.BookingResponseFromEntity(booking))
}

func (h *BookingHandler) List(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	bookings, err := h.Service.List(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.BookingResponsesFromEntities(bookings))
}

func (h *BookingHandler) Confirm(c echo.Context) error {
	return h.transition(c, h.Service.Confirm)
}

func (h *BookingHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.Service.Cancel)
}

func (h *BookingHandler) Complete(c echo.Context) error {
	return h.transition(c, h.Service.Complete)
}

func (h *BookingHandler) transition(
	c echo.Context,
	apply func(ctx context.Context, tenantID, id uuid.UUID) (*entity.Booking, error),
) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	booking, err := apply(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.BookingResponseFromEntity(booking))
}
