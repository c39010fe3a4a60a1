package handler

import (
	"net/http"

	"coworka/internal/dto"
	"coworka/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	Service  *service.CatalogService
	Validate *validator.Validate
}

func NewCatalogHandler(svc *service.CatalogService, validate *validator.Validate) *CatalogHandler {
	return &CatalogHandler{Service: svc, Validate: validate}
}

func (h *CatalogHandler) Create(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreateOfferingRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	offering, err := h.Service.Create(c.Request().Context(), tenantID, service.CreateOfferingInput{
		Name:       req.Name,
		Category:   req.Category,
		PriceCents: req.PriceCents,
		Currency:   req.Currency,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.OfferingResponseFromEntity(offering))
}

func (h *CatalogHandler) Get(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	offering, err := h.Service.Get(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.OfferingResponseFromEntity(offering))
}

func (h *CatalogHandler) List(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	offerings, err := h.Service.List(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.OfferingResponsesFromEntities(offerings))
}

func (h *CatalogHandler) Update(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateOfferingRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	offering, err := h.Service.Update(c.Request().Context(), tenantID, id, service.UpdateOfferingInput{
		Name:       req.Name,
		Category:   req.Category,
		PriceCents: req.PriceCents,
		Currency:   req.Currency,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.OfferingResponseFromEntity(offering))
}
