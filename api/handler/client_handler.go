package handler

import (
	"net/http"

	"coworka/internal/dto"
	"coworka/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ClientHandler struct {
	Service  *service.ClientService
	Validate *validator.Validate
}

func NewClientHandler(svc *service.ClientService, validate *validator.Validate) *ClientHandler {
	return &ClientHandler{Service: svc, Validate: validate}
}

func (h *ClientHandler) Create(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreateClientRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	client, err := h.Service.Create(c.Request().Context(), tenantID, service.CreateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Notes:   req.Notes,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.ClientResponseFromEntity(client))
}

func (h *ClientHandler) Get(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	client, err := h.Service.Get(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.ClientResponseFromEntity(client))
}

func (h *ClientHandler) List(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	clients, err := h.Service.List(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.ClientResponsesFromEntities(clients))
}

func (h *ClientHandler) Update(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateClientRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	client, err := h.Service.Update(c.Request().Context(), tenantID, id, service.UpdateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Notes:   req.Notes,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.ClientResponseFromEntity(client))
}

func (h *ClientHandler) Deactivate(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.Deactivate(c.Request().Context(), tenantID, id); err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, nil)
}
