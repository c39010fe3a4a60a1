package handler

import (
	"net/http"

	"coworka/internal/dto"
	"coworka/internal/entity"
	"coworka/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type MembershipHandler struct {
	Service  *service.MembershipService
	Validate *validator.Validate
}

func NewMembershipHandler(svc *service.MembershipService, validate *validator.Validate) *MembershipHandler {
	return &MembershipHandler{Service: svc, Validate: validate}
}

func (h *MembershipHandler) Create(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	var req dto.CreateMembershipRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	membership, err := h.Service.Create(c.Request().Context(), tenantID, service.CreateMembershipInput{
		ClientID:   req.ClientID,
		Plan:       req.Plan,
		PriceCents: req.PriceCents,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusCreated, dto.MembershipResponseFromEntity(membership))
}

func (h *MembershipHandler) Get(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	membership, err := h.Service.Get(c.Request().Context(), tenantID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.MembershipResponseFromEntity(membership))
}

func (h *MembershipHandler) List(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	limit, offset := parseLimitOffset(c)
	memberships, err := h.Service.List(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.MembershipResponsesFromEntities(memberships))
}

func (h *MembershipHandler) ChangeStatus(c echo.Context) error {
	tenantID, err := tenantFromContext(c)
	if err != nil {
		return writeError(c, http.StatusUnauthorized, err)
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.ChangeMembershipStatusRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeValidationError(c, err)
	}
	membership, err := h.Service.ChangeStatus(c.Request().Context(), tenantID, id, entity.MembershipStatus(req.Status))
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeData(c, http.StatusOK, dto.MembershipResponseFromEntity(membership))
}
