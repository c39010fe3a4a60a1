package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"coworka/api/middleware"
	"coworka/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// All endpoints answer with the same envelope: success plus data on the
// happy path, error (and fieldErrors for validation) otherwise.
type envelope struct {
	Success     bool              `json:"success"`
	Data        any               `json:"data,omitempty"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func writeData(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, envelope{Success: false, Error: err.Error()})
}

func writeValidationError(c echo.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return writeError(c, http.StatusBadRequest, err)
	}
	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldErrors[fieldError.Field()] = validationMessage(fieldError)
	}
	return c.JSON(http.StatusBadRequest, envelope{
		Success:     false,
		Error:       "validation failed",
		FieldErrors: fieldErrors,
	})
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldError.Param() + " characters"
	case "max":
		return "must be at most " + fieldError.Param() + " characters"
	case "len":
		return "must be exactly " + fieldError.Param() + " characters"
	case "gte":
		return "must be at least " + fieldError.Param()
	case "lte":
		return "must be at most " + fieldError.Param()
	case "oneof":
		return "must be one of: " + fieldError.Param()
	default:
		return "is invalid"
	}
}

func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrBookingInvalidWindow),
		errors.Is(err, service.ErrInvalidControlAction),
		errors.Is(err, service.ErrCredentialSubject):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidMFACode):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailNotVerified):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrVisitorNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrMembershipNotFound),
		errors.Is(err, service.ErrServiceOfferingNotFound),
		errors.Is(err, service.ErrInvoiceNotFound),
		errors.Is(err, service.ErrLeadNotFound),
		errors.Is(err, service.ErrOpportunityNotFound),
		errors.Is(err, service.ErrQuotationNotFound),
		errors.Is(err, service.ErrAccessPointNotFound),
		errors.Is(err, service.ErrCredentialNotFound),
		errors.Is(err, service.ErrAlertNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailAlreadyRegistered),
		errors.Is(err, service.ErrTenantSlugTaken),
		errors.Is(err, service.ErrClientEmailExists),
		errors.Is(err, service.ErrClientHasActiveBookings),
		errors.Is(err, service.ErrClientHasActiveMembership),
		errors.Is(err, service.ErrClientHasUnpaidInvoices),
		errors.Is(err, service.ErrVisitorCheckedIn),
		errors.Is(err, service.ErrVisitorNotCheckedIn),
		errors.Is(err, service.ErrBookingOverlap),
		errors.Is(err, service.ErrBookingNotCancelable),
		errors.Is(err, service.ErrBookingTransition),
		errors.Is(err, service.ErrMembershipTransition),
		errors.Is(err, service.ErrInvoiceNumberExists),
		errors.Is(err, service.ErrInvoiceTransition),
		errors.Is(err, service.ErrLeadTransition),
		errors.Is(err, service.ErrLeadNotQualified),
		errors.Is(err, service.ErrOpportunityTransition),
		errors.Is(err, service.ErrQuotationNumberExists),
		errors.Is(err, service.ErrQuotationTransition),
		errors.Is(err, service.ErrControlNotAllowed),
		errors.Is(err, service.ErrCredentialExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrMFARequired):
		status = http.StatusPreconditionRequired
	case errors.Is(err, service.ErrMFANotConfigured):
		status = http.StatusFailedDependency
	}
	if status == http.StatusInternalServerError {
		return writeError(c, status, errors.New("something went wrong"))
	}
	return writeError(c, status, err)
}

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func parseLimitOffset(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.New("invalid " + name)
	}
	return id, nil
}

func tenantFromContext(c echo.Context) (uuid.UUID, error) {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return uuid.Nil, errors.New("unauthorized")
	}
	return tenantID, nil
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
