package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"coworka/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func newTestValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := field.Tag.Get("json")
		if tag == "" || tag == "-" {
			return field.Name
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == "" {
			return field.Name
		}
		return tag
	})
	return validate
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginValidationEnvelope(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(nil, newTestValidator())

	c, rec := postJSON(e, "/auth/login", `{"workspace_slug":"acme","email":"not-an-email","password":"secret","device_id":"d1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Success     bool              `json:"success"`
		Error       string            `json:"error"`
		FieldErrors map[string]string `json:"fieldErrors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success {
		t.Error("success should be false")
	}
	if body.Error != "validation failed" {
		t.Errorf("error = %q, want %q", body.Error, "validation failed")
	}
	if _, ok := body.FieldErrors["email"]; !ok {
		t.Errorf("fieldErrors = %v, want an email entry keyed by the json name", body.FieldErrors)
	}
}

func TestLoginRejectsUnknownFields(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(nil, newTestValidator())

	c, rec := postJSON(e, "/auth/login", `{"workspace_slug":"acme","email":"a@b.com","password":"secret","device_id":"d1","extra":true}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestWriteServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrClientNotFound, http.StatusNotFound},
		{service.ErrBookingOverlap, http.StatusConflict},
		{service.ErrControlNotAllowed, http.StatusConflict},
		{service.ErrBookingInvalidWindow, http.StatusBadRequest},
		{service.ErrMFARequired, http.StatusPreconditionRequired},
	}
	e := echo.New()
	for _, tc := range cases {
		c, rec := postJSON(e, "/", "{}")
		if err := writeServiceError(c, tc.err); err != nil {
			t.Fatalf("writeServiceError(%v): %v", tc.err, err)
		}
		if rec.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.status)
		}
	}
}

func TestWriteServiceErrorHidesUnknownErrors(t *testing.T) {
	e := echo.New()
	c, rec := postJSON(e, "/", "{}")

	if err := writeServiceError(c, errInternal{}); err != nil {
		t.Fatalf("writeServiceError: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "database exploded") {
		t.Error("internal error detail leaked to the client")
	}
}

type errInternal struct{}

func (errInternal) Error() string { return "database exploded" }
