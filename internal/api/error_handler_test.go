package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/panelhub/user-service/internal/core/domain"
)

func TestResolveError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/1", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	cases := []struct {
		err      error
		wantCode int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{fmt.Errorf("insert user: %w", domain.ErrUserExists), http.StatusConflict},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		code, _ := resolveError(tc.err, zerolog.Nop(), c)
		if code != tc.wantCode {
			t.Fatalf("error %v: expected %d, got %d", tc.err, tc.wantCode, code)
		}
	}
}

func TestResolveError_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, msg := resolveError(errors.New("pq: connection refused at 10.0.0.3"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Fatalf("internal cause leaked to the client: %q", msg)
	}
}
