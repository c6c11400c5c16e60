package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/panelhub/user-service/internal/core/domain"
	"github.com/panelhub/user-service/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) *ports.LoginResult
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) *ports.LoginResult {
	return s.loginFn(ctx, email, password)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) *ports.LoginResult {
			if email != "admin@test.com" || password != "admin123" {
				t.Fatalf("unexpected credentials: %s / %s", email, password)
			}
			return &ports.LoginResult{
				Success: true,
				User:    &domain.SafeUser{ID: 1, Username: "admin", Role: domain.RoleAdmin},
				Message: ports.MsgLoginSuccess,
			}
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"admin@test.com","password":"admin123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["message"] != ports.MsgLoginSuccess {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "admin" {
		t.Fatalf("expected user in payload: %+v", resp)
	}
}

func TestAuthHandler_Login_FailureStill200(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) *ports.LoginResult {
			return &ports.LoginResult{Success: false, Message: ports.MsgInvalidCredentials}
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"ghost@test.com","password":"nope"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Auth failure is payload data, not an HTTP error.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != false || resp["message"] != ports.MsgInvalidCredentials {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, present := resp["user"]; present {
		t.Fatalf("failed login must omit the user field: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) *ports.LoginResult {
			t.Fatalf("service must not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub)

	for _, body := range []string{"not-json", `{"email":"not-an-email","password":"x"}`, `{"email":"a@b.com"}`} {
		c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login", body)
		_ = h.Login(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", body, rec.Code)
		}
	}
}

func TestLoginResultLabel(t *testing.T) {
	cases := []struct {
		res  *ports.LoginResult
		want string
	}{
		{&ports.LoginResult{Success: true, Message: ports.MsgLoginSuccess}, "success"},
		{&ports.LoginResult{Message: ports.MsgInvalidCredentials}, "invalid_credentials"},
		{&ports.LoginResult{Message: ports.MsgAccountDeactivated}, "deactivated"},
		{&ports.LoginResult{Message: ports.MsgLoginServerError}, "error"},
	}
	for _, tc := range cases {
		if got := loginResultLabel(tc.res); got != tc.want {
			t.Fatalf("label for %q: expected %s, got %s", tc.res.Message, tc.want, got)
		}
	}
}
