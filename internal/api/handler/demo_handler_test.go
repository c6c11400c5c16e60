package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/panelhub/user-service/internal/core/domain"
)

type stubDemoService struct {
	seedFn func(ctx context.Context) ([]*domain.SafeUser, error)
}

func (s *stubDemoService) SeedDemoUsers(ctx context.Context) ([]*domain.SafeUser, error) {
	return s.seedFn(ctx)
}

func (s *stubDemoService) DemoUsers() []domain.DemoSpec {
	return domain.DemoSpecs()
}

func TestDemoHandler_Seed_Success(t *testing.T) {
	stub := &stubDemoService{
		seedFn: func(context.Context) ([]*domain.SafeUser, error) {
			return []*domain.SafeUser{
				{ID: 1, Username: "admin", Role: domain.RoleAdmin},
				{ID: 2, Username: "reseller", Role: domain.RoleReseller},
				{ID: 3, Username: "user", Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewDemoHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/demo/seed", "")
	if err := h.Seed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 seeded users, got %d", len(resp))
	}
}

func TestDemoHandler_Seed_Failure(t *testing.T) {
	stub := &stubDemoService{
		seedFn: func(context.Context) ([]*domain.SafeUser, error) {
			return nil, errors.New("store unavailable")
		},
	}
	h := NewDemoHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/demo/seed", "")
	if err := h.Seed(c); err == nil {
		t.Fatalf("expected error to bubble to the central error handler")
	}
}

func TestDemoHandler_List(t *testing.T) {
	h := NewDemoHandler(&stubDemoService{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/demo/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("expected 3 demo specs, got %d", len(resp))
	}
	// The demo listing intentionally exposes plaintext passwords for the
	// login form hints.
	if resp[0]["password"] == "" || resp[0]["password"] == nil {
		t.Fatalf("demo spec must include the plaintext password: %+v", resp[0])
	}
}
