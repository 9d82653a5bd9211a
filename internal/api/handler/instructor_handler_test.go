package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
)

type stubInstructorService struct {
	applyFn       func(ctx context.Context, input ports.ApplyInput) (*ports.ApplyResult, error)
	listPendingFn func(ctx context.Context) ([]ports.PendingApplication, error)
	approveFn     func(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error)
	rejectFn      func(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error)
	toggleFn      func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubInstructorService) Apply(ctx context.Context, input ports.ApplyInput) (*ports.ApplyResult, error) {
	return s.applyFn(ctx, input)
}

func (s *stubInstructorService) ListPending(ctx context.Context) ([]ports.PendingApplication, error) {
	return s.listPendingFn(ctx)
}

func (s *stubInstructorService) Approve(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error) {
	return s.approveFn(ctx, applicationID, actor)
}

func (s *stubInstructorService) Reject(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error) {
	return s.rejectFn(ctx, applicationID, actor)
}

func (s *stubInstructorService) ToggleActiveRole(ctx context.Context, userID string) (*domain.User, error) {
	return s.toggleFn(ctx, userID)
}

const validApplyBody = `{"intro":"I have been teaching Korean online for five years.","career":"5 years","certificate":"TOPIK 6"}`

func TestInstructorHandler_Apply_Success(t *testing.T) {
	stub := &stubInstructorService{
		applyFn: func(ctx context.Context, input ports.ApplyInput) (*ports.ApplyResult, error) {
			if input.UserID != "user-1" {
				t.Fatalf("unexpected user id: %s", input.UserID)
			}
			return &ports.ApplyResult{
				Application: &domain.InstructorApplication{ID: "app-1", UserID: input.UserID, Status: domain.ApplicationPending},
				User:        &domain.User{ID: input.UserID, Role: domain.RolePendingInstructor},
			}, nil
		},
	}
	h := NewInstructorHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/apply-instructor", validApplyBody)
	c.Set("user_id", "user-1")

	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	user, _ := resp["user"].(map[string]any)
	if user["role"] != "pending_instructor" {
		t.Fatalf("expected pending_instructor in response, got %+v", resp)
	}
}

func TestInstructorHandler_Apply_ShortIntro(t *testing.T) {
	stub := &stubInstructorService{
		applyFn: func(ctx context.Context, input ports.ApplyInput) (*ports.ApplyResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewInstructorHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/apply-instructor",
		`{"intro":"too short","career":"5 years","certificate":"TOPIK 6"}`)
	c.Set("user_id", "user-1")

	err := h.Apply(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short intro, got %v", err)
	}
}

func TestInstructorHandler_Apply_Duplicate(t *testing.T) {
	stub := &stubInstructorService{
		applyFn: func(ctx context.Context, input ports.ApplyInput) (*ports.ApplyResult, error) {
			return nil, domain.ErrDuplicateApplication
		},
	}
	h := NewInstructorHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/apply-instructor", validApplyBody)
	c.Set("user_id", "user-1")

	if err := h.Apply(c); !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestInstructorHandler_Apply_Unauthenticated(t *testing.T) {
	h := NewInstructorHandler(&stubInstructorService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/apply-instructor", validApplyBody)

	err := h.Apply(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestInstructorHandler_Approve_PassesActor(t *testing.T) {
	stub := &stubInstructorService{
		approveFn: func(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error) {
			if applicationID != "app-1" || actor != "admin@ezkorea.com" {
				t.Fatalf("unexpected args: %s %s", applicationID, actor)
			}
			return &domain.InstructorApplication{ID: applicationID, Status: domain.ApplicationApproved}, nil
		},
	}
	h := NewInstructorHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/instructor-applications/app-1/approve", "")
	c.SetParamNames("id")
	c.SetParamValues("app-1")
	c.Set("email", "admin@ezkorea.com")

	if err := h.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestInstructorHandler_Reject_NotFound(t *testing.T) {
	stub := &stubInstructorService{
		rejectFn: func(ctx context.Context, applicationID, actor string) (*domain.InstructorApplication, error) {
			return nil, domain.ErrApplicationNotFound
		},
	}
	h := NewInstructorHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/admin/instructor-applications/missing/reject", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Reject(c); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestInstructorHandler_ToggleActiveRole(t *testing.T) {
	stub := &stubInstructorService{
		toggleFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Role: domain.RoleInstructor, ActiveRole: domain.RoleInstructor}, nil
		},
	}
	h := NewInstructorHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/become-instructor", "")
	c.Set("user_id", "user-1")

	if err := h.ToggleActiveRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	user, _ := resp["user"].(map[string]any)
	if user["active_role"] != "instructor" {
		t.Fatalf("expected toggled active_role, got %+v", resp)
	}
}

func TestInstructorHandler_ListPending(t *testing.T) {
	stub := &stubInstructorService{
		listPendingFn: func(ctx context.Context) ([]ports.PendingApplication, error) {
			return []ports.PendingApplication{
				{
					Application:    domain.InstructorApplication{ID: "app-1", Status: domain.ApplicationPending},
					ApplicantName:  "Alice",
					ApplicantEmail: "a@x.com",
				},
			}, nil
		},
	}
	h := NewInstructorHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/instructor-applications", "")

	if err := h.ListPending(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["applicant_email"] != "a@x.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
