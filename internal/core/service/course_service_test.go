package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
)

func newCourseFixture() (*stubUserRepo, *stubCourseRepo, ports.CourseService) {
	users := newStubUserRepo()
	courses := newStubCourseRepo(users)
	svc := NewCourseService(users, courses, zerolog.Nop())
	return users, courses, svc
}

func TestCourseService_Submit_NotInstructor(t *testing.T) {
	users, courses, svc := newCourseFixture()
	u := seedStudent(users, "a@x.com")

	_, err := svc.Submit(context.Background(), ports.SubmitCourseInput{
		InstructorID: u.ID,
		Title:        "Korean 101",
		Description:  "Beginner course",
	})
	if !errors.Is(err, domain.ErrNotInstructor) {
		t.Fatalf("expected ErrNotInstructor, got %v", err)
	}
	if n, _ := courses.Count(context.Background()); n != 0 {
		t.Fatalf("forbidden submission must not create a record, got %d", n)
	}
}

func TestCourseService_Submit_Success(t *testing.T) {
	users, _, svc := newCourseFixture()
	u := seedStudent(users, "a@x.com")
	users.setRole(u.ID, domain.RoleInstructor)

	course, err := svc.Submit(context.Background(), ports.SubmitCourseInput{
		InstructorID: u.ID,
		Title:        "Korean 101",
		Description:  "Beginner course",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if course.Status != domain.CoursePending {
		t.Fatalf("expected pending status, got %s", course.Status)
	}
	if course.InstructorID != u.ID {
		t.Fatalf("unexpected instructor id: %s", course.InstructorID)
	}
}

func TestCourseService_ApproveReject(t *testing.T) {
	users, _, svc := newCourseFixture()
	u := seedStudent(users, "a@x.com")
	users.setRole(u.ID, domain.RoleInstructor)

	first, _ := svc.Submit(context.Background(), ports.SubmitCourseInput{InstructorID: u.ID, Title: "A", Description: "a"})
	second, _ := svc.Submit(context.Background(), ports.SubmitCourseInput{InstructorID: u.ID, Title: "B", Description: "b"})

	approved, err := svc.Approve(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != domain.CourseApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}

	rejected, err := svc.Reject(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != domain.CourseRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}

	// Course decisions never touch the owning user's role.
	stored, _ := users.FindByID(context.Background(), u.ID)
	if stored.Role != domain.RoleInstructor {
		t.Fatalf("user role changed by course decision: %s", stored.Role)
	}
}

func TestCourseService_Resolve_Errors(t *testing.T) {
	users, _, svc := newCourseFixture()
	u := seedStudent(users, "a@x.com")
	users.setRole(u.ID, domain.RoleInstructor)

	if _, err := svc.Approve(context.Background(), "missing"); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}

	course, _ := svc.Submit(context.Background(), ports.SubmitCourseInput{InstructorID: u.ID, Title: "A", Description: "a"})
	if _, err := svc.Approve(context.Background(), course.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := svc.Reject(context.Background(), course.ID); !errors.Is(err, domain.ErrCourseResolved) {
		t.Fatalf("expected ErrCourseResolved, got %v", err)
	}
}

func TestCourseService_ListPending_JoinsInstructor(t *testing.T) {
	users, _, svc := newCourseFixture()
	u := seedStudent(users, "teacher@x.com")
	users.setRole(u.ID, domain.RoleInstructor)

	_, _ = svc.Submit(context.Background(), ports.SubmitCourseInput{InstructorID: u.ID, Title: "A", Description: "a"})

	pending, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].InstructorEmail != "teacher@x.com" {
		t.Fatalf("unexpected pending list: %+v", pending)
	}
}
