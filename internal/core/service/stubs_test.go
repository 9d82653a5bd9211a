package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
	"github.com/ezkorea/course-marketplace/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User // by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateActiveRole(_ context.Context, id string, active domain.Role) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.ActiveRole = active
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// setRole is a test helper for seeding users in a given state.
func (r *stubUserRepo) setRole(id string, role domain.Role) {
	if u, ok := r.users[id]; ok {
		u.Role = role
	}
}

type stubApplicationRepo struct {
	users  *stubUserRepo
	apps   map[string]*domain.InstructorApplication
	nextID int
}

func newStubApplicationRepo(users *stubUserRepo) *stubApplicationRepo {
	return &stubApplicationRepo{users: users, apps: make(map[string]*domain.InstructorApplication)}
}

func cloneApp(a *domain.InstructorApplication) *domain.InstructorApplication {
	clone := *a
	if a.ResolvedAt != nil {
		ts := *a.ResolvedAt
		clone.ResolvedAt = &ts
	}
	return &clone
}

// Submit mirrors the real Mongo repository: insert plus role flip as one unit,
// pending uniqueness enforced as if by the partial index.
func (r *stubApplicationRepo) Submit(_ context.Context, app *domain.InstructorApplication) (*domain.InstructorApplication, *domain.User, error) {
	for _, existing := range r.apps {
		if existing.UserID == app.UserID && existing.Status == domain.ApplicationPending {
			return nil, nil, domain.ErrDuplicateApplication
		}
	}
	user, ok := r.users.users[app.UserID]
	if !ok {
		return nil, nil, domain.ErrUserNotFound
	}

	r.nextID++
	clone := cloneApp(app)
	clone.ID = fmt.Sprintf("app-%d", r.nextID)
	r.apps[clone.ID] = clone

	user.Role = domain.RolePendingInstructor
	return cloneApp(clone), cloneUser(user), nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.InstructorApplication, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return cloneApp(a), nil
}

func (r *stubApplicationRepo) ListPending(_ context.Context) ([]ports.PendingApplication, error) {
	var out []ports.PendingApplication
	for _, a := range r.apps {
		if a.Status != domain.ApplicationPending {
			continue
		}
		entry := ports.PendingApplication{Application: *cloneApp(a)}
		if u, ok := r.users.users[a.UserID]; ok {
			entry.ApplicantName = u.Name
			entry.ApplicantEmail = u.Email
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *stubApplicationRepo) Resolve(_ context.Context, id string, status domain.ApplicationStatus, role domain.Role) (*domain.InstructorApplication, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	if a.Status.Resolved() {
		return nil, domain.ErrApplicationResolved
	}

	now := time.Now().UTC()
	a.Status = status
	a.ResolvedAt = &now
	if u, ok := r.users.users[a.UserID]; ok {
		u.Role = role
	}
	return cloneApp(a), nil
}

func (r *stubApplicationRepo) CountPending(_ context.Context) (int64, error) {
	var n int64
	for _, a := range r.apps {
		if a.Status == domain.ApplicationPending {
			n++
		}
	}
	return n, nil
}

type stubCourseRepo struct {
	users   *stubUserRepo
	courses map[string]*domain.Course
	nextID  int
}

func newStubCourseRepo(users *stubUserRepo) *stubCourseRepo {
	return &stubCourseRepo{users: users, courses: make(map[string]*domain.Course)}
}

func cloneCourse(c *domain.Course) *domain.Course {
	clone := *c
	if c.ResolvedAt != nil {
		ts := *c.ResolvedAt
		clone.ResolvedAt = &ts
	}
	return &clone
}

func (r *stubCourseRepo) Create(_ context.Context, course *domain.Course) (*domain.Course, error) {
	r.nextID++
	clone := cloneCourse(course)
	clone.ID = fmt.Sprintf("course-%d", r.nextID)
	r.courses[clone.ID] = clone
	return cloneCourse(clone), nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return cloneCourse(c), nil
}

func (r *stubCourseRepo) ListPending(_ context.Context) ([]ports.PendingCourse, error) {
	var out []ports.PendingCourse
	for _, c := range r.courses {
		if c.Status != domain.CoursePending {
			continue
		}
		entry := ports.PendingCourse{Course: *cloneCourse(c)}
		if u, ok := r.users.users[c.InstructorID]; ok {
			entry.InstructorName = u.Name
			entry.InstructorEmail = u.Email
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *stubCourseRepo) UpdateStatus(_ context.Context, id string, status domain.CourseStatus) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	if c.Status != domain.CoursePending {
		return nil, domain.ErrCourseResolved
	}
	now := time.Now().UTC()
	c.Status = status
	c.ResolvedAt = &now
	return cloneCourse(c), nil
}

func (r *stubCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.courses)), nil
}

func (r *stubCourseRepo) CountPending(_ context.Context) (int64, error) {
	var n int64
	for _, c := range r.courses {
		if c.Status == domain.CoursePending {
			n++
		}
	}
	return n, nil
}

type stubEventRepo struct {
	events []*domain.RoleEvent
}

func (r *stubEventRepo) Insert(_ context.Context, e *domain.RoleEvent) error {
	clone := *e
	r.events = append(r.events, &clone)
	return nil
}

func (r *stubEventRepo) ListRecent(_ context.Context, limit int) ([]*domain.RoleEvent, error) {
	out := make([]*domain.RoleEvent, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		clone := *r.events[i]
		out = append(out, &clone)
	}
	return out, nil
}

type stubLocker struct {
	held       map[string]bool
	denyNext   bool
	acquireErr error
}

func newStubLocker() *stubLocker {
	return &stubLocker{held: make(map[string]bool)}
}

func (l *stubLocker) Acquire(_ context.Context, userID string) (bool, error) {
	if l.acquireErr != nil {
		return false, l.acquireErr
	}
	if l.denyNext || l.held[userID] {
		return false, nil
	}
	l.held[userID] = true
	return true, nil
}

func (l *stubLocker) Release(_ context.Context, userID string) error {
	delete(l.held, userID)
	return nil
}

type stubAudit struct {
	events []domain.RoleEvent
}

func (a *stubAudit) Record(e domain.RoleEvent) {
	a.events = append(a.events, e)
}
