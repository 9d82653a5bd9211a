package domain

import "testing"

func TestRole_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to Role
		want     bool
	}{
		{RoleStudent, RolePendingInstructor, true},
		{RolePendingInstructor, RoleInstructor, true},
		{RolePendingInstructor, RoleStudent, true},
		{RoleStudent, RoleInstructor, false},
		{RoleInstructor, RoleStudent, false},
		{RoleInstructor, RolePendingInstructor, false},
		{RoleAdmin, RoleInstructor, false},
		{RoleStudent, RoleAdmin, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestUser_ToggledActiveRole(t *testing.T) {
	u := &User{Role: RoleInstructor, ActiveRole: RoleInstructor}
	if got := u.ToggledActiveRole(); got != RoleStudent {
		t.Fatalf("expected student, got %s", got)
	}

	u.ActiveRole = RoleStudent
	if got := u.ToggledActiveRole(); got != RoleInstructor {
		t.Fatalf("expected instructor, got %s", got)
	}
}

func TestApplicationStatus_Resolved(t *testing.T) {
	if ApplicationPending.Resolved() {
		t.Fatalf("pending must not be resolved")
	}
	if !ApplicationApproved.Resolved() || !ApplicationRejected.Resolved() {
		t.Fatalf("approved and rejected must be resolved")
	}
}
