package domain

import "time"

// Role represents a user's position in the instructor approval lifecycle.
type Role string

const (
	RoleStudent           Role = "student"
	RolePendingInstructor Role = "pending_instructor"
	RoleInstructor        Role = "instructor"
	// RoleAdmin exists only through startup seeding and never participates
	// in the transition table below.
	RoleAdmin Role = "admin"
)

// roleTransitions defines the allowed role state machine transitions.
// The only path into instructor is through an approved application;
// rejection sends the applicant back to student so they can reapply.
var roleTransitions = map[Role][]Role{
	RoleStudent:           {RolePendingInstructor},
	RolePendingInstructor: {RoleInstructor, RoleStudent},
}

// CanTransitionTo reports whether a transition from the current role to next is valid.
func (r Role) CanTransitionTo(next Role) bool {
	for _, allowed := range roleTransitions[r] {
		if allowed == next {
			return true
		}
	}
	return false
}

// User models an account in the marketplace.
//
// ActiveRole is the self-service view toggle and is only meaningful once
// Role is instructor; it never grants anything Role does not.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio,omitempty"`
	Role         Role      `json:"role"`
	ActiveRole   Role      `json:"active_role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsInstructor reports whether the account has been approved as an instructor.
func (u *User) IsInstructor() bool {
	return u.Role == RoleInstructor
}

// ToggledActiveRole returns the opposite view of the current ActiveRole.
func (u *User) ToggledActiveRole() Role {
	if u.ActiveRole == RoleInstructor {
		return RoleStudent
	}
	return RoleInstructor
}
