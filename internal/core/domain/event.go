package domain

import "time"

// Role event names recorded in the audit trail.
const (
	EventApplicationSubmitted = "application_submitted"
	EventApplicationApproved  = "application_approved"
	EventApplicationRejected  = "application_rejected"
	EventActiveRoleToggled    = "active_role_toggled"
)

// RoleEvent is an audit record of a role transition or approval decision.
type RoleEvent struct {
	UserID    string    `json:"user_id"`
	Event     string    `json:"event"`
	FromRole  Role      `json:"from_role"`
	ToRole    Role      `json:"to_role"`
	Actor     string    `json:"actor"` // "self" or the admin's email
	Timestamp time.Time `json:"timestamp"`
}
