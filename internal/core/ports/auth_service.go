package ports

import (
	"context"

	"github.com/ezkorea/course-marketplace/internal/core/domain"
)

// SignupInput carries the data needed to create a student account.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Bio      string
}

// AuthService implements account creation and credential verification.
type AuthService interface {
	// Signup creates a new student account. The response user never carries
	// the password hash.
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// AdminLogin is Login restricted to admin accounts; the issued token
	// carries the is_admin claim.
	AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser returns the fresh server-side record for the given id.
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
}
