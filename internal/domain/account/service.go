package account

import "context"

type AccountService interface {
	// Signup creates a user identity with a hashed password.
	Signup(ctx context.Context, req SignupRequest) (User, error)

	// Login checks email+password. It returns no credential: the employee
	// API is gated by the shared secret, not by login state.
	Login(ctx context.Context, req LoginRequest) error
}
