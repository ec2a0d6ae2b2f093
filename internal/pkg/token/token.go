package token

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
)

// Identity is the caller identity carried by a parsed employee token.
// There is no per-employee credential: any employee id paired with the
// process-wide secret is accepted, so an Identity is always considered
// authenticated once constructed.
type Identity struct {
	EmployeeID string
}

var (
	ErrInvalidHeader = errors.New("Invalid authorization header")
	ErrBadFormat     = errors.New("Token format must be employeeId:SECRET")
	ErrInvalidSecret = errors.New("Invalid secret")
)

const bearerPrefix = "Bearer "

// Parse validates an Authorization header against the configured shared
// secret and returns the caller identity.
//
// An empty header yields (nil, nil): the caller is anonymous and the
// authorization gate decides what to do with that. A present but malformed
// or mismatched header is an error.
func Parse(header, secret string) (*Identity, error) {
	if header == "" {
		return nil, nil
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, ErrInvalidHeader
	}
	raw := header[len(bearerPrefix):]
	employeeID, got, found := strings.Cut(raw, ":")
	if !found {
		return nil, ErrBadFormat
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
		return nil, ErrInvalidSecret
	}
	return &Identity{EmployeeID: employeeID}, nil
}

type contextKey struct{}

// NewContext returns a context carrying the identity.
func NewContext(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the identity attached by the auth middleware.
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok && id != nil
}
