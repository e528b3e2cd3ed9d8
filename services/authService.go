package services

import (
	"context"

	"github.com/unicsmcr/hs_employees/entities"
)

// AuthService is the service for creating accounts and signing in against the employees API
type AuthService interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*entities.Session, error)
}
