package rest

import (
	"context"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/entities"
	"github.com/unicsmcr/hs_employees/services"
	"go.uber.org/zap"
)

const (
	signupPath = "/users/signup"
	loginPath  = "/users/login"
)

type credentials struct {
	Username string `json:"f_userName"`
	Password string `json:"f_Pwd"`
}

type loginRes struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type authService struct {
	logger *zap.Logger
	client *Client
}

// NewAuthService creates a new AuthService backed by the employees API
func NewAuthService(logger *zap.Logger, client *Client) services.AuthService {
	return &authService{
		logger: logger,
		client: client,
	}
}

func (s *authService) Signup(ctx context.Context, username, password string) error {
	res, err := s.client.Post(ctx, signupPath, JSON(credentials{Username: username, Password: password}), "")
	if err != nil {
		return err
	}
	DiscardResponse(res)

	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	res, err := s.client.Post(ctx, loginPath, JSON(credentials{Username: username, Password: password}), "")
	if err != nil {
		return nil, err
	}

	var body loginRes
	err = DecodeResponse(res, &body)
	if err != nil {
		return nil, err
	}

	if body.Token == "" {
		return nil, errors.Wrap(services.ErrUnavailable, "login response did not contain a token")
	}

	displayName := body.Username
	if displayName == "" {
		displayName = username
	}

	return &entities.Session{
		Token:       body.Token,
		DisplayName: displayName,
	}, nil
}
