package services

import (
	"context"
	"fmt"

	"github.com/vibelook/vibelook/internal/client/api"
	"github.com/vibelook/vibelook/internal/client/session"
)

// AuthService defines the authentication operations of the CLI.
//
// Contract:
//   - Register: create a new account on the backend.
//   - Login: exchange credentials for tokens and persist the session pair
//     (access token + user id decoded from it) atomically.
//   - Logout: clear the durable local session.
//
// The session holder is the single shared mutable resource of the client;
// this service is its sole writer.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
}

// RegisterInput carries the registration form fields. An empty Gender
// defaults to NOT_SPECIFIED.
type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  []byte
	Gender    string
}

type authService struct {
	client  api.Client
	session *session.Session
}

// NewAuthService constructs an AuthService bound to the given API client and
// session holder.
func NewAuthService(client api.Client, sess *session.Session) AuthService {
	return &authService{client: client, session: sess}
}

func (a *authService) Register(ctx context.Context, input RegisterInput) error {
	if input.Email == "" || len(input.Password) == 0 {
		return fmt.Errorf("%w: email and password", ErrMissingRequiredField)
	}
	gender := input.Gender
	switch gender {
	case api.GenderMale, api.GenderFemale, api.GenderNotSpecified:
	case "":
		gender = api.GenderNotSpecified
	default:
		return fmt.Errorf("%w: unknown gender %q", ErrMissingRequiredField, input.Gender)
	}

	req := api.RegisterRequest{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Email:     input.Email,
		Password:  string(input.Password),
		Gender:    gender,
	}
	if err := a.client.Register(ctx, req); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	resp, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if resp.AccessToken == "" {
		return ErrNoAccessToken
	}
	if err := a.session.Save(resp.AccessToken, resp.RefreshToken); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear()
}
