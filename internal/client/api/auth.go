package api

import (
	"context"
	"net/http"
)

// Gender values accepted by the registration endpoint.
const (
	GenderMale         = "MALE"
	GenderFemale       = "FEMALE"
	GenderNotSpecified = "NOT_SPECIFIED"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Gender    string `json:"gender"`
}

// LoginResponse is the token bundle returned on successful login. Only the
// access token is guaranteed.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. No response body is expected beyond the
// success status.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/register", req, nil)
}

// Login exchanges credentials for a token bundle.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
