package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/vibelook/vibelook/internal/client/models"
)

// ProfileUpdateRequest is the full-payload body of a profile update. The
// backend replaces the stored profile wholesale, so every editable field is
// always present.
type ProfileUpdateRequest struct {
	ID              int64              `json:"id"`
	Firstname       string             `json:"firstname"`
	Lastname        string             `json:"lastname"`
	Email           string             `json:"email"`
	UserPreferences models.Preferences `json:"userPreferences"`
}

// Profile fetches the profile record.
func (c *HTTPClient) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	var out models.Profile
	if err := c.getJSON(ctx, "/api/profile/"+userID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the profile and returns the stored record.
func (c *HTTPClient) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*models.Profile, error) {
	var out models.Profile
	if err := c.sendJSON(ctx, http.MethodPut, "/api/profile/update", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfilePhoto fetches the raw profile photo bytes. A zero-length body is a
// valid response meaning "no photo"; callers substitute the placeholder.
func (c *HTTPClient) ProfilePhoto(ctx context.Context, userID string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/files/get-profile/"+userID, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// UploadProfilePhoto uploads a new profile photo and returns the URL or
// identifier string the backend answers with.
func (c *HTTPClient) UploadProfilePhoto(ctx context.Context, userID, filename string, data []byte) (string, error) {
	body, err := c.sendMultipart(ctx, "/api/files/profile/"+userID, []multipartPart{
		{field: "file", filename: filename, payload: data},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}
