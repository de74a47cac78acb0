package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/vibelook/vibelook/internal/client/models"
)

// Suggestions fetches the current AI-suggested looks.
func (c *HTTPClient) Suggestions(ctx context.Context, userID string) ([]models.Look, error) {
	var out []models.Look
	if err := c.getJSON(ctx, "/api/looks/ai-suggestion/"+userID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateSuggestion triggers backend outfit generation and returns the
// plain-text status. The backend enforces at most one generation per user
// per calendar day; excess calls come back as a backend error.
func (c *HTTPClient) GenerateSuggestion(ctx context.Context, userID string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/ai/suggestion/"+userID, nil)
	if err != nil {
		return "", err
	}
	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// SaveLook persists a suggested look.
func (c *HTTPClient) SaveLook(ctx context.Context, lookID int64) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/looks/save-look/"+strconv.FormatInt(lookID, 10), nil, nil)
}

// SavedLooks fetches the user's persisted looks.
func (c *HTTPClient) SavedLooks(ctx context.Context, userID string) ([]models.Look, error) {
	var out []models.Look
	if err := c.getJSON(ctx, "/api/looks/saved-looks/"+userID, &out); err != nil {
		return nil, err
	}
	return out, nil
}
