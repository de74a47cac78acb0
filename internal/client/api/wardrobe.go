package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vibelook/vibelook/internal/client/models"
)

// AddClothingRequest is the JSON part of the add-item multipart request.
type AddClothingRequest struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype,omitempty"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

// Wardrobe fetches the user's wardrobe with its nested clothing list.
func (c *HTTPClient) Wardrobe(ctx context.Context, userID string) (*models.Wardrobe, error) {
	var out models.Wardrobe
	if err := c.getJSON(ctx, "/api/wardrobes/"+userID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PhotoMap fetches the item-id -> base64 photo mapping. The backend keys the
// JSON object with stringified identifiers; entries whose key does not parse
// are skipped rather than failing the whole map.
func (c *HTTPClient) PhotoMap(ctx context.Context, userID string) (models.PhotoMap, error) {
	raw := map[string]string{}
	if err := c.getJSON(ctx, "/api/clothes/photos/"+userID, &raw); err != nil {
		return nil, err
	}

	out := make(models.PhotoMap, len(raw))
	for k, v := range raw {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		out[id] = v
	}
	return out, nil
}

// AddClothing uploads a new clothing item: a JSON description part plus an
// optional photo part. Returns the backend-assigned item record.
func (c *HTTPClient) AddClothing(ctx context.Context, userID string, req AddClothingRequest, filename string, file []byte) (*models.ClothingItem, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode clothing item: %w", err)
	}

	parts := []multipartPart{{field: "clothes", isJSON: true, payload: payload}}
	if len(file) > 0 {
		parts = append(parts, multipartPart{field: "file", filename: filename, payload: file})
	}

	body, err := c.sendMultipart(ctx, "/api/clothes/add/"+userID, parts)
	if err != nil {
		return nil, err
	}

	var out models.ClothingItem
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode added item: %w", err)
	}
	return &out, nil
}

// DeleteClothing removes an item by identifier.
func (c *HTTPClient) DeleteClothing(ctx context.Context, itemID int64) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/clothes/delete/"+strconv.FormatInt(itemID, 10), nil, nil)
}
