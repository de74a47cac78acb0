// Package models defines the wardrobe, look, and profile entities exchanged
// with the VibeLook backend, plus the client-side fields derived from them.
package models

// ClothingItem is a single garment in a user's wardrobe. The backend assigns
// the identifier on upload; items are never edited in place, only added and
// deleted.
type ClothingItem struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	Subtype    string `json:"subtype,omitempty"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	WardrobeID int64  `json:"wardrobeId,omitempty"`

	// Photo is the base64 payload some responses inline (notably the
	// add-item response). List responses leave it empty and the photo map
	// is fetched separately.
	Photo string `json:"photo,omitempty"`

	// Image is resolved client-side from the photo map: a data URI when a
	// usable photo exists, otherwise a category placeholder. Never empty
	// after a load.
	Image string `json:"-"`
}

// Key implements store.Identifiable.
func (c ClothingItem) Key() int64 { return c.ID }

// Wardrobe is the backend's wardrobe record with its nested clothing list.
type Wardrobe struct {
	ID      int64          `json:"id"`
	UserID  string         `json:"userId,omitempty"`
	Clothes []ClothingItem `json:"clothes"`
}

// PhotoMap maps a clothing item identifier to its base64-encoded photo
// payload. It may be a strict subset of the item list.
type PhotoMap map[int64]string
