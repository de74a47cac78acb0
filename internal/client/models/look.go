package models

// LookItem is a reference to a clothing item inside a look, carrying the
// denormalized name/category snapshot taken at suggestion time.
type LookItem struct {
	ClothingItemID int64  `json:"clothingItemId"`
	Name           string `json:"name"`
	Type           string `json:"type"`
}

// Look is an ordered outfit, either suggested (ephemeral) or saved
// (persisted by an explicit save action). Saving is one-way.
type Look struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt string     `json:"createdAt"`
	Items     []LookItem `json:"items"`

	// Images is the per-look ordered image sequence resolved from the photo
	// map. Unresolvable photos are dropped, not placeholder-substituted;
	// a look with zero images is still listed.
	Images []string `json:"-"`

	// Saving/Saved track the save control state. At most one save is in
	// flight per look, and Saved never reverts.
	Saving bool `json:"-"`
	Saved  bool `json:"-"`
}

// Key implements store.Identifiable.
func (l Look) Key() int64 { return l.ID }
