package models

import "strings"

// Preferences holds the user's style and color tag sets. Insertion order is
// not significant and duplicates are disallowed; both rules are enforced by
// the AddTag/RemoveTag helpers.
type Preferences struct {
	ColorPreferences []string `json:"colorPreferences"`
	StylePreferences []string `json:"stylePreferences"`
}

// Clone returns a deep copy. Edit snapshots rely on this so a cancelled edit
// restores the tag sets along with the scalar fields.
func (p Preferences) Clone() Preferences {
	out := Preferences{}
	if p.ColorPreferences != nil {
		out.ColorPreferences = append([]string{}, p.ColorPreferences...)
	}
	if p.StylePreferences != nil {
		out.StylePreferences = append([]string{}, p.StylePreferences...)
	}
	return out
}

// AddTag appends value to set unless it is already present (case-insensitive).
func AddTag(set []string, value string) []string {
	for _, v := range set {
		if strings.EqualFold(v, value) {
			return set
		}
	}
	return append(set, value)
}

// RemoveTag removes value from set; removing an absent value is a no-op.
func RemoveTag(set []string, value string) []string {
	for i, v := range set {
		if strings.EqualFold(v, value) {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return set
}

// Profile is the backend profile record. KeycloakID is the immutable
// identity reference; the counters and member status are read-only.
type Profile struct {
	ID                  int64        `json:"id"`
	KeycloakID          string       `json:"keycloakId"`
	Firstname           string       `json:"firstname"`
	Lastname            string       `json:"lastname"`
	Email               string       `json:"email"`
	Gender              string       `json:"gender,omitempty"`
	MemberStatus        string       `json:"memberStatus"`
	UserPreferences     *Preferences `json:"userPreferences,omitempty"`
	SavedLooksAmount    int          `json:"savedLooksAmount,omitempty"`
	WardrobeItemsAmount int          `json:"wardrobeItemsAmount,omitempty"`
	PhotoURL            string       `json:"photoUrl,omitempty"`
}

// Clone returns a deep copy, including the nested preference sets.
func (p Profile) Clone() Profile {
	out := p
	if p.UserPreferences != nil {
		prefs := p.UserPreferences.Clone()
		out.UserPreferences = &prefs
	}
	return out
}

// FormatEnum renders backend enum values for display: "NOT_SPECIFIED"
// becomes "Not Specified".
func FormatEnum(value string) string {
	if value == "" {
		return ""
	}
	words := strings.Split(value, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
