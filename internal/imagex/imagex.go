// Package imagex resolves clothing and profile photos into displayable image
// sources: it sniffs payload formats from leading bytes, builds data URIs,
// and selects category-keyed placeholders when no usable photo exists.
package imagex

import (
	"encoding/base64"
	"strings"
)

// Format is the sniffed image payload format. Unknown payloads are never
// guessed at; callers substitute a placeholder instead.
type Format int

const (
	FormatUnknown Format = iota
	FormatJPEG
	FormatPNG
)

// MinPhotoBytes is the sanity threshold for a decoded photo payload. No real
// JPEG or PNG header plus frame fits below this; shorter payloads are
// treated as broken and fall back to a placeholder.
const MinPhotoBytes = 64

var (
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47}
)

// Detect inspects the leading bytes of data and returns its format.
func Detect(data []byte) Format {
	if hasPrefix(data, jpegSignature) {
		return FormatJPEG
	}
	if hasPrefix(data, pngSignature) {
		return FormatPNG
	}
	return FormatUnknown
}

func hasPrefix(data, sig []byte) bool {
	if len(data) < len(sig) {
		return false
	}
	for i := range sig {
		if data[i] != sig[i] {
			return false
		}
	}
	return true
}

// MIME returns the media type for the format, or "" for FormatUnknown.
func (f Format) MIME() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	default:
		return ""
	}
}

// DataURI encodes data as a displayable data URI. It reports false when the
// payload is undersized or its format cannot be identified; callers then use
// a placeholder rather than guessing an encoding prefix.
func DataURI(data []byte) (string, bool) {
	if len(data) < MinPhotoBytes {
		return "", false
	}
	mime := Detect(data).MIME()
	if mime == "" {
		return "", false
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), true
}

// AvatarPlaceholder is the fixed fallback for a missing or empty profile
// photo.
const AvatarPlaceholder = "/resources/avatar-placeholder.png"

// categoryPlaceholders maps normalized wardrobe categories to their fallback
// images. Anything absent here lands in the "Other" bucket.
var categoryPlaceholders = map[string]string{
	"shirts":      "/resources/placeholders/shirts.png",
	"pants":       "/resources/placeholders/pants.png",
	"shoes":       "/resources/placeholders/shoes.png",
	"accessories": "/resources/placeholders/accessories.png",
}

// OtherPlaceholder is the fallback for items with an absent or unrecognized
// category.
const OtherPlaceholder = "/resources/placeholders/other.png"

// PlaceholderFor returns the deterministic placeholder image for a wardrobe
// category. The match is case-insensitive.
func PlaceholderFor(category string) string {
	if p, ok := categoryPlaceholders[strings.ToLower(strings.TrimSpace(category))]; ok {
		return p
	}
	return OtherPlaceholder
}
