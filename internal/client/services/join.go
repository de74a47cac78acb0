package services

import (
	"context"
	"encoding/base64"

	"golang.org/x/sync/errgroup"

	"github.com/vibelook/vibelook/internal/client/api"
	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/imagex"
	"github.com/vibelook/vibelook/internal/logging"
)

// decodePhoto resolves one photo-map entry to a displayable data URI. It
// reports false when the entry is absent, malformed, undersized, or of an
// unidentifiable format; the caller decides between a placeholder (wardrobe)
// and dropping the image (looks).
func decodePhoto(photos models.PhotoMap, itemID int64) (string, bool) {
	encoded, ok := photos[itemID]
	if !ok {
		return "", false
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}
	return imagex.DataURI(raw)
}

// resolveItemImage joins one clothing item to the photo map. An item always
// ends up with a non-empty image: the decoded photo, or its category
// placeholder.
func resolveItemImage(item models.ClothingItem, photos models.PhotoMap) string {
	if uri, ok := decodePhoto(photos, item.ID); ok {
		return uri
	}
	return imagex.PlaceholderFor(item.Type)
}

// fetchLooksWithPhotos runs a look fetch and the photo-map fetch in
// parallel. The photo map is best effort: its failure is logged and an
// empty map returned, so the looks are still shown, just without images.
func fetchLooksWithPhotos(ctx context.Context, client api.Client, log logging.Logger, userID string, fetch func(context.Context, string) ([]models.Look, error)) ([]models.Look, models.PhotoMap, error) {
	var (
		looks  []models.Look
		photos models.PhotoMap
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := fetch(gctx, userID)
		if err != nil {
			return err
		}
		looks = l
		return nil
	})
	g.Go(func() error {
		p, err := client.PhotoMap(gctx, userID)
		if err != nil {
			log.Warn(gctx, "photo map unavailable, looks shown without images", "error", err)
			return nil
		}
		photos = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return looks, photos, nil
}

// resolveLookImages builds the ordered image sequence for a look. Items with
// no resolvable photo are dropped rather than placeholder-substituted; a
// look may legitimately end up with zero images and is still shown.
func resolveLookImages(look models.Look, photos models.PhotoMap) []string {
	images := make([]string, 0, len(look.Items))
	for _, ref := range look.Items {
		if uri, ok := decodePhoto(photos, ref.ClothingItemID); ok {
			images = append(images, uri)
		}
	}
	return images
}
