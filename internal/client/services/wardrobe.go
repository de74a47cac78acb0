package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/vibelook/vibelook/internal/client/api"
	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/client/store"
	"github.com/vibelook/vibelook/internal/common"
	"github.com/vibelook/vibelook/internal/imagex"
	"github.com/vibelook/vibelook/internal/logging"
)

// Identity exposes the authenticated user's identifier. An empty value
// means no one is logged in. The session holder satisfies this.
type Identity interface {
	UserID() string
}

// CategoryAll is the filter value that disables category filtering.
const CategoryAll = "All"

// AddItemInput carries the add-item form fields. Type and Color are
// required; FilePath is an optional local photo to attach.
type AddItemInput struct {
	Type     string
	Subtype  string
	Name     string
	Color    string
	FilePath string
}

// WardrobeService owns the wardrobe item list. Load replaces the list from
// the backend; Add and Delete are confirm-then-apply: the local list changes
// only after the backend accepts the mutation.
type WardrobeService interface {
	Load(ctx context.Context) error
	Items() []models.ClothingItem
	Filter(category string) []models.ClothingItem
	Add(ctx context.Context, input AddItemInput) (*models.ClothingItem, error)
	Delete(ctx context.Context, itemID int64) error
}

type wardrobeService struct {
	client   api.Client
	identity Identity
	log      logging.Logger

	items   *store.Collection[models.ClothingItem]
	loadSeq atomic.Uint64
	loadMu  sync.Mutex
}

// NewWardrobeService constructs a WardrobeService bound to the given API
// client and identity source.
func NewWardrobeService(client api.Client, identity Identity, log logging.Logger) WardrobeService {
	return &wardrobeService{
		client:   client,
		identity: identity,
		log:      log,
		items:    store.New[models.ClothingItem](),
	}
}

// Load fetches the wardrobe and the photo map in parallel and joins them.
// A photo-map failure degrades items to placeholders instead of failing the
// load. A load started before a newer one completes is discarded.
func (s *wardrobeService) Load(ctx context.Context) error {
	userID := s.identity.UserID()
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	seq := s.loadSeq.Add(1)

	var (
		wardrobe *models.Wardrobe
		photos   models.PhotoMap
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := s.client.Wardrobe(gctx, userID)
		if err != nil {
			return err
		}
		wardrobe = w
		return nil
	})
	g.Go(func() error {
		p, err := s.client.PhotoMap(gctx, userID)
		if err != nil {
			s.log.Warn(gctx, "photo map unavailable, using placeholders", "error", err)
			return nil
		}
		photos = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("wardrobe loading error: %w", err)
	}

	items := make([]models.ClothingItem, 0, len(wardrobe.Clothes))
	for _, item := range wardrobe.Clothes {
		item.Image = resolveItemImage(item, photos)
		items = append(items, item)
	}

	// The check and the Reset happen under one lock so a newer load
	// finishing first can never be overwritten by this one.
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.loadSeq.Load() != seq {
		return nil
	}
	s.items.Reset(items)
	return nil
}

func (s *wardrobeService) Items() []models.ClothingItem {
	return s.items.Items()
}

// Filter returns the items of one category, preserving list order. Matching
// is case-insensitive; CategoryAll returns everything.
func (s *wardrobeService) Filter(category string) []models.ClothingItem {
	items := s.items.Items()
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return items
	}
	out := make([]models.ClothingItem, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Type, category) {
			out = append(out, item)
		}
	}
	return out
}

// Add validates the form, uploads the item with its optional photo, and
// appends the stored item locally once the backend accepts it. Validation
// failures produce no request at all.
func (s *wardrobeService) Add(ctx context.Context, input AddItemInput) (*models.ClothingItem, error) {
	userID := s.identity.UserID()
	if userID == "" {
		return nil, common.ErrNotAuthenticated
	}
	if input.Type == "" || input.Color == "" {
		return nil, fmt.Errorf("%w: type and color", ErrMissingRequiredField)
	}

	var (
		file     []byte
		filename string
	)
	if input.FilePath != "" {
		raw, err := os.ReadFile(input.FilePath)
		if err != nil {
			return nil, fmt.Errorf("photo reading error: %w", err)
		}
		file, err = imagex.PrepareUpload(raw)
		if err != nil {
			return nil, fmt.Errorf("photo preparing error: %w", err)
		}
		filename = filepath.Base(input.FilePath)
	}

	req := api.AddClothingRequest{
		Type:    input.Type,
		Subtype: input.Subtype,
		Name:    input.Name,
		Color:   input.Color,
	}
	item, err := s.client.AddClothing(ctx, userID, req, filename, file)
	if err != nil {
		return nil, fmt.Errorf("item adding error: %w", err)
	}

	item.Image = s.addedItemImage(*item, file)
	s.items.Append(*item)
	return item, nil
}

// addedItemImage resolves the image of a just-added item: the photo the
// backend returned, else the uploaded file rendered locally, else the
// category placeholder.
func (s *wardrobeService) addedItemImage(item models.ClothingItem, file []byte) string {
	if item.Photo != "" {
		if raw, err := base64.StdEncoding.DecodeString(item.Photo); err == nil {
			if uri, ok := imagex.DataURI(raw); ok {
				return uri
			}
		}
	}
	if uri, ok := imagex.DataURI(file); ok {
		return uri
	}
	return imagex.PlaceholderFor(item.Type)
}

// Delete removes the item on the backend, then locally. An id already gone
// from the local list is a no-op after a successful backend delete.
func (s *wardrobeService) Delete(ctx context.Context, itemID int64) error {
	if s.identity.UserID() == "" {
		return common.ErrNotAuthenticated
	}
	if err := s.client.DeleteClothing(ctx, itemID); err != nil {
		return fmt.Errorf("item deleting error: %w", err)
	}
	s.items.Remove(itemID)
	return nil
}
