package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/vibelook/vibelook/internal/client/api"
	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/client/store"
	"github.com/vibelook/vibelook/internal/common"
	"github.com/vibelook/vibelook/internal/logging"
)

// LookService owns the saved-looks list. Rename and Delete are local-only:
// the backend exposes no endpoints for them yet, so the changes last until
// the next reload.
type LookService interface {
	Load(ctx context.Context) error
	Looks() []models.Look
	Rename(lookID int64, name string) error
	Delete(lookID int64)
}

type lookService struct {
	client   api.Client
	identity Identity
	log      logging.Logger

	looks   *store.Collection[models.Look]
	loadSeq atomic.Uint64
	loadMu  sync.Mutex
}

// NewLookService constructs a LookService bound to the given API client and
// identity source.
func NewLookService(client api.Client, identity Identity, log logging.Logger) LookService {
	return &lookService{
		client:   client,
		identity: identity,
		log:      log,
		looks:    store.New[models.Look](),
	}
}

// Load fetches the saved looks and the photo map in parallel and joins
// them, dropping unresolvable photos from each look's image sequence.
func (s *lookService) Load(ctx context.Context) error {
	userID := s.identity.UserID()
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	seq := s.loadSeq.Add(1)

	looks, photos, err := fetchLooksWithPhotos(ctx, s.client, s.log, userID, s.client.SavedLooks)
	if err != nil {
		return fmt.Errorf("saved looks loading error: %w", err)
	}
	for i := range looks {
		looks[i].Saved = true
		looks[i].Images = resolveLookImages(looks[i], photos)
	}

	// Check and Reset under one lock so a newer load finishing first is
	// never overwritten by this one.
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.loadSeq.Load() != seq {
		return nil
	}
	s.looks.Reset(looks)
	return nil
}

func (s *lookService) Looks() []models.Look {
	return s.looks.Items()
}

// Rename changes a saved look's display name locally. An empty name is
// rejected; an unknown id reports ErrNotFound.
func (s *lookService) Rename(lookID int64, name string) error {
	if name == "" {
		return fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	if !s.looks.Update(lookID, func(l models.Look) models.Look {
		l.Name = name
		return l
	}) {
		return common.ErrNotFound
	}
	return nil
}

// Delete removes a saved look from the local list. A missing id is a no-op.
func (s *lookService) Delete(lookID int64) {
	s.looks.Remove(lookID)
}
