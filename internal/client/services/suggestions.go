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

// SuggestionService owns the AI-suggested looks. Generate triggers a new
// suggestion and reloads the list; Save persists one look with an optimistic
// in-flight marker that rolls back on failure. Saved never reverts.
type SuggestionService interface {
	Load(ctx context.Context) error
	Looks() []models.Look
	Generate(ctx context.Context) error
	Save(ctx context.Context, lookID int64) error
}

type suggestionService struct {
	client   api.Client
	identity Identity
	log      logging.Logger

	looks   *store.Collection[models.Look]
	loadSeq atomic.Uint64

	mu         sync.Mutex
	generating bool
}

// NewSuggestionService constructs a SuggestionService bound to the given
// API client and identity source.
func NewSuggestionService(client api.Client, identity Identity, log logging.Logger) SuggestionService {
	return &suggestionService{
		client:   client,
		identity: identity,
		log:      log,
		looks:    store.New[models.Look](),
	}
}

// Load fetches the suggested looks and the photo map in parallel and joins
// them. Unresolvable photos are dropped from a look's image sequence; a
// photo-map failure leaves every look without images but still listed.
func (s *suggestionService) Load(ctx context.Context) error {
	userID := s.identity.UserID()
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	seq := s.loadSeq.Add(1)

	looks, photos, err := fetchLooksWithPhotos(ctx, s.client, s.log, userID, s.client.Suggestions)
	if err != nil {
		return fmt.Errorf("suggestions loading error: %w", err)
	}
	for i := range looks {
		looks[i].Images = resolveLookImages(looks[i], photos)
	}

	// Check and Reset under one lock so a newer load finishing first is
	// never overwritten by this one.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadSeq.Load() != seq {
		return nil
	}
	s.looks.Reset(looks)
	return nil
}

func (s *suggestionService) Looks() []models.Look {
	return s.looks.Items()
}

// Generate asks the backend for a fresh suggestion and reloads the list.
// At most one generation runs at a time; concurrent calls are rejected
// without a network request.
func (s *suggestionService) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}
	s.generating = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.generating = false
		s.mu.Unlock()
	}()

	userID := s.identity.UserID()
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	if _, err := s.client.GenerateSuggestion(ctx, userID); err != nil {
		return fmt.Errorf("suggestion generating error: %w", err)
	}
	return s.Load(ctx)
}

// Save persists one look. An already-saved look is a silent no-op; a save
// already in flight for the same look is rejected; saves for different
// looks proceed independently. The in-flight marker is applied
// optimistically and rolled back if the backend refuses.
func (s *suggestionService) Save(ctx context.Context, lookID int64) error {
	s.mu.Lock()
	look, ok := s.looks.Get(lookID)
	if !ok {
		s.mu.Unlock()
		return common.ErrNotFound
	}
	if look.Saved {
		s.mu.Unlock()
		return nil
	}
	if look.Saving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	op, ok := s.looks.ApplyOptimistic(lookID, func(l models.Look) models.Look {
		l.Saving = true
		return l
	})
	s.mu.Unlock()
	if !ok {
		return common.ErrNotFound
	}

	if err := s.client.SaveLook(ctx, lookID); err != nil {
		s.looks.Rollback(op)
		return fmt.Errorf("look saving error: %w", err)
	}
	s.looks.Update(lookID, func(l models.Look) models.Look {
		l.Saving = false
		l.Saved = true
		return l
	})
	s.looks.Commit(op)
	return nil
}
