package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/vibelook/vibelook/internal/client/api"
	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/common"
	"github.com/vibelook/vibelook/internal/imagex"
	"github.com/vibelook/vibelook/internal/logging"
)

// PreferenceKind selects which tag set a preference mutation targets.
type PreferenceKind string

const (
	PreferenceStyle PreferenceKind = "style"
	PreferenceColor PreferenceKind = "color"
)

// ProfileService owns the profile record and its photo. Edits work on a
// draft snapshot: BeginEdit clones the profile, the setters mutate only the
// draft, and Save replaces the stored profile on backend success while
// CancelEdit discards everything, tag sets included.
type ProfileService interface {
	Load(ctx context.Context) error
	Profile() (models.Profile, bool)
	Photo() string

	Editing() bool
	BeginEdit() error
	CancelEdit()
	Draft() (models.Profile, bool)
	SetFirstname(v string) error
	SetLastname(v string) error
	SetEmail(v string) error
	AddPreference(kind PreferenceKind, value string) error
	RemovePreference(kind PreferenceKind, value string) error
	Save(ctx context.Context) error

	UploadPhoto(ctx context.Context, path string) error
}

type profileService struct {
	client   api.Client
	identity Identity
	log      logging.Logger

	loadSeq atomic.Uint64

	mu      sync.RWMutex
	profile *models.Profile
	photo   string
	editing bool
	draft   *models.Profile
}

// NewProfileService constructs a ProfileService bound to the given API
// client and identity source.
func NewProfileService(client api.Client, identity Identity, log logging.Logger) ProfileService {
	return &profileService{client: client, identity: identity, log: log}
}

// Load fetches the profile, then its photo. A missing, empty, or
// undecodable photo degrades to the avatar placeholder; the profile itself
// failing fails the load.
func (s *profileService) Load(ctx context.Context) error {
	userID := s.identity.UserID()
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	seq := s.loadSeq.Add(1)

	profile, err := s.client.Profile(ctx, userID)
	if err != nil {
		return fmt.Errorf("profile loading error: %w", err)
	}

	photoOwner := profile.KeycloakID
	if photoOwner == "" {
		photoOwner = userID
	}
	photo := imagex.AvatarPlaceholder
	raw, err := s.client.ProfilePhoto(ctx, photoOwner)
	if err != nil {
		s.log.Warn(ctx, "profile photo unavailable, using placeholder", "error", err)
	} else if uri, ok := imagex.DataURI(raw); ok {
		photo = uri
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadSeq.Load() != seq {
		return nil
	}
	s.profile = profile
	s.photo = photo
	return nil
}

func (s *profileService) Profile() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return models.Profile{}, false
	}
	return s.profile.Clone(), true
}

func (s *profileService) Photo() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.photo == "" {
		return imagex.AvatarPlaceholder
	}
	return s.photo
}

func (s *profileService) Editing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editing
}

// BeginEdit snapshots the loaded profile into a draft. Loading the profile
// first is required.
func (s *profileService) BeginEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return common.ErrNotFound
	}
	draft := s.profile.Clone()
	if draft.UserPreferences == nil {
		draft.UserPreferences = &models.Preferences{}
	}
	s.draft = &draft
	s.editing = true
	return nil
}

// CancelEdit discards the draft; the stored profile is untouched.
func (s *profileService) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
	s.editing = false
}

func (s *profileService) Draft() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.draft == nil {
		return models.Profile{}, false
	}
	return s.draft.Clone(), true
}

func (s *profileService) SetFirstname(v string) error {
	return s.patchDraft(func(d *models.Profile) { d.Firstname = v })
}

func (s *profileService) SetLastname(v string) error {
	return s.patchDraft(func(d *models.Profile) { d.Lastname = v })
}

func (s *profileService) SetEmail(v string) error {
	return s.patchDraft(func(d *models.Profile) { d.Email = v })
}

// AddPreference adds a tag to the draft's style or color set. Duplicates
// are ignored case-insensitively.
func (s *profileService) AddPreference(kind PreferenceKind, value string) error {
	if value == "" {
		return fmt.Errorf("%w: preference value", ErrMissingRequiredField)
	}
	return s.patchDraft(func(d *models.Profile) {
		switch kind {
		case PreferenceColor:
			d.UserPreferences.ColorPreferences = models.AddTag(d.UserPreferences.ColorPreferences, value)
		default:
			d.UserPreferences.StylePreferences = models.AddTag(d.UserPreferences.StylePreferences, value)
		}
	})
}

// RemovePreference removes a tag from the draft; an absent tag is a no-op.
func (s *profileService) RemovePreference(kind PreferenceKind, value string) error {
	return s.patchDraft(func(d *models.Profile) {
		switch kind {
		case PreferenceColor:
			d.UserPreferences.ColorPreferences = models.RemoveTag(d.UserPreferences.ColorPreferences, value)
		default:
			d.UserPreferences.StylePreferences = models.RemoveTag(d.UserPreferences.StylePreferences, value)
		}
	})
}

func (s *profileService) patchDraft(patch func(*models.Profile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing || s.draft == nil {
		return ErrNotEditing
	}
	patch(s.draft)
	return nil
}

// Save submits the whole draft as a full-payload update. On success the
// stored profile is replaced and the edit session ends; on failure the
// draft stays live so the user can retry or cancel.
func (s *profileService) Save(ctx context.Context) error {
	s.mu.RLock()
	if !s.editing || s.draft == nil {
		s.mu.RUnlock()
		return ErrNotEditing
	}
	draft := s.draft.Clone()
	s.mu.RUnlock()

	req := api.ProfileUpdateRequest{
		ID:        draft.ID,
		Firstname: draft.Firstname,
		Lastname:  draft.Lastname,
		Email:     draft.Email,
	}
	if draft.UserPreferences != nil {
		req.UserPreferences = draft.UserPreferences.Clone()
	}
	updated, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return fmt.Errorf("profile saving error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = updated
	s.draft = nil
	s.editing = false
	return nil
}

// UploadPhoto reads and downsizes a local photo, uploads it, and points the
// displayed photo at the URL the backend returns. It does not require an
// edit session.
func (s *profileService) UploadPhoto(ctx context.Context, path string) error {
	userID := s.identity.UserID()
	if userID == "" {
		return common.ErrNotAuthenticated
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("photo reading error: %w", err)
	}
	data, err := imagex.PrepareUpload(raw)
	if err != nil {
		return fmt.Errorf("photo preparing error: %w", err)
	}
	url, err := s.client.UploadProfilePhoto(ctx, userID, filepath.Base(path), data)
	if err != nil {
		return fmt.Errorf("photo uploading error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if uri, ok := imagex.DataURI(data); ok {
		s.photo = uri
	}
	if s.profile != nil {
		s.profile.PhotoURL = url
	}
	return nil
}
