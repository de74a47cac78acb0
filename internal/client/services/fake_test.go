package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/vibelook/vibelook/internal/client/api"
	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/logging"
)

// fakeClient implements api.Client with per-method hooks. A nil hook
// returns zero values.
type fakeClient struct {
	register           func(ctx context.Context, req api.RegisterRequest) error
	login              func(ctx context.Context, email, password string) (*api.LoginResponse, error)
	profile            func(ctx context.Context, userID string) (*models.Profile, error)
	updateProfile      func(ctx context.Context, req api.ProfileUpdateRequest) (*models.Profile, error)
	profilePhoto       func(ctx context.Context, userID string) ([]byte, error)
	uploadProfilePhoto func(ctx context.Context, userID, filename string, data []byte) (string, error)
	wardrobe           func(ctx context.Context, userID string) (*models.Wardrobe, error)
	photoMap           func(ctx context.Context, userID string) (models.PhotoMap, error)
	addClothing        func(ctx context.Context, userID string, req api.AddClothingRequest, filename string, file []byte) (*models.ClothingItem, error)
	deleteClothing     func(ctx context.Context, itemID int64) error
	suggestions        func(ctx context.Context, userID string) ([]models.Look, error)
	generateSuggestion func(ctx context.Context, userID string) (string, error)
	saveLook           func(ctx context.Context, lookID int64) error
	savedLooks         func(ctx context.Context, userID string) ([]models.Look, error)
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) error {
	if f.register == nil {
		return nil
	}
	return f.register(ctx, req)
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	if f.login == nil {
		return &api.LoginResponse{}, nil
	}
	return f.login(ctx, email, password)
}

func (f *fakeClient) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	if f.profile == nil {
		return &models.Profile{}, nil
	}
	return f.profile(ctx, userID)
}

func (f *fakeClient) UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*models.Profile, error) {
	if f.updateProfile == nil {
		return &models.Profile{}, nil
	}
	return f.updateProfile(ctx, req)
}

func (f *fakeClient) ProfilePhoto(ctx context.Context, userID string) ([]byte, error) {
	if f.profilePhoto == nil {
		return nil, nil
	}
	return f.profilePhoto(ctx, userID)
}

func (f *fakeClient) UploadProfilePhoto(ctx context.Context, userID, filename string, data []byte) (string, error) {
	if f.uploadProfilePhoto == nil {
		return "", nil
	}
	return f.uploadProfilePhoto(ctx, userID, filename, data)
}

func (f *fakeClient) Wardrobe(ctx context.Context, userID string) (*models.Wardrobe, error) {
	if f.wardrobe == nil {
		return &models.Wardrobe{}, nil
	}
	return f.wardrobe(ctx, userID)
}

func (f *fakeClient) PhotoMap(ctx context.Context, userID string) (models.PhotoMap, error) {
	if f.photoMap == nil {
		return models.PhotoMap{}, nil
	}
	return f.photoMap(ctx, userID)
}

func (f *fakeClient) AddClothing(ctx context.Context, userID string, req api.AddClothingRequest, filename string, file []byte) (*models.ClothingItem, error) {
	if f.addClothing == nil {
		return &models.ClothingItem{}, nil
	}
	return f.addClothing(ctx, userID, req, filename, file)
}

func (f *fakeClient) DeleteClothing(ctx context.Context, itemID int64) error {
	if f.deleteClothing == nil {
		return nil
	}
	return f.deleteClothing(ctx, itemID)
}

func (f *fakeClient) Suggestions(ctx context.Context, userID string) ([]models.Look, error) {
	if f.suggestions == nil {
		return nil, nil
	}
	return f.suggestions(ctx, userID)
}

func (f *fakeClient) GenerateSuggestion(ctx context.Context, userID string) (string, error) {
	if f.generateSuggestion == nil {
		return "", nil
	}
	return f.generateSuggestion(ctx, userID)
}

func (f *fakeClient) SaveLook(ctx context.Context, lookID int64) error {
	if f.saveLook == nil {
		return nil
	}
	return f.saveLook(ctx, lookID)
}

func (f *fakeClient) SavedLooks(ctx context.Context, userID string) ([]models.Look, error) {
	if f.savedLooks == nil {
		return nil, nil
	}
	return f.savedLooks(ctx, userID)
}

// fakeIdentity satisfies Identity with a fixed user id.
type fakeIdentity string

func (f fakeIdentity) UserID() string { return string(f) }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
