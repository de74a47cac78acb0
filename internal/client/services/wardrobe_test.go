package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibelook/vibelook/internal/client/api"
	"github.com/vibelook/vibelook/internal/client/models"
	"github.com/vibelook/vibelook/internal/common"
	"github.com/vibelook/vibelook/internal/imagex"
)

func jpegBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestWardrobeLoadJoinsPhotos(t *testing.T) {
	encoded := jpegBase64(t)
	client := &fakeClient{
		wardrobe: func(ctx context.Context, userID string) (*models.Wardrobe, error) {
			assert.Equal(t, "user-1", userID)
			return &models.Wardrobe{ID: 7, UserID: "user-1", Clothes: []models.ClothingItem{
				{ID: 1, Type: "Shirts", Name: "Oxford"},
				{ID: 2, Type: "Shoes", Name: "Sneakers"},
			}}, nil
		},
		photoMap: func(ctx context.Context, userID string) (models.PhotoMap, error) {
			return models.PhotoMap{1: encoded}, nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	require.NoError(t, svc.Load(context.Background()))

	items := svc.Items()
	require.Len(t, items, 2)
	assert.True(t, strings.HasPrefix(items[0].Image, "data:image/jpeg;base64,"))
	assert.Equal(t, imagex.PlaceholderFor("Shoes"), items[1].Image)
}

func TestWardrobeLoadMalformedPhotoDegradesOneItem(t *testing.T) {
	encoded := jpegBase64(t)
	client := &fakeClient{
		wardrobe: func(ctx context.Context, userID string) (*models.Wardrobe, error) {
			return &models.Wardrobe{Clothes: []models.ClothingItem{
				{ID: 1, Type: "Pants"},
				{ID: 2, Type: "Shirts"},
			}}, nil
		},
		photoMap: func(ctx context.Context, userID string) (models.PhotoMap, error) {
			return models.PhotoMap{1: "%%%not-base64%%%", 2: encoded}, nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	require.NoError(t, svc.Load(context.Background()))

	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, imagex.PlaceholderFor("Pants"), items[0].Image)
	assert.True(t, strings.HasPrefix(items[1].Image, "data:image/jpeg;base64,"))
}

func TestWardrobeLoadPhotoMapFailureUsesPlaceholders(t *testing.T) {
	client := &fakeClient{
		wardrobe: func(ctx context.Context, userID string) (*models.Wardrobe, error) {
			return &models.Wardrobe{Clothes: []models.ClothingItem{{ID: 1, Type: "Accessories"}}}, nil
		},
		photoMap: func(ctx context.Context, userID string) (models.PhotoMap, error) {
			return nil, errors.New("boom")
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	require.NoError(t, svc.Load(context.Background()))

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, imagex.PlaceholderFor("Accessories"), items[0].Image)
}

func TestWardrobeLoadItemFetchFailure(t *testing.T) {
	client := &fakeClient{
		wardrobe: func(ctx context.Context, userID string) (*models.Wardrobe, error) {
			return nil, errors.New("boom")
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.Empty(t, svc.Items())
}

func TestWardrobeLoadDiscardsStaleCompletion(t *testing.T) {
	firstStarted := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	client := &fakeClient{
		wardrobe: func(ctx context.Context, userID string) (*models.Wardrobe, error) {
			if calls.Add(1) == 1 {
				close(firstStarted)
				<-release
				return &models.Wardrobe{Clothes: []models.ClothingItem{{ID: 1, Type: "Shirts", Name: "Stale"}}}, nil
			}
			return &models.Wardrobe{Clothes: []models.ClothingItem{{ID: 2, Type: "Pants", Name: "Fresh"}}}, nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	done := make(chan error, 1)
	go func() { done <- svc.Load(context.Background()) }()

	select {
	case <-firstStarted:
	case <-time.After(time.Second):
		t.Fatal("first load never started")
	}

	// a second load completes while the first is still in flight
	require.NoError(t, svc.Load(context.Background()))

	close(release)
	require.NoError(t, <-done)

	// the first load finished last but must not win
	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Fresh", items[0].Name)
}

func TestWardrobeLoadRequiresSession(t *testing.T) {
	called := false
	client := &fakeClient{
		wardrobe: func(ctx context.Context, userID string) (*models.Wardrobe, error) {
			called = true
			return &models.Wardrobe{}, nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity(""), testLogger())

	err := svc.Load(context.Background())
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.False(t, called)
}

func TestWardrobeFilter(t *testing.T) {
	client := &fakeClient{
		wardrobe: func(ctx context.Context, userID string) (*models.Wardrobe, error) {
			return &models.Wardrobe{Clothes: []models.ClothingItem{
				{ID: 1, Type: "Shirts"},
				{ID: 2, Type: "Pants"},
				{ID: 3, Type: "shirts"},
			}}, nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())
	require.NoError(t, svc.Load(context.Background()))

	assert.Len(t, svc.Filter(CategoryAll), 3)
	assert.Len(t, svc.Filter(""), 3)

	shirts := svc.Filter("SHIRTS")
	require.Len(t, shirts, 2)
	assert.Equal(t, int64(1), shirts[0].ID)
	assert.Equal(t, int64(3), shirts[1].ID)

	assert.Empty(t, svc.Filter("Shoes"))
}

func TestWardrobeAddValidation(t *testing.T) {
	called := false
	client := &fakeClient{
		addClothing: func(ctx context.Context, userID string, req api.AddClothingRequest, filename string, file []byte) (*models.ClothingItem, error) {
			called = true
			return &models.ClothingItem{}, nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	_, err := svc.Add(context.Background(), AddItemInput{Type: "Shirts"})
	require.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = svc.Add(context.Background(), AddItemInput{Color: "Blue"})
	require.ErrorIs(t, err, ErrMissingRequiredField)

	assert.False(t, called)
	assert.Empty(t, svc.Items())
}

func TestWardrobeAddAppendsOnSuccess(t *testing.T) {
	client := &fakeClient{
		addClothing: func(ctx context.Context, userID string, req api.AddClothingRequest, filename string, file []byte) (*models.ClothingItem, error) {
			assert.Equal(t, "Shirts", req.Type)
			assert.Equal(t, "Blue", req.Color)
			assert.Empty(t, file)
			return &models.ClothingItem{ID: 42, Type: "Shirts", Color: "Blue"}, nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	item, err := svc.Add(context.Background(), AddItemInput{Type: "Shirts", Color: "Blue"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), item.ID)
	assert.Equal(t, imagex.PlaceholderFor("Shirts"), item.Image)

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(42), items[0].ID)
}

func TestWardrobeAddUsesReturnedPhoto(t *testing.T) {
	encoded := jpegBase64(t)
	client := &fakeClient{
		addClothing: func(ctx context.Context, userID string, req api.AddClothingRequest, filename string, file []byte) (*models.ClothingItem, error) {
			return &models.ClothingItem{ID: 5, Type: "Pants", Photo: encoded}, nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	item, err := svc.Add(context.Background(), AddItemInput{Type: "Pants", Color: "Black"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(item.Image, "data:image/jpeg;base64,"))
}

func TestWardrobeAddSendsBaseFilename(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(jpegBase64(t))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "oxford.jpg")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	var gotName string
	var gotFile []byte
	client := &fakeClient{
		addClothing: func(ctx context.Context, userID string, req api.AddClothingRequest, filename string, file []byte) (*models.ClothingItem, error) {
			gotName = filename
			gotFile = file
			return &models.ClothingItem{ID: 9, Type: "Shirts"}, nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	_, err = svc.Add(context.Background(), AddItemInput{Type: "Shirts", Color: "Blue", FilePath: path})
	require.NoError(t, err)
	assert.Equal(t, "oxford.jpg", gotName)
	assert.NotEmpty(t, gotFile)
}

func TestWardrobeAddFailureLeavesListUntouched(t *testing.T) {
	client := &fakeClient{
		addClothing: func(ctx context.Context, userID string, req api.AddClothingRequest, filename string, file []byte) (*models.ClothingItem, error) {
			return nil, errors.New("boom")
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())

	_, err := svc.Add(context.Background(), AddItemInput{Type: "Shirts", Color: "Blue"})
	require.Error(t, err)
	assert.Empty(t, svc.Items())
}

func TestWardrobeDelete(t *testing.T) {
	var deleted int64
	client := &fakeClient{
		wardrobe: func(ctx context.Context, userID string) (*models.Wardrobe, error) {
			return &models.Wardrobe{Clothes: []models.ClothingItem{{ID: 1, Type: "Shirts"}, {ID: 2, Type: "Pants"}}}, nil
		},
		deleteClothing: func(ctx context.Context, itemID int64) error {
			deleted = itemID
			return nil
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, int64(1), deleted)
	require.Len(t, svc.Items(), 1)
	assert.Equal(t, int64(2), svc.Items()[0].ID)

	// confirmed delete of an id no longer in the local list is a no-op
	require.NoError(t, svc.Delete(context.Background(), 99))
	assert.Len(t, svc.Items(), 1)
}

func TestWardrobeDeleteFailureKeepsItem(t *testing.T) {
	client := &fakeClient{
		wardrobe: func(ctx context.Context, userID string) (*models.Wardrobe, error) {
			return &models.Wardrobe{Clothes: []models.ClothingItem{{ID: 1, Type: "Shirts"}}}, nil
		},
		deleteClothing: func(ctx context.Context, itemID int64) error {
			return errors.New("boom")
		},
	}
	svc := NewWardrobeService(client, fakeIdentity("user-1"), testLogger())
	require.NoError(t, svc.Load(context.Background()))

	require.Error(t, svc.Delete(context.Background(), 1))
	assert.Len(t, svc.Items(), 1)
}
