package client

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/circlegallery/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePhoto(t *testing.T, s string) RawPhoto {
	t.Helper()
	var raw RawPhoto
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

func decodeAlbum(t *testing.T, s string) RawAlbum {
	t.Helper()
	var raw RawAlbum
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

func strPtr(s string) *string { return &s }

func TestNormalizePhoto_CanonicalFields(t *testing.T) {
	raw := decodePhoto(t, `{
		"id": "p1",
		"uri": "https://cdn/p1.jpg",
		"thumbnailUri": "https://cdn/p1_t.jpg",
		"filename": "p1.jpg",
		"title": "Beach",
		"size": 2048,
		"width": 640,
		"height": 480,
		"mimeType": "image/jpeg",
		"createdAt": "2024-06-01T12:30:00Z",
		"albumId": "a1",
		"circleId": "c1",
		"isFavorite": true,
		"uploadedBy": "u1",
		"uploadedByName": "Ann",
		"metadata": {"tags": ["sea", "sun", "sea"], "camera": "Pixel 8", "settings": {"iso": 100, "flash": false}}
	}`)

	got := NormalizePhoto(raw, models.PersonalScope())

	want := models.Photo{
		ID:             "p1",
		URI:            "https://cdn/p1.jpg",
		ThumbnailURI:   "https://cdn/p1_t.jpg",
		Filename:       "p1.jpg",
		Title:          "Beach",
		Size:           2048,
		Width:          640,
		Height:         480,
		MediaType:      models.MediaPhoto,
		CreatedAt:      time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		AlbumID:        strPtr("a1"),
		CircleID:       "c1",
		IsShared:       true,
		IsFavorite:     true,
		UploadedBy:     "u1",
		UploadedByName: "Ann",
		Metadata: models.PhotoMetadata{
			Tags:     []string{"sea", "sun"},
			Camera:   "Pixel 8",
			Settings: map[string]string{"iso": "100", "flash": "false"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NormalizePhoto mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizePhoto_AliasesAndDefaults(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		scope models.Scope
		check func(t *testing.T, p models.Photo)
	}{
		{
			name: "url alias and thumbnail fallback",
			in:   `{"_id": 42, "url": "https://cdn/x.jpg"}`,
			check: func(t *testing.T, p models.Photo) {
				assert.Equal(t, "42", p.ID)
				assert.Equal(t, "https://cdn/x.jpg", p.URI)
				assert.Equal(t, "https://cdn/x.jpg", p.ThumbnailURI)
			},
		},
		{
			name: "thumbnailUrl alias",
			in:   `{"id": "p", "uri": "u", "thumbnailUrl": "t"}`,
			check: func(t *testing.T, p models.Photo) {
				assert.Equal(t, "t", p.ThumbnailURI)
			},
		},
		{
			name: "fileName casing and fileSize",
			in:   `{"id": "p", "fileName": "IMG_1.HEIC", "fileSize": "1024"}`,
			check: func(t *testing.T, p models.Photo) {
				assert.Equal(t, "IMG_1.HEIC", p.Filename)
				assert.EqualValues(t, 1024, p.Size)
			},
		},
		{
			name: "uploadedBy object",
			in:   `{"id": "p", "uploadedBy": {"_id": "u9", "name": "Bob"}}`,
			check: func(t *testing.T, p models.Photo) {
				assert.Equal(t, "u9", p.UploadedBy)
				assert.Equal(t, "Bob", p.UploadedByName)
			},
		},
		{
			name: "epoch millis and video mime",
			in:   `{"id": "p", "uploadedAt": 1717245000000, "mimeType": "video/mp4"}`,
			check: func(t *testing.T, p models.Photo) {
				assert.True(t, p.CreatedAt.Equal(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)))
				assert.Equal(t, models.MediaVideo, p.MediaType)
			},
		},
		{
			name: "null album is root",
			in:   `{"id": "p", "albumId": null}`,
			check: func(t *testing.T, p models.Photo) {
				assert.Nil(t, p.AlbumID)
			},
		},
		{
			name: "empty album string is root",
			in:   `{"id": "p", "albumId": ""}`,
			check: func(t *testing.T, p models.Photo) {
				assert.Nil(t, p.AlbumID)
			},
		},
		{
			name:  "circle scope fills missing circleId",
			in:    `{"id": "p"}`,
			scope: models.CircleScope("c7"),
			check: func(t *testing.T, p models.Photo) {
				assert.Equal(t, "c7", p.CircleID)
				assert.True(t, p.IsShared)
			},
		},
		{
			name:  "personal scope means not shared even if payload claims so",
			in:    `{"id": "p", "isShared": true}`,
			scope: models.PersonalScope(),
			check: func(t *testing.T, p models.Photo) {
				assert.Empty(t, p.CircleID)
				assert.False(t, p.IsShared)
			},
		},
		{
			name: "camera object",
			in:   `{"id": "p", "metadata": {"camera": {"make": "Canon", "model": "EOS R5"}}}`,
			check: func(t *testing.T, p models.Photo) {
				assert.Equal(t, "Canon EOS R5", p.Metadata.Camera)
			},
		},
		{
			name: "missing everything",
			in:   `{}`,
			check: func(t *testing.T, p models.Photo) {
				assert.Empty(t, p.ID)
				assert.True(t, p.CreatedAt.IsZero())
				assert.Nil(t, p.Metadata.Tags)
				assert.Equal(t, models.MediaPhoto, p.MediaType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NormalizePhoto(decodePhoto(t, tt.in), tt.scope))
		})
	}
}

func TestNormalizeAlbum(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		scope models.Scope
		check func(t *testing.T, a models.Album)
	}{
		{
			name: "canonical",
			in: `{"id": "a1", "name": "Trip", "description": "d", "color": "#f00", "coverPhotoId": "p1",
				"coverPhotoUrl": "https://cdn/p1.jpg", "photoCount": 3, "parentId": "a0", "circleId": "c1",
				"createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-02-01T00:00:00Z", "members": ["u2", "u1", "u2"]}`,
			check: func(t *testing.T, a models.Album) {
				assert.Equal(t, "a1", a.ID)
				assert.Equal(t, "Trip", a.Name)
				assert.Equal(t, "#f00", a.Color)
				assert.Equal(t, "p1", a.CoverPhotoID)
				assert.Equal(t, "https://cdn/p1.jpg", a.CoverPhotoURI)
				assert.Equal(t, 3, a.PhotoCount)
				require.NotNil(t, a.ParentID)
				assert.Equal(t, "a0", *a.ParentID)
				assert.True(t, a.IsShared)
				assert.Equal(t, []string{"u1", "u2"}, a.Members)
				assert.Equal(t, 2024, a.UpdatedAt.Year())
				assert.Equal(t, time.February, a.UpdatedAt.Month())
			},
		},
		{
			name: "mediaCount and coverPhoto string",
			in:   `{"id": "a", "name": "x", "mediaCount": 9, "coverPhoto": "https://cdn/c.jpg"}`,
			check: func(t *testing.T, a models.Album) {
				assert.Equal(t, 9, a.PhotoCount)
				assert.Equal(t, "https://cdn/c.jpg", a.CoverPhotoURI)
			},
		},
		{
			name: "coverPhoto object",
			in:   `{"id": "a", "name": "x", "coverPhoto": {"id": "p5", "url": "https://cdn/p5.jpg", "thumbnailUrl": "https://cdn/p5_t.jpg"}}`,
			check: func(t *testing.T, a models.Album) {
				assert.Equal(t, "p5", a.CoverPhotoID)
				assert.Equal(t, "https://cdn/p5_t.jpg", a.CoverPhotoURI)
			},
		},
		{
			name: "photoCount defaults to zero and root parent",
			in:   `{"id": "a", "name": "x", "parentId": null}`,
			check: func(t *testing.T, a models.Album) {
				assert.Equal(t, 0, a.PhotoCount)
				assert.Nil(t, a.ParentID)
				assert.False(t, a.IsShared)
			},
		},
		{
			name:  "members as objects, scope circle",
			in:    `{"id": "a", "title": "Legacy", "members": [{"id": "u1"}, {"userId": 7}]}`,
			scope: models.CircleScope("c2"),
			check: func(t *testing.T, a models.Album) {
				assert.Equal(t, "Legacy", a.Name)
				assert.Equal(t, []string{"7", "u1"}, a.Members)
				assert.Equal(t, "c2", a.CircleID)
				assert.True(t, a.IsShared)
			},
		},
		{
			name: "updatedAt falls back to createdAt",
			in:   `{"id": "a", "name": "x", "createdAt": 1717245000}`,
			check: func(t *testing.T, a models.Album) {
				assert.True(t, a.UpdatedAt.Equal(a.CreatedAt))
				assert.False(t, a.CreatedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NormalizeAlbum(decodeAlbum(t, tt.in), tt.scope))
		})
	}
}

func TestNormalizeStats_Aliases(t *testing.T) {
	var raw rawStats
	require.NoError(t, json.Unmarshal([]byte(`{"totalPhotos": 10, "totalVideos": 2, "totalSize": 1.5e6,
		"albumsCount": 3, "favoritesCount": 4, "recentCount": 5}`), &raw))

	got := normalizeStats(raw)
	assert.Equal(t, models.Stats{TotalPhotos: 10, TotalVideos: 2, TotalSize: 1500000, AlbumCount: 3, FavoriteCount: 4, RecentCount: 5}, got)
}

func TestFlexString_RejectsObjects(t *testing.T) {
	var f flexString
	require.Error(t, json.Unmarshal([]byte(`{"a":1}`), &f))
}

func TestFlexInt_RejectsGarbage(t *testing.T) {
	var f flexInt
	require.Error(t, json.Unmarshal([]byte(`"many"`), &f))
	require.NoError(t, json.Unmarshal([]byte(`""`), &f))
	assert.EqualValues(t, 0, f)
}
