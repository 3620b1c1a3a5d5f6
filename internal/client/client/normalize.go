package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/circlegallery/internal/client/models"
	"github.com/dmitrijs2005/circlegallery/internal/timex"
)

// RawPhoto is a photo as the server sends it. Several backends share the
// gallery API and disagree on field names, so every known alias is listed.
type RawPhoto struct {
	ID      flexString `json:"id"`
	MongoID flexString `json:"_id"`

	URI          string `json:"uri"`
	URL          string `json:"url"`
	ThumbnailURI string `json:"thumbnailUri"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Thumbnail    string `json:"thumbnail"`

	Filename     string  `json:"filename"`
	OriginalName string  `json:"originalName"`
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Size         flexInt `json:"size"`
	FileSize     flexInt `json:"fileSize"`
	Width        flexInt `json:"width"`
	Height       flexInt `json:"height"`
	MimeType     string  `json:"mimeType"`
	Type         string  `json:"type"`

	CreatedAt      timex.Time `json:"createdAt"`
	CreatedAtSnake timex.Time `json:"created_at"`
	UploadedAt     timex.Time `json:"uploadedAt"`

	AlbumID    flexString `json:"albumId"`
	CircleID   flexString `json:"circleId"`
	IsFavorite bool       `json:"isFavorite"`

	UploadedBy     actorRef `json:"uploadedBy"`
	UploadedByName string   `json:"uploadedByName"`

	Metadata rawMetadata `json:"metadata"`
}

// RawAlbum is an album as the server sends it.
type RawAlbum struct {
	ID      flexString `json:"id"`
	MongoID flexString `json:"_id"`

	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`

	CoverPhoto    coverRef   `json:"coverPhoto"`
	CoverPhotoURL string     `json:"coverPhotoUrl"`
	CoverPhotoID  flexString `json:"coverPhotoId"`

	PhotoCount *flexInt `json:"photoCount"`
	MediaCount *flexInt `json:"mediaCount"`

	ParentID flexString `json:"parentId"`
	CircleID flexString `json:"circleId"`

	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`

	Members []actorRef `json:"members"`
}

type rawStats struct {
	TotalPhotos    flexInt `json:"totalPhotos"`
	TotalVideos    flexInt `json:"totalVideos"`
	TotalSize      flexInt `json:"totalSize"`
	AlbumCount     flexInt `json:"albumCount"`
	AlbumsCount    flexInt `json:"albumsCount"`
	FavoriteCount  flexInt `json:"favoriteCount"`
	FavoritesCount flexInt `json:"favoritesCount"`
	RecentCount    flexInt `json:"recentCount"`
}

type rawMetadata struct {
	Tags     []string        `json:"tags"`
	Camera   json.RawMessage `json:"camera"`
	Settings map[string]any  `json:"settings"`
}

// NormalizePhoto maps raw onto the canonical Photo. scope supplies the
// owning circle when the payload leaves circleId out. Pure.
func NormalizePhoto(raw RawPhoto, scope models.Scope) models.Photo {
	p := models.Photo{
		ID:             firstNonEmpty(string(raw.ID), string(raw.MongoID)),
		URI:            firstNonEmpty(raw.URI, raw.URL),
		Filename:       firstNonEmpty(raw.Filename, raw.OriginalName, raw.Name),
		Title:          raw.Title,
		Size:           int64(raw.Size),
		Width:          int(raw.Width),
		Height:         int(raw.Height),
		MediaType:      mediaTypeOf(raw.MimeType, raw.Type),
		CreatedAt:      firstTime(raw.CreatedAt, raw.CreatedAtSnake, raw.UploadedAt).Time,
		CircleID:       firstNonEmpty(string(raw.CircleID), scope.OwnerCircleID()),
		IsFavorite:     raw.IsFavorite,
		UploadedBy:     raw.UploadedBy.ID,
		UploadedByName: firstNonEmpty(raw.UploadedByName, raw.UploadedBy.Name),
		Metadata:       normalizeMetadata(raw.Metadata),
	}
	if p.Size == 0 {
		p.Size = int64(raw.FileSize)
	}
	p.ThumbnailURI = firstNonEmpty(raw.ThumbnailURI, raw.ThumbnailURL, raw.Thumbnail, p.URI)
	p.AlbumID = optional(string(raw.AlbumID))
	p.IsShared = p.CircleID != ""
	return p
}

// NormalizeAlbum maps raw onto the canonical Album. Pure.
func NormalizeAlbum(raw RawAlbum, scope models.Scope) models.Album {
	a := models.Album{
		ID:            firstNonEmpty(string(raw.ID), string(raw.MongoID)),
		Name:          firstNonEmpty(raw.Name, raw.Title),
		Description:   raw.Description,
		Color:         raw.Color,
		CoverPhotoID:  firstNonEmpty(string(raw.CoverPhotoID), raw.CoverPhoto.ID),
		CoverPhotoURI: firstNonEmpty(raw.CoverPhotoURL, raw.CoverPhoto.URI),
		ParentID:      optional(string(raw.ParentID)),
		CircleID:      firstNonEmpty(string(raw.CircleID), scope.OwnerCircleID()),
		CreatedAt:     raw.CreatedAt.Time,
		UpdatedAt:     raw.UpdatedAt.Time,
	}
	switch {
	case raw.PhotoCount != nil:
		a.PhotoCount = int(*raw.PhotoCount)
	case raw.MediaCount != nil:
		a.PhotoCount = int(*raw.MediaCount)
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	a.IsShared = a.CircleID != ""

	ids := make([]string, 0, len(raw.Members))
	for _, m := range raw.Members {
		ids = append(ids, m.ID)
	}
	a.Members = uniqueStrings(ids)
	return a
}

func normalizeStats(raw rawStats) models.Stats {
	s := models.Stats{
		TotalPhotos:   int(raw.TotalPhotos),
		TotalVideos:   int(raw.TotalVideos),
		TotalSize:     int64(raw.TotalSize),
		AlbumCount:    int(raw.AlbumCount),
		FavoriteCount: int(raw.FavoriteCount),
		RecentCount:   int(raw.RecentCount),
	}
	if s.AlbumCount == 0 {
		s.AlbumCount = int(raw.AlbumsCount)
	}
	if s.FavoriteCount == 0 {
		s.FavoriteCount = int(raw.FavoritesCount)
	}
	return s
}

func normalizeMetadata(raw rawMetadata) models.PhotoMetadata {
	md := models.PhotoMetadata{
		Tags:   uniqueStrings(raw.Tags),
		Camera: cameraName(raw.Camera),
	}
	if len(raw.Settings) > 0 {
		md.Settings = make(map[string]string, len(raw.Settings))
		for k, v := range raw.Settings {
			md.Settings[k] = fmt.Sprint(v)
		}
	}
	return md
}

// cameraName accepts "Pixel 8" as well as {"make": "Google", "model": "Pixel 8"}.
func cameraName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Make  string `json:"make"`
		Model string `json:"model"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	if obj.Make != "" && strings.HasPrefix(obj.Model, obj.Make) {
		return obj.Model
	}
	return strings.TrimSpace(obj.Make + " " + obj.Model)
}

func mediaTypeOf(mimeType, kind string) models.MediaType {
	if strings.HasPrefix(strings.ToLower(mimeType), "video/") || strings.EqualFold(kind, "video") {
		return models.MediaVideo
	}
	return models.MediaPhoto
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstTime(values ...timex.Time) (t timex.Time) {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return t
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// uniqueStrings drops empty and repeated values; the result is sorted
// because order carries no meaning for tags or members.
func uniqueStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// flexString decodes ids that arrive as strings or numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// flexInt decodes counts and sizes sent as integers, floats or numeric strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*f = flexInt(n)
	return nil
}

// actorRef is an uploader or member given as a bare id or as an object.
type actorRef struct {
	ID   string
	Name string
}

func (a *actorRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = actorRef{}
		return nil
	}
	if b[0] != '{' {
		var id flexString
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*a = actorRef{ID: string(id)}
		return nil
	}
	var obj struct {
		ID          flexString `json:"id"`
		MongoID     flexString `json:"_id"`
		UserID      flexString `json:"userId"`
		Name        string     `json:"name"`
		DisplayName string     `json:"displayName"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*a = actorRef{
		ID:   firstNonEmpty(string(obj.ID), string(obj.MongoID), string(obj.UserID)),
		Name: firstNonEmpty(obj.DisplayName, obj.Name),
	}
	return nil
}

// coverRef is a cover photo given as a URL string or as a photo object.
type coverRef struct {
	ID  string
	URI string
}

func (c *coverRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = coverRef{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = coverRef{URI: s}
		return nil
	}
	var p RawPhoto
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*c = coverRef{
		ID:  firstNonEmpty(string(p.ID), string(p.MongoID)),
		URI: firstNonEmpty(p.ThumbnailURI, p.ThumbnailURL, p.Thumbnail, p.URI, p.URL),
	}
	return nil
}
