package models

import "time"

// MediaType tells still images from videos.
type MediaType string

const (
	MediaPhoto MediaType = "photo"
	MediaVideo MediaType = "video"
)

// Photo is a single media asset.
type Photo struct {
	ID           string
	URI          string
	ThumbnailURI string

	Filename  string
	Title     string
	Size      int64
	Width     int
	Height    int
	MediaType MediaType

	CreatedAt time.Time

	// AlbumID is nil for photos at the root of their scope.
	AlbumID *string
	// CircleID is empty for personal photos.
	CircleID string

	IsShared   bool
	IsFavorite bool

	UploadedBy     string
	UploadedByName string

	Metadata PhotoMetadata
}

// PhotoMetadata is the additive, optional description bag of a photo.
type PhotoMetadata struct {
	Tags     []string
	Camera   string
	Settings map[string]string
}

// InAlbum reports whether p sits directly in albumID ("" means root).
func (p Photo) InAlbum(albumID string) bool {
	if p.AlbumID == nil {
		return albumID == ""
	}
	return *p.AlbumID == albumID
}

// PhotoPage is one listing result.
type PhotoPage struct {
	Items []Photo
	Total int
}
