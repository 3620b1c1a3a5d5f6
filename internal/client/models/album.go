package models

import "time"

// Album is a named, nestable container of photos.
type Album struct {
	ID          string
	Name        string
	Description string
	Color       string

	CoverPhotoID  string
	CoverPhotoURI string

	// PhotoCount is maintained by the server and never recomputed locally.
	PhotoCount int

	// ParentID is nil for root-level albums.
	ParentID *string
	CircleID string
	IsShared bool

	CreatedAt time.Time
	UpdatedAt time.Time

	Members []string
}

// ParentIDValue returns the parent id or "" at root.
func (a Album) ParentIDValue() string {
	if a.ParentID == nil {
		return ""
	}
	return *a.ParentID
}

// AlbumInput carries the fields of a new album.
type AlbumInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	ParentID     *string `json:"parentId,omitempty"`
	Color        string  `json:"color,omitempty"`
	CoverPhotoID string  `json:"coverPhotoId,omitempty"`
}

// AlbumPatch is a partial album update; nil fields are left untouched.
type AlbumPatch struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Color        *string `json:"color,omitempty"`
	ParentID     *string `json:"parentId,omitempty"`
	CoverPhotoID *string `json:"coverPhotoId,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p AlbumPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Color == nil &&
		p.ParentID == nil && p.CoverPhotoID == nil
}
