package gallery

import (
	"github.com/dmitrijs2005/circlegallery/internal/client/client"
	"github.com/dmitrijs2005/circlegallery/internal/client/models"
)

// Action is a state transition. The set is closed: only the types in this
// file implement it.
type Action interface {
	isAction()
}

// SetMode switches data source and drops everything loaded for the old one.
type SetMode struct {
	Mode     Mode
	CircleID string
}

type SetLoading struct{ Loading bool }

type SetError struct {
	Message string
	Kind    client.Kind
}

type ClearError struct{}

// SetPhotos replaces the photo collection wholesale.
type SetPhotos struct{ Photos []models.Photo }

// SetAlbums replaces the album collection wholesale.
type SetAlbums struct{ Albums []models.Album }

type SetStats struct{ Stats models.Stats }

// AddPhoto inserts an uploaded photo at the front.
type AddPhoto struct{ Photo models.Photo }

// AddAlbum inserts a created album at the front.
type AddAlbum struct{ Album models.Album }

// ReplacePhoto swaps in the server's record of a photo.
type ReplacePhoto struct{ Photo models.Photo }

// PatchFavorite sets only the favorite flag of a photo.
type PatchFavorite struct {
	PhotoID    string
	IsFavorite bool
}

type RemovePhoto struct{ PhotoID string }

// RemoveAlbum drops an album from the list. When the album is on the
// navigation path, the path is cut just above it, dropping any descendants
// too, and the album above it becomes selected (nil at the scope root).
// Removing a nested selected album therefore lands on its parent rather
// than clearing the selection.
type RemoveAlbum struct{ AlbumID string }

// ReplaceAlbum swaps in the server's record of an album everywhere it is held.
type ReplaceAlbum struct{ Album models.Album }

// NavigateTo enters Album, or returns to the scope root when Album is nil.
type NavigateTo struct{ Album *models.Album }

type NavigateUp struct{}

type TogglePhotoSelection struct{ PhotoID string }

type SelectAll struct{}

type ClearSelection struct{}

type UpdateFilters struct{ Patch FilterPatch }

type SetViewMode struct{ ViewMode ViewMode }

func (SetMode) isAction()              {}
func (SetLoading) isAction()           {}
func (SetError) isAction()             {}
func (ClearError) isAction()           {}
func (SetPhotos) isAction()            {}
func (SetAlbums) isAction()            {}
func (SetStats) isAction()             {}
func (AddPhoto) isAction()             {}
func (AddAlbum) isAction()             {}
func (ReplacePhoto) isAction()         {}
func (PatchFavorite) isAction()        {}
func (RemovePhoto) isAction()          {}
func (RemoveAlbum) isAction()          {}
func (ReplaceAlbum) isAction()         {}
func (NavigateTo) isAction()           {}
func (NavigateUp) isAction()           {}
func (TogglePhotoSelection) isAction() {}
func (SelectAll) isAction()            {}
func (ClearSelection) isAction()       {}
func (UpdateFilters) isAction()        {}
func (SetViewMode) isAction()          {}
