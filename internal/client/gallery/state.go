package gallery

import (
	"github.com/dmitrijs2005/circlegallery/internal/client/client"
	"github.com/dmitrijs2005/circlegallery/internal/client/models"
)

// Mode selects the data source the gallery shows.
type Mode string

const (
	ModePersonal Mode = "personal"
	ModeCircle   Mode = "circle"
)

// ViewMode is how the UI lays the collections out.
type ViewMode string

const (
	ViewPhotos ViewMode = "photos"
	ViewAlbums ViewMode = "albums"
	ViewGrid   ViewMode = "grid"
	ViewList   ViewMode = "list"
)

type SortField string

const (
	SortByDate SortField = "date"
	SortByName SortField = "name"
	SortBySize SortField = "size"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filters declare what the next load should ask for and how loaded photos
// are ordered. The album scope of a query is not a filter: it is always the
// current navigation position.
type Filters struct {
	Type      models.PhotoType
	Search    string
	SortBy    SortField
	SortOrder SortOrder
}

// FilterPatch is shallow-merged into Filters; nil fields are kept.
type FilterPatch struct {
	Type      *models.PhotoType
	Search    *string
	SortBy    *SortField
	SortOrder *SortOrder
}

// State is one immutable snapshot. Slices are never modified in place once
// published, so snapshots can be shared freely.
type State struct {
	Mode     Mode
	CircleID string

	Photos []models.Photo
	Albums []models.Album

	SelectedPhotos   []string
	SelectedAlbum    *models.Album
	CurrentAlbumPath []models.Album

	IsLoading bool
	Error     string
	ErrorKind client.Kind

	Filters  Filters
	ViewMode ViewMode
	Stats    *models.Stats
}

// NewState is the state of a fresh session: personal scope, at root.
func NewState() State {
	return State{
		Mode:     ModePersonal,
		ViewMode: ViewPhotos,
		Filters: Filters{
			Type:      models.PhotoTypeAll,
			SortBy:    SortByDate,
			SortOrder: SortDesc,
		},
	}
}

// Scope is the gateway scope of the current mode.
func (s State) Scope() models.Scope {
	if s.Mode == ModeCircle {
		return models.CircleScope(s.CircleID)
	}
	return models.PersonalScope()
}

// CurrentAlbumID is the id of the open album, "" at root.
func (s State) CurrentAlbumID() string {
	if s.SelectedAlbum == nil {
		return ""
	}
	return s.SelectedAlbum.ID
}
