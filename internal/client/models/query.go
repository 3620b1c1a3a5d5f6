package models

// PhotoType narrows a photo listing.
type PhotoType string

const (
	PhotoTypeAll       PhotoType = "all"
	PhotoTypeFavorites PhotoType = "favorites"
	PhotoTypeShared    PhotoType = "shared"
	PhotoTypeRecent    PhotoType = "recent"
	PhotoTypePhotos    PhotoType = "photos"
	PhotoTypeVideos    PhotoType = "videos"
)

// Valid reports whether t is one of the known listing types.
func (t PhotoType) Valid() bool {
	switch t {
	case PhotoTypeAll, PhotoTypeFavorites, PhotoTypeShared, PhotoTypeRecent, PhotoTypePhotos, PhotoTypeVideos:
		return true
	}
	return false
}

// PhotoQuery is what the server filters a listing by. AlbumID "" lists the
// root level of the scope.
type PhotoQuery struct {
	Type    PhotoType
	Search  string
	AlbumID string
}

// Stats aggregates a scope's gallery.
type Stats struct {
	TotalPhotos   int
	TotalVideos   int
	TotalSize     int64
	AlbumCount    int
	FavoriteCount int
	RecentCount   int
}
