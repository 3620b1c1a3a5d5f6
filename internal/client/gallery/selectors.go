package gallery

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/circlegallery/internal/client/models"
)

// VisiblePhotos returns the loaded photos ordered by the current sort
// filters. Ties are broken by id so the order is stable across reloads.
func VisiblePhotos(s State) []models.Photo {
	out := slices.Clone(s.Photos)
	desc := s.Filters.SortOrder == SortDesc
	slices.SortStableFunc(out, func(a, b models.Photo) int {
		var c int
		switch s.Filters.SortBy {
		case SortByName:
			c = cmp.Compare(sortName(a), sortName(b))
		case SortBySize:
			c = cmp.Compare(a.Size, b.Size)
		default:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if desc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		return c
	})
	return out
}

func sortName(p models.Photo) string {
	if p.Title != "" {
		return strings.ToLower(p.Title)
	}
	return strings.ToLower(p.Filename)
}

// Breadcrumb returns the names along the current album path, root first.
func Breadcrumb(s State) []string {
	names := make([]string, 0, len(s.CurrentAlbumPath))
	for _, a := range s.CurrentAlbumPath {
		names = append(names, a.Name)
	}
	return names
}

func SelectedCount(s State) int {
	return len(s.SelectedPhotos)
}

func IsSelected(s State, photoID string) bool {
	return slices.Contains(s.SelectedPhotos, photoID)
}

// FindPhoto looks a loaded photo up by id or by unambiguous id prefix.
func FindPhoto(s State, ref string) (models.Photo, bool) {
	return findByRef(s.Photos, ref, func(p models.Photo) string { return p.ID })
}

// FindAlbum looks a loaded album up by id, unambiguous id prefix, or exact
// name (case-insensitive).
func FindAlbum(s State, ref string) (models.Album, bool) {
	if a, ok := findByRef(s.Albums, ref, func(a models.Album) string { return a.ID }); ok {
		return a, true
	}
	var found []models.Album
	for _, a := range s.Albums {
		if strings.EqualFold(a.Name, ref) {
			found = append(found, a)
		}
	}
	if len(found) == 1 {
		return found[0], true
	}
	return models.Album{}, false
}

func findByRef[T any](items []T, ref string, id func(T) string) (T, bool) {
	var zero T
	if ref == "" {
		return zero, false
	}
	var match []T
	for _, it := range items {
		switch v := id(it); {
		case v == ref:
			return it, true
		case strings.HasPrefix(v, ref):
			match = append(match, it)
		}
	}
	if len(match) == 1 {
		return match[0], true
	}
	return zero, false
}
