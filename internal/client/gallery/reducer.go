package gallery

import (
	"slices"

	"github.com/dmitrijs2005/circlegallery/internal/client/models"
)

// Reduce returns the state that results from applying a to s. It never
// mutates s: every changed slice is a fresh copy. Unknown actions return s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetMode:
		next := s
		next.Mode = a.Mode
		next.CircleID = ""
		if a.Mode == ModeCircle {
			next.CircleID = a.CircleID
		}
		next.Photos = nil
		next.Albums = nil
		next.SelectedPhotos = nil
		next.SelectedAlbum = nil
		next.CurrentAlbumPath = nil
		next.Stats = nil
		next.IsLoading = false
		next.Error = ""
		next.ErrorKind = ""
		return next

	case SetLoading:
		s.IsLoading = a.Loading
		return s

	case SetError:
		s.Error = a.Message
		s.ErrorKind = a.Kind
		return s

	case ClearError:
		s.Error = ""
		s.ErrorKind = ""
		return s

	case SetPhotos:
		s.Photos = slices.Clone(a.Photos)
		s.SelectedPhotos = pruneSelection(s.SelectedPhotos, s.Photos)
		return s

	case SetAlbums:
		s.Albums = slices.Clone(a.Albums)
		return s

	case SetStats:
		st := a.Stats
		s.Stats = &st
		return s

	case AddPhoto:
		if a.Photo.CircleID != s.Scope().OwnerCircleID() {
			return s
		}
		rest := slices.DeleteFunc(slices.Clone(s.Photos), func(p models.Photo) bool { return p.ID == a.Photo.ID })
		s.Photos = append([]models.Photo{a.Photo}, rest...)
		return s

	case AddAlbum:
		rest := slices.DeleteFunc(slices.Clone(s.Albums), func(al models.Album) bool { return al.ID == a.Album.ID })
		s.Albums = append([]models.Album{a.Album}, rest...)
		return s

	case ReplacePhoto:
		i := slices.IndexFunc(s.Photos, func(p models.Photo) bool { return p.ID == a.Photo.ID })
		if i < 0 {
			return s
		}
		s.Photos = slices.Clone(s.Photos)
		s.Photos[i] = carryPhotoScope(a.Photo, s.Photos[i])
		return s

	case PatchFavorite:
		i := slices.IndexFunc(s.Photos, func(p models.Photo) bool { return p.ID == a.PhotoID })
		if i < 0 {
			return s
		}
		s.Photos = slices.Clone(s.Photos)
		s.Photos[i].IsFavorite = a.IsFavorite
		return s

	case RemovePhoto:
		s.Photos = slices.DeleteFunc(slices.Clone(s.Photos), func(p models.Photo) bool { return p.ID == a.PhotoID })
		s.SelectedPhotos = slices.DeleteFunc(slices.Clone(s.SelectedPhotos), func(id string) bool { return id == a.PhotoID })
		return s

	case RemoveAlbum:
		s.Albums = slices.DeleteFunc(slices.Clone(s.Albums), func(al models.Album) bool { return al.ID == a.AlbumID })
		// Descendants of a deleted album go with it.
		if i := slices.IndexFunc(s.CurrentAlbumPath, func(al models.Album) bool { return al.ID == a.AlbumID }); i >= 0 {
			s.CurrentAlbumPath = slices.Clone(s.CurrentAlbumPath[:i])
			if len(s.CurrentAlbumPath) == 0 {
				s.CurrentAlbumPath = nil
			}
			s.SelectedAlbum = lastOf(s.CurrentAlbumPath)
		}
		if s.SelectedAlbum != nil && s.SelectedAlbum.ID == a.AlbumID {
			s.SelectedAlbum = nil
		}
		return s

	case ReplaceAlbum:
		if i := slices.IndexFunc(s.Albums, func(al models.Album) bool { return al.ID == a.Album.ID }); i >= 0 {
			s.Albums = slices.Clone(s.Albums)
			s.Albums[i] = carryAlbumScope(a.Album, s.Albums[i])
		}
		if i := slices.IndexFunc(s.CurrentAlbumPath, func(al models.Album) bool { return al.ID == a.Album.ID }); i >= 0 {
			s.CurrentAlbumPath = slices.Clone(s.CurrentAlbumPath)
			s.CurrentAlbumPath[i] = carryAlbumScope(a.Album, s.CurrentAlbumPath[i])
			s.SelectedAlbum = lastOf(s.CurrentAlbumPath)
		}
		return s

	case NavigateTo:
		if a.Album == nil {
			s.CurrentAlbumPath = nil
			s.SelectedAlbum = nil
			return s
		}
		// Entering an album already on the path jumps back to it.
		if i := slices.IndexFunc(s.CurrentAlbumPath, func(al models.Album) bool { return al.ID == a.Album.ID }); i >= 0 {
			s.CurrentAlbumPath = slices.Clone(s.CurrentAlbumPath[:i+1])
		} else {
			s.CurrentAlbumPath = append(slices.Clone(s.CurrentAlbumPath), *a.Album)
		}
		s.SelectedAlbum = lastOf(s.CurrentAlbumPath)
		return s

	case NavigateUp:
		if len(s.CurrentAlbumPath) == 0 {
			return s
		}
		s.CurrentAlbumPath = slices.Clone(s.CurrentAlbumPath[:len(s.CurrentAlbumPath)-1])
		if len(s.CurrentAlbumPath) == 0 {
			s.CurrentAlbumPath = nil
		}
		s.SelectedAlbum = lastOf(s.CurrentAlbumPath)
		return s

	case TogglePhotoSelection:
		if slices.Contains(s.SelectedPhotos, a.PhotoID) {
			s.SelectedPhotos = slices.DeleteFunc(slices.Clone(s.SelectedPhotos), func(id string) bool { return id == a.PhotoID })
		} else {
			s.SelectedPhotos = append(slices.Clone(s.SelectedPhotos), a.PhotoID)
		}
		return s

	case SelectAll:
		ids := make([]string, 0, len(s.Photos))
		for _, p := range s.Photos {
			ids = append(ids, p.ID)
		}
		s.SelectedPhotos = ids
		return s

	case ClearSelection:
		s.SelectedPhotos = nil
		return s

	case UpdateFilters:
		s.Filters = mergeFilters(s.Filters, a.Patch)
		return s

	case SetViewMode:
		s.ViewMode = a.ViewMode
		return s
	}
	return s
}

func mergeFilters(f Filters, p FilterPatch) Filters {
	if p.Type != nil {
		f.Type = *p.Type
	}
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.SortBy != nil {
		f.SortBy = *p.SortBy
	}
	if p.SortOrder != nil {
		f.SortOrder = *p.SortOrder
	}
	return f
}

// pruneSelection keeps only ids that are still loaded.
func pruneSelection(selected []string, photos []models.Photo) []string {
	if len(selected) == 0 {
		return selected
	}
	loaded := make(map[string]struct{}, len(photos))
	for _, p := range photos {
		loaded[p.ID] = struct{}{}
	}
	out := make([]string, 0, len(selected))
	for _, id := range selected {
		if _, ok := loaded[id]; ok {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Records returned by move and update carry no scope; keep the one the
// entity was loaded under.
func carryPhotoScope(in, old models.Photo) models.Photo {
	if in.CircleID == "" && old.CircleID != "" {
		in.CircleID = old.CircleID
		in.IsShared = true
	}
	return in
}

func carryAlbumScope(in, old models.Album) models.Album {
	if in.CircleID == "" && old.CircleID != "" {
		in.CircleID = old.CircleID
		in.IsShared = true
	}
	return in
}

func lastOf(path []models.Album) *models.Album {
	if len(path) == 0 {
		return nil
	}
	a := path[len(path)-1]
	return &a
}
