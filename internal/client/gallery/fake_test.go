package gallery

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/circlegallery/internal/client/client"
	"github.com/dmitrijs2005/circlegallery/internal/client/models"
)

// fakeClient records the last arguments of every call and returns canned
// results. Set an *Err field to make the matching call fail.
type fakeClient struct {
	mu sync.Mutex

	photos []models.Photo
	albums []models.Album
	stats  models.Stats

	photosFn func(ctx context.Context, scope models.Scope, q models.PhotoQuery) (*models.PhotoPage, error)

	fetchPhotosErr error
	fetchAlbumsErr error
	statsErr       error
	createErr      error
	updateErr      error
	deleteAlbumErr error
	coverErr       error
	favoriteErr    error
	moveErr        error
	deletePhotoErr error

	favorite bool
	moved    models.Photo
	updated  models.Album
	created  models.Album

	LastPhotoScope  models.Scope
	LastPhotoQuery  models.PhotoQuery
	LastAlbumScope  models.Scope
	LastParentID    string
	LastCreateScope models.Scope
	LastCreateInput models.AlbumInput
	LastPatch       models.AlbumPatch
	LastCover       [2]string
	LastMoveAlbum   *string

	fetchAlbumsCalls int
	createCalls      int
	deletedPhotos    []string
	deletedAlbums    []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) FetchPhotos(ctx context.Context, scope models.Scope, q models.PhotoQuery) (*models.PhotoPage, error) {
	f.mu.Lock()
	f.LastPhotoScope = scope
	f.LastPhotoQuery = q
	fn, items, err := f.photosFn, f.photos, f.fetchPhotosErr
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, scope, q)
	}
	if err != nil {
		return &models.PhotoPage{}, err
	}
	return &models.PhotoPage{Items: items, Total: len(items)}, nil
}

func (f *fakeClient) FetchAlbums(_ context.Context, scope models.Scope, parentID string) ([]models.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchAlbumsCalls++
	f.LastAlbumScope = scope
	f.LastParentID = parentID
	if f.fetchAlbumsErr != nil {
		return []models.Album{}, f.fetchAlbumsErr
	}
	return f.albums, nil
}

func (f *fakeClient) GetStats(_ context.Context, _ models.Scope) (*models.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return &models.Stats{}, f.statsErr
	}
	st := f.stats
	return &st, nil
}

func (f *fakeClient) CreateAlbum(_ context.Context, scope models.Scope, in models.AlbumInput) (*models.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.LastCreateScope = scope
	f.LastCreateInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	a := f.created
	if a.Name == "" {
		a.Name = in.Name
	}
	a.ParentID = in.ParentID
	a.CircleID = scope.OwnerCircleID()
	a.IsShared = a.CircleID != ""
	return &a, nil
}

func (f *fakeClient) UpdateAlbum(_ context.Context, _ string, patch models.AlbumPatch) (*models.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastPatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	a := f.updated
	return &a, nil
}

func (f *fakeClient) DeleteAlbum(_ context.Context, albumID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteAlbumErr != nil {
		return f.deleteAlbumErr
	}
	f.deletedAlbums = append(f.deletedAlbums, albumID)
	return nil
}

func (f *fakeClient) SetAlbumCover(_ context.Context, albumID, photoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCover = [2]string{albumID, photoID}
	return f.coverErr
}

func (f *fakeClient) ToggleFavorite(_ context.Context, _ string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.favoriteErr != nil {
		return false, f.favoriteErr
	}
	return f.favorite, nil
}

func (f *fakeClient) MoveToAlbum(_ context.Context, _ string, albumID *string) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastMoveAlbum = albumID
	if f.moveErr != nil {
		return nil, f.moveErr
	}
	p := f.moved
	return &p, nil
}

func (f *fakeClient) DeletePhoto(_ context.Context, photoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deletePhotoErr != nil {
		return f.deletePhotoErr
	}
	f.deletedPhotos = append(f.deletedPhotos, photoID)
	return nil
}

func ptr[T any](v T) *T { return &v }

func photoIDs(ps []models.Photo) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func albumIDs(as []models.Album) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}
	return out
}
