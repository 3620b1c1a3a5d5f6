package client

import (
	"context"

	"github.com/dmitrijs2005/circlegallery/internal/client/models"
)

// Client is the remote gallery gateway. Implementations hold no mutable
// state of their own and are safe for concurrent use.
//
// List operations (FetchPhotos, FetchAlbums, GetStats) never return a nil
// result: on failure they return an empty value together with the error,
// so a caller that only renders can ignore the error. Mutations return a
// nil result with the error.
type Client interface {
	Close() error

	FetchPhotos(ctx context.Context, scope models.Scope, query models.PhotoQuery) (*models.PhotoPage, error)
	FetchAlbums(ctx context.Context, scope models.Scope, parentID string) ([]models.Album, error)
	GetStats(ctx context.Context, scope models.Scope) (*models.Stats, error)

	CreateAlbum(ctx context.Context, scope models.Scope, input models.AlbumInput) (*models.Album, error)
	UpdateAlbum(ctx context.Context, albumID string, patch models.AlbumPatch) (*models.Album, error)
	DeleteAlbum(ctx context.Context, albumID string) error
	SetAlbumCover(ctx context.Context, albumID, photoID string) error

	ToggleFavorite(ctx context.Context, photoID string) (bool, error)
	MoveToAlbum(ctx context.Context, photoID string, albumID *string) (*models.Photo, error)
	DeletePhoto(ctx context.Context, photoID string) error
}
