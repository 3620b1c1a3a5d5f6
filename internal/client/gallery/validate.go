package gallery

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrijs2005/circlegallery/internal/client/client"
	"github.com/dmitrijs2005/circlegallery/internal/client/models"
)

const maxAlbumNameLength = 100

var albumNameRules = []validation.Rule{
	validation.Required.Error("album name is required"),
	validation.RuneLength(1, maxAlbumNameLength).Error("album name must be at most 100 characters"),
}

// validateAlbumName checks an already trimmed album name.
func validateAlbumName(op, name string) error {
	if err := validation.Validate(name, albumNameRules...); err != nil {
		return client.NewValidationError(op, err.Error())
	}
	return nil
}

// normalizeAlbumInput trims the name and validates the result.
func normalizeAlbumInput(op string, in models.AlbumInput) (models.AlbumInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	return in, validateAlbumName(op, in.Name)
}

func normalizeAlbumPatch(op, albumID string, p models.AlbumPatch) (models.AlbumPatch, error) {
	if albumID == "" {
		return p, client.NewValidationError(op, "album id is required")
	}
	if p.IsEmpty() {
		return p, client.NewValidationError(op, "nothing to update")
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if err := validateAlbumName(op, name); err != nil {
			return p, err
		}
		p.Name = &name
	}
	if p.ParentID != nil && *p.ParentID == albumID {
		return p, client.NewValidationError(op, "album cannot be its own parent")
	}
	return p, nil
}

var (
	photoTypes = []any{
		models.PhotoTypeAll, models.PhotoTypeFavorites, models.PhotoTypeShared,
		models.PhotoTypeRecent, models.PhotoTypePhotos, models.PhotoTypeVideos,
	}
	sortFields = []any{SortByDate, SortByName, SortBySize}
	sortOrders = []any{SortAsc, SortDesc}
	viewModes  = []any{ViewPhotos, ViewAlbums, ViewGrid, ViewList}
)

func validateFilterPatch(op string, p FilterPatch) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.In(photoTypes...).Error("unknown photo type")),
		validation.Field(&p.SortBy, validation.In(sortFields...).Error("unknown sort field")),
		validation.Field(&p.SortOrder, validation.In(sortOrders...).Error("unknown sort order")),
	)
	if err != nil {
		return client.NewValidationError(op, err.Error())
	}
	return nil
}

func validateViewMode(op string, m ViewMode) error {
	if err := validation.Validate(m, validation.Required, validation.In(viewModes...).Error("unknown view mode")); err != nil {
		return client.NewValidationError(op, err.Error())
	}
	return nil
}
