package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/circlegallery/internal/client/gallery"
	"github.com/dmitrijs2005/circlegallery/internal/client/models"
)

type usageError string

func (e usageError) Error() string { return "usage: " + string(e) }

func (a *App) SwitchMode(ctx context.Context, args []string) error {
	switch {
	case len(args) == 1 && args[0] == string(gallery.ModePersonal):
		if err := a.store.SetMode(ctx, gallery.ModePersonal, ""); err != nil {
			return err
		}
	case len(args) == 2 && args[0] == string(gallery.ModeCircle):
		if err := a.store.SetMode(ctx, gallery.ModeCircle, args[1]); err != nil {
			return err
		}
	default:
		return usageError("mode personal | mode circle <id>")
	}
	return a.Refresh(ctx, nil)
}

func (a *App) Photos(ctx context.Context, _ []string) error {
	if err := a.store.LoadPhotos(ctx, ""); err != nil {
		return err
	}
	st := a.store.State()
	renderPhotos(a.out, st, gallery.VisiblePhotos(st))
	return nil
}

func (a *App) Albums(ctx context.Context, _ []string) error {
	if err := a.store.LoadAlbums(ctx, ""); err != nil {
		return err
	}
	renderAlbums(a.out, a.store.State().Albums)
	return nil
}

// Refresh reloads everything for the current position and prints a summary.
func (a *App) Refresh(ctx context.Context, _ []string) error {
	err := a.store.Refresh(ctx)
	st := a.store.State()
	fmt.Fprintf(a.out, "%d photos, %d albums\n", len(st.Photos), len(st.Albums))
	return err
}

func (a *App) Cd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("cd <album>")
	}
	ref := strings.Join(args, " ")
	album, ok := gallery.FindAlbum(a.store.State(), ref)
	if !ok {
		return fmt.Errorf("no album %q here", ref)
	}
	a.store.NavigateToAlbum(&album)
	return a.Refresh(ctx, nil)
}

func (a *App) Up(ctx context.Context, _ []string) error {
	if len(a.store.State().CurrentAlbumPath) == 0 {
		fmt.Fprintln(a.out, "Already at root")
		return nil
	}
	a.store.NavigateUp()
	return a.Refresh(ctx, nil)
}

func (a *App) Root(ctx context.Context, _ []string) error {
	a.store.NavigateToAlbum(nil)
	return a.Refresh(ctx, nil)
}

func (a *App) Favorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("fav <photo>")
	}
	id := a.photoID(args[0])
	if err := a.store.ToggleFavorite(ctx, id); err != nil {
		return err
	}
	if p, ok := gallery.FindPhoto(a.store.State(), id); ok && p.IsFavorite {
		fmt.Fprintln(a.out, "★ favorite")
	} else {
		fmt.Fprintln(a.out, "☆ not favorite")
	}
	return nil
}

func (a *App) Move(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("mv <photo> <album|->")
	}
	var albumID *string
	if args[1] != "-" {
		id := a.albumID(args[1])
		albumID = &id
	}
	return a.store.MoveToAlbum(ctx, a.photoID(args[0]), albumID)
}

func (a *App) RemovePhoto(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("rm <photo>")
	}
	return a.store.DeletePhoto(ctx, a.photoID(args[0]))
}

func (a *App) RemoveAlbum(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("rmalbum <album>")
	}
	return a.store.DeleteAlbum(ctx, a.albumID(strings.Join(args, " ")))
}

func (a *App) MakeAlbum(ctx context.Context, args []string) error {
	album, err := a.store.CreateAlbum(ctx, models.AlbumInput{Name: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created album %s (%s)\n", album.Name, album.ID)
	return nil
}

func (a *App) RenameAlbum(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("rename <album> <name>")
	}
	name := strings.Join(args[1:], " ")
	_, err := a.store.UpdateAlbum(ctx, a.albumID(args[0]), models.AlbumPatch{Name: &name})
	return err
}

func (a *App) Cover(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("cover <album> <photo>")
	}
	return a.store.SetAlbumCover(ctx, a.albumID(args[0]), a.photoID(args[1]))
}

func (a *App) Select(_ context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("sel <photo>...")
	}
	for _, ref := range args {
		a.store.TogglePhotoSelection(a.photoID(ref))
	}
	return nil
}

func (a *App) SelectAll(_ context.Context, _ []string) error {
	a.store.SelectAll()
	return nil
}

func (a *App) ClearSelection(_ context.Context, _ []string) error {
	a.store.ClearSelection()
	return nil
}

func (a *App) RemoveSelected(ctx context.Context, _ []string) error {
	if len(a.store.State().SelectedPhotos) == 0 {
		fmt.Fprintln(a.out, "Nothing selected")
		return nil
	}
	n, err := a.store.DeleteSelected(ctx)
	fmt.Fprintf(a.out, "Deleted %d photo(s)\n", n)
	return err
}

func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("filter type <t> | filter search [q]")
	}
	var patch gallery.FilterPatch
	switch args[0] {
	case "type":
		if len(args) != 2 {
			return usageError("filter type <all|favorites|shared|recent|photos|videos>")
		}
		t := models.PhotoType(args[1])
		patch.Type = &t
	case "search":
		q := strings.Join(args[1:], " ")
		patch.Search = &q
	default:
		return usageError("filter type <t> | filter search [q]")
	}
	if err := a.store.UpdateFilters(patch); err != nil {
		return err
	}
	return a.Photos(ctx, nil)
}

// Sort reorders loaded photos; ordering is applied locally, no reload.
func (a *App) Sort(_ context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return usageError("sort <date|name|size> [asc|desc]")
	}
	field := gallery.SortField(args[0])
	patch := gallery.FilterPatch{SortBy: &field}
	if len(args) == 2 {
		order := gallery.SortOrder(args[1])
		patch.SortOrder = &order
	}
	if err := a.store.UpdateFilters(patch); err != nil {
		return err
	}
	st := a.store.State()
	renderPhotos(a.out, st, gallery.VisiblePhotos(st))
	return nil
}

func (a *App) View(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("view <photos|albums|grid|list>")
	}
	return a.store.SetViewMode(gallery.ViewMode(args[0]))
}

func (a *App) Stats(ctx context.Context, _ []string) error {
	if err := a.store.LoadStats(ctx); err != nil {
		return err
	}
	if st := a.store.State().Stats; st != nil {
		renderStats(a.out, *st)
	}
	return nil
}

// photoID resolves a user reference against loaded photos and falls back
// to the reference itself.
func (a *App) photoID(ref string) string {
	if p, ok := gallery.FindPhoto(a.store.State(), ref); ok {
		return p.ID
	}
	return ref
}

func (a *App) albumID(ref string) string {
	if al, ok := gallery.FindAlbum(a.store.State(), ref); ok {
		return al.ID
	}
	return ref
}
