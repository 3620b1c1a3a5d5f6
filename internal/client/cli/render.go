package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/circlegallery/internal/client/gallery"
	"github.com/dmitrijs2005/circlegallery/internal/client/models"
)

const gridColumns = 4

// shortID keeps ids readable in tables; prefixes are accepted as references.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func photoName(p models.Photo) string {
	if p.Title != "" {
		return p.Title
	}
	return p.Filename
}

func when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func renderPhotos(w io.Writer, st gallery.State, photos []models.Photo) {
	if len(photos) == 0 {
		fmt.Fprintln(w, "No photos")
		return
	}
	if st.ViewMode == gallery.ViewGrid {
		renderGrid(w, photos)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tTYPE\tSIZE\tADDED\tBY")
	for _, p := range photos {
		mark := " "
		if gallery.IsSelected(st, p.ID) {
			mark = "*"
		}
		if p.IsFavorite {
			mark += "★"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			mark, shortID(p.ID), photoName(p), p.MediaType,
			humanize.Bytes(uint64(max(p.Size, 0))), when(p.CreatedAt), p.UploadedByName)
	}
	tw.Flush()
}

func renderGrid(w io.Writer, photos []models.Photo) {
	var row []string
	for i, p := range photos {
		row = append(row, fmt.Sprintf("[%s] %s", shortID(p.ID), photoName(p)))
		if len(row) == gridColumns || i == len(photos)-1 {
			fmt.Fprintln(w, strings.Join(row, "  "))
			row = row[:0]
		}
	}
}

func renderAlbums(w io.Writer, albums []models.Album) {
	if len(albums) == 0 {
		fmt.Fprintln(w, "No albums")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHOTOS\tUPDATED")
	for _, a := range albums {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(a.ID), a.Name, humanize.Comma(int64(a.PhotoCount)), when(a.UpdatedAt))
	}
	tw.Flush()
}

func renderStats(w io.Writer, s models.Stats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Photos\t%s\n", humanize.Comma(int64(s.TotalPhotos)))
	fmt.Fprintf(tw, "Videos\t%s\n", humanize.Comma(int64(s.TotalVideos)))
	fmt.Fprintf(tw, "Size\t%s\n", humanize.Bytes(uint64(max(s.TotalSize, 0))))
	fmt.Fprintf(tw, "Albums\t%s\n", humanize.Comma(int64(s.AlbumCount)))
	fmt.Fprintf(tw, "Favorites\t%s\n", humanize.Comma(int64(s.FavoriteCount)))
	fmt.Fprintf(tw, "Recent\t%s\n", humanize.Comma(int64(s.RecentCount)))
	tw.Flush()
}
