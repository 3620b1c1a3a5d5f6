package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SwitchMode(ctx context.Context, args []string) error
	Photos(ctx context.Context, args []string) error
	Albums(ctx context.Context, args []string) error
	Refresh(ctx context.Context, args []string) error
	Cd(ctx context.Context, args []string) error
	Up(ctx context.Context, args []string) error
	Root(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	RemovePhoto(ctx context.Context, args []string) error
	RemoveAlbum(ctx context.Context, args []string) error
	MakeAlbum(ctx context.Context, args []string) error
	RenameAlbum(ctx context.Context, args []string) error
	Cover(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	SelectAll(ctx context.Context, args []string) error
	ClearSelection(ctx context.Context, args []string) error
	RemoveSelected(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	View(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  mode personal | mode circle <id>   switch gallery
  photos | albums | refresh | stats  load and show
  cd <album> | up | root             navigate albums
  fav <photo>                        toggle favorite
  mv <photo> <album|->               move photo (- removes from album)
  rm <photo> | rmalbum <album>       delete
  mkalbum <name>                     create album here
  rename <album> <name>              rename album
  cover <album> <photo>              set album cover
  sel <photo>... | selall | clear    selection
  rmsel                              delete selected photos
  filter type <t> | filter search [q]
  sort <date|name|size> [asc|desc]
  view <photos|albums|grid|list>
  exit | quit`

// runREPL starts a simple read–eval–print loop for the gallery CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. Errors returned by handlers are printed and the loop goes on.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gallery %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "mode":
			err = a.SwitchMode(ctx, args)
		case "photos", "ls":
			err = a.Photos(ctx, args)
		case "albums":
			err = a.Albums(ctx, args)
		case "refresh":
			err = a.Refresh(ctx, args)
		case "cd":
			err = a.Cd(ctx, args)
		case "up", "..":
			err = a.Up(ctx, args)
		case "root":
			err = a.Root(ctx, args)
		case "fav":
			err = a.Favorite(ctx, args)
		case "mv":
			err = a.Move(ctx, args)
		case "rm":
			err = a.RemovePhoto(ctx, args)
		case "rmalbum":
			err = a.RemoveAlbum(ctx, args)
		case "mkalbum":
			err = a.MakeAlbum(ctx, args)
		case "rename":
			err = a.RenameAlbum(ctx, args)
		case "cover":
			err = a.Cover(ctx, args)
		case "sel":
			err = a.Select(ctx, args)
		case "selall":
			err = a.SelectAll(ctx, args)
		case "clear":
			err = a.ClearSelection(ctx, args)
		case "rmsel":
			err = a.RemoveSelected(ctx, args)
		case "filter":
			err = a.Filter(ctx, args)
		case "sort":
			err = a.Sort(ctx, args)
		case "view":
			err = a.View(ctx, args)
		case "stats":
			err = a.Stats(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
