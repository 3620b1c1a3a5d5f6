package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/circlegallery/internal/client/client"
	"github.com/dmitrijs2005/circlegallery/internal/client/config"
	"github.com/dmitrijs2005/circlegallery/internal/client/gallery"
	"github.com/dmitrijs2005/circlegallery/internal/common"
	"github.com/dmitrijs2005/circlegallery/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	client client.Client
	store  *gallery.Store
	in     io.Reader
	out    io.Writer

	// user is the token subject, shown in the prompt when known.
	user string
}

// NewApp resolves the access token and builds the gateway and store.
// When no token is configured and stdin is a terminal, the user is asked
// for one.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	token := c.AccessToken
	if token == "" && isTerminal(int(os.Stdin.Fd())) {
		t, err := GetToken(os.Stdout)
		if err != nil {
			return nil, fmt.Errorf("read access token: %w", err)
		}
		token = t
	}

	opts := []client.Option{
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	}

	var user string
	if token != "" {
		ts := client.NewStaticToken(token)
		if ts.Expired() {
			return nil, fmt.Errorf("access token: %w", common.ErrTokenExpired)
		}
		user = ts.Subject()
		opts = append(opts, client.WithTokenSource(ts))
	}

	api, err := client.NewHTTPClient(c.ServerBaseURL, opts...)
	if err != nil {
		return nil, err
	}

	app := newApp(c, log, api, os.Stdin, os.Stdout)
	app.user = user
	return app, nil
}

func newApp(c *config.Config, log logging.Logger, api client.Client, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.NewNop()
	}
	return &App{
		config: c,
		log:    log,
		client: api,
		store:  gallery.NewStore(api, log),
		in:     in,
		out:    out,
	}
}

// Run opens the configured scope, loads it and runs the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.client.Close()

	fmt.Fprintln(a.out, "Circle gallery CLI (type 'help' for commands)")

	if id := strings.TrimSpace(a.config.DefaultCircleID); id != "" {
		if err := a.store.SetMode(ctx, gallery.ModeCircle, id); err != nil {
			return err
		}
	}
	if err := a.store.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "initial load failed", "error", err)
		fmt.Fprintln(a.out, "Warning:", a.store.State().Error)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.in))
	return nil
}

func (a *App) getStatus() string {
	st := a.store.State()
	s := st.Scope().String()
	if a.user != "" {
		s = a.user + "@" + s
	}
	if crumbs := gallery.Breadcrumb(st); len(crumbs) > 0 {
		s += " /" + strings.Join(crumbs, "/")
	}
	if n := gallery.SelectedCount(st); n > 0 {
		s += fmt.Sprintf(" [%d selected]", n)
	}
	return "(" + s + ")"
}
