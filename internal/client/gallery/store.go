package gallery

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/circlegallery/internal/client/client"
	"github.com/dmitrijs2005/circlegallery/internal/client/models"
	"github.com/dmitrijs2005/circlegallery/internal/logging"
)

type collection int

const (
	photosCollection collection = iota
	albumsCollection
	statsCollection
	collectionCount
)

// Store owns the gallery State. All mutation goes through Dispatch, which
// is safe for concurrent use; subscribers are notified outside the lock.
type Store struct {
	client client.Client
	log    logging.Logger

	mu      sync.Mutex
	state   State
	version uint64
	gens    [collectionCount]uint64
	pending [collectionCount]bool
	subs    map[int]func(State)
	nextSub int

	// deliverMu orders notifications; delivered is the newest version
	// handed to subscribers.
	deliverMu sync.Mutex
	delivered uint64
}

func NewStore(c client.Client, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{
		client: c,
		log:    log.With("component", "gallery"),
		state:  NewState(),
		subs:   make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the actions in order as one update and returns the
// resulting state.
func (s *Store) Dispatch(actions ...Action) State {
	s.mu.Lock()
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
	st, v, subs := s.snapshot()
	s.mu.Unlock()

	s.notify(subs, st, v)
	return st
}

// Subscribe registers fn to receive new states. Deliveries never go
// backwards: when concurrent updates race, a snapshot older than one
// already delivered is skipped. fn runs with notifications serialized and
// must not call back into the Store synchronously.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshot stamps the current state with a new version. Callers hold mu.
func (s *Store) snapshot() (State, uint64, []func(State)) {
	s.version++
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return s.state, s.version, subs
}

func (s *Store) notify(subs []func(State), st State, v uint64) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if v <= s.delivered {
		return
	}
	s.delivered = v
	for _, fn := range subs {
		fn(st)
	}
}

// loading reports whether any collection has a current load outstanding.
// Callers hold mu.
func (s *Store) loading() bool {
	for _, p := range s.pending {
		if p {
			return true
		}
	}
	return false
}

// begin starts a load of c: it supersedes any earlier load of the same
// collection, raises the loading flag and clears the error.
func (s *Store) begin(c collection) (gen uint64, st State) {
	s.mu.Lock()
	s.gens[c]++
	gen = s.gens[c]
	s.pending[c] = true
	s.state = Reduce(s.state, SetLoading{Loading: true})
	s.state = Reduce(s.state, ClearError{})
	st, v, subs := s.snapshot()
	s.mu.Unlock()

	s.notify(subs, st, v)
	return gen, st
}

// finish applies the outcome of a load unless a newer load of the same
// collection, or a mode switch, superseded it. A superseded load no longer
// counts towards the loading flag, which drops once no current load is
// outstanding.
func (s *Store) finish(c collection, gen uint64, actions ...Action) bool {
	s.mu.Lock()
	current := s.gens[c] == gen
	if current {
		for _, a := range actions {
			s.state = Reduce(s.state, a)
		}
		s.pending[c] = false
	}
	s.state = Reduce(s.state, SetLoading{Loading: s.loading()})
	st, v, subs := s.snapshot()
	s.mu.Unlock()

	s.notify(subs, st, v)
	return current
}

// fail logs err and records it as the visible error.
func (s *Store) fail(ctx context.Context, op string, err error, args ...any) error {
	kind := client.KindOf(err)
	args = append(args, "op", op, "kind", string(kind), "error", err)
	if kind == client.KindValidation {
		s.log.Warn(ctx, "gallery action rejected", args...)
	} else {
		s.log.Error(ctx, "gallery action failed", args...)
	}
	s.Dispatch(SetError{Message: errorMessage(op, err), Kind: kind})
	return err
}

func errorMessage(op string, err error) string {
	return "failed to " + op + ": " + client.MessageOf(err)
}

// SetMode switches between the personal gallery and a circle. Everything
// loaded for the previous source is dropped and in-flight loads are
// discarded when they complete.
func (s *Store) SetMode(ctx context.Context, mode Mode, circleID string) error {
	const op = "switch mode"
	circleID = strings.TrimSpace(circleID)
	switch mode {
	case ModePersonal:
		circleID = ""
	case ModeCircle:
		if circleID == "" {
			return s.fail(ctx, op, client.NewValidationError(op, "circle id is required"))
		}
	default:
		return s.fail(ctx, op, client.NewValidationError(op, "unknown mode "+string(mode)))
	}

	s.mu.Lock()
	for i := range s.gens {
		s.gens[i]++
		s.pending[i] = false
	}
	s.state = Reduce(s.state, SetMode{Mode: mode, CircleID: circleID})
	st, v, subs := s.snapshot()
	s.mu.Unlock()

	s.notify(subs, st, v)
	s.log.Info(ctx, "gallery mode switched", "scope", st.Scope().String())
	return nil
}

func (s *Store) LoadPersonalPhotos(ctx context.Context) error {
	return s.loadPhotos(ctx, models.PersonalScope())
}

func (s *Store) LoadCirclePhotos(ctx context.Context, circleID string) error {
	if circleID == "" {
		return s.fail(ctx, "load photos", client.NewValidationError("load photos", "circle id is required"))
	}
	return s.loadPhotos(ctx, models.CircleScope(circleID))
}

func (s *Store) LoadPersonalAlbums(ctx context.Context) error {
	return s.loadAlbums(ctx, models.PersonalScope())
}

func (s *Store) LoadCircleAlbums(ctx context.Context, circleID string) error {
	if circleID == "" {
		return s.fail(ctx, "load albums", client.NewValidationError("load albums", "circle id is required"))
	}
	return s.loadAlbums(ctx, models.CircleScope(circleID))
}

// LoadPhotos loads photos for the current mode. In circle mode circleID
// overrides the active circle when non-empty.
func (s *Store) LoadPhotos(ctx context.Context, circleID string) error {
	st := s.State()
	if st.Mode != ModeCircle {
		return s.LoadPersonalPhotos(ctx)
	}
	if circleID == "" {
		circleID = st.CircleID
	}
	return s.LoadCirclePhotos(ctx, circleID)
}

// LoadAlbums loads the albums under the current navigation position.
func (s *Store) LoadAlbums(ctx context.Context, circleID string) error {
	st := s.State()
	if st.Mode != ModeCircle {
		return s.LoadPersonalAlbums(ctx)
	}
	if circleID == "" {
		circleID = st.CircleID
	}
	return s.LoadCircleAlbums(ctx, circleID)
}

func (s *Store) loadPhotos(ctx context.Context, scope models.Scope) error {
	const op = "load photos"
	gen, st := s.begin(photosCollection)
	query := models.PhotoQuery{
		Type:    st.Filters.Type,
		Search:  st.Filters.Search,
		AlbumID: st.CurrentAlbumID(),
	}

	page, err := s.client.FetchPhotos(ctx, scope, query)
	if err != nil {
		s.log.Error(ctx, "gallery load failed", "op", op, "scope", scope.String(), "error", err)
		if !s.finish(photosCollection, gen, SetError{Message: errorMessage(op, err), Kind: client.KindOf(err)}) {
			s.log.Debug(ctx, "stale load discarded", "op", op, "scope", scope.String())
		}
		return err
	}
	if !s.finish(photosCollection, gen, SetPhotos{Photos: page.Items}) {
		s.log.Debug(ctx, "stale load discarded", "op", op, "scope", scope.String())
		return nil
	}
	s.log.Debug(ctx, "photos loaded", "scope", scope.String(), "count", len(page.Items), "total", page.Total)
	return nil
}

func (s *Store) loadAlbums(ctx context.Context, scope models.Scope) error {
	const op = "load albums"
	gen, st := s.begin(albumsCollection)

	albums, err := s.client.FetchAlbums(ctx, scope, st.CurrentAlbumID())
	if err != nil {
		s.log.Error(ctx, "gallery load failed", "op", op, "scope", scope.String(), "error", err)
		if !s.finish(albumsCollection, gen, SetError{Message: errorMessage(op, err), Kind: client.KindOf(err)}) {
			s.log.Debug(ctx, "stale load discarded", "op", op, "scope", scope.String())
		}
		return err
	}
	if !s.finish(albumsCollection, gen, SetAlbums{Albums: albums}) {
		s.log.Debug(ctx, "stale load discarded", "op", op, "scope", scope.String())
		return nil
	}
	s.log.Debug(ctx, "albums loaded", "scope", scope.String(), "count", len(albums))
	return nil
}

// LoadStats fetches usage statistics for the current scope.
func (s *Store) LoadStats(ctx context.Context) error {
	const op = "load stats"
	gen, st := s.begin(statsCollection)
	scope := st.Scope()

	stats, err := s.client.GetStats(ctx, scope)
	if err != nil {
		s.log.Error(ctx, "gallery load failed", "op", op, "scope", scope.String(), "error", err)
		s.finish(statsCollection, gen, SetError{Message: errorMessage(op, err), Kind: client.KindOf(err)})
		return err
	}
	s.finish(statsCollection, gen, SetStats{Stats: *stats})
	return nil
}

// Refresh reloads photos, albums and stats concurrently. Every load runs
// to completion; the first error is returned.
func (s *Store) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.LoadPhotos(ctx, "") })
	g.Go(func() error { return s.LoadAlbums(ctx, "") })
	g.Go(func() error { return s.LoadStats(ctx) })
	return g.Wait()
}

// AddPhoto inserts a freshly uploaded photo. Photos from another scope and
// duplicates of an already loaded photo are not added twice.
func (s *Store) AddPhoto(p models.Photo) {
	s.Dispatch(AddPhoto{Photo: p})
}

func (s *Store) ToggleFavorite(ctx context.Context, photoID string) error {
	const op = "toggle favorite"
	if photoID == "" {
		return s.fail(ctx, op, client.NewValidationError(op, "photo id is required"))
	}
	fav, err := s.client.ToggleFavorite(ctx, photoID)
	if err != nil {
		return s.fail(ctx, op, err, "photo_id", photoID)
	}
	s.Dispatch(PatchFavorite{PhotoID: photoID, IsFavorite: fav})
	return nil
}

// MoveToAlbum moves a photo into albumID, or out of any album when albumID
// is nil.
func (s *Store) MoveToAlbum(ctx context.Context, photoID string, albumID *string) error {
	const op = "move photo"
	if photoID == "" {
		return s.fail(ctx, op, client.NewValidationError(op, "photo id is required"))
	}
	p, err := s.client.MoveToAlbum(ctx, photoID, albumID)
	if err != nil {
		return s.fail(ctx, op, err, "photo_id", photoID)
	}
	s.Dispatch(ReplacePhoto{Photo: *p})
	return nil
}

func (s *Store) DeletePhoto(ctx context.Context, photoID string) error {
	const op = "delete photo"
	if photoID == "" {
		return s.fail(ctx, op, client.NewValidationError(op, "photo id is required"))
	}
	if err := s.client.DeletePhoto(ctx, photoID); err != nil {
		return s.fail(ctx, op, err, "photo_id", photoID)
	}
	s.Dispatch(RemovePhoto{PhotoID: photoID})
	return nil
}

// DeleteSelected deletes the selected photos one by one and stops at the
// first failure. It returns how many were deleted.
func (s *Store) DeleteSelected(ctx context.Context) (int, error) {
	ids := s.State().SelectedPhotos
	deleted := 0
	for _, id := range ids {
		if err := s.DeletePhoto(ctx, id); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// CreateAlbum creates an album inside the open album, or at the scope root.
// An explicit input.ParentID takes precedence.
func (s *Store) CreateAlbum(ctx context.Context, input models.AlbumInput) (*models.Album, error) {
	const op = "create album"
	input, err := normalizeAlbumInput(op, input)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	st := s.State()
	if input.ParentID == nil && st.SelectedAlbum != nil {
		parent := st.SelectedAlbum.ID
		input.ParentID = &parent
	}

	album, err := s.client.CreateAlbum(ctx, st.Scope(), input)
	if err != nil {
		return nil, s.fail(ctx, op, err, "name", input.Name)
	}
	s.Dispatch(AddAlbum{Album: *album})
	s.log.Info(ctx, "album created", "album_id", album.ID, "scope", st.Scope().String())
	return album, nil
}

func (s *Store) UpdateAlbum(ctx context.Context, albumID string, patch models.AlbumPatch) (*models.Album, error) {
	const op = "update album"
	patch, err := normalizeAlbumPatch(op, albumID, patch)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	album, err := s.client.UpdateAlbum(ctx, albumID, patch)
	if err != nil {
		return nil, s.fail(ctx, op, err, "album_id", albumID)
	}
	s.Dispatch(ReplaceAlbum{Album: *album})
	return album, nil
}

func (s *Store) DeleteAlbum(ctx context.Context, albumID string) error {
	const op = "delete album"
	if albumID == "" {
		return s.fail(ctx, op, client.NewValidationError(op, "album id is required"))
	}
	if err := s.client.DeleteAlbum(ctx, albumID); err != nil {
		return s.fail(ctx, op, err, "album_id", albumID)
	}
	s.Dispatch(RemoveAlbum{AlbumID: albumID})
	return nil
}

// SetAlbumCover sets the cover and reloads albums so the new cover URI is
// picked up.
func (s *Store) SetAlbumCover(ctx context.Context, albumID, photoID string) error {
	const op = "set album cover"
	if albumID == "" || photoID == "" {
		return s.fail(ctx, op, client.NewValidationError(op, "album id and photo id are required"))
	}
	if err := s.client.SetAlbumCover(ctx, albumID, photoID); err != nil {
		return s.fail(ctx, op, err, "album_id", albumID)
	}
	return s.LoadAlbums(ctx, "")
}

// NavigateToAlbum enters album, or returns to the scope root when album is
// nil. It does not load anything.
func (s *Store) NavigateToAlbum(album *models.Album) {
	if album != nil {
		a := *album
		album = &a
	}
	s.Dispatch(NavigateTo{Album: album})
}

// NavigateUp leaves the open album. At the root it is a no-op.
func (s *Store) NavigateUp() {
	s.Dispatch(NavigateUp{})
}

func (s *Store) TogglePhotoSelection(photoID string) {
	s.Dispatch(TogglePhotoSelection{PhotoID: photoID})
}

func (s *Store) SelectAll() {
	s.Dispatch(SelectAll{})
}

func (s *Store) ClearSelection() {
	s.Dispatch(ClearSelection{})
}

// UpdateFilters merges patch into the filters. It does not reload.
func (s *Store) UpdateFilters(patch FilterPatch) error {
	if err := validateFilterPatch("update filters", patch); err != nil {
		return err
	}
	s.Dispatch(UpdateFilters{Patch: patch})
	return nil
}

func (s *Store) SetViewMode(mode ViewMode) error {
	if err := validateViewMode("set view mode", mode); err != nil {
		return err
	}
	s.Dispatch(SetViewMode{ViewMode: mode})
	return nil
}
