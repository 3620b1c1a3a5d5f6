package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/circlegallery/internal/client/models"
	"github.com/dmitrijs2005/circlegallery/internal/common"
	"github.com/dmitrijs2005/circlegallery/internal/logging"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
)

// HTTPClient talks to the gallery JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
	newID   func() string
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout sets the request timeout on a private copy of the underlying
// http.Client, leaving one passed to WithHTTPClient untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient returns a gateway rooted at baseURL, e.g.
// "https://api.example.com/v1". Routes are appended to it verbatim.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New("base url must be http or https")
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logging.NewNop(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func scopePath(scope models.Scope) string {
	if scope.IsPersonal() {
		return "/gallery/personal"
	}
	return "/gallery/circles/" + url.PathEscape(scope.CircleID)
}

func photoPath(photoID string) string {
	return "/gallery/photos/" + url.PathEscape(photoID)
}

func albumPath(albumID string) string {
	return "/gallery/albums/" + url.PathEscape(albumID)
}

func (c *HTTPClient) FetchPhotos(ctx context.Context, scope models.Scope, query models.PhotoQuery) (*models.PhotoPage, error) {
	const op = "fetch photos"

	q := url.Values{}
	switch query.Type {
	case "", models.PhotoTypeAll:
		q.Set("type", string(models.PhotoTypeAll))
	case models.PhotoTypeFavorites:
		q.Set("type", string(models.PhotoTypeAll))
		q.Set("isFavorite", "true")
	default:
		q.Set("type", string(query.Type))
	}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.AlbumID != "" {
		q.Set("albumId", query.AlbumID)
	}

	var resp struct {
		Photos []json.RawMessage `json:"photos"`
		Total  *int              `json:"total"`
	}
	if err := c.do(ctx, op, http.MethodGet, scopePath(scope)+"/photos", q, nil, &resp); err != nil {
		c.logReadFailure(ctx, op, scope, err)
		return &models.PhotoPage{Items: []models.Photo{}}, err
	}

	page := &models.PhotoPage{Items: make([]models.Photo, 0, len(resp.Photos))}
	for _, raw := range decodeItems[RawPhoto](ctx, c.log, op, scope, resp.Photos) {
		page.Items = append(page.Items, NormalizePhoto(raw, scope))
	}
	page.Total = len(page.Items)
	if resp.Total != nil {
		page.Total = *resp.Total
	}
	return page, nil
}

func (c *HTTPClient) FetchAlbums(ctx context.Context, scope models.Scope, parentID string) ([]models.Album, error) {
	const op = "fetch albums"

	q := url.Values{}
	if parentID != "" {
		q.Set("parentId", parentID)
	}

	var resp struct {
		Albums []json.RawMessage `json:"albums"`
	}
	if err := c.do(ctx, op, http.MethodGet, scopePath(scope)+"/albums", q, nil, &resp); err != nil {
		c.logReadFailure(ctx, op, scope, err)
		return []models.Album{}, err
	}

	albums := make([]models.Album, 0, len(resp.Albums))
	for _, raw := range decodeItems[RawAlbum](ctx, c.log, op, scope, resp.Albums) {
		albums = append(albums, NormalizeAlbum(raw, scope))
	}
	return albums, nil
}

// decodeItems decodes list entries one at a time; an entry that does not
// decode is logged and skipped so it cannot fail the rest of the page.
func decodeItems[T any](ctx context.Context, log logging.Logger, op string, scope models.Scope, items []json.RawMessage) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			log.Warn(ctx, "skipping malformed gallery item",
				"op", op, "scope", scope.String(), "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}

func (c *HTTPClient) GetStats(ctx context.Context, scope models.Scope) (*models.Stats, error) {
	const op = "get stats"

	q := url.Values{}
	if !scope.IsPersonal() {
		q.Set("circleId", scope.CircleID)
	}

	var resp struct {
		Stats rawStats `json:"stats"`
	}
	if err := c.do(ctx, op, http.MethodGet, "/gallery/stats", q, nil, &resp); err != nil {
		c.logReadFailure(ctx, op, scope, err)
		return &models.Stats{}, err
	}
	stats := normalizeStats(resp.Stats)
	return &stats, nil
}

func (c *HTTPClient) CreateAlbum(ctx context.Context, scope models.Scope, input models.AlbumInput) (*models.Album, error) {
	const op = "create album"

	var resp struct {
		Album *RawAlbum `json:"album"`
	}
	if err := c.do(ctx, op, http.MethodPost, scopePath(scope)+"/albums", nil, input, &resp); err != nil {
		return nil, c.mutationFailed(ctx, op, err, "scope", scope.String())
	}
	if resp.Album == nil {
		return nil, c.mutationFailed(ctx, op, &Error{Kind: KindDecode, Op: op, Message: "response has no album"})
	}
	album := NormalizeAlbum(*resp.Album, scope)
	return &album, nil
}

func (c *HTTPClient) UpdateAlbum(ctx context.Context, albumID string, patch models.AlbumPatch) (*models.Album, error) {
	const op = "update album"

	var resp struct {
		Album *RawAlbum `json:"album"`
	}
	if err := c.do(ctx, op, http.MethodPut, albumPath(albumID), nil, patch, &resp); err != nil {
		return nil, c.mutationFailed(ctx, op, err, "album_id", albumID)
	}
	if resp.Album == nil {
		return nil, c.mutationFailed(ctx, op, &Error{Kind: KindDecode, Op: op, Message: "response has no album"})
	}
	album := NormalizeAlbum(*resp.Album, models.Scope{})
	return &album, nil
}

func (c *HTTPClient) DeleteAlbum(ctx context.Context, albumID string) error {
	const op = "delete album"
	if err := c.do(ctx, op, http.MethodDelete, albumPath(albumID), nil, nil, nil); err != nil {
		return c.mutationFailed(ctx, op, err, "album_id", albumID)
	}
	return nil
}

func (c *HTTPClient) SetAlbumCover(ctx context.Context, albumID, photoID string) error {
	const op = "set album cover"
	body := struct {
		PhotoID string `json:"photoId"`
	}{PhotoID: photoID}
	if err := c.do(ctx, op, http.MethodPut, albumPath(albumID)+"/cover", nil, body, nil); err != nil {
		return c.mutationFailed(ctx, op, err, "album_id", albumID, "photo_id", photoID)
	}
	return nil
}

func (c *HTTPClient) ToggleFavorite(ctx context.Context, photoID string) (bool, error) {
	const op = "toggle favorite"

	var resp struct {
		IsFavorite *bool `json:"isFavorite"`
	}
	if err := c.do(ctx, op, http.MethodPatch, photoPath(photoID)+"/favorite", nil, nil, &resp); err != nil {
		return false, c.mutationFailed(ctx, op, err, "photo_id", photoID)
	}
	if resp.IsFavorite == nil {
		return false, c.mutationFailed(ctx, op, &Error{Kind: KindDecode, Op: op, Message: "response has no isFavorite"})
	}
	return *resp.IsFavorite, nil
}

func (c *HTTPClient) MoveToAlbum(ctx context.Context, photoID string, albumID *string) (*models.Photo, error) {
	const op = "move photo"

	body := struct {
		AlbumID *string `json:"albumId"`
	}{AlbumID: albumID}

	var resp struct {
		Photo *RawPhoto `json:"photo"`
	}
	if err := c.do(ctx, op, http.MethodPost, photoPath(photoID)+"/move", nil, body, &resp); err != nil {
		return nil, c.mutationFailed(ctx, op, err, "photo_id", photoID)
	}
	if resp.Photo == nil {
		return nil, c.mutationFailed(ctx, op, &Error{Kind: KindDecode, Op: op, Message: "response has no photo"})
	}
	photo := NormalizePhoto(*resp.Photo, models.Scope{})
	return &photo, nil
}

func (c *HTTPClient) DeletePhoto(ctx context.Context, photoID string) error {
	const op = "delete photo"
	if err := c.do(ctx, op, http.MethodDelete, photoPath(photoID), nil, nil, nil); err != nil {
		return c.mutationFailed(ctx, op, err, "photo_id", photoID)
	}
	return nil
}

// envelope is the part every response shares.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// failure returns the server's reason, from "message", a string "error"
// or an {"error": {"message": ...}} object.
func (e envelope) failure() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Error) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Error, &s); err == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(e.Error, &obj); err == nil {
		return firstNonEmpty(obj.Message, obj.Code)
	}
	return ""
}

// do performs one request and decodes the response into out. A missing
// "success" field counts as success; success=false or a non-2xx status
// is a failure.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Op: op, Message: "could not encode request", Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Message: "could not build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, c.newID())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return &Error{Kind: KindUnauthorized, Op: op, Message: "session expired", Err: err}
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Message: "network request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Status: resp.StatusCode, Message: "could not read response", Err: err}
	}

	var env envelope
	var envErr error
	if len(bytes.TrimSpace(raw)) > 0 {
		envErr = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.failure()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{Kind: kindForStatus(resp.StatusCode), Op: op, Status: resp.StatusCode, Message: msg}
	}
	if envErr != nil {
		return &Error{Kind: KindDecode, Op: op, Status: resp.StatusCode, Message: "malformed response", Err: envErr}
	}
	if env.Success != nil && !*env.Success {
		return &Error{Kind: KindServer, Op: op, Status: resp.StatusCode, Message: firstNonEmpty(env.failure(), fallbackMessage)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindDecode, Op: op, Status: resp.StatusCode, Message: "malformed response", Err: err}
	}
	return nil
}

func (c *HTTPClient) logReadFailure(ctx context.Context, op string, scope models.Scope, err error) {
	c.log.Warn(ctx, "gallery read failed, returning empty result",
		"op", op, "scope", scope.String(), "kind", string(KindOf(err)), "error", err)
}

func (c *HTTPClient) mutationFailed(ctx context.Context, op string, err error, args ...any) error {
	args = append(args, "op", op, "kind", string(KindOf(err)), "error", err)
	c.log.Error(ctx, "gallery mutation failed", args...)
	return err
}
