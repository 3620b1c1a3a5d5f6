// Package client is the remote side of the gallery: the Client gateway
// contract, its HTTP JSON implementation and the normalizer that turns
// the server's inconsistent payloads into models.Photo and models.Album.
//
// # Scopes
//
// Listing and album creation are scope-aware: models.PersonalScope() maps to
// /gallery/personal/..., models.CircleScope(id) to /gallery/circles/{id}/....
// Favorite, move, delete, cover and stats routes are shared by both scopes.
//
// # Error Handling
//
// Every failure is an *Error carrying a Kind (transport, server,
// unauthorized, not_found, validation, decode). Callers match with
// errors.Is against ErrUnavailable, ErrUnauthorized, ErrNotFound,
// ErrValidation, ErrServer, ErrDecode, or read the kind with KindOf.
// Only transport failures are Retryable.
//
// Read operations log and return an empty result alongside the error;
// mutations log and return the error with a nil result.
//
// # Normalization
//
// NormalizePhoto and NormalizeAlbum are pure. They accept the aliases the
// backends use (uri/url, coverPhoto/coverPhotoUrl, photoCount/mediaCount,
// uploadedBy as id or object, timestamps as RFC3339 or epoch numbers),
// fall back to sane defaults, and derive IsShared from CircleID.
package client
