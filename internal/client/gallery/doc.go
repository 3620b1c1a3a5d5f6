// Package gallery is the single source of truth for what the gallery UI
// renders: one immutable State value, a closed set of Action transitions
// applied by the pure Reduce function, and a Store that runs the gateway
// calls and then dispatches the matching transitions.
//
// Mutations are applied only after the gateway confirms them; the store
// never holds state the server has not acknowledged. Loads are guarded by a
// per-collection request generation so a slow, superseded response cannot
// overwrite a newer one.
//
// Navigation is a breadcrumb stack: SelectedAlbum always equals the last
// element of CurrentAlbumPath, or is nil when the path is empty.
package gallery
