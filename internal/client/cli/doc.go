// Package cli provides the interactive gallery command-line client.
//
// It wires configuration, the HTTP gateway and the gallery store into a
// read-eval-print loop. The prompt shows the active scope, the album
// breadcrumb and how many photos are selected.
//
// Typical flow: resolve the access token (config or a no-echo prompt),
// open the configured circle if any, load photos, albums and stats, then
// execute user commands until exit.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
