// Package cli provides the interactive SpicesLink command-line client.
//
// It wires configuration, the local session database, the backend API
// client, and an interactive REPL. On start it restores any persisted
// session and launches a background connectivity watcher.
//
// Key features:
//   - Register / Login / Logout (buyer accounts)
//   - Catalog: list, add, update, delete products
//   - Price tracking: history, add and update price points
//   - Shop discovery and reservations
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
