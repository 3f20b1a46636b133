// Package cli provides the interactive InstaPhotos command-line client.
//
// It wires configuration, the gRPC backend, blob storage, and an interactive
// REPL over the sync engine. Typical flow: restore a previous session, start
// a background connectivity watcher, and execute user commands.
//
// Key features:
//   - Signup / Login / Logout
//   - Create posts with an image and a searchable description
//   - Browse the personalized feed and own posts
//   - Search, follow, like, comment
//   - Edit the profile and its image
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
