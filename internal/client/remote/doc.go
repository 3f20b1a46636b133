// Package remote defines the engine's collaborator contracts and their
// concrete implementations.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic contracts for the three external collaborators:
//     Identity (account lifecycle), DocumentStore (document CRUD, filtered
//     collection queries, atomic batch updates), and BlobStore (byte upload
//     resolving to a stable URL).
//  2. A concrete gRPC implementation (see GRPCRemote) of Identity and
//     DocumentStore that manages a connection, injects an access token via
//     an interceptor, transparently refreshes expired tokens, and maps gRPC
//     status codes to sentinel errors.
//  3. An S3 implementation of BlobStore (see S3BlobStore) that uploads
//     image bytes and returns the public object URL.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, and common.ErrNotFound
// for missing documents.
//
// Concurrency & Contexts
//
// Implementations are safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts; no retries are performed
// beyond the single token-refresh replay.
package remote
