// Package client contains client-side building blocks for the writer CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the ledger backend: Register/Login, Ping, Broadcast, Retrieve,
//     HasPaid and RecordPayment.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, fetches
//     archived payloads through presigned URLs, and maps gRPC status codes
//     to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     for the CLI, wiring an SQLite database and applying embedded goose
//     migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrLocalDataNotAvailable.
package client
