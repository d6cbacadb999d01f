// Package api provides the HTTP client for the LetHimCook server.
//
// # Overview
//
// This package is the only place the client application touches the network.
// It wraps every server endpoint in one typed call and translates status codes
// into a closed outcome taxonomy; no raw HTTP detail leaks past it.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client, per-endpoint calls, request plumbing
//   - types.go: Wire payload structs (the server's field names, including the
//     Portuguese recipe fields titulo/ingredientes/passos)
//   - errors.go: The outcome taxonomy
//
// # Client Usage
//
// Create a client using the server address from configuration:
//
//	client, err := api.NewClient("127.0.0.1:18080")
//	if err != nil {
//		return err
//	}
//	if err := client.Login(ctx, username, password); err != nil {
//		switch {
//		case errors.Is(err, api.ErrNotFound):
//			// no such user
//		case errors.Is(err, api.ErrUnauthorized):
//			// wrong password
//		}
//	}
//
// # Error Handling
//
// Every call reports exactly one of:
//
//   - nil: the endpoint's documented success status
//   - ErrNotFound: 404
//   - ErrUnauthorized: 401
//   - *ConflictError: 400, carrying the server's message verbatim
//   - *NetworkError: transport failure or timeout; the request may not have
//     reached the server
//   - *UnexpectedStatusError: anything else
//
// CheckFollow and ServerUp are status-only probes: a non-200 is an answer
// (not following / server down), not an error.
//
// # Request Handling
//
// All requests use context for cancellation, carry JSON bodies, and share a
// 10-second timeout via the owned http.Client. ServerUp applies its own
// 5-second deadline so the login screen's liveness indicator answers quickly.
// Mutating calls are never retried.
package api
