// Package state holds the shared server-liveness snapshot.
//
// A background prober (internal/app) refreshes the snapshot at a fixed
// cadence; the login view reads it to render the "Server Status" indicator.
// The Store is the only piece of state shared between goroutines in the
// process, which is why it carries its own lock while the view mirrors do not.
package state
