// Package store defines the interfaces for data persistence and the
// sentinel errors shared by their implementations. Handlers and services
// depend on these interfaces, never on a concrete backend, so the in-memory
// implementation can be swapped for a persistent one without touching the
// layers above.
package store
