// Package sqlite provides the SQLite-backed implementations of the
// storage driven ports. A single database file holds documents and
// shared document snapshots; schema changes are applied through
// embedded migrations at startup.
package sqlite
