// Package memory provides in-memory implementations of the storage
// driven ports. Used in tests and as a fallback when no database is
// configured.
package memory
