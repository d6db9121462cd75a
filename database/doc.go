// Package database manages the storage side of the lot: configuration
// loading, dialect-aware connection setup, pooling, health checks, query
// hooks, constraint-error classification, and the schema bootstrap.
package database
