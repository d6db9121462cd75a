// Package httpapi exposes the lot service over HTTP: gorilla/mux routing,
// request-scoped middleware (request id, access log, tracing), JSON
// rendering, and the mapping from the error taxonomy to status codes.
package httpapi
