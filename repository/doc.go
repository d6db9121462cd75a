// Package repository provides generic CRUD and pagination over Bun plus the
// vehicle- and sale-specific query sets used by the service layer.
package repository
