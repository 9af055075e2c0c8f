// Package testutil contains helper builders and utilities used across tests
// to reduce boilerplate when constructing core model objects (meeting
// requests, time windows, profiles) and asserting behaviors. These helpers
// are intentionally minimal. They are not intended for production usage.
package testutil
