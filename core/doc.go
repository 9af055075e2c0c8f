// Package core provides the foundational domain types and interfaces used by
// MeetMesh. It defines the core abstractions for:
//
//   - Meeting requests, attendees and time windows (validated value types)
//   - Proposals (scored candidate slots) and booking results
//   - The Engine capability contract every scheduling backend must satisfy
//   - Pluggable calendar (free/busy + booking) and contact stores
//   - The shared error taxonomy for validation and engine failures
//
// The package intentionally keeps implementation concerns (scoring algorithms,
// provider adapters, persistence) out of scope, exposing small interfaces to
// enable custom backends and extensions. All exported identifiers include
// concise documentation to aid discoverability and external consumption.
package core
