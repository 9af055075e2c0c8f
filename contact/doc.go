// Package contact contains concrete ContactStore implementations. The store
// interface and Profile type reside in the core package. Import
// github.com/hupe1980/meetmesh/core and depend on core.ContactStore in your
// code; select an implementation (like the in-memory store below) at wiring
// time.
//
// Rationale: keeps domain contracts centralized while allowing pluggable
// backends (CRM connectors, directory services, etc.) to be added without
// introducing dependency cycles.
package contact
