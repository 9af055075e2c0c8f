// Package freebusy contains concrete CalendarStore implementations. The store
// interfaces (FreeBusySource, CalendarStore) reside in the core package; code
// should depend on those and select an implementation at wiring time.
//
// The in-memory store below is the default system of record for development
// and tests. Production deployments substitute an adapter over a real calendar
// backend implementing the same contract, including idempotent inserts and
// conflict detection.
package freebusy
