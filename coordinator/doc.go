// Package coordinator implements the scheduling coordination layer: request
// validation, policy-driven enhancement, engine dispatch and error
// normalization.
//
// A Coordinator holds exactly one engine, resolved at construction time;
// switching engines means constructing a new coordinator. This is a deliberate
// consistency boundary: every call observes the same backend for the
// coordinator's whole lifetime.
//
// Validation is the coordinator's exclusive responsibility. Checks run in a
// fixed order and the first failure wins, before any engine call and with zero
// side effects. Engine failures propagate unchanged: the coordinator never
// retries, never downgrades an engine error into an empty result, and treats
// an empty proposal slice as success.
package coordinator
