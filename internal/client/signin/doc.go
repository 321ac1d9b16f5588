// Package signin drives one identity-token sign-in attempt end to end:
// acquire a token from a credential provider, post it to the verification
// endpoint, and publish every state change to observers.
//
// # State machine
//
//	idle ──Start──▶ initializing ──▶ awaiting_credential ──Obtained──▶ verifying ──Verified──▶ succeeded
//	                                        │                              │
//	                                        └──NoUsable / Failed──▶ failed ◀──Rejected / Network / Unexpected
//
// succeeded and failed are terminal. The next Start creates a fresh Attempt;
// nothing, in particular no token, is carried over from the previous one.
//
// # Single flight
//
// An Orchestrator runs at most one non-terminal attempt. Start while an
// attempt is in flight returns ErrAttemptInProgress and has no other effect:
// no second credential prompt and no second network call.
//
// # Observation
//
// Callers never mutate state. They read it through Status, or receive every
// transition in order through Subscribe.
package signin
