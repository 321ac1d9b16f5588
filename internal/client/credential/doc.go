// Package credential obtains an identity token from a credential provider.
//
// # Overview
//
// A Provider is whatever can hand out credentials: a platform account
// manager, the local keyring (see package keyring), or a fake in tests. The
// caller describes what it accepts with a Request made of Options; this flow
// only ever asks for an IDTokenOption.
//
// The Acquirer wraps a Provider and turns everything it may do into a Result:
//
//	Obtained(token)          a non-empty ID token was returned
//	NoUsableCredential       nothing, a non-ID-token credential, or an empty token
//	AcquisitionFailed(msg)   the provider returned an error or panicked
//
// Provider errors never escape the Acquirer. Nothing is retried; a retry is a
// new, caller-initiated attempt.
package credential
