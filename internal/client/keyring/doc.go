// Package keyring is a local credential.Provider for terminal use.
//
// Accounts are ID tokens imported by the user and stored per client id in the
// accounts repository. GetCredential offers the stored accounts of the
// requested client id to a Chooser and hands the chosen token out as a
// *credential.IDTokenCredential. Tokens are imported as issued: claims are
// read without signature verification, since only the remote endpoint can
// judge a token.
package keyring
