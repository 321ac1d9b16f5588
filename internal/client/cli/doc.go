// Package cli provides the interactive onetap command-line client.
//
// NewApp wires configuration, the local keyring database, the credential
// acquirer, the HTTP verifier and the sign-in orchestrator. App.Run either
// performs a single sign-in (Config.Once) or starts a REPL with the commands:
//
//	help             show available commands
//	signin           run a sign-in attempt and follow its status
//	status           print the current status
//	import           paste an ID token into the keyring
//	accounts         list stored accounts for the configured client id
//	forget <id>      remove a stored account
//	exit | quit      leave the program
//
// While an attempt runs its status updates are rendered from a subscription
// on a separate goroutine; the account chooser prompts on the same input as
// the REPL, which is blocked until the attempt ends.
package cli
