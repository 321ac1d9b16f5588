// Package client bootstraps the local state of the onetap CLI.
//
// InitDatabase opens the SQLite keyring database, applies the embedded goose
// migrations (see RunMigrations) and returns the repositories built on top of
// it. Callers own the returned Store and must Close it.
package client
