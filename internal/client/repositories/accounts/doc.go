// Package accounts persists the ID-token accounts held by the local keyring.
//
// A SQLite-backed implementation (SQLiteRepository) works over a dbx.DBTX, so
// the same code runs against *sql.DB or inside a transaction (see InTx).
// Accounts are unique per (client id, subject); Upsert refreshes the token and
// profile of an existing account without touching its authorization or usage
// history.
//
// Timestamps are stored as fixed-width RFC 3339 UTC text.
package accounts
