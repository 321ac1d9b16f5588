// Package config loads runtime configuration for the onetap CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with ONETAP_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-id string   client (relying-party) identifier the ID token is issued for
//	-e string    absolute URL of the token verification endpoint
//	-t int       verification timeout (seconds)
//	-d string    path of the local keyring database
//	-l string    log level: debug, info, warn, error
//	-once        run a single sign-in attempt and exit
//
// # JSON schema
//
//	{
//	  "client_id": "1234.apps.example.com",
//	  "endpoint": "https://api.example.com/auth/verify",
//	  "verify_timeout": "15s",
//	  "store_path": "keyring.db",
//	  "log_level": "info"
//	}
//
// Client id and endpoint have no defaults; Validate reports them missing
// before any sign-in attempt is made.
package config
