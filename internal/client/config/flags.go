package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/onetap/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in the package doc are considered; anything else in args is left
// for other components.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-id", "-e", "-t", "-d", "-l", "-once"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ClientID, "id", cfg.ClientID, "client identifier the ID token is requested for")
	fs.StringVar(&cfg.Endpoint, "e", cfg.Endpoint, "token verification endpoint URL")
	verifyTimeout := fs.Int("t", int(cfg.VerifyTimeout.Seconds()), "verification timeout (in seconds)")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "keyring database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.Once, "once", cfg.Once, "run a single sign-in and exit")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t overrides; sub-second values from JSON or env survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.VerifyTimeout = time.Duration(*verifyTimeout) * time.Second
		}
	})
}
