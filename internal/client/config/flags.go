package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/lockerrelay/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Fields whose flag is absent keep their current value.
//
//	-s string   relay server base URL
//	-t int      request timeout in seconds
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-s", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "relay server url")
	timeout := fs.Int("t", 0, "request timeout (in seconds)")

	if err := fs.Parse(filtered); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.Timeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
