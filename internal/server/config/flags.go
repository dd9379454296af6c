package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/lockerrelay/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-p string   listen port
//	-k string   service-account key file path
//	-u string   Realtime Database URL
//	-l string   log level
//
// Other arguments (such as -c) are filtered out before parsing.
func parseFlags(config *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-p", "-k", "-u", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.Port, "p", config.Port, "port to listen on")
	fs.StringVar(&config.CredentialsPath, "k", config.CredentialsPath, "service account key file")
	fs.StringVar(&config.DatabaseURL, "u", config.DatabaseURL, "realtime database url")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	return fs.Parse(filtered)
}
