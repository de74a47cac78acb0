package config

import (
	"flag"
	"os"
	"strings"

	"github.com/vibelook/vibelook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend origin (default from Config)
//	-s string   path of the local session file (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "path of the local session file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
}
