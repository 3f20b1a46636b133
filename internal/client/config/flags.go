package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/instaphotos/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server (default from Config)
//	-i int      online check interval in seconds (default from Config)
//	-b string   blob-storage bucket name (default from Config)
//	-e string   blob-storage base endpoint URL (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-b", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.S3.Bucket, "b", cfg.S3.Bucket, "blob storage bucket")
	fs.StringVar(&cfg.S3.BaseEndpoint, "e", cfg.S3.BaseEndpoint, "blob storage base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
