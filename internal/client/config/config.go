package config

import (
	"time"

	"github.com/dmitrijs2005/instaphotos/internal/client/remote"
)

// Config holds runtime settings for the InstaPhotos CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - S3: blob-storage settings for image uploads.
//
// Units: OnlineCheckInterval is a time.Duration (e.g., 3*time.Second).
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	S3                  remote.S3Config
}

// LoadDefaults populates c with sensible defaults. The blob-storage
// defaults match a local MinIO started with its stock credentials.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.S3 = remote.S3Config{
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000",
		Bucket:       "instaphotos",
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
