// Package config holds runtime settings for ghpulse.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/julianstephens/ghpulse/internal/constants"
)

// Environment variables read by the CLI flags
const (
	EnvAPIURL    = "GHPULSE_API_URL"
	EnvTimeout   = "GHPULSE_TIMEOUT"
	EnvDemoUser  = "GHPULSE_DEMO_USER"
	EnvConfigDir = "GHPULSE_CONFIG_DIR"
	EnvDebug     = "GHPULSE_DEBUG"
)

type Config struct {
	APIURL    string
	Timeout   time.Duration
	DemoUser  string
	ConfigDir string
	Debug     bool
}

// LoadEnv reads .env and .env.local into the process environment if present.
// Variables that are already set win. Missing files are not an error.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env", ".env.local"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		APIURL:    constants.DefaultAPIURL,
		Timeout:   constants.DefaultTimeout,
		DemoUser:  constants.DefaultDemoUser,
		ConfigDir: constants.DefaultConfigDir,
	}
}

// Validate checks the settings and expands the config directory
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API URL %q: must be an absolute http(s) URL", c.APIURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	dir, err := ExpandHome(c.ConfigDir)
	if err != nil {
		return err
	}
	c.ConfigDir = dir
	c.DemoUser = strings.TrimSpace(c.DemoUser)
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
