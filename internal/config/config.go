// Package config resolves runtime settings from flags, the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/julianstephens/teetime/internal/constants"
)

// Environment variables read by the CLI flags.
const (
	EnvAPIURL    = "TEETIME_API_URL"
	EnvDebug     = "TEETIME_DEBUG"
	EnvConfigDir = "TEETIME_CONFIG_DIR"
	EnvTimeout   = "TEETIME_TIMEOUT"
)

type Config struct {
	APIBaseURL     string
	ConfigDir      string
	Debug          bool
	RequestTimeout time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIBaseURL:     constants.DefaultAPIBaseURL,
		ConfigDir:      DefaultConfigDir(),
		RequestTimeout: constants.DefaultRequestTimeout,
	}
}

// DefaultConfigDir is $XDG_CONFIG_HOME/teetime.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName)
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return errors.New("api url is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api url %q: %w", c.APIBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api url %q must use http or https", c.APIBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api url %q has no host", c.APIBaseURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout cannot be negative (got %s)", c.RequestTimeout)
	}
	return nil
}

// EnvFiles lists the .env files consulted, nearest first.
func EnvFiles(configDir string) []string {
	files := []string{constants.EnvFileName}
	if configDir != "" {
		files = append(files, filepath.Join(configDir, constants.EnvFileName))
	}
	return files
}

// LoadEnvFiles loads each existing file into the process environment.
// Variables that are already set are never overridden, and earlier files win
// over later ones. It returns the files that were loaded.
func LoadEnvFiles(paths ...string) ([]string, error) {
	var loaded []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return loaded, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}

// Bootstrap loads .env files before flags are parsed, honoring a config dir
// given through the environment.
func Bootstrap() ([]string, error) {
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return LoadEnvFiles(EnvFiles(dir)...)
}
