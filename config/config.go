// Package config resolves the connection settings for a Home Assistant
// instance. Explicit values always win; anything left empty falls back to
// the HA_URL and HA_TOKEN environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names read when explicit values are omitted.
const (
	EnvURL   = "HA_URL"
	EnvToken = "HA_TOKEN"
)

// Settings holds the resolved connection parameters for a single client.
// It is a plain value; nothing is cached or shared behind it.
type Settings struct {
	URL   string
	Token string
}

// MissingError reports a connection parameter that was neither passed
// explicitly nor present in the environment.
type MissingError struct {
	Variable string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s is required: pass it explicitly or set the environment variable", e.Variable)
}

// Load reads a .env file from the working directory into the process
// environment. A missing file is not an error.
func Load() error {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// Resolve produces concrete settings from the given values. Empty values
// fall back to the environment; the environment is not consulted for values
// that were supplied. Resolution is fresh on every call.
func Resolve(url, token string) (Settings, error) {
	if url == "" {
		url = os.Getenv(EnvURL)
		if url == "" {
			return Settings{}, &MissingError{Variable: EnvURL}
		}
	}
	if token == "" {
		token = os.Getenv(EnvToken)
		if token == "" {
			return Settings{}, &MissingError{Variable: EnvToken}
		}
	}
	return Settings{URL: url, Token: token}, nil
}
