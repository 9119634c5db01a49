package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for a test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestResolve_ExplicitValuesWin(t *testing.T) {
	t.Setenv(EnvURL, "http://from-env:8123")
	t.Setenv(EnvToken, "env_token")

	settings, err := Resolve("http://explicit:8123", "explicit_token")
	require.NoError(t, err)
	assert.Equal(t, "http://explicit:8123", settings.URL)
	assert.Equal(t, "explicit_token", settings.Token)
}

func TestResolve_EnvFallback(t *testing.T) {
	t.Setenv(EnvURL, "http://from-env:8123")
	t.Setenv(EnvToken, "env_token")

	settings, err := Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8123", settings.URL)
	assert.Equal(t, "env_token", settings.Token)
}

func TestResolve_MixedSources(t *testing.T) {
	t.Setenv(EnvURL, "http://from-env:8123")
	t.Setenv(EnvToken, "env_token")

	settings, err := Resolve("http://explicit:8123", "")
	require.NoError(t, err)
	assert.Equal(t, "http://explicit:8123", settings.URL)
	assert.Equal(t, "env_token", settings.Token)
}

func TestResolve_MissingURL(t *testing.T) {
	t.Setenv(EnvURL, "")
	t.Setenv(EnvToken, "env_token")

	_, err := Resolve("", "")
	require.Error(t, err)

	var missing *MissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, EnvURL, missing.Variable)
}

func TestResolve_MissingToken(t *testing.T) {
	t.Setenv(EnvURL, "http://from-env:8123")
	t.Setenv(EnvToken, "")

	_, err := Resolve("", "")
	require.Error(t, err)

	var missing *MissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, EnvToken, missing.Variable)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	chdir(t, t.TempDir())
	assert.NoError(t, Load())
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "HA_URL=http://from-dotenv:8123\nHA_TOKEN=dotenv_token\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	chdir(t, dir)

	// godotenv does not override variables that are already set, so make
	// sure they are absent (t.Setenv registers the restore).
	t.Setenv(EnvURL, "")
	t.Setenv(EnvToken, "")
	os.Unsetenv(EnvURL)
	os.Unsetenv(EnvToken)

	require.NoError(t, Load())

	settings, err := Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv:8123", settings.URL)
	assert.Equal(t, "dotenv_token", settings.Token)
}
