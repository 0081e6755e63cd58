package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"

	"github.com/tragoedia0722/filenamify/pkg/filenamify"
)

// isolate points HOME at an empty directory and clears FILENAMIFY_* variables.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("FILENAMIFY_REPLACEMENT", "")
	t.Setenv("FILENAMIFY_MAX_LENGTH", "")
	t.Setenv("FILENAMIFY_VERBOSE", "")
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, "!", cfg.Replacement)
	require.Equal(t, 100, cfg.MaxLength)
	require.False(t, cfg.Verbose)
	require.Equal(t, filenamify.DefaultOptions(), cfg.Options())
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "filenamify.toml")
	writeFile(t, path, "replacement = '_'\nmax_length = 40\nverbose = true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "_", cfg.Replacement)
	require.Equal(t, 40, cfg.MaxLength)
	require.True(t, cfg.Verbose)
}

func TestLoad_EmptyReplacementFromFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "filenamify.toml")
	writeFile(t, path, "replacement = ''\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "", cfg.Replacement)
	require.Equal(t, 100, cfg.MaxLength)
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "filenamify", "config.toml"), "max_length = 12\n")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 12, cfg.MaxLength)
	require.Equal(t, "!", cfg.Replacement)
}

func TestLoad_TildePath(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "custom.toml"), "replacement = '-'\n")

	cfg, err := Load("~/custom.toml")
	require.NoError(t, err)
	require.Equal(t, "-", cfg.Replacement)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "filenamify.toml")
	writeFile(t, path, "max_length = 40\n")
	t.Setenv("FILENAMIFY_MAX_LENGTH", "7")
	t.Setenv("FILENAMIFY_REPLACEMENT", "~")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.MaxLength)
	require.Equal(t, "~", cfg.Replacement)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.Nil(t, cfg)

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "file", cfgErr.Field)
}

func TestLoad_InvalidReplacement(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "filenamify.toml")
	writeFile(t, path, "replacement = '/'\n")

	cfg, err := Load(path)
	require.Error(t, err)
	require.Nil(t, cfg)
	require.ErrorIs(t, err, filenamify.ErrInvalidReplacementToken)

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "replacement", cfgErr.Field)
}

func TestLoad_NegativeMaxLength(t *testing.T) {
	isolate(t)
	t.Setenv("FILENAMIFY_MAX_LENGTH", "-1")

	cfg, err := Load("")
	require.Error(t, err)
	require.Nil(t, cfg)

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "max_length", cfgErr.Field)
	require.Contains(t, err.Error(), "gte=0")
}

func TestConfig_Encode(t *testing.T) {
	cfg := Config{Replacement: "_", MaxLength: 64, Verbose: true}

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	require.Contains(t, buf.String(), "max_length = 64")

	var decoded Config
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, cfg, decoded)
}

func TestError(t *testing.T) {
	err := &Error{Field: "replacement", Value: "/", Err: filenamify.ErrInvalidReplacementToken}
	require.Equal(t, "config field 'replacement' (value: /): "+filenamify.ErrInvalidReplacementToken.Error(), err.Error())
	require.ErrorIs(t, err, filenamify.ErrInvalidReplacementToken)

	err = &Error{Field: "file", Err: os.ErrNotExist}
	require.Equal(t, "config field 'file': "+os.ErrNotExist.Error(), err.Error())
}

func TestConfig_Save(t *testing.T) {
	home := isolate(t)

	cfg := Default()
	cfg.Replacement = "-"
	cfg.MaxLength = 42

	written, err := cfg.Save("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "filenamify", "config.toml"), written)

	loaded, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "-", loaded.Replacement)
	require.Equal(t, 42, loaded.MaxLength)
}

func TestConfig_SaveExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "cfg.toml")

	cfg := Default()
	written, err := cfg.Save(path)
	require.NoError(t, err)
	require.Equal(t, path, written)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), *loaded)
}
