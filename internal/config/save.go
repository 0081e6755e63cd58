package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/rogpeppe/go-internal/lockedfile"
)

// Save writes the settings as TOML to path, or to the default location when
// path is empty. Missing parent directories are created.
func (c *Config) Save(path string) (string, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", &Error{Field: "file", Err: err}
		}
		path = defaultPath
	}

	expanded, err := homedir.Expand(filepath.Clean(path))
	if err != nil {
		return "", &Error{Field: "file", Value: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	if err := lockedfile.Write(expanded, &buf, 0o600); err != nil {
		return "", &Error{Field: "file", Value: expanded, Err: err}
	}

	return expanded, nil
}
