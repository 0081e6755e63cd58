package filenamify

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Path sanitizes the last element of path and returns the augmented path.
// A leading "~" is expanded and the result is always absolute; the
// directory part is kept as is.
func Path(path string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	if err := validate("path", path, o); err != nil {
		return "", err
	}

	expPath, err := homedir.Expand(path)
	if err != nil {
		return "", &Error{Op: "path", Input: path, Err: err}
	}

	absPath, err := filepath.Abs(expPath)
	if err != nil {
		return "", &Error{Op: "path", Input: path, Err: err}
	}

	name, err := Sanitize(filepath.Base(absPath), WithOptions(o))
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(absPath), name), nil
}

// Components sanitizes every element of a relative path and joins them
// with the OS separator. Both "/" and "\" are treated as separators, empty
// elements are dropped, and "." / ".." elements are replaced, so the
// result never escapes the directory it is later joined to.
func Components(path string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	if err := validate("components", path, o); err != nil {
		return "", err
	}

	normalizedPath := strings.ReplaceAll(path, "\\", "/")
	pathParts := strings.Split(normalizedPath, "/")

	cleanedParts := make([]string, 0, len(pathParts))
	for _, part := range pathParts {
		if part == "" {
			continue
		}

		cleanPart, err := Sanitize(part, WithOptions(o))
		if err != nil {
			return "", err
		}
		cleanedParts = append(cleanedParts, cleanPart)
	}

	if len(cleanedParts) == 0 {
		return Sanitize("", WithOptions(o))
	}

	return filepath.Join(cleanedParts...), nil
}
