package sqlite

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
)

const scheme = "sqlite://"

var errScheme = errors.New("expected sqlite:// scheme")

// parseDSN turns sqlite://<path>[?query] into a path modernc accepts.
// Relative paths are anchored at the working directory.
func parseDSN(dsn string) (string, error) {
	rest, ok := strings.CutPrefix(dsn, scheme)
	if !ok {
		return "", errScheme
	}
	if rest == ":memory:" {
		return rest, nil
	}

	path, query, hasQuery := strings.Cut(rest, "?")
	path, err := url.PathUnescape(path)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.New("missing database path")
	}
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}
	if hasQuery {
		return path + "?" + query, nil
	}
	return path, nil
}
