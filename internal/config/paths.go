package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath normalizes a user-supplied path: backslash-escaped spaces
// become plain spaces, environment variables and a leading ~ are expanded,
// and the result is made absolute with symlinks resolved. It never fails;
// a path that does not exist comes back absolute but otherwise unresolved.
func ResolvePath(raw string) string {
	p := strings.ReplaceAll(raw, `\ `, " ")
	p = os.ExpandEnv(p)

	if expanded, err := expandHome(p); err == nil {
		p = expanded
	}

	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}

	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}

	return p
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
