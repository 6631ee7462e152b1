package util

import "os"

// EnsureDir creates dir (and parents) and returns it.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
