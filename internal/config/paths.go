package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDataDir is $XDG_DATA_HOME/overtime, else ~/.local/share/overtime.
func DefaultDataDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", AppName)
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DefaultReportsDir is the "Overtime" folder in the user's documents
// directory.
func DefaultReportsDir() string {
	return filepath.Join(documentsDir(), BaseTitle)
}

// ExportDir is where JSON exports land: reports.export_dir when set,
// otherwise an "exports" folder under the reports directory.
func (c Config) ExportDir() string {
	if dir := strings.TrimSpace(c.Reports.ExportDir); dir != "" {
		return dir
	}
	return filepath.Join(c.Reports.Dir, "exports")
}

// documentsDir honours XDG_DOCUMENTS_DIR from the environment, then from
// ~/.config/user-dirs.dirs, then falls back to ~/Documents.
func documentsDir() string {
	home, _ := os.UserHomeDir()
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return expandHome(dir, home)
	}
	if home == "" {
		return "."
	}
	if f, err := os.Open(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		defer f.Close()
		if dir := userDir(bufio.NewScanner(f), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir, home)
		}
	}
	return filepath.Join(home, "Documents")
}

// userDir returns the value assigned to key in a user-dirs.dirs stream.
func userDir(sc *bufio.Scanner, key string) string {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(name) != key {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"`)
	}
	return ""
}

func expandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
