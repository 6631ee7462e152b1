package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/overtime/internal/util"
)

// SettingsExport is the on-disk form of the key space.
type SettingsExport struct {
	ExportedAt string            `json:"exported_at"`
	Settings   map[string]string `json:"settings"`
}

// SettingsSource is anything that can list the stored key space.
type SettingsSource interface {
	AllSettings(ctx context.Context) (map[string]string, error)
}

// ExportSettings writes every stored key to a timestamped JSON file in dir
// and returns its path.
func ExportSettings(ctx context.Context, src SettingsSource, dir string) (string, error) {
	settings, err := src.AllSettings(ctx)
	if err != nil {
		return "", err
	}
	now := time.Now()
	payload, err := json.MarshalIndent(SettingsExport{
		ExportedAt: now.Format(time.RFC3339),
		Settings:   settings,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	if _, err := util.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	filename := fmt.Sprintf("overtime_export_%s.json", now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// ImportSettings replaces the stored key space with the contents of an
// export file. Nothing is written if the file does not decode.
func ImportSettings(ctx context.Context, d *Database, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read export: %w", err)
	}
	var export SettingsExport
	if err := json.Unmarshal(raw, &export); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidExport, err)
	}
	if export.Settings == nil {
		return 0, fmt.Errorf("%w: missing settings", ErrInvalidExport)
	}
	if err := d.ReplaceSettings(ctx, export.Settings); err != nil {
		return 0, err
	}
	return len(export.Settings), nil
}
