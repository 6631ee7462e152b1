package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config defines runtime configuration.
type Config struct {
	DataDir    string           `yaml:"data_dir"`
	DB         DBConfig         `yaml:"db"`
	Log        LogConfig        `yaml:"log"`
	UI         UIConfig         `yaml:"ui"`
	Reports    ReportsConfig    `yaml:"reports"`
	Accounting AccountingConfig `yaml:"accounting"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type UIConfig struct {
	Theme     string `yaml:"theme"`
	BaseTitle string `yaml:"base_title"`
}

// ReportsConfig places PDF reports and JSON exports. An empty ExportDir means
// "exports" under Dir.
type ReportsConfig struct {
	Dir       string `yaml:"dir"`
	ExportDir string `yaml:"export_dir"`
}

type AccountingConfig struct {
	// TargetCompensation is "mode_aware" (target edits only move the total
	// on work days) or "always".
	TargetCompensation string `yaml:"target_compensation"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default(dataDir string) Config {
	return Config{
		DataDir: dataDir,
		DB: DBConfig{
			Path: filepath.Join(dataDir, DBFileName),
		},
		Log: LogConfig{
			Level: "info",
			Path:  filepath.Join(dataDir, LogFileName),
		},
		UI: UIConfig{
			Theme:     DefaultTheme,
			BaseTitle: BaseTitle,
		},
		Reports: ReportsConfig{
			Dir: DefaultReportsDir(),
		},
		Accounting: AccountingConfig{
			TargetCompensation: CompensationModeAware,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
// dataDir is the fallback data directory when OVERTIME_DATA_DIR is unset;
// an empty dataDir means DefaultDataDir.
func Load(dataDir string) (Config, error) {
	if dir := strings.TrimSpace(os.Getenv("OVERTIME_DATA_DIR")); dir != "" {
		dataDir = dir
	}
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}
	cfg := Default(dataDir)

	path := os.Getenv("OVERTIME_CONFIG_PATH")
	if path == "" {
		candidate := filepath.Join(dataDir, ConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("OVERTIME_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("OVERTIME_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("OVERTIME_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if dir := os.Getenv("OVERTIME_REPORTS_DIR"); dir != "" {
		cfg.Reports.Dir = dir
	}
	if theme := os.Getenv("OVERTIME_THEME"); theme != "" {
		cfg.UI.Theme = theme
	}
	if policy := os.Getenv("OVERTIME_TARGET_COMPENSATION"); policy != "" {
		cfg.Accounting.TargetCompensation = policy
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DB.Path) == "" {
		return fmt.Errorf("db.path must not be empty")
	}
	if strings.TrimSpace(c.Reports.Dir) == "" {
		return fmt.Errorf("reports.dir must not be empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	switch c.Accounting.TargetCompensation {
	case CompensationModeAware, CompensationAlways:
	default:
		return fmt.Errorf("invalid accounting.target_compensation %q", c.Accounting.TargetCompensation)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
