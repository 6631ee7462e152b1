package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/overtime/internal/config"
	"github.com/akyairhashvil/overtime/internal/database"
	"github.com/akyairhashvil/overtime/internal/models"
	"github.com/akyairhashvil/overtime/internal/overtime"
	"github.com/akyairhashvil/overtime/internal/tui"
	"github.com/akyairhashvil/overtime/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var errUsage = errors.New("usage: app [status|export|import <file>|report]")

var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	switch command {
	case "", "status", "export", "import", "report":
	default:
		return fmt.Errorf("unknown command %q: %w", command, errUsage)
	}
	if command == "import" && len(args) < 2 {
		return errUsage
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if _, err := util.EnsureDir(cfg.DataDir); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logger, closer, err := util.NewLogger(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	if _, err := util.EnsureDir(filepath.Dir(cfg.DB.Path)); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := database.Open(ctx, cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	// Import replaces the key space before the engine hydrates from it.
	if command == "import" {
		n, err := database.ImportSettings(ctx, db, args[1])
		if err != nil {
			return err
		}
		logger.Info("settings imported", "file", args[1], "count", n)
		fmt.Fprintf(out, "Imported %d settings from %s\n", n, args[1])
	}

	engine := overtime.Load(database.NewKVStore(ctx, db, logger),
		overtime.WithLogger(logger),
		overtime.WithCompensation(cfg.Accounting.TargetCompensation),
	)
	reportsDir := cfg.Reports.Dir
	exportDir := cfg.ExportDir()

	switch command {
	case "status", "import":
		fmt.Fprintln(out, statusLine(engine.Snapshot()))
		return nil
	case "export":
		path, err := database.ExportSettings(ctx, db, exportDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported to %s\n", path)
		return nil
	case "report":
		path, err := tui.GeneratePDFReport(engine.Snapshot(), reportsDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "PDF Report generated: %s\n", path)
		return nil
	}

	if !isTerminal(os.Stdout) {
		fmt.Fprintln(out, statusLine(engine.Snapshot()))
		return nil
	}

	tui.SetTheme(cfg.UI.Theme)
	model := tui.NewMainModel(ctx, engine, db, tui.Options{
		Logger:     logger,
		BaseTitle:  cfg.UI.BaseTitle,
		ReportsDir: reportsDir,
		ExportDir:  exportDir,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func statusLine(s models.Snapshot) string {
	return fmt.Sprintf("%s | today %s | total %s | worked %s",
		s.Mode.Label(), tui.Overtime(s.OvertimeToday), tui.Overtime(s.OvertimeTotal), tui.Clock(s.TimeWorked))
}
