// Package tui is the Bubble Tea front end of the overtime tracker.
package tui

import (
	"context"
	"log/slog"

	"github.com/akyairhashvil/overtime/internal/config"
	"github.com/akyairhashvil/overtime/internal/overtime"
	"github.com/akyairhashvil/overtime/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Database is the persistence surface the widget needs beyond the engine's
// store.
type Database interface {
	AllSettings(ctx context.Context) (map[string]string, error)
}

type Options struct {
	Logger     *slog.Logger
	Clock      overtime.Clock
	BaseTitle  string
	ReportsDir string
	ExportDir  string
}

// MainModel is the root bubbletea model.
type MainModel struct {
	ctx     context.Context
	engine  *overtime.Engine
	driver  *overtime.Driver
	staging *overtime.Staging
	db      Database
	logger  *slog.Logger
	keys    *HandlerRegistry

	form     settingsForm
	progress progress.Model
	theme    Theme

	baseTitle  string
	reportsDir string
	exportDir  string

	Message  string
	err      error
	quitting bool
	width    int
	height   int
}

func NewMainModel(ctx context.Context, engine *overtime.Engine, db Database, opts Options) MainModel {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = util.DiscardLogger()
	}
	base := opts.BaseTitle
	if base == "" {
		base = config.BaseTitle
	}
	m := MainModel{
		ctx:        ctx,
		engine:     engine,
		driver:     overtime.NewDriver(opts.Clock, engine, logger),
		staging:    overtime.NewStaging(engine),
		db:         db,
		logger:     logger,
		keys:       defaultKeys(),
		form:       newSettingsForm(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		theme:      CurrentTheme,
		baseTitle:  base,
		reportsDir: opts.ReportsDir,
		exportDir:  opts.ExportDir,
	}
	m.progress.Width = config.ProgressWidth
	return m
}

func (m MainModel) Init() tea.Cmd {
	return m.titleCmd()
}

// ButtonLabel is the caption of the start/pause control.
func (m MainModel) ButtonLabel() string {
	switch {
	case m.engine.Running():
		return "Pause"
	case m.engine.TimeWorked() == 0:
		return "Start"
	default:
		return "Continue"
	}
}

// WindowTitle is the terminal title for the current state.
func (m MainModel) WindowTitle() string {
	if !m.engine.ShowTimeInTitle() {
		return m.baseTitle
	}
	return Clock(m.engine.TimeWorked()) + " | " + m.baseTitle
}

func (m MainModel) titleCmd() tea.Cmd {
	return tea.SetWindowTitle(m.WindowTitle())
}

func (m MainModel) Engine() *overtime.Engine { return m.engine }
func (m MainModel) Driver() *overtime.Driver { return m.driver }
