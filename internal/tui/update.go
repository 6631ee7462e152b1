package tui

import (
	"github.com/akyairhashvil/overtime/internal/database"
	"github.com/akyairhashvil/overtime/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type exportDoneMsg struct {
	path string
	err  error
}

type reportDoneMsg struct {
	path string
	err  error
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = progressWidth(msg.Width)
		return m, nil
	case ElapsedMsg:
		return m.handleElapsed(msg)
	case tea.BlurMsg:
		return m.suspend(), nil
	case tea.FocusMsg, tea.ResumeMsg:
		return m.resume()
	case exportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.Error("export failed", "error", msg.err)
			return m, nil
		}
		m.Message = "Exported to " + msg.path
		return m, nil
	case reportDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.Error("report failed", "error", msg.err)
			return m, nil
		}
		m.Message = "Report written to " + msg.path
		return m, nil
	case tea.KeyMsg:
		m.err = nil
		m.Message = ""
		if m.staging.IsOpen() {
			return m.updateSettings(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

func (m MainModel) updateSettings(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.staging.Cancel()
		m.Message = "Settings discarded"
		return m, nil
	case "enter":
		m.staging.Commit()
		m.Message = "Settings saved"
		return m, m.titleCmd()
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	}
	return m, m.form.handleKey(msg, m.staging)
}

func (m MainModel) quit() (MainModel, tea.Cmd) {
	m.quitting = true
	if m.engine.Running() {
		m.engine.ToggleRunning()
		m.driver.Stop()
	}
	return m, tea.Sequence(tea.SetWindowTitle(m.baseTitle), tea.Quit)
}

func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	stopped := func(m MainModel) bool { return !m.engine.Running() }

	r.Register(KeyBinding{Key: " ", Handler: handleToggleRunning, Description: "start/pause", Priority: 10})
	r.Register(KeyBinding{Key: "s", Handler: handleToggleRunning, Description: "start/pause", Priority: 10})
	r.Register(KeyBinding{Key: "+", Handler: handleAddIncrement, Description: "add step",
		Enabled: func(m MainModel) bool { return m.engine.CanAddIncrement() }})
	r.Register(KeyBinding{Key: "-", Handler: handleSubtractIncrement, Description: "remove step",
		Enabled: func(m MainModel) bool { return m.engine.CanSubtractIncrement() }})
	r.Register(KeyBinding{Key: "w", Handler: handleSetMode(models.ModeWork), Description: "work day",
		Enabled: func(m MainModel) bool { return m.engine.CanSwitchMode() && m.engine.Mode() != models.ModeWork }})
	r.Register(KeyBinding{Key: "r", Handler: handleSetMode(models.ModeRest), Description: "rest day",
		Enabled: func(m MainModel) bool { return m.engine.CanSwitchMode() && m.engine.Mode() != models.ModeRest }})
	r.Register(KeyBinding{Key: "n", Handler: handleStartNewDay, Description: "new day",
		Enabled: func(m MainModel) bool { return m.engine.CanStartNewDay() }})
	r.Register(KeyBinding{Key: "o", Handler: handleOpenSettings, Description: "settings",
		Enabled: func(m MainModel) bool { return m.engine.CanOpenSettings() }})
	r.Register(KeyBinding{Key: "t", Handler: handleToggleTitle, Description: "title clock"})
	r.Register(KeyBinding{Key: "e", Handler: handleExport, Description: "export", Enabled: stopped})
	r.Register(KeyBinding{Key: "P", Handler: handleReport, Description: "report", Enabled: stopped})
	r.Register(KeyBinding{Key: "ctrl+z", Handler: handleSuspend})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Priority: -1})
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: -1})
	return r
}

func handleToggleRunning(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.engine.ToggleRunning() {
		tok := m.driver.Start()
		return m, tickCmd(tok), true
	}
	m.driver.Stop()
	return m, m.titleCmd(), true
}

func handleAddIncrement(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.engine.AddIncrement()
	return m, m.titleCmd(), true
}

func handleSubtractIncrement(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.engine.SubtractIncrement()
	return m, m.titleCmd(), true
}

func handleSetMode(mode models.DayMode) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.engine.SetMode(mode)
		m.Message = mode.Label()
		return m, nil, true
	}
}

func handleStartNewDay(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.engine.StartNewDay()
	m.Message = "New day started"
	return m, m.titleCmd(), true
}

func handleOpenSettings(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.staging.Open()
	return m, m.form.load(m.staging), true
}

func handleToggleTitle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.engine.SetShowTimeInTitle(!m.engine.ShowTimeInTitle())
	return m, m.titleCmd(), true
}

func handleExport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.db == nil {
		m.Message = "Export unavailable"
		return m, nil, true
	}
	ctx, db, dir := m.ctx, m.db, m.exportDir
	return m, func() tea.Msg {
		path, err := database.ExportSettings(ctx, db, dir)
		return exportDoneMsg{path: path, err: err}
	}, true
}

func handleReport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	snap, dir := m.engine.Snapshot(), m.reportsDir
	return m, func() tea.Msg {
		path, err := GeneratePDFReport(snap, dir)
		return reportDoneMsg{path: path, err: err}
	}, true
}

func handleSuspend(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.suspend(), tea.Suspend, true
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next, cmd := m.quit()
	return next, cmd, true
}
