package tui

import (
	"time"

	"github.com/akyairhashvil/overtime/internal/config"
	"github.com/akyairhashvil/overtime/internal/overtime"
	tea "github.com/charmbracelet/bubbletea"
)

// ElapsedMsg is one periodic timer event. Token ties it to the run that
// scheduled it so events from a stopped or suspended run are ignored.
type ElapsedMsg struct {
	Token overtime.Token
}

func tickCmd(tok overtime.Token) tea.Cmd {
	return tea.Tick(config.TickInterval, func(time.Time) tea.Msg { return ElapsedMsg{Token: tok} })
}

func (m MainModel) handleElapsed(msg ElapsedMsg) (MainModel, tea.Cmd) {
	if !m.driver.Elapsed(msg.Token) {
		return m, nil
	}
	return m, tea.Batch(tickCmd(msg.Token), m.titleCmd())
}

// suspend stops periodic delivery while the terminal is away.
func (m MainModel) suspend() MainModel {
	m.driver.Suspend()
	return m
}

// resume credits the time spent away and restarts periodic delivery.
func (m MainModel) resume() (MainModel, tea.Cmd) {
	catchUp, tok, ok := m.driver.Resume()
	if !ok {
		return m, nil
	}
	if catchUp > 0 {
		m.logger.Info("caught up after suspend", "seconds", catchUp, "run", m.driver.RunID())
	}
	return m, tea.Batch(tickCmd(tok), m.titleCmd())
}
