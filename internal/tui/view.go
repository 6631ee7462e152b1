package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/overtime/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func progressWidth(termWidth int) int {
	if termWidth <= 0 {
		return config.ProgressWidth
	}
	w := termWidth - 20
	if w > config.ProgressWidth {
		w = config.ProgressWidth
	}
	if w < config.MinProgressWidth {
		w = config.MinProgressWidth
	}
	return w
}

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}
	if m.staging.IsOpen() {
		return m.theme.Base.Render(m.form.view(m.theme, m.staging))
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderClock())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return m.theme.Base.Render(b.String())
}

func (m MainModel) renderHeader() string {
	today := m.engine.OvertimeToday()
	total := m.engine.OvertimeTotal()
	rows := [][2]string{
		{"Overtime today", m.theme.Value.Render(Overtime(today))},
		{"Total overtime", m.theme.BalanceStyle(ColorClass(total)).Render(Overtime(total))},
	}
	title := m.theme.Header.Render(m.baseTitle)
	lines := []string{title}
	for _, row := range rows {
		lines = append(lines, padRight(m.theme.Label.Render(row[0]), 18)+row[1])
	}
	return strings.Join(lines, "\n")
}

func (m MainModel) renderClock() string {
	worked := m.engine.TimeWorked()
	target := m.engine.DailyTarget()
	ratio := 0.0
	if target > 0 {
		ratio = float64(worked) / float64(target)
	}
	if ratio > 1 {
		ratio = 1
	}

	state := "stopped"
	if m.engine.Running() {
		state = "running"
		if m.driver.Suspended() {
			state = "away"
		}
	}
	clock := m.theme.Value.Render(Clock(worked))
	if m.engine.Running() {
		clock = m.theme.Focused.Render(Clock(worked))
	}

	lines := []string{
		padRight(m.theme.Label.Render("Time worked"), 18) + clock + "  " + m.theme.Dim.Render(state),
		padRight(m.theme.Label.Render("Target"), 18) + m.progress.ViewAs(ratio) + " " + m.theme.Dim.Render(Clock(target)),
		padRight(m.theme.Label.Render("Today is"), 18) + m.theme.Highlight.Render(m.engine.Mode().Label()),
		"",
		m.theme.Button.Render(m.ButtonLabel()),
	}
	return strings.Join(lines, "\n")
}

func (m MainModel) renderFooter() string {
	var parts []string
	if m.err != nil {
		parts = append(parts, m.theme.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	} else if m.Message != "" {
		parts = append(parts, m.theme.Highlight.Render(m.Message))
	}
	help := m.keys.Help(m)
	if m.width > 0 && m.width < config.CompactModeThreshold {
		help = ansi.Truncate(help, m.width-4, "…")
	}
	parts = append(parts, m.theme.Dim.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// padRight pads a styled string to width visible cells.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}
