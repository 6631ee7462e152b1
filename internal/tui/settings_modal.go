package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/overtime/internal/config"
	"github.com/akyairhashvil/overtime/internal/overtime"
	"github.com/akyairhashvil/overtime/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsField int

const (
	fieldTargetHours settingsField = iota
	fieldTargetMinutes
	fieldTotalSign
	fieldTotalHours
	fieldTotalMinutes
	fieldIncrement
	fieldShowTitle
	settingsFieldCount
)

var settingsLabels = [...]string{
	fieldTargetHours:   "Daily target (h)",
	fieldTargetMinutes: "Daily target (m)",
	fieldTotalSign:     "Total sign (+/-)",
	fieldTotalHours:    "Total overtime (h)",
	fieldTotalMinutes:  "Total overtime (m)",
	fieldIncrement:     "Increment (min)",
	fieldShowTitle:     "Time in window title",
}

// settingsForm is the terminal rendition of the settings panel. Every edit
// is pushed into the staging buffer immediately; nothing reaches the engine
// until the form is submitted.
type settingsForm struct {
	inputs    []textinput.Model
	focus     settingsField
	showTitle bool
}

func newSettingsForm() settingsForm {
	inputs := make([]textinput.Model, fieldShowTitle)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = config.MaxHourDigits
		ti.Width = 4
		inputs[i] = ti
	}
	inputs[fieldTotalSign].CharLimit = 1
	inputs[fieldIncrement].CharLimit = config.MaxMinuteDigits
	inputs[fieldIncrement].Placeholder = strconv.Itoa(int(config.DefaultIncrement / 60))
	return settingsForm{inputs: inputs}
}

// load fills the inputs from the staged draft and focuses the first field.
func (f *settingsForm) load(s *overtime.Staging) tea.Cmd {
	th, tm := s.TargetHM()
	f.inputs[fieldTargetHours].SetValue(strconv.Itoa(th))
	f.inputs[fieldTargetMinutes].SetValue(strconv.Itoa(tm))
	f.loadTotal(s)
	f.inputs[fieldIncrement].SetValue(strconv.Itoa(s.IncrementMinutes()))
	f.showTitle = s.Draft().ShowTimeInTitle
	return f.focusField(fieldTargetHours)
}

func (f *settingsForm) loadTotal(s *overtime.Staging) {
	sign, h, m := s.TotalSignedHM()
	if sign < 0 {
		f.inputs[fieldTotalSign].SetValue("-")
	} else {
		f.inputs[fieldTotalSign].SetValue("+")
	}
	f.inputs[fieldTotalHours].SetValue(strconv.Itoa(h))
	f.inputs[fieldTotalMinutes].SetValue(strconv.Itoa(m))
}

func (f *settingsForm) focusField(field settingsField) tea.Cmd {
	f.focus = field
	var cmd tea.Cmd
	for i := range f.inputs {
		if settingsField(i) == field {
			cmd = f.inputs[i].Focus()
			continue
		}
		f.inputs[i].Blur()
	}
	return cmd
}

func (f *settingsForm) next() tea.Cmd {
	return f.focusField((f.focus + 1) % settingsFieldCount)
}

func (f *settingsForm) prev() tea.Cmd {
	return f.focusField((f.focus + settingsFieldCount - 1) % settingsFieldCount)
}

// handleKey applies one keystroke to the focused field and forwards the
// result to the staging buffer.
func (f *settingsForm) handleKey(msg tea.KeyMsg, s *overtime.Staging) tea.Cmd {
	if f.focus == fieldShowTitle {
		if msg.String() == " " || msg.String() == "x" {
			f.showTitle = !f.showTitle
			s.SetShowTimeInTitle(f.showTitle)
		}
		return nil
	}
	if msg.Type == tea.KeySpace {
		return nil
	}
	if msg.Type == tea.KeyRunes {
		if f.focus == fieldTotalSign {
			r := string(msg.Runes)
			if r != "+" && r != "-" {
				return nil
			}
			f.inputs[fieldTotalSign].SetValue(r)
			f.apply(fieldTotalSign, s)
			return nil
		}
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return nil
			}
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.apply(f.focus, s)
	return cmd
}

func (f *settingsForm) apply(field settingsField, s *overtime.Staging) {
	switch field {
	case fieldTargetHours, fieldTargetMinutes:
		h := f.clampedValue(fieldTargetHours, config.MaxTargetHours)
		m := f.clampedValue(fieldTargetMinutes, config.MaxMinutes)
		s.SetTargetFromHoursMinutes(h, m)
		f.loadTotal(s)
	case fieldTotalSign, fieldTotalHours, fieldTotalMinutes:
		sign := 1
		if f.inputs[fieldTotalSign].Value() == "-" {
			sign = -1
		}
		h := f.clampedValue(fieldTotalHours, config.MaxTotalHours)
		m := f.clampedValue(fieldTotalMinutes, config.MaxMinutes)
		s.SetTotalFromSignedHoursMinutes(sign, h, m)
	case fieldIncrement:
		if strings.TrimSpace(f.inputs[fieldIncrement].Value()) == "" {
			return
		}
		n := f.clampedValue(fieldIncrement, config.MaxIncrementMinutes)
		if n < config.MinIncrementMinutes {
			n = config.MinIncrementMinutes
		}
		s.SetIncrement(n)
	}
}

// clampedValue reads a numeric field, treating empty input as zero, and
// rewrites the field when the typed number is out of range.
func (f *settingsForm) clampedValue(field settingsField, max int) int {
	raw := strings.TrimSpace(f.inputs[field].Value())
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	clamped := util.Clamp(n, 0, max)
	if clamped != n {
		f.inputs[field].SetValue(strconv.Itoa(clamped))
	}
	return clamped
}

func (f settingsForm) view(theme Theme, s *overtime.Staging) string {
	var b strings.Builder
	b.WriteString(theme.Header.Render("Settings"))
	b.WriteString("\n\n")
	for i := settingsField(0); i < settingsFieldCount; i++ {
		label := fmt.Sprintf("%-22s", settingsLabels[i])
		if i == f.focus {
			label = theme.Focused.Render("> " + label)
		} else {
			label = theme.Label.Render("  " + label)
		}
		var value string
		if i == fieldShowTitle {
			value = "[ ]"
			if f.showTitle {
				value = "[x]"
			}
		} else {
			value = f.inputs[i].View()
		}
		b.WriteString(label + " " + value + "\n")
	}
	draft := s.Draft()
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render(fmt.Sprintf("Staged total %s, target %s", Overtime(draft.Total), Clock(draft.Target))))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("[tab]next|[shift+tab]prev|[space]toggle|[enter]save|[esc]cancel"))
	return theme.Input.Render(b.String())
}
