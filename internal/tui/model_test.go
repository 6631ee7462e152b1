package tui

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/overtime/internal/config"
	"github.com/akyairhashvil/overtime/internal/models"
	"github.com/akyairhashvil/overtime/internal/overtime"
	tea "github.com/charmbracelet/bubbletea"
)

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time { return c.now }

func (c *stubClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type stubDB struct {
	settings map[string]string
}

func (s stubDB) AllSettings(context.Context) (map[string]string, error) {
	return s.settings, nil
}

func newTestModel(t *testing.T, values map[string]string) (MainModel, *stubClock) {
	t.Helper()
	store := overtime.NewMemoryStore()
	for k, v := range values {
		store.Values[k] = v
	}
	clock := &stubClock{now: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)}
	engine := overtime.Load(store)
	m := NewMainModel(context.Background(), engine, stubDB{settings: store.Values}, Options{
		Clock:      clock,
		ReportsDir: t.TempDir(),
		ExportDir:  t.TempDir(),
	})
	return m, clock
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+z":
		return tea.KeyMsg{Type: tea.KeyCtrlZ}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(m MainModel, keys ...string) (MainModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, key := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(key))
		m = next.(MainModel)
	}
	return m, cmd
}

func send(m MainModel, msg tea.Msg) (MainModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MainModel), cmd
}

func TestInitialView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	out := m.View()
	for _, want := range []string{"-08:30", "00:00:00", "Start", "Work day", "[space]start/pause"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
	if strings.Contains(out, "add step") {
		t.Fatalf("add step should be hidden with no time worked")
	}
	if m.Init() == nil {
		t.Fatalf("expected title command from Init")
	}
}

func TestTicksAccumulateWhileRunning(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, cmd := press(m, " ")
	if cmd == nil || !m.engine.Running() {
		t.Fatalf("expected timer to start")
	}
	if m.ButtonLabel() != "Pause" {
		t.Fatalf("expected Pause label, got %q", m.ButtonLabel())
	}
	tok := m.driver.Token()
	for i := 0; i < 3600; i++ {
		m, cmd = send(m, ElapsedMsg{Token: tok})
		if cmd == nil {
			t.Fatalf("expected next tick to be scheduled at %d", i)
		}
	}
	if got := m.engine.TimeWorked(); got != 3600 {
		t.Fatalf("expected 3600 worked, got %d", got)
	}
	if got := Overtime(m.engine.OvertimeToday()); got != "-07:30" {
		t.Fatalf("expected -07:30 today, got %s", got)
	}
	if !strings.Contains(m.View(), "01:00:00") {
		t.Fatalf("expected clock in view")
	}
	if m.WindowTitle() != "01:00:00 | "+config.BaseTitle {
		t.Fatalf("unexpected title %q", m.WindowTitle())
	}

	m, _ = press(m, " ")
	if m.engine.Running() || m.ButtonLabel() != "Continue" {
		t.Fatalf("expected paused with Continue label, got %q", m.ButtonLabel())
	}
}

func TestStaleTickIgnoredAfterPause(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = press(m, " ")
	tok := m.driver.Token()
	m, _ = press(m, " ")

	m, cmd := send(m, ElapsedMsg{Token: tok})
	if cmd != nil {
		t.Fatalf("expected no reschedule for stale tick")
	}
	if m.engine.TimeWorked() != 0 {
		t.Fatalf("stale tick must not count, got %d", m.engine.TimeWorked())
	}
}

func TestBlurFocusCatchUp(t *testing.T) {
	m, clock := newTestModel(t, nil)
	m, _ = press(m, " ")
	tok := m.driver.Token()

	m, _ = send(m, tea.BlurMsg{})
	if !m.driver.Suspended() {
		t.Fatalf("expected driver suspended on blur")
	}
	clock.advance(125*time.Second + 400*time.Millisecond)
	m, _ = send(m, ElapsedMsg{Token: tok})
	if m.engine.TimeWorked() != 0 {
		t.Fatalf("tick during blur must be ignored")
	}

	m, cmd := send(m, tea.FocusMsg{})
	if cmd == nil {
		t.Fatalf("expected periodic delivery to restart")
	}
	if got := m.engine.TimeWorked(); got != 125 {
		t.Fatalf("expected 125s catch-up, got %d", got)
	}
	if got := m.engine.OvertimeToday(); got != -30600+125 {
		t.Fatalf("unexpected today %d", got)
	}
}

func TestFocusWhileStoppedDoesNothing(t *testing.T) {
	m, clock := newTestModel(t, nil)
	m, _ = send(m, tea.BlurMsg{})
	clock.advance(time.Hour)
	m, cmd := send(m, tea.FocusMsg{})
	if cmd != nil || m.engine.TimeWorked() != 0 {
		t.Fatalf("expected no catch-up while stopped")
	}
}

func TestSuspendKeyAndResume(t *testing.T) {
	m, clock := newTestModel(t, nil)
	m, _ = press(m, " ")
	m, cmd := press(m, "ctrl+z")
	if cmd == nil || !m.driver.Suspended() {
		t.Fatalf("expected suspend command")
	}
	clock.advance(10 * time.Second)
	m, _ = send(m, tea.ResumeMsg{})
	if got := m.engine.TimeWorked(); got != 10 {
		t.Fatalf("expected 10s after resume, got %d", got)
	}
}

func TestIncrementKeys(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{
		config.KeyTimeWorked:    "1800",
		config.KeyOvertimeToday: "-28800",
		config.KeyOvertimeTotal: "-28800",
	})
	m, _ = press(m, "+")
	if got := m.engine.TimeWorked(); got != 2700 {
		t.Fatalf("expected 2700 after add, got %d", got)
	}
	if got := m.engine.OvertimeToday(); got != -27900 {
		t.Fatalf("expected -27900 today, got %d", got)
	}
	m, _ = press(m, "-", "-")
	if got := m.engine.TimeWorked(); got != 900 {
		t.Fatalf("expected 900 after two subtracts, got %d", got)
	}
	// worked == increment: subtract is no longer offered.
	m, _ = press(m, "-")
	if got := m.engine.TimeWorked(); got != 900 {
		t.Fatalf("subtract should be disabled at one increment, got %d", got)
	}

	m, _ = press(m, " ", "+")
	if got := m.engine.TimeWorked(); got != 900 {
		t.Fatalf("add should be disabled while running, got %d", got)
	}
}

func TestModeKeys(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = press(m, "r")
	if m.engine.Mode() != models.ModeRest {
		t.Fatalf("expected rest mode")
	}
	if m.engine.OvertimeToday() != 0 || m.engine.OvertimeTotal() != 0 {
		t.Fatalf("expected zero balances on rest day, got %d/%d", m.engine.OvertimeToday(), m.engine.OvertimeTotal())
	}
	m, _ = press(m, "w")
	if m.engine.Mode() != models.ModeWork || m.engine.OvertimeTotal() != -30600 {
		t.Fatalf("expected round trip back to work, total %d", m.engine.OvertimeTotal())
	}

	m, _ = press(m, " ")
	m, _ = send(m, ElapsedMsg{Token: m.driver.Token()})
	m, _ = press(m, " ", "r")
	if m.engine.Mode() != models.ModeWork {
		t.Fatalf("mode switch must be disabled once time is worked")
	}
}

func TestStartNewDayKey(t *testing.T) {
	m, _ := newTestModel(t, map[string]string{
		config.KeyTimeWorked:    "3600",
		config.KeyOvertimeToday: "-27000",
		config.KeyOvertimeTotal: "-27000",
	})
	m, _ = press(m, "n")
	if m.engine.TimeWorked() != 0 || m.engine.OvertimeToday() != -30600 || m.engine.OvertimeTotal() != -57600 {
		t.Fatalf("unexpected state after new day: %+v", m.engine.Snapshot())
	}
	if m.Message != "New day started" {
		t.Fatalf("expected status message, got %q", m.Message)
	}
	m, _ = press(m, "n")
	if m.engine.OvertimeTotal() != -57600 {
		t.Fatalf("new day should be disabled with nothing worked")
	}
}

func TestTitleToggle(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if m.WindowTitle() != "00:00:00 | Overtime" {
		t.Fatalf("unexpected title %q", m.WindowTitle())
	}
	m, cmd := press(m, "t")
	if cmd == nil || m.WindowTitle() != "Overtime" {
		t.Fatalf("expected plain title, got %q", m.WindowTitle())
	}
}

func TestQuitStopsTimer(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = press(m, " ")
	m, cmd := press(m, "q")
	if cmd == nil || !m.quitting {
		t.Fatalf("expected quit")
	}
	if m.engine.Running() || m.driver.State() != overtime.DriverStopped {
		t.Fatalf("expected timer stopped on quit")
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

func TestExportKey(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, cmd := press(m, "e")
	if cmd == nil {
		t.Fatalf("expected export command")
	}
	m, _ = send(m, cmd())
	if !strings.HasPrefix(m.Message, "Exported to ") {
		t.Fatalf("unexpected message %q (err %v)", m.Message, m.err)
	}
	path := strings.TrimPrefix(m.Message, "Exported to ")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}

func TestReportKey(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, cmd := press(m, "P")
	if cmd == nil {
		t.Fatalf("expected report command")
	}
	m, _ = send(m, cmd())
	if !strings.HasPrefix(m.Message, "Report written to ") {
		t.Fatalf("unexpected message %q (err %v)", m.Message, m.err)
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = send(m, tea.WindowSizeMsg{Width: 25, Height: 10})
	if m.progress.Width != config.MinProgressWidth {
		t.Fatalf("expected min progress width, got %d", m.progress.Width)
	}
	m, _ = send(m, tea.WindowSizeMsg{Width: 200, Height: 40})
	if m.progress.Width != config.ProgressWidth {
		t.Fatalf("expected full progress width, got %d", m.progress.Width)
	}
	if m.View() == "" {
		t.Fatalf("expected non-empty view")
	}
}
