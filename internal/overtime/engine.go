// Package overtime holds the time accounting core: the engine that owns the
// overtime balances, the staging buffer for settings edits and the session
// timer driver.
package overtime

import (
	"log/slog"
	"strconv"

	"github.com/akyairhashvil/overtime/internal/config"
	"github.com/akyairhashvil/overtime/internal/models"
	"github.com/akyairhashvil/overtime/internal/util"
)

// Engine owns the accounting state. Every mutator writes the changed fields
// through to the store before returning.
type Engine struct {
	store  Store
	logger *slog.Logger
	policy string

	mode            models.DayMode
	dailyTarget     int64
	overtimeToday   int64
	overtimeTotal   int64
	timeWorked      int64
	running         bool
	increment       int64
	showTimeInTitle bool
}

type Option func(*Engine)

// WithLogger enables debug logging of every mutation.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCompensation selects how target edits move today's balance on rest days.
// Unknown policies keep the default (config.CompensationModeAware).
func WithCompensation(policy string) Option {
	return func(e *Engine) {
		switch policy {
		case config.CompensationModeAware, config.CompensationAlways:
			e.policy = policy
		}
	}
}

// Load hydrates an engine from store, falling back to defaults for missing or
// invalid values, and writes the hydrated values back.
func Load(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: util.DiscardLogger(),
		policy: config.CompensationModeAware,
	}
	for _, opt := range opts {
		opt(e)
	}

	mode, ok := models.ParseDayMode(store.LoadString(config.KeyWhatsToday, string(models.ModeWork)))
	if !ok {
		mode = models.ModeWork
	}
	e.mode = mode
	store.PersistString(config.KeyWhatsToday, string(e.mode))

	stored := store.LoadNumber(config.KeyDefaultOvertimeToday, config.DefaultWorkOvertimeToday)
	if stored > 0 {
		stored = config.DefaultWorkOvertimeToday
	}
	e.dailyTarget = -stored
	store.PersistNumber(config.KeyDefaultOvertimeToday, stored)

	e.overtimeToday = store.LoadNumber(config.KeyOvertimeToday, e.Baseline(e.mode))
	store.PersistNumber(config.KeyOvertimeToday, e.overtimeToday)

	// A missing total starts from the stock work-day balance whatever the mode.
	e.overtimeTotal = store.LoadNumber(config.KeyOvertimeTotal, config.DefaultWorkOvertimeToday)
	store.PersistNumber(config.KeyOvertimeTotal, e.overtimeTotal)

	e.timeWorked = util.Max64(0, store.LoadNumber(config.KeyTimeWorked, 0))
	store.PersistNumber(config.KeyTimeWorked, e.timeWorked)

	e.increment = store.LoadNumber(config.KeyIncrement, config.DefaultIncrement)
	if e.increment <= 0 {
		e.increment = config.DefaultIncrement
	}
	store.PersistNumber(config.KeyIncrement, e.increment)

	show, err := strconv.ParseBool(store.LoadString(config.KeyShowTimeTab, "true"))
	if err != nil {
		show = true
	}
	e.showTimeInTitle = show
	store.PersistString(config.KeyShowTimeTab, strconv.FormatBool(show))

	e.logger.Debug("engine loaded",
		"mode", e.mode,
		"target", e.dailyTarget,
		"today", e.overtimeToday,
		"total", e.overtimeTotal,
		"worked", e.timeWorked,
		"increment", e.increment,
	)
	return e
}

// Baseline is the opening balance of a day in mode: the negated target on a
// work day, zero on a rest day.
func (e *Engine) Baseline(mode models.DayMode) int64 {
	if mode == models.ModeRest {
		return 0
	}
	return -e.dailyTarget
}

// ApplyDelta moves today, total and time worked by delta. Time worked is
// floored at zero; the balances are not. Ticks, wall-clock catch-up and manual
// increments all go through here.
func (e *Engine) ApplyDelta(delta int64) {
	e.overtimeToday += delta
	e.overtimeTotal += delta
	e.timeWorked = util.Max64(0, e.timeWorked+delta)
	e.persistNumbers(map[string]int64{
		config.KeyOvertimeToday: e.overtimeToday,
		config.KeyOvertimeTotal: e.overtimeTotal,
		config.KeyTimeWorked:    e.timeWorked,
	})
	if delta != 1 {
		e.logger.Debug("delta applied", "delta", delta, "today", e.overtimeToday, "total", e.overtimeTotal, "worked", e.timeWorked)
	}
}

// AddIncrement credits one increment.
func (e *Engine) AddIncrement() { e.ApplyDelta(e.increment) }

// SubtractIncrement debits one increment.
func (e *Engine) SubtractIncrement() { e.ApplyDelta(-e.increment) }

// SetMode switches the day mode, resets today to the new baseline and moves
// the total by the target so it stays consistent with today's baseline.
// Selecting the current mode does nothing.
func (e *Engine) SetMode(mode models.DayMode) {
	if mode != models.ModeWork && mode != models.ModeRest {
		return
	}
	if mode == e.mode {
		return
	}
	e.mode = mode
	e.overtimeToday = e.Baseline(mode)
	if mode == models.ModeRest {
		e.overtimeTotal += e.dailyTarget
	} else {
		e.overtimeTotal -= e.dailyTarget
	}
	e.store.PersistString(config.KeyWhatsToday, string(e.mode))
	e.persistNumbers(map[string]int64{
		config.KeyOvertimeToday: e.overtimeToday,
		config.KeyOvertimeTotal: e.overtimeTotal,
	})
	e.logger.Info("day mode changed", "mode", e.mode, "today", e.overtimeToday, "total", e.overtimeTotal)
}

// StartNewDay opens a new day: today returns to the baseline of the current
// mode, that baseline is booked into the total and time worked restarts at
// zero. Callers only offer this while stopped with time worked recorded.
func (e *Engine) StartNewDay() {
	e.overtimeToday = e.Baseline(e.mode)
	e.overtimeTotal += e.overtimeToday
	e.timeWorked = 0
	e.persistNumbers(map[string]int64{
		config.KeyOvertimeToday: e.overtimeToday,
		config.KeyOvertimeTotal: e.overtimeTotal,
		config.KeyTimeWorked:    e.timeWorked,
	})
	e.logger.Info("new day started", "mode", e.mode, "today", e.overtimeToday, "total", e.overtimeTotal)
}

// ToggleRunning flips the running flag and returns the new value.
func (e *Engine) ToggleRunning() bool {
	e.running = !e.running
	e.logger.Debug("running toggled", "running", e.running)
	return e.running
}

// CommitSettings applies a staged draft in one step. On a work day (or on any
// day under the "always" policy) today's balance moves by the difference
// between the old and the new target. Otherwise a rest day's balance returns
// to zero. Target, total and increment are replaced.
func (e *Engine) CommitSettings(d models.Draft) {
	if d.Target < 0 {
		d.Target = 0
	}
	if d.Increment <= 0 {
		d.Increment = e.increment
	}
	delta := e.dailyTarget - d.Target
	if e.mode == models.ModeWork || e.policy == config.CompensationAlways {
		e.overtimeToday += delta
	} else {
		e.overtimeToday = 0
	}
	e.dailyTarget = d.Target
	e.overtimeTotal = d.Total
	e.increment = d.Increment
	e.persistNumbers(map[string]int64{
		config.KeyDefaultOvertimeToday: -e.dailyTarget,
		config.KeyOvertimeToday:        e.overtimeToday,
		config.KeyOvertimeTotal:        e.overtimeTotal,
		config.KeyIncrement:            e.increment,
	})
	e.SetShowTimeInTitle(d.ShowTimeInTitle)
	e.logger.Info("settings committed", "target", e.dailyTarget, "today", e.overtimeToday, "total", e.overtimeTotal, "increment", e.increment)
}

// SetShowTimeInTitle stores the window-title preference.
func (e *Engine) SetShowTimeInTitle(show bool) {
	e.showTimeInTitle = show
	e.store.PersistString(config.KeyShowTimeTab, strconv.FormatBool(show))
}

func (e *Engine) persistNumbers(values map[string]int64) {
	if batch, ok := e.store.(BatchStore); ok {
		batch.PersistNumbers(values)
		return
	}
	for _, key := range orderedKeys(values) {
		e.store.PersistNumber(key, values[key])
	}
}

var persistOrder = []string{
	config.KeyDefaultOvertimeToday,
	config.KeyOvertimeToday,
	config.KeyOvertimeTotal,
	config.KeyTimeWorked,
	config.KeyIncrement,
}

func orderedKeys(values map[string]int64) []string {
	keys := make([]string, 0, len(values))
	for _, key := range persistOrder {
		if _, ok := values[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// Affordances. The widget enforces these; the engine does not re-check them.

func (e *Engine) CanAddIncrement() bool { return e.timeWorked > 0 && !e.running }

func (e *Engine) CanSubtractIncrement() bool { return e.timeWorked > e.increment && !e.running }

func (e *Engine) CanSwitchMode() bool { return e.timeWorked == 0 && !e.running }

func (e *Engine) CanStartNewDay() bool { return e.timeWorked > 0 && !e.running }

func (e *Engine) CanOpenSettings() bool { return !e.running }

// Accessors.

func (e *Engine) Mode() models.DayMode  { return e.mode }
func (e *Engine) DailyTarget() int64    { return e.dailyTarget }
func (e *Engine) OvertimeToday() int64  { return e.overtimeToday }
func (e *Engine) OvertimeTotal() int64  { return e.overtimeTotal }
func (e *Engine) TimeWorked() int64     { return e.timeWorked }
func (e *Engine) Running() bool         { return e.running }
func (e *Engine) Increment() int64      { return e.increment }
func (e *Engine) ShowTimeInTitle() bool { return e.showTimeInTitle }
func (e *Engine) Policy() string        { return e.policy }

// Snapshot returns a value copy of the state.
func (e *Engine) Snapshot() models.Snapshot {
	return models.Snapshot{
		Mode:            e.mode,
		DailyTarget:     e.dailyTarget,
		OvertimeToday:   e.overtimeToday,
		OvertimeTotal:   e.overtimeTotal,
		TimeWorked:      e.timeWorked,
		Running:         e.running,
		Increment:       e.increment,
		ShowTimeInTitle: e.showTimeInTitle,
	}
}
