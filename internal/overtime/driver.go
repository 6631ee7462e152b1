package overtime

import (
	"log/slog"
	"time"

	"github.com/akyairhashvil/overtime/internal/util"
	"github.com/google/uuid"
)

// Clock is the wall-clock source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Sink receives elapsed seconds. *Engine implements it.
type Sink interface {
	ApplyDelta(seconds int64)
}

type DriverState int

const (
	DriverStopped DriverState = iota
	DriverRunning
)

func (s DriverState) String() string {
	if s == DriverRunning {
		return "running"
	}
	return "stopped"
}

// Token identifies one scheduled periodic emission. Events carrying a stale
// token are dropped, which is how Stop and Suspend cancel an event the host
// has already scheduled.
type Token uint64

// Driver turns host ticks into elapsed seconds. The host may stop delivering
// ticks at any time; Suspend/Resume reconcile the gap from wall-clock time.
type Driver struct {
	clock  Clock
	sink   Sink
	logger *slog.Logger

	state       DriverState
	token       Token
	runID       string
	startedAt   time.Time
	suspended   bool
	suspendedAt time.Time
}

func NewDriver(clock Clock, sink Sink, logger *slog.Logger) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = util.DiscardLogger()
	}
	return &Driver{clock: clock, sink: sink, logger: logger}
}

// Start moves Stopped to Running and returns the token for the first periodic
// event. Calling Start while running returns the current token.
func (d *Driver) Start() Token {
	if d.state == DriverRunning {
		return d.token
	}
	d.state = DriverRunning
	d.suspended = false
	d.startedAt = d.clock.Now()
	d.runID = uuid.NewString()
	d.token++
	d.logger.Info("timer started", "run", d.runID)
	return d.token
}

// Stop moves Running to Stopped. Any periodic event already scheduled will be
// ignored when it arrives.
func (d *Driver) Stop() {
	if d.state == DriverStopped {
		return
	}
	d.logger.Info("timer stopped", "run", d.runID, "wall", d.clock.Now().Sub(d.startedAt).Round(time.Second))
	d.state = DriverStopped
	d.suspended = false
	d.suspendedAt = time.Time{}
	d.runID = ""
	d.token++
}

// Elapsed handles one periodic event. It credits one second and reports true
// (schedule the next event) only if tok is current and delivery is active.
func (d *Driver) Elapsed(tok Token) bool {
	if tok != d.token || d.state != DriverRunning || d.suspended {
		return false
	}
	d.sink.ApplyDelta(1)
	return true
}

// Suspend records the instant the host stopped delivering events and cancels
// periodic emission. Only the first of repeated suspends counts.
func (d *Driver) Suspend() {
	if d.state != DriverRunning || d.suspended {
		return
	}
	d.suspended = true
	d.suspendedAt = d.clock.Now()
	d.token++
	d.logger.Debug("timer suspended", "run", d.runID)
}

// Resume credits the whole seconds spent suspended in a single delta and
// returns a fresh token for periodic emission. ok is false when there was
// nothing to resume.
func (d *Driver) Resume() (catchUp int64, tok Token, ok bool) {
	if d.state != DriverRunning || !d.suspended {
		return 0, d.token, false
	}
	gap := d.clock.Now().Sub(d.suspendedAt)
	catchUp = util.FloorDiv(gap.Milliseconds(), 1000)
	if catchUp > 0 {
		d.sink.ApplyDelta(catchUp)
	}
	d.suspended = false
	d.suspendedAt = time.Time{}
	d.token++
	d.logger.Debug("timer resumed", "run", d.runID, "catch_up", catchUp)
	return catchUp, d.token, true
}

func (d *Driver) State() DriverState { return d.state }
func (d *Driver) Suspended() bool    { return d.suspended }
func (d *Driver) RunID() string      { return d.runID }

// Token is the token of the currently scheduled periodic event.
func (d *Driver) Token() Token { return d.token }
