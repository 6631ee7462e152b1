package overtime

import (
	"github.com/akyairhashvil/overtime/internal/config"
	"github.com/akyairhashvil/overtime/internal/models"
	"github.com/akyairhashvil/overtime/internal/util"
)

// Staging is the edit surface for settings. Edits land in a private draft and
// reach the engine only through Commit.
type Staging struct {
	engine *Engine
	open   bool
	mode   models.DayMode
	draft  models.Draft
}

func NewStaging(engine *Engine) *Staging {
	return &Staging{engine: engine}
}

// Open copies the live settings into the draft.
func (s *Staging) Open() {
	snap := s.engine.Snapshot()
	s.mode = snap.Mode
	s.draft = models.DraftFrom(snap)
	s.open = true
}

func (s *Staging) IsOpen() bool { return s.open }

// Draft returns a copy of the staged values.
func (s *Staging) Draft() models.Draft { return s.draft }

// SetTargetFromHoursMinutes stages a new daily target. On a work day the
// staged total moves by the opposite of the target change, so it reads as if
// the new target had applied today.
func (s *Staging) SetTargetFromHoursMinutes(h, m int) {
	if !s.open {
		return
	}
	h = util.Clamp(h, 0, config.MaxTargetHours)
	m = util.Clamp(m, 0, config.MaxMinutes)
	next := int64(h)*3600 + int64(m)*60
	delta := s.draft.Target - next
	s.draft.Target = next
	if s.mode == models.ModeWork || s.engine.Policy() == config.CompensationAlways {
		s.draft.Total += delta
	}
}

// SetTotalFromSignedHoursMinutes overwrites the staged total. sign is
// normalised to -1 for negative input and +1 otherwise.
func (s *Staging) SetTotalFromSignedHoursMinutes(sign, h, m int) {
	if !s.open {
		return
	}
	if sign < 0 {
		sign = -1
	} else {
		sign = 1
	}
	if h < 0 {
		h = 0
	}
	m = util.Clamp(m, 0, config.MaxMinutes)
	s.draft.Total = int64(sign) * (int64(h)*3600 + int64(m)*60)
}

// SetIncrement stages the manual step, given in minutes.
func (s *Staging) SetIncrement(minutes int) {
	if !s.open {
		return
	}
	minutes = util.Clamp(minutes, config.MinIncrementMinutes, config.MaxIncrementMinutes)
	s.draft.Increment = int64(minutes) * 60
}

func (s *Staging) SetShowTimeInTitle(show bool) {
	if !s.open {
		return
	}
	s.draft.ShowTimeInTitle = show
}

// Commit applies the draft to the engine and closes the buffer.
func (s *Staging) Commit() {
	if !s.open {
		return
	}
	s.engine.CommitSettings(s.draft)
	s.close()
}

// Cancel discards the draft.
func (s *Staging) Cancel() {
	if !s.open {
		return
	}
	s.close()
}

func (s *Staging) close() {
	s.open = false
	s.draft = models.Draft{}
}

// TargetHM splits the staged target into hours and minutes.
func (s *Staging) TargetHM() (int, int) {
	return SplitHM(s.draft.Target)
}

// TotalSignedHM splits the staged total into sign, hours and minutes.
func (s *Staging) TotalSignedHM() (int, int, int) {
	return SplitSignedHM(s.draft.Total)
}

// IncrementMinutes is the staged increment in minutes.
func (s *Staging) IncrementMinutes() int {
	return int(s.draft.Increment / 60)
}

// SplitHM splits non-negative seconds into whole hours and minutes. Negative
// input is treated as zero.
func SplitHM(seconds int64) (int, int) {
	if seconds < 0 {
		seconds = 0
	}
	return int(seconds / 3600), int(seconds % 3600 / 60)
}

// SplitSignedHM splits seconds into a sign (±1) and the hours and minutes of
// the magnitude.
func SplitSignedHM(seconds int64) (int, int, int) {
	sign := 1
	if seconds < 0 {
		sign = -1
	}
	h, m := SplitHM(util.Abs64(seconds))
	return sign, h, m
}
