package models

// DayMode decides whether a new day starts with the target deficit or at zero.
type DayMode string

const (
	ModeWork DayMode = "work"
	ModeRest DayMode = "rest"
)

// ParseDayMode returns the mode stored as s, or false when s is not a known mode.
func ParseDayMode(s string) (DayMode, bool) {
	switch DayMode(s) {
	case ModeWork:
		return ModeWork, true
	case ModeRest:
		return ModeRest, true
	}
	return "", false
}

func (m DayMode) String() string { return string(m) }

// Label is the human-readable form used by the widget and reports.
func (m DayMode) Label() string {
	if m == ModeRest {
		return "Rest day"
	}
	return "Work day"
}

// Snapshot is a value copy of the accounting state. All durations are seconds.
type Snapshot struct {
	Mode            DayMode
	DailyTarget     int64 // non-negative magnitude
	OvertimeToday   int64
	OvertimeTotal   int64
	TimeWorked      int64
	Running         bool
	Increment       int64
	ShowTimeInTitle bool
}

// Draft is the staged copy of the editable settings.
type Draft struct {
	Target          int64
	Total           int64
	Increment       int64
	ShowTimeInTitle bool
}

// DraftFrom copies the editable fields of s.
func DraftFrom(s Snapshot) Draft {
	return Draft{
		Target:          s.DailyTarget,
		Total:           s.OvertimeTotal,
		Increment:       s.Increment,
		ShowTimeInTitle: s.ShowTimeInTitle,
	}
}
