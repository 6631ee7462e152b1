package config

import "time"

// Timer durations.
const (
	TickInterval = time.Second
)

// Storage keys. The layout is shared with earlier releases and must not change.
const (
	KeyWhatsToday           = "whatsToday"
	KeyDefaultOvertimeToday = "defaultOvertimeToday"
	KeyOvertimeToday        = "overtimeToday"
	KeyOvertimeTotal        = "overtimeTotal"
	KeyTimeWorked           = "timeWorked"
	KeyIncrement            = "increment"
	KeyShowTimeTab          = "showTimeTab"
)

// Accounting defaults and bounds, in seconds unless noted.
const (
	// DefaultWorkOvertimeToday is the stored (negative) 8h30m work-day target.
	DefaultWorkOvertimeToday = -30600
	DefaultIncrement         = 15 * 60

	MinIncrementMinutes = 1
	MaxIncrementMinutes = 60
	MaxTargetHours      = 23
	MaxMinutes          = 59
	MaxTotalHours       = 99
)

// Target compensation policies for settings edits.
const (
	CompensationModeAware = "mode_aware"
	CompensationAlways    = "always"
)

// Database/application settings.
const (
	AppName      = "overtime"
	DBFileName   = "overtime.db"
	LogFileName  = "overtime.log"
	ConfigFile   = "config.yaml"
	BaseTitle    = "Overtime"
	DefaultTheme = "default"
)
