package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of the worked-vs-target bar.
	ProgressWidth = 30

	// MinProgressWidth is the narrowest bar rendered on small terminals.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60
)

// Input constraints.
const (
	// MaxHourDigits limits the hour fields of the settings form.
	MaxHourDigits = 2

	// MaxMinuteDigits limits the minute fields of the settings form.
	MaxMinuteDigits = 2
)
