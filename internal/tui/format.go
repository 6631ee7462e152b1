package tui

import (
	"strconv"

	"github.com/akyairhashvil/overtime/internal/util"
)

// Class is the styling bucket for a signed balance.
type Class string

const (
	ColorNeutral  Class = ""
	ColorPositive Class = "positive"
	ColorNegative Class = "negative"
)

// Sign is "+" for a balance of at least a minute, "-" for any negative
// balance and empty in between.
func Sign(s int64) string {
	switch {
	case s > -1 && s < 60:
		return ""
	case s >= 60:
		return "+"
	default:
		return "-"
	}
}

// Hours is the whole-hour part of the floored minute count.
func Hours(s int64) string {
	minutes := util.Abs64(util.FloorDiv(s, 60))
	return pad2(minutes / 60)
}

// Minutes is the minute-of-hour part of the floored minute count.
func Minutes(s int64) string {
	return pad2(util.Abs64(util.FloorDiv(s, 60) % 60))
}

// SecondsPart is s modulo 60 with the sign of s kept, so SecondsPart(-5)
// renders as "-5".
func SecondsPart(s int64) string {
	return pad2(s % 60)
}

func ColorClass(s int64) Class {
	switch {
	case s > -1 && s < 60:
		return ColorNeutral
	case s >= 60:
		return ColorPositive
	default:
		return ColorNegative
	}
}

// Clock renders s as HH:MM:SS.
func Clock(s int64) string {
	return Hours(s) + ":" + Minutes(s) + ":" + SecondsPart(s)
}

// Overtime renders a balance as <sign>HH:MM.
func Overtime(s int64) string {
	return Sign(s) + Hours(s) + ":" + Minutes(s)
}

func pad2(n int64) string {
	out := strconv.FormatInt(n, 10)
	if len(out) < 2 {
		out = "0" + out
	}
	return out
}
