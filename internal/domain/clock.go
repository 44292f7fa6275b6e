package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ClockTime is a time of day expressed in minutes after midnight, always in [0, 1440).
type ClockTime int

// ParseClock parses a 24h "HH:MM" string.
func ParseClock(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in time %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in time %q", s)
	}
	return ClockTime(h*60 + m), nil
}

// MustParseClock is ParseClock for compile-time constants; it panics on bad input.
func MustParseClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Add shifts the clock by min minutes, wrapping across midnight in either direction.
func (c ClockTime) Add(min int) ClockTime {
	v := (int(c) + min) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return ClockTime(v)
}

// Minutes returns minutes after midnight.
func (c ClockTime) Minutes() int { return int(c) }

// String formats the clock as zero-padded "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// RoundHalfUp rounds to the nearest integer with halves rounded toward +Inf,
// so -2.5 becomes -2 and 2.5 becomes 3.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// RoundTenth rounds to one decimal place.
func RoundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
