// Package worktime converts pairs of wall-clock time-of-day strings into
// elapsed working hours.
package worktime

import (
	"math"
	"strconv"
	"strings"
)

const secondsPerDay = 24 * 3600

// ParseSeconds parses a "HH:MM" or "HH:MM:SS" 24-hour clock string into
// seconds since midnight. The second return value is false when the input
// is empty or malformed.
func ParseSeconds(timeStr string) (int, bool) {
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}

	seconds := 0
	if len(parts) == 3 {
		seconds, err = strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, false
		}
	}

	return hours*3600 + minutes*60 + seconds, true
}

// ComputeWorkingHours returns the elapsed hours between checkIn and checkOut,
// rounded to 2 decimal places. A checkOut clock time earlier than checkIn is
// treated as a checkout on the following day (overnight shift). Missing or
// malformed inputs degrade to 0 rather than failing the write.
func ComputeWorkingHours(checkIn, checkOut string) float64 {
	inSeconds, ok := ParseSeconds(checkIn)
	if !ok {
		return 0
	}

	outSeconds, ok := ParseSeconds(checkOut)
	if !ok {
		return 0
	}

	var diffSeconds int
	if outSeconds >= inSeconds {
		diffSeconds = outSeconds - inSeconds
	} else {
		diffSeconds = secondsPerDay - inSeconds + outSeconds
	}

	return Round2(float64(diffSeconds) / 3600)
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
