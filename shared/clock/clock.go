// Package clock converts between "HH:MM" strings and minutes from midnight.
// Times of day are stored as "HH:MM" throughout the schema, so slot
// arithmetic happens on minutes.
package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// ToMinutes converts a "HH:MM" string to minutes from midnight.
func ToMinutes(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value: %q", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %q", value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value: %q", value)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value out of range: %q", value)
	}

	return hours*60 + minutes, nil
}

// FromMinutes converts minutes from midnight to a "HH:MM" string.
func FromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Arguments are minutes from midnight.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
