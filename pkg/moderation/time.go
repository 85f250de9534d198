package moderation

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Operational limits of the moderation commands.
const (
	MaxReasonLength  = 512
	MaxMuteDuration  = 28 * 24 * time.Hour // Discord timeout cap
	MaxPurgeMessages = 100
	MinPurgeMessages = 1
)

// durationPattern matches a compact duration: a number followed by a
// single unit letter, e.g. "30s", "10m", "2h", "7d", "1w".
var durationPattern = regexp.MustCompile(`^(\d+)([smhdw])$`)

var unitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
	"w": 604800,
}

// ParseDuration parses a compact duration string like "10m" or "2h".
// Anything outside the number+unit shape is rejected.
func ParseDuration(s string) (time.Duration, error) {
	match := durationPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("duración inválida: %q", s)
	}

	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("duración inválida: %q", s)
	}

	return time.Duration(value*unitSeconds[match[2]]) * time.Second, nil
}

// FormatDuration renders a second count using its single largest fitting
// unit: days, then hours, then minutes, then seconds. Remainders are
// dropped, so 90000 seconds is "1 day" and 3661 seconds is "1 hour".
func FormatDuration(seconds int64) string {
	switch {
	case seconds >= 86400:
		return pluralize(seconds/86400, "day")
	case seconds >= 3600:
		return pluralize(seconds/3600, "hour")
	case seconds >= 60:
		return pluralize(seconds/60, "minute")
	default:
		return pluralize(seconds, "second")
	}
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
