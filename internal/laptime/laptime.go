// Package laptime converts between textual lap times and canonical
// integer milliseconds.
package laptime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Layout selects which textual forms a session accepts.
type Layout int

const (
	// LayoutSeconds accepts S{1,3},mmm only (e.g. "34,142").
	LayoutSeconds Layout = iota
	// LayoutMinutes additionally accepts M:SS,mmm (e.g. "1:12,345").
	LayoutMinutes
)

// Placeholder is rendered for an absent time.
const Placeholder = "—"

var (
	secondsPattern = regexp.MustCompile(`^\d{1,3},\d{3}$`)
	minutesPattern = regexp.MustCompile(`^(\d+):(\d{2}),(\d{3})$`)

	// LooseTokenPattern matches a time-looking token inside free text,
	// with either decimal separator. Used by the feed harvester.
	LooseTokenPattern = regexp.MustCompile(`\b\d{1,2}[.,]\d{3}\b`)
)

// Parse converts raw input to total milliseconds. The boolean reports
// whether the input was a syntactically valid time; empty and
// whitespace-only input is invalid, never zero. Both "," and "." are
// accepted as decimal separator. No partial parses, no rounding.
func Parse(raw string, layout Layout) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.Replace(s, ".", ",", 1)

	if layout == LayoutMinutes {
		if m := minutesPattern.FindStringSubmatch(s); m != nil {
			minutes, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, false
			}
			seconds, _ := strconv.Atoi(m[2])
			millis, _ := strconv.Atoi(m[3])
			if seconds > 59 {
				return 0, false
			}
			return minutes*60000 + seconds*1000 + millis, true
		}
	}

	if !secondsPattern.MatchString(s) {
		return 0, false
	}
	parts := strings.SplitN(s, ",", 2)
	seconds, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	millis, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return seconds*1000 + millis, true
}

// Format renders milliseconds back to text. Seconds are zero-padded to
// two digits only while the total seconds component is below 100, so
// under LayoutSeconds a time over 100 seconds renders unpadded (e.g.
// "134,142"). Under LayoutMinutes anything from a minute up renders as
// M:SS,mmm. The asymmetric padding is a display contract.
func Format(ms int, layout Layout) string {
	if layout == LayoutMinutes && ms >= 60000 {
		minutes := ms / 60000
		rem := ms % 60000
		return fmt.Sprintf("%d:%02d,%03d", minutes, rem/1000, rem%1000)
	}
	seconds := ms / 1000
	millis := ms % 1000
	if seconds < 100 {
		return fmt.Sprintf("%02d,%03d", seconds, millis)
	}
	return fmt.Sprintf("%d,%03d", seconds, millis)
}

// FormatOptional renders an absent time as the placeholder.
func FormatOptional(ms int, ok bool, layout Layout) string {
	if !ok {
		return Placeholder
	}
	return Format(ms, layout)
}

// ParseLayout maps a config string to a Layout; unknown values fall
// back to LayoutSeconds.
func ParseLayout(s string) Layout {
	if strings.EqualFold(strings.TrimSpace(s), "minutes") {
		return LayoutMinutes
	}
	return LayoutSeconds
}
