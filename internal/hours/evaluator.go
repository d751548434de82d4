package hours

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Kolkata is the reference zone for working hours (UTC+5:30, no DST).
var Kolkata = time.FixedZone("IST", 5*3600+30*60)

// Evaluator decides whether a vendor is open right now.
type Evaluator struct {
	loc *time.Location
	now func() time.Time
}

// NewEvaluator returns an evaluator using the reference zone and the wall clock.
func NewEvaluator() *Evaluator {
	return &Evaluator{loc: Kolkata, now: time.Now}
}

// WithClock returns a copy of the evaluator that reads the time from now.
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	return &Evaluator{loc: e.loc, now: now}
}

// IsOpen combines the manual override with the weekly schedule. A vendor
// closed by hand is closed regardless of its schedule; a vendor without any
// complete timeslot is closed.
func (e *Evaluator) IsOpen(manual bool, schedule WorkingHours) bool {
	if !manual {
		return false
	}
	if !schedule.HasAnySlot() {
		return false
	}

	now := e.now().In(e.loc)
	today := now.Weekday().String()
	current := now.Hour()*60 + now.Minute()

	for _, day := range schedule {
		if strings.TrimSpace(day.Day) != today {
			continue
		}
		for _, slot := range day.Timeslot {
			if !slot.Complete() {
				continue
			}

			from, okFrom := ParseMinutes(string(slot.From))
			to, okTo := ParseMinutes(string(slot.To))
			if !okFrom || !okTo {
				log.Warn().
					Str("day", day.Day).
					Str("from", string(slot.From)).
					Str("to", string(slot.To)).
					Msg("Invalid time format in timeslot")
				continue
			}

			if slotContains(from, to, current) {
				return true
			}
		}
	}
	return false
}

func slotContains(from, to, current int) bool {
	if to >= from {
		return current >= from && current <= to
	}
	// crosses midnight
	return current >= from || current <= to
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

var clockLayouts = []string{
	"15:04",
	"3:04 PM",
	"15:04:05",
	"3:04:05 PM",
	"3:04PM",
	"3:04:05PM",
	"3PM",
	"3 PM",
}

// ParseMinutes converts a clock string into minutes since midnight.
func ParseMinutes(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if m := clockPattern.FindStringSubmatch(value); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h >= 0 && h <= 23 && min >= 0 && min <= 59 {
			return h*60 + min, true
		}
		return 0, false
	}

	upper := strings.ToUpper(value)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}
