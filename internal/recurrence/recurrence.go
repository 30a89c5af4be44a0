// Package recurrence derives iCalendar recurrence rules (RRULE values) from
// maintenance plan frequencies.
package recurrence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/alfredodrv/mwrgen/internal/maintenance"
)

// untilLayout is the UTC date-time form used for UNTIL.
const untilLayout = "20060102T150405Z"

// ErrInvalidFrequencyType is matched by every InvalidFrequencyTypeError.
var ErrInvalidFrequencyType = errors.New("invalid FrequencyType")

// ErrUnreadableRule is returned by Derive when the serialized rule does not
// parse back to the same frequency and interval.
var ErrUnreadableRule = errors.New("unreadable recurrence rule")

// InvalidFrequencyTypeError reports a frequency unit with no RRULE equivalent.
type InvalidFrequencyTypeError struct {
	FrequencyType maintenance.FrequencyType
}

func (e *InvalidFrequencyTypeError) Error() string {
	return fmt.Sprintf("invalid FrequencyType: %s", e.FrequencyType)
}

// Is reports whether target is ErrInvalidFrequencyType.
func (e *InvalidFrequencyTypeError) Is(target error) bool {
	return target == ErrInvalidFrequencyType
}

var frequencies = map[maintenance.FrequencyType]rrule.Frequency{
	maintenance.FrequencySeconds: rrule.SECONDLY,
	maintenance.FrequencyMinutes: rrule.MINUTELY,
	maintenance.FrequencyHours:   rrule.HOURLY,
	maintenance.FrequencyDays:    rrule.DAILY,
	maintenance.FrequencyWeeks:   rrule.WEEKLY,
	maintenance.FrequencyMonths:  rrule.MONTHLY,
	maintenance.FrequencyYears:   rrule.YEARLY,
}

// Frequency maps a plan frequency unit to its RRULE frequency.
func Frequency(unit maintenance.FrequencyType) (rrule.Frequency, error) {
	freq, ok := frequencies[unit]
	if !ok {
		return 0, &InvalidFrequencyTypeError{FrequencyType: unit}
	}
	return freq, nil
}

// Options builds the recurrence for a plan window: every interval units
// starting at start, until end.
func Options(unit maintenance.FrequencyType, interval int, start, end time.Time) (*rrule.ROption, error) {
	freq, err := Frequency(unit)
	if err != nil {
		return nil, err
	}
	return &rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  start,
		Until:    end,
	}, nil
}

// Derive returns the RRULE value (without the "RRULE:" property name) for a
// plan window, e.g. FREQ=MONTHLY;INTERVAL=3;UNTIL=20300101T000000Z.
//
// The interval and the ordering of start and end are not validated. The
// rule is read back with Parse before it is returned, so a value that a
// standard RRULE reader would reject never reaches the output.
func Derive(unit maintenance.FrequencyType, interval int, start, end time.Time) (string, error) {
	opt, err := Options(unit, interval, start, end)
	if err != nil {
		return "", err
	}
	rule := Format(opt)
	parsed, err := Parse(rule)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnreadableRule, err)
	}
	if parsed.Freq != opt.Freq || parsed.Interval != opt.Interval {
		return "", fmt.Errorf("%w: %q does not read back as %s every %d", ErrUnreadableRule, rule, opt.Freq, opt.Interval)
	}
	return rule, nil
}

// Format serializes the FREQ, INTERVAL and UNTIL parts of opt in that order.
// A zero interval is left out; readers treat a missing INTERVAL as 1.
func Format(opt *rrule.ROption) string {
	parts := []string{"FREQ=" + opt.Freq.String()}
	if opt.Interval != 0 {
		parts = append(parts, "INTERVAL="+strconv.Itoa(opt.Interval))
	}
	if !opt.Until.IsZero() {
		parts = append(parts, "UNTIL="+opt.Until.UTC().Format(untilLayout))
	}
	return strings.Join(parts, ";")
}

// Parse reads a derived rule back into recurrence options.
func Parse(rule string) (*rrule.ROption, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recurrence rule %q: %w", rule, err)
	}
	return opt, nil
}
