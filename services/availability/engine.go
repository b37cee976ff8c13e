package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"slotify/models"
)

// Engine computes bookable slots from a working-hours configuration, a service
// duration and the intervals already booked on a date. It holds no state other
// than its clock and is safe for concurrent use.
type Engine struct {
	// Now supplies the current wall-clock time for past-slot filtering.
	// Tests inject a fixed clock here.
	Now func() time.Time
}

// NewEngine returns an Engine backed by the system clock.
func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

// interval is a half-open [start, end) range on the target date.
type interval struct {
	start time.Time
	end   time.Time
}

// ComputeAvailableSlots returns the ordered bookable slots of exactly
// durationMinutes on the given date.
//
// A nil workingHours record means the business never configured that weekday
// and yields an InvalidConfigurationError; a record with IsOpen false is a
// closed day and yields an empty result. Booked intervals must already be
// restricted to the business and date; intervals outside the working window
// simply never match a candidate.
//
// Candidate slots step through each open sub-window (working hours minus
// breaks) in fixed increments of the duration. A candidate is dropped when it
// overlaps a booked interval under half-open semantics (touching boundaries do
// not overlap) or when it starts before the engine's current time.
func (e *Engine) ComputeAvailableSlots(date time.Time, workingHours *models.WorkingHours, durationMinutes int, booked []models.BookedInterval) ([]models.Slot, error) {
	if workingHours == nil {
		return nil, &InvalidConfigurationError{Reason: "business has no working hours configured"}
	}
	if durationMinutes <= 0 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("duration must be a positive number of minutes, got %d", durationMinutes)}
	}

	slots := make([]models.Slot, 0)
	if !workingHours.IsOpen {
		return slots, nil
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	openAt, err := parseTimeOnDate(day, workingHours.OpenTime)
	if err != nil {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("openTime: %v", err)}
	}
	closeAt, err := parseTimeOnDate(day, workingHours.CloseTime)
	if err != nil {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("closeTime: %v", err)}
	}
	if !openAt.Before(closeAt) {
		return nil, &InvalidInputError{Reason: "openTime must be before closeTime"}
	}

	breaks, err := parseBreaks(day, workingHours.Breaks, openAt, closeAt)
	if err != nil {
		return nil, err
	}

	windows := subtractBreaks(interval{start: openAt, end: closeAt}, breaks)

	duration := time.Duration(durationMinutes) * time.Minute
	now := e.Now()

	for _, w := range windows {
		for t := w.start; !t.Add(duration).After(w.end); t = t.Add(duration) {
			candidate := models.Slot{Start: t, End: t.Add(duration)}
			if t.Before(now) {
				continue
			}
			if overlapsAny(candidate, booked) {
				continue
			}
			slots = append(slots, candidate)
		}
	}

	return slots, nil
}

// parseBreaks converts break windows into intervals clamped to [open, close),
// sorted and merged. Callers may supply unsorted or overlapping breaks; the
// result is a minimal ordered set of disjoint intervals.
func parseBreaks(day time.Time, breaks []models.BreakWindow, open, close time.Time) ([]interval, error) {
	parsed := make([]interval, 0, len(breaks))
	for _, b := range breaks {
		start, err := parseTimeOnDate(day, b.StartTime)
		if err != nil {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("break startTime: %v", err)}
		}
		end, err := parseTimeOnDate(day, b.EndTime)
		if err != nil {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("break endTime: %v", err)}
		}

		// Clamp to the open window; drop empty or fully outside breaks.
		if start.Before(open) {
			start = open
		}
		if end.After(close) {
			end = close
		}
		if !start.Before(end) {
			continue
		}
		parsed = append(parsed, interval{start: start, end: end})
	}

	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].start.Before(parsed[j].start)
	})

	merged := make([]interval, 0, len(parsed))
	for _, b := range parsed {
		if n := len(merged); n > 0 && !merged[n-1].end.Before(b.start) {
			if b.end.After(merged[n-1].end) {
				merged[n-1].end = b.end
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged, nil
}

// subtractBreaks removes the merged break intervals from the open window,
// returning the remaining open sub-windows in order. A break spanning the
// whole window leaves nothing.
func subtractBreaks(window interval, breaks []interval) []interval {
	windows := make([]interval, 0, len(breaks)+1)
	cursor := window.start
	for _, b := range breaks {
		if cursor.Before(b.start) {
			windows = append(windows, interval{start: cursor, end: b.start})
		}
		if b.end.After(cursor) {
			cursor = b.end
		}
	}
	if cursor.Before(window.end) {
		windows = append(windows, interval{start: cursor, end: window.end})
	}
	return windows
}

// overlapsAny reports whether the candidate overlaps any booked interval under
// half-open semantics: slot.start < booked.end && booked.start < slot.end.
func overlapsAny(slot models.Slot, booked []models.BookedInterval) bool {
	for _, b := range booked {
		if slot.Start.Before(b.End) && b.Start.Before(slot.End) {
			return true
		}
	}
	return false
}

// parseTimeOnDate parses an "HH:MM" string onto the given date.
func parseTimeOnDate(day time.Time, timeStr string) (time.Time, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time format: %q", timeStr)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", timeStr)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in %q", timeStr)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}
