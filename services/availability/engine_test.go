package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotify/models"
)

// testDate is a fixed future Monday; the injected clock sits well before it so
// past-slot filtering never interferes unless a test moves the clock.
var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return &Engine{Now: func() time.Time {
		return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	}}
}

func hours(openTime, closeTime string, breaks ...models.BreakWindow) *models.WorkingHours {
	return &models.WorkingHours{
		Weekday:   testDate.Weekday(),
		IsOpen:    true,
		OpenTime:  openTime,
		CloseTime: closeTime,
		Breaks:    breaks,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(testDate.Year(), testDate.Month(), testDate.Day(), hour, minute, 0, 0, time.UTC)
}

func booked(startHour, startMin, endHour, endMin int) models.BookedInterval {
	return models.BookedInterval{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestComputeAvailableSlotsFullDay(t *testing.T) {
	slots, err := testEngine().ComputeAvailableSlots(testDate, hours("09:00", "18:00"), 60, nil)
	require.NoError(t, err)
	require.Len(t, slots, 9)

	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(10, 0), slots[0].End)
	assert.Equal(t, at(17, 0), slots[8].Start)
	assert.Equal(t, at(18, 0), slots[8].End)
}

func TestComputeAvailableSlotsSkipsBookedHour(t *testing.T) {
	bookedIntervals := []models.BookedInterval{booked(12, 0, 13, 0)}

	slots, err := testEngine().ComputeAvailableSlots(testDate, hours("09:00", "18:00"), 60, bookedIntervals)
	require.NoError(t, err)
	require.Len(t, slots, 8)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, at(12, 0))
	assert.Contains(t, starts, at(11, 0))
	assert.Contains(t, starts, at(13, 0))
}

func TestComputeAvailableSlotsRespectsBreak(t *testing.T) {
	wh := hours("09:00", "18:00", models.BreakWindow{StartTime: "13:00", EndTime: "14:00"})

	slots, err := testEngine().ComputeAvailableSlots(testDate, wh, 60, nil)
	require.NoError(t, err)
	require.Len(t, slots, 8)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, at(13, 0))
	assert.Contains(t, starts, at(12, 0))
	assert.Contains(t, starts, at(14, 0))
	assert.Contains(t, starts, at(17, 0))
}

func TestComputeAvailableSlotsDurationExceedsWindow(t *testing.T) {
	slots, err := testEngine().ComputeAvailableSlots(testDate, hours("09:00", "10:00"), 90, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlotsClosedDay(t *testing.T) {
	wh := &models.WorkingHours{Weekday: testDate.Weekday(), IsOpen: false}

	slots, err := testEngine().ComputeAvailableSlots(testDate, wh, 60, []models.BookedInterval{booked(9, 0, 10, 0)})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

// Regression test for the half-open overlap rule: a booking 09:30-10:30 on a
// 60-minute grid starting 09:00 rejects both the 09:00 and 10:00 candidates;
// 11:00 is the first accepted slot.
func TestComputeAvailableSlotsHalfOpenOverlapRule(t *testing.T) {
	bookedIntervals := []models.BookedInterval{booked(9, 30, 10, 30)}

	slots, err := testEngine().ComputeAvailableSlots(testDate, hours("09:00", "18:00"), 60, bookedIntervals)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, at(9, 0))
	assert.NotContains(t, starts, at(10, 0))
	assert.Equal(t, at(11, 0), slots[0].Start)
}

func TestComputeAvailableSlotsTouchingBoundaryIsNotOverlap(t *testing.T) {
	// Booking ends exactly when the 10:00 candidate starts.
	bookedIntervals := []models.BookedInterval{booked(9, 0, 10, 0)}

	slots, err := testEngine().ComputeAvailableSlots(testDate, hours("09:00", "18:00"), 60, bookedIntervals)
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, at(9, 0))
	assert.Contains(t, starts, at(10, 0))
}

func TestComputeAvailableSlotsNoPastSlots(t *testing.T) {
	engine := &Engine{Now: func() time.Time { return at(14, 30) }}

	slots, err := engine.ComputeAvailableSlots(testDate, hours("09:00", "18:00"), 60, nil)
	require.NoError(t, err)
	require.Len(t, slots, 3) // 15:00, 16:00, 17:00

	for _, s := range slots {
		assert.False(t, s.Start.Before(at(14, 30)), "slot %v starts in the past", s.Start)
	}
}

func TestComputeAvailableSlotsBreakEqualsFullWindow(t *testing.T) {
	wh := hours("09:00", "18:00", models.BreakWindow{StartTime: "09:00", EndTime: "18:00"})

	slots, err := testEngine().ComputeAvailableSlots(testDate, wh, 60, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlotsBreakAtWindowEdge(t *testing.T) {
	wh := hours("09:00", "18:00", models.BreakWindow{StartTime: "09:00", EndTime: "10:00"})

	slots, err := testEngine().ComputeAvailableSlots(testDate, wh, 60, nil)
	require.NoError(t, err)
	require.Len(t, slots, 8)
	assert.Equal(t, at(10, 0), slots[0].Start)
}

func TestComputeAvailableSlotsUnsortedOverlappingBreaks(t *testing.T) {
	wh := hours("09:00", "18:00",
		models.BreakWindow{StartTime: "14:00", EndTime: "15:00"},
		models.BreakWindow{StartTime: "13:00", EndTime: "14:30"},
		models.BreakWindow{StartTime: "13:30", EndTime: "14:00"},
	)

	// Merged break is 13:00-15:00, so open sub-windows are 09:00-13:00 and 15:00-18:00.
	slots, err := testEngine().ComputeAvailableSlots(testDate, wh, 60, nil)
	require.NoError(t, err)
	require.Len(t, slots, 7)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, at(13, 0))
	assert.NotContains(t, starts, at(14, 0))
	assert.Contains(t, starts, at(12, 0))
	assert.Contains(t, starts, at(15, 0))
}

func TestComputeAvailableSlotsBreakOutsideWindowIgnored(t *testing.T) {
	wh := hours("09:00", "12:00", models.BreakWindow{StartTime: "18:00", EndTime: "19:00"})

	slots, err := testEngine().ComputeAvailableSlots(testDate, wh, 60, nil)
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestComputeAvailableSlotsZeroLengthBreakIgnored(t *testing.T) {
	wh := hours("09:00", "12:00", models.BreakWindow{StartTime: "10:00", EndTime: "10:00"})

	slots, err := testEngine().ComputeAvailableSlots(testDate, wh, 60, nil)
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestComputeAvailableSlotsAdjacentBookingsNotPremerged(t *testing.T) {
	// Two touching bookings cover 10:00-12:00; each is checked independently.
	bookedIntervals := []models.BookedInterval{
		booked(10, 0, 11, 0),
		booked(11, 0, 12, 0),
	}

	slots, err := testEngine().ComputeAvailableSlots(testDate, hours("09:00", "18:00"), 60, bookedIntervals)
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.Contains(t, starts, at(9, 0))
	assert.NotContains(t, starts, at(10, 0))
	assert.NotContains(t, starts, at(11, 0))
	assert.Contains(t, starts, at(12, 0))
}

func TestComputeAvailableSlotsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		hours    *models.WorkingHours
		duration int
	}{
		{name: "zero duration", hours: hours("09:00", "18:00"), duration: 0},
		{name: "negative duration", hours: hours("09:00", "18:00"), duration: -30},
		{name: "malformed open time", hours: hours("9am", "18:00"), duration: 60},
		{name: "malformed close time", hours: hours("09:00", "18h"), duration: 60},
		{name: "open after close", hours: hours("18:00", "09:00"), duration: 60},
		{name: "hour out of range", hours: hours("25:00", "26:00"), duration: 60},
		{name: "malformed break", hours: hours("09:00", "18:00", models.BreakWindow{StartTime: "13-00", EndTime: "14:00"}), duration: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testEngine().ComputeAvailableSlots(testDate, tt.hours, tt.duration, nil)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err), "expected InvalidInputError, got %v", err)
		})
	}
}

func TestComputeAvailableSlotsMissingConfiguration(t *testing.T) {
	_, err := testEngine().ComputeAvailableSlots(testDate, nil, 60, nil)
	require.Error(t, err)
	assert.True(t, IsInvalidConfiguration(err))
	assert.False(t, IsInvalidInput(err))
}

// Property checks over a busy day: exact duration, strict monotonicity, no
// mutual overlap, no overlap with bookings, containment in the working window.
func TestComputeAvailableSlotsProperties(t *testing.T) {
	wh := hours("08:30", "19:00",
		models.BreakWindow{StartTime: "12:00", EndTime: "12:45"},
		models.BreakWindow{StartTime: "16:00", EndTime: "16:30"},
	)
	bookedIntervals := []models.BookedInterval{
		booked(9, 0, 9, 45),
		booked(14, 0, 15, 0),
		booked(14, 30, 15, 30), // overlaps the previous one on purpose
	}

	slots, err := testEngine().ComputeAvailableSlots(testDate, wh, 45, bookedIntervals)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i, s := range slots {
		assert.Equal(t, 45*time.Minute, s.End.Sub(s.Start), "slot %d has wrong duration", i)
		assert.False(t, s.Start.Before(at(8, 30)), "slot %d before opening", i)
		assert.False(t, s.End.After(at(19, 0)), "slot %d after closing", i)

		if i > 0 {
			assert.True(t, slots[i-1].Start.Before(s.Start), "starts not strictly increasing at %d", i)
			assert.False(t, slots[i-1].End.After(s.Start), "slots %d and %d overlap", i-1, i)
		}

		for _, b := range bookedIntervals {
			overlap := s.Start.Before(b.End) && b.Start.Before(s.End)
			assert.False(t, overlap, "slot %d overlaps booking %v-%v", i, b.Start, b.End)
		}

		// Slots never cross a break.
		for _, br := range []models.BookedInterval{
			{Start: at(12, 0), End: at(12, 45)},
			{Start: at(16, 0), End: at(16, 30)},
		} {
			overlap := s.Start.Before(br.End) && br.Start.Before(s.End)
			assert.False(t, overlap, "slot %d overlaps break %v-%v", i, br.Start, br.End)
		}
	}
}

func slotStarts(slots []models.Slot) []time.Time {
	starts := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	return starts
}
