package business

import (
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateWorkingHours(t *testing.T) {
	tests := []struct {
		name    string
		hours   models.WorkingHours
		wantErr string
	}{
		{
			name: "valid open day",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "09:00", CloseTime: "17:00",
				Breaks: []models.BreakWindow{{StartTime: "12:00", EndTime: "13:00"}},
			},
		},
		{
			name:  "valid closed day",
			hours: models.WorkingHours{Weekday: time.Sunday, IsOpen: false},
		},
		{
			name: "closed day with breaks",
			hours: models.WorkingHours{
				Weekday: time.Sunday, IsOpen: false,
				Breaks: []models.BreakWindow{{StartTime: "12:00", EndTime: "13:00"}},
			},
			wantErr: "closed day",
		},
		{
			name: "open after close",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "18:00", CloseTime: "09:00",
			},
			wantErr: "openTime must be before closeTime",
		},
		{
			name: "open equals close",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "09:00", CloseTime: "09:00",
			},
			wantErr: "openTime must be before closeTime",
		},
		{
			name: "malformed open time",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "9am", CloseTime: "17:00",
			},
			wantErr: "openTime",
		},
		{
			name: "hour out of range",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "25:00", CloseTime: "26:00",
			},
			wantErr: "openTime",
		},
		{
			name: "break outside window",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "09:00", CloseTime: "17:00",
				Breaks: []models.BreakWindow{{StartTime: "08:00", EndTime: "09:30"}},
			},
			wantErr: "within working hours",
		},
		{
			name: "inverted break",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "09:00", CloseTime: "17:00",
				Breaks: []models.BreakWindow{{StartTime: "13:00", EndTime: "12:00"}},
			},
			wantErr: "must start before it ends",
		},
		{
			name: "overlapping breaks",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "09:00", CloseTime: "17:00",
				Breaks: []models.BreakWindow{
					{StartTime: "12:00", EndTime: "13:00"},
					{StartTime: "12:30", EndTime: "14:00"},
				},
			},
			wantErr: "overlaps the previous break",
		},
		{
			name: "breaks out of order",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "09:00", CloseTime: "17:00",
				Breaks: []models.BreakWindow{
					{StartTime: "14:00", EndTime: "15:00"},
					{StartTime: "10:00", EndTime: "11:00"},
				},
			},
			wantErr: "chronological order",
		},
		{
			name: "weekday out of range",
			hours: models.WorkingHours{
				Weekday: time.Weekday(7), IsOpen: true,
				OpenTime: "09:00", CloseTime: "17:00",
			},
			wantErr: "weekday",
		},
		{
			name: "back to back breaks allowed",
			hours: models.WorkingHours{
				Weekday: time.Monday, IsOpen: true,
				OpenTime: "09:00", CloseTime: "17:00",
				Breaks: []models.BreakWindow{
					{StartTime: "12:00", EndTime: "13:00"},
					{StartTime: "13:00", EndTime: "13:30"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWorkingHours(tt.hours)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMinutesOfDay(t *testing.T) {
	got, err := minutesOfDay("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, got)

	for _, bad := range []string{"", "9", "09:60", "24:00", "aa:bb", "09:30:00"} {
		_, err := minutesOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
