package business

import (
	"fmt"
	"strconv"
	"strings"

	"slotify/models"
)

// SetWorkingHours validates and saves the configuration for one weekday.
// Unlike the availability engine, which sorts and merges defensively, the
// write path rejects malformed configurations outright so a business owner
// sees the problem when saving.
func (s *DefaultBusinessService) SetWorkingHours(businessID string, hours models.WorkingHours) error {
	if err := validateWorkingHours(hours); err != nil {
		return err
	}

	if _, err := s.GetBusinessByID(businessID); err != nil {
		return err
	}

	if err := s.Repo.UpsertWorkingHours(businessID, hours); err != nil {
		return fmt.Errorf("failed to save working hours: %w", err)
	}
	return nil
}

// GetWorkingHours returns the configured weekday records for a business.
func (s *DefaultBusinessService) GetWorkingHours(businessID string) ([]models.WorkingHours, error) {
	biz, err := s.GetBusinessByID(businessID)
	if err != nil {
		return nil, err
	}
	return biz.Hours, nil
}

func validateWorkingHours(hours models.WorkingHours) error {
	if hours.Weekday < 0 || hours.Weekday > 6 {
		return &ValidationError{Reason: fmt.Sprintf("weekday must be 0..6, got %d", hours.Weekday)}
	}
	if !hours.IsOpen {
		if len(hours.Breaks) > 0 {
			return &ValidationError{Reason: "a closed day cannot have breaks"}
		}
		return nil
	}

	open, err := minutesOfDay(hours.OpenTime)
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("openTime: %v", err)}
	}
	closing, err := minutesOfDay(hours.CloseTime)
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("closeTime: %v", err)}
	}
	if open >= closing {
		return &ValidationError{Reason: "openTime must be before closeTime"}
	}

	prevEnd := -1
	prevStart := -1
	for i, b := range hours.Breaks {
		start, err := minutesOfDay(b.StartTime)
		if err != nil {
			return &ValidationError{Reason: fmt.Sprintf("break %d startTime: %v", i, err)}
		}
		end, err := minutesOfDay(b.EndTime)
		if err != nil {
			return &ValidationError{Reason: fmt.Sprintf("break %d endTime: %v", i, err)}
		}
		if start >= end {
			return &ValidationError{Reason: fmt.Sprintf("break %d must start before it ends", i)}
		}
		if start < open || end > closing {
			return &ValidationError{Reason: fmt.Sprintf("break %d must lie within working hours", i)}
		}
		if prevStart >= 0 && start < prevStart {
			return &ValidationError{Reason: "breaks must be in chronological order"}
		}
		if prevEnd >= 0 && start < prevEnd {
			return &ValidationError{Reason: fmt.Sprintf("break %d overlaps the previous break", i)}
		}
		prevStart = start
		prevEnd = end
	}
	return nil
}

// minutesOfDay parses "HH:MM" into minutes from midnight.
func minutesOfDay(timeStr string) (int, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", timeStr)
	}
	return hour*60 + minute, nil
}
