package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	appointmentRepo "slotify/database/repository/appointment"
	"slotify/models"
	"slotify/services/availability"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// GetAvailableSlots computes the bookable slots for a business, service and
// date. A business with no working-hours configuration yields
// ErrHoursNotConfigured; a configured business that is closed (or fully
// booked) on the date yields an empty list.
func (s *DefaultBookingService) GetAvailableSlots(businessID, serviceID string, date time.Time) ([]models.Slot, error) {
	biz, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	if biz == nil {
		return nil, ErrBusinessNotFound
	}

	svc := biz.ServiceByID(serviceID)
	if svc == nil || !svc.Active {
		return nil, ErrServiceNotFound
	}

	if slots, ok := s.cachedSlots(businessID, serviceID, date); ok {
		return slots, nil
	}

	hours := s.hoursForDate(biz, date)

	booked, err := s.AppointmentRepo.GetBookedIntervals(businessID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked intervals: %w", err)
	}

	slots, err := s.Engine.ComputeAvailableSlots(date, hours, svc.DurationMinutes, booked)
	if err != nil {
		if availability.IsInvalidConfiguration(err) {
			return nil, ErrHoursNotConfigured
		}
		return nil, err
	}

	s.storeSlots(businessID, serviceID, date, slots)
	return slots, nil
}

// CreateAppointment books a slot. The requested start must match a currently
// offered slot, and the insert re-validates the no-overlap invariant inside a
// transaction: if a concurrent booking claimed the interval first, the request
// fails with ErrSlotTaken and the client must pick from fresh availability.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q; expected YYYY-MM-DD", req.Date)
	}

	biz, err := s.BusinessRepo.GetByID(req.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	if biz == nil {
		return nil, ErrBusinessNotFound
	}
	svc := biz.ServiceByID(req.ServiceID)
	if svc == nil || !svc.Active {
		return nil, ErrServiceNotFound
	}

	slots, err := s.GetAvailableSlots(req.BusinessID, req.ServiceID, date)
	if err != nil {
		return nil, err
	}

	slot, ok := matchSlot(slots, req.StartTime)
	if !ok {
		return nil, ErrSlotNotOffered
	}

	appt := &models.Appointment{
		ID:            uuid.NewString(),
		BusinessID:    req.BusinessID,
		ServiceID:     req.ServiceID,
		ClientID:      req.ClientID,
		Date:          date.Format(dateLayout),
		Start:         slot.Start,
		End:           slot.End,
		Status:        models.AppointmentPending,
		PaymentStatus: models.PaymentUnpaid,
		Price:         svc.Price,
		Currency:      svc.Currency,
		Notes:         req.Notes,
	}

	if err := s.AppointmentRepo.CreateConflictChecked(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotConflict) {
			logger.Info("Booking rejected on write-time conflict",
				zap.String("businessID", req.BusinessID),
				zap.Time("start", slot.Start))
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.invalidateAvailability(appt.BusinessID, appt.Date)

	logger.Info("Appointment created",
		zap.String("appointmentID", appt.ID),
		zap.String("businessID", appt.BusinessID),
		zap.Time("start", appt.Start))
	return appt, nil
}

// GetAppointment retrieves an appointment by ID.
func (s *DefaultBookingService) GetAppointment(appointmentID string) (*models.Appointment, error) {
	appt, err := s.AppointmentRepo.GetByID(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	return appt, nil
}

// ConfirmAppointment moves a pending appointment to confirmed.
func (s *DefaultBookingService) ConfirmAppointment(appointmentID string) (*models.Appointment, error) {
	return s.transition(appointmentID, models.AppointmentConfirmed, models.AppointmentPending)
}

// CompleteAppointment moves a confirmed appointment to completed.
func (s *DefaultBookingService) CompleteAppointment(appointmentID string) (*models.Appointment, error) {
	return s.transition(appointmentID, models.AppointmentCompleted, models.AppointmentConfirmed)
}

// CancelAppointment cancels a pending or confirmed appointment. When
// requesterID is non-empty it must match the booking client; business owners
// cancel with an empty requesterID after their own authorization check.
func (s *DefaultBookingService) CancelAppointment(appointmentID, requesterID string) (*models.Appointment, error) {
	appt, err := s.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if requesterID != "" && appt.ClientID != requesterID {
		return nil, ErrNotAppointmentOwner
	}
	if appt.Status != models.AppointmentPending && appt.Status != models.AppointmentConfirmed {
		return nil, ErrInvalidTransition
	}

	if err := s.AppointmentRepo.UpdateStatus(appointmentID, models.AppointmentCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}
	s.invalidateAvailability(appt.BusinessID, appt.Date)
	appt.Status = models.AppointmentCancelled
	return appt, nil
}

// ListBusinessAppointments returns the non-cancelled appointments for a
// business on a date.
func (s *DefaultBookingService) ListBusinessAppointments(businessID string, date time.Time) ([]models.Appointment, error) {
	appts, err := s.AppointmentRepo.ListByBusinessDate(businessID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// ListClientAppointments returns a client's appointments, newest first.
func (s *DefaultBookingService) ListClientAppointments(clientID string) ([]models.Appointment, error) {
	appts, err := s.AppointmentRepo.ListByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

func (s *DefaultBookingService) transition(appointmentID, target, required string) (*models.Appointment, error) {
	appt, err := s.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != required {
		return nil, ErrInvalidTransition
	}

	if err := s.AppointmentRepo.UpdateStatus(appointmentID, target); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	appt.Status = target
	return appt, nil
}

// hoursForDate picks the weekday record for the date. A business with no
// configuration at all maps to nil (engine reports it as not configured); a
// configured business missing this weekday is treated as closed.
func (s *DefaultBookingService) hoursForDate(biz *models.Business, date time.Time) *models.WorkingHours {
	if len(biz.Hours) == 0 {
		return nil
	}
	if hours := biz.HoursFor(date.Weekday()); hours != nil {
		return hours
	}
	return &models.WorkingHours{Weekday: date.Weekday(), IsOpen: false}
}

const availabilityCacheTTL = 30 * time.Second

func availabilityCacheKey(businessID, serviceID, day string) string {
	return "availability:" + businessID + ":" + day + ":" + serviceID
}

func (s *DefaultBookingService) cachedSlots(businessID, serviceID string, date time.Time) ([]models.Slot, bool) {
	if s.Cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, availabilityCacheKey(businessID, serviceID, date.Format(dateLayout))).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []models.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultBookingService) storeSlots(businessID, serviceID string, date time.Time, slots []models.Slot) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.Cache.Set(ctx, availabilityCacheKey(businessID, serviceID, date.Format(dateLayout)), raw, availabilityCacheTTL).Err()
}

// invalidateAvailability drops all cached availability for a business day.
// Booked intervals are business-wide, so every service's cache entry is stale.
func (s *DefaultBookingService) invalidateAvailability(businessID, day string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	pattern := "availability:" + businessID + ":" + day + ":*"
	iter := s.Cache.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		_ = s.Cache.Del(ctx, iter.Val()).Err()
	}
}

// matchSlot finds the offered slot starting at the "HH:MM" the client picked.
func matchSlot(slots []models.Slot, startTime string) (models.Slot, bool) {
	for _, slot := range slots {
		if slot.Start.Format("15:04") == startTime {
			return slot, true
		}
	}
	return models.Slot{}, false
}
