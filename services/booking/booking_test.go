package booking

import (
	"context"
	"testing"
	"time"

	appointmentRepo "slotify/database/repository/appointment"
	"slotify/models"
	"slotify/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBusinessRepo struct {
	businesses map[string]*models.Business
}

func (r *fakeBusinessRepo) Create(biz *models.Business) error { return nil }
func (r *fakeBusinessRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}
func (r *fakeBusinessRepo) Delete(id string) error { return nil }
func (r *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	return r.businesses[id], nil
}
func (r *fakeBusinessRepo) GetByOwner(ownerID string) (*models.Business, error) {
	for _, b := range r.businesses {
		if b.OwnerID == ownerID {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBusinessRepo) GetAll() ([]models.Business, error) { return nil, nil }
func (r *fakeBusinessRepo) UpsertWorkingHours(businessID string, hours models.WorkingHours) error {
	return nil
}
func (r *fakeBusinessRepo) AddService(businessID string, svc models.Service) error    { return nil }
func (r *fakeBusinessRepo) UpdateService(businessID string, svc models.Service) error { return nil }
func (r *fakeBusinessRepo) RemoveService(businessID, serviceID string) error          { return nil }

// fakeAppointmentRepo enforces the same overlap rule as the Mongo
// implementation, so conflict behavior can be tested without a database.
type fakeAppointmentRepo struct {
	appointments []*models.Appointment
}

func (r *fakeAppointmentRepo) CreateConflictChecked(ctx context.Context, appt *models.Appointment) error {
	for _, a := range r.appointments {
		if a.BusinessID != appt.BusinessID || a.Status == models.AppointmentCancelled {
			continue
		}
		if appt.Start.Before(a.End) && a.Start.Before(appt.End) {
			return appointmentRepo.ErrSlotConflict
		}
	}
	r.appointments = append(r.appointments, appt)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) Delete(id string) error { return nil }

func (r *fakeAppointmentRepo) UpdateStatus(id, status string) error {
	for _, a := range r.appointments {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return nil
}

func (r *fakeAppointmentRepo) UpdatePaymentStatus(id, paymentStatus string) error {
	for _, a := range r.appointments {
		if a.ID == id {
			a.PaymentStatus = paymentStatus
			return nil
		}
	}
	return nil
}

func (r *fakeAppointmentRepo) GetBookedIntervals(businessID string, date time.Time) ([]models.BookedInterval, error) {
	var out []models.BookedInterval
	day := date.Format("2006-01-02")
	for _, a := range r.appointments {
		if a.BusinessID == businessID && a.Date == day && a.Status != models.AppointmentCancelled {
			out = append(out, models.BookedInterval{Start: a.Start, End: a.End})
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByBusinessDate(businessID string, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	day := date.Format("2006-01-02")
	for _, a := range r.appointments {
		if a.BusinessID == businessID && a.Date == day && a.Status != models.AppointmentCancelled {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByClient(clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

const (
	testBusinessID = "biz-1"
	testServiceID  = "svc-1"
	testClientID   = "client-1"
)

// 2026-03-02 is a Monday.
var testDate = "2026-03-02"

func newTestService(hours []models.WorkingHours) (*DefaultBookingService, *fakeAppointmentRepo) {
	biz := &models.Business{
		ID:      testBusinessID,
		OwnerID: "owner-1",
		Name:    "Clip Joint",
		Services: []models.Service{
			{ID: testServiceID, Name: "Haircut", DurationMinutes: 60, Price: 30, Currency: "USD", Active: true},
			{ID: "svc-inactive", Name: "Retired", DurationMinutes: 30, Active: false},
		},
		Hours: hours,
	}
	apptRepo := &fakeAppointmentRepo{}
	engine := availability.NewEngine()
	engine.Now = func() time.Time {
		return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	svc := &DefaultBookingService{
		BusinessRepo:    &fakeBusinessRepo{businesses: map[string]*models.Business{testBusinessID: biz}},
		AppointmentRepo: apptRepo,
		Engine:          engine,
	}
	return svc, apptRepo
}

func mondayHours() []models.WorkingHours {
	return []models.WorkingHours{{
		Weekday:   time.Monday,
		IsOpen:    true,
		OpenTime:  "09:00",
		CloseTime: "12:00",
	}}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestGetAvailableSlots(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	slots, err := svc.GetAvailableSlots(testBusinessID, testServiceID, mustDate(t, testDate))
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
	assert.Equal(t, "11:00", slots[2].Start.Format("15:04"))
}

func TestGetAvailableSlotsUnknownBusiness(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	_, err := svc.GetAvailableSlots("no-such-biz", testServiceID, mustDate(t, testDate))
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestGetAvailableSlotsInactiveService(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	_, err := svc.GetAvailableSlots(testBusinessID, "svc-inactive", mustDate(t, testDate))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetAvailableSlotsHoursNotConfigured(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.GetAvailableSlots(testBusinessID, testServiceID, mustDate(t, testDate))
	assert.ErrorIs(t, err, ErrHoursNotConfigured)
}

func TestGetAvailableSlotsMissingWeekdayIsClosed(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	// 2026-03-03 is a Tuesday, which has no record.
	slots, err := svc.GetAvailableSlots(testBusinessID, testServiceID, mustDate(t, "2026-03-03"))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCreateAppointment(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	appt, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID:   testClientID,
		BusinessID: testBusinessID,
		ServiceID:  testServiceID,
		Date:       testDate,
		StartTime:  "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, models.PaymentUnpaid, appt.PaymentStatus)
	assert.Equal(t, "10:00", appt.Start.Format("15:04"))
	assert.Equal(t, "11:00", appt.End.Format("15:04"))
	assert.Equal(t, 30.0, appt.Price)

	// The booked hour disappears from availability.
	slots, err := svc.GetAvailableSlots(testBusinessID, testServiceID, mustDate(t, testDate))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
	assert.Equal(t, "11:00", slots[1].Start.Format("15:04"))
}

func TestCreateAppointmentOffGridStart(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	_, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID:   testClientID,
		BusinessID: testBusinessID,
		ServiceID:  testServiceID,
		Date:       testDate,
		StartTime:  "09:30",
	})
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestCreateAppointmentDoubleBooking(t *testing.T) {
	svc, _ := newTestService(mondayHours())
	req := CreateAppointmentRequest{
		ClientID:   testClientID,
		BusinessID: testBusinessID,
		ServiceID:  testServiceID,
		Date:       testDate,
		StartTime:  "10:00",
	}

	_, err := svc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)

	req.ClientID = "client-2"
	_, err = svc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

// A conflict that only materializes at write time (the slot still looked free
// when availability was computed) must surface as ErrSlotTaken.
func TestCreateAppointmentWriteTimeConflict(t *testing.T) {
	svc, apptRepo := newTestService(mondayHours())

	// Pre-seed an overlapping appointment that GetBookedIntervals does not
	// see (different stored date string, same wall-clock interval).
	day := mustDate(t, testDate)
	apptRepo.appointments = append(apptRepo.appointments, &models.Appointment{
		ID:         "appt-racer",
		BusinessID: testBusinessID,
		Date:       "other",
		Start:      day.Add(10 * time.Hour),
		End:        day.Add(11 * time.Hour),
		Status:     models.AppointmentConfirmed,
	})

	_, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID:   testClientID,
		BusinessID: testBusinessID,
		ServiceID:  testServiceID,
		Date:       testDate,
		StartTime:  "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCancelFreesSlot(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	appt, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID:   testClientID,
		BusinessID: testBusinessID,
		ServiceID:  testServiceID,
		Date:       testDate,
		StartTime:  "10:00",
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelAppointment(appt.ID, testClientID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, cancelled.Status)

	slots, err := svc.GetAvailableSlots(testBusinessID, testServiceID, mustDate(t, testDate))
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestCancelByAnotherClient(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	appt, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID:   testClientID,
		BusinessID: testBusinessID,
		ServiceID:  testServiceID,
		Date:       testDate,
		StartTime:  "09:00",
	})
	require.NoError(t, err)

	_, err = svc.CancelAppointment(appt.ID, "client-2")
	assert.ErrorIs(t, err, ErrNotAppointmentOwner)
}

func TestLifecycleTransitions(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	appt, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID:   testClientID,
		BusinessID: testBusinessID,
		ServiceID:  testServiceID,
		Date:       testDate,
		StartTime:  "09:00",
	})
	require.NoError(t, err)

	// Completing a pending appointment is not allowed.
	_, err = svc.CompleteAppointment(appt.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	confirmed, err := svc.ConfirmAppointment(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, confirmed.Status)

	// Confirming twice is not allowed.
	_, err = svc.ConfirmAppointment(appt.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	completed, err := svc.CompleteAppointment(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, completed.Status)

	// A completed appointment cannot be cancelled.
	_, err = svc.CancelAppointment(appt.ID, testClientID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestGetAppointmentNotFound(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	_, err := svc.GetAppointment("missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCreateAppointmentBadDate(t *testing.T) {
	svc, _ := newTestService(mondayHours())

	_, err := svc.CreateAppointment(context.Background(), CreateAppointmentRequest{
		ClientID:   testClientID,
		BusinessID: testBusinessID,
		ServiceID:  testServiceID,
		Date:       "02-03-2026",
		StartTime:  "09:00",
	})
	assert.Error(t, err)
}
