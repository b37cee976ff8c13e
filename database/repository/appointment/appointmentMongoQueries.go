package appointmentRepo

import (
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dateLayout = "2006-01-02"

// GetBookedIntervals returns the [start, end) ranges of all non-cancelled
// appointments for a business on the given calendar date, sorted by start.
func (r *MongoAppointmentRepo) GetBookedIntervals(businessID string, date time.Time) ([]models.BookedInterval, error) {
	appts, err := r.ListByBusinessDate(businessID, date)
	if err != nil {
		return nil, err
	}

	intervals := make([]models.BookedInterval, 0, len(appts))
	for _, a := range appts {
		intervals = append(intervals, models.BookedInterval{Start: a.Start, End: a.End})
	}
	return intervals, nil
}

// ListByBusinessDate returns the non-cancelled appointments for a business on
// the given calendar date, sorted by start time.
func (r *MongoAppointmentRepo) ListByBusinessDate(businessID string, date time.Time) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"businessId": businessID,
		"date":       date.Format(dateLayout),
		"status":     bson.M{"$ne": models.AppointmentCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// ListByClient returns all appointments booked by a client, newest first.
func (r *MongoAppointmentRepo) ListByClient(clientID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"clientId": clientID}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for client %s: %w", clientID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}
