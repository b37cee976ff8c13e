package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateConflictChecked inserts an appointment after verifying, inside the
// same transaction, that no non-cancelled appointment for the business
// overlaps the new [Start, End) interval. Half-open semantics: intervals that
// only touch at a boundary do not conflict. A conflicting concurrent booking
// surfaces as ErrSlotConflict and the insert is aborted.
func (r *MongoAppointmentRepo) CreateConflictChecked(ctx context.Context, appt *models.Appointment) error {
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"businessId": appt.BusinessID,
			"status":     bson.M{"$ne": models.AppointmentCancelled},
			"start":      bson.M{"$lt": appt.End},
			"end":        bson.M{"$gt": appt.Start},
		}

		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotConflict
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotConflict {
			return ErrSlotConflict
		}
		return fmt.Errorf("appointment transaction failed: %w", err)
	}

	return nil
}
