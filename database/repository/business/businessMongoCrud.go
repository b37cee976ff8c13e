package businessRepo

import (
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new business document.
func (r *MongoBusinessRepo) Create(biz *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	biz.CreatedAt = now
	biz.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, biz)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a business document.
func (r *MongoBusinessRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update business with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}

// Delete removes a business document by its ID.
func (r *MongoBusinessRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete business with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("business with id %s not found", id)
	}
	return nil
}

// UpsertWorkingHours replaces the working-hours record for one weekday.
// The existing entry for that weekday (if any) is pulled before the new one
// is pushed, so the array holds at most one record per weekday.
func (r *MongoBusinessRepo) UpsertWorkingHours(businessID string, hours models.WorkingHours) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": businessID}

	pull := bson.M{
		"$pull": bson.M{"workingHours": bson.M{"weekday": hours.Weekday}},
	}
	result, err := r.coll.UpdateOne(ctx, filter, pull)
	if err != nil {
		return fmt.Errorf("failed to clear working hours for business %s: %w", businessID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", businessID)
	}

	push := bson.M{
		"$push": bson.M{"workingHours": hours},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, push); err != nil {
		return fmt.Errorf("failed to set working hours for business %s: %w", businessID, err)
	}
	return nil
}

// AddService appends a service to the business catalogue.
func (r *MongoBusinessRepo) AddService(businessID string, svc models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": businessID}
	update := bson.M{
		"$push": bson.M{"services": svc},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add service to business %s: %w", businessID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", businessID)
	}
	return nil
}

// UpdateService replaces a catalogue entry in place.
func (r *MongoBusinessRepo) UpdateService(businessID string, svc models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": businessID, "services.id": svc.ID}
	update := bson.M{
		"$set": bson.M{
			"services.$": svc,
			"updatedAt":  time.Now(),
		},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update service %s for business %s: %w", svc.ID, businessID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service %s not found for business %s", svc.ID, businessID)
	}
	return nil
}

// RemoveService pulls a catalogue entry by service ID.
func (r *MongoBusinessRepo) RemoveService(businessID, serviceID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": businessID}
	update := bson.M{
		"$pull": bson.M{"services": bson.M{"id": serviceID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove service %s from business %s: %w", serviceID, businessID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", businessID)
	}
	return nil
}
