package businessRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	coll := database.DB().Collection("businesses")
	repo := &MongoBusinessRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBusinessRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a business by its unique ID.
func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var biz models.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&biz); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, err)
	}
	return &biz, nil
}

// GetByOwner retrieves the business owned by the given user, or nil when the
// user owns none. Ownership is always resolved here, never cached elsewhere.
func (r *MongoBusinessRepo) GetByOwner(ownerID string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var biz models.Business
	if err := r.coll.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&biz); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch business for owner %s: %w", ownerID, err)
	}
	return &biz, nil
}

// GetAll retrieves all businesses.
func (r *MongoBusinessRepo) GetAll() ([]models.Business, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	for cursor.Next(ctx) {
		var b models.Business
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode business: %w", err)
		}
		businesses = append(businesses, b)
	}
	return businesses, nil
}
