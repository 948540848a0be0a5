// File: database/repository/availability/availability_mongo.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serenite/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAvailabilityRepo) findOne(ctx context.Context, filter bson.M) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var av models.Availability
	err := r.coll.FindOne(ctx, filter).Decode(&av)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("availability lookup failed: %w", err)
	}
	return &av, nil
}

func (r *mongoAvailabilityRepo) FindBlock(ctx context.Context, professionalID, date string) (*models.Availability, error) {
	return r.findOne(ctx, bson.M{
		"professional_id": professionalID,
		"date":            date,
		"is_available":    false,
	})
}

func (r *mongoAvailabilityRepo) FindCustomHours(ctx context.Context, professionalID, date string) (*models.Availability, error) {
	return r.findOne(ctx, bson.M{
		"professional_id": professionalID,
		"date":            date,
		"is_available":    true,
	})
}

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, av *models.Availability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if av.ID == "" {
		av.ID = uuid.New().String()
	}
	if av.CreatedAt.IsZero() {
		av.CreatedAt = time.Now()
	}

	// One authoritative record per (professional, date).
	filter := bson.M{"professional_id": av.ProfessionalID, "date": av.Date}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, av, opts); err != nil {
		return fmt.Errorf("availability upsert failed: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) DeleteForDate(ctx context.Context, professionalID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"professional_id": professionalID, "date": date}); err != nil {
		return fmt.Errorf("availability delete failed: %w", err)
	}
	return nil
}

func (r *mongoAvailabilityRepo) ListForProfessional(ctx context.Context, professionalID string) ([]models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"professional_id": professionalID}, opts)
	if err != nil {
		return nil, fmt.Errorf("availability list failed: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.Availability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decoding availability records failed: %w", err)
	}
	return records, nil
}
