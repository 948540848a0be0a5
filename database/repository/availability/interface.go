// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"serenite/config"
	"serenite/database"
	"serenite/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository stores per-date schedule overrides for professionals.
type AvailabilityRepository interface {
	// FindBlock returns the blocking record for the date, or nil when the day is open.
	FindBlock(ctx context.Context, professionalID, date string) (*models.Availability, error)
	// FindCustomHours returns the open record declaring custom hours, or nil.
	FindCustomHours(ctx context.Context, professionalID, date string) (*models.Availability, error)
	// Upsert replaces the authoritative record for (professional, date).
	Upsert(ctx context.Context, av *models.Availability) error
	// DeleteForDate removes any override, reverting the date to default hours.
	DeleteForDate(ctx context.Context, professionalID, date string) error
	ListForProfessional(ctx context.Context, professionalID string) ([]models.Availability, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}
