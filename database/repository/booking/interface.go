// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"serenite/config"
	"serenite/database"
	"serenite/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when the transactional conflict re-check finds an
// active booking overlapping the requested interval.
var ErrSlotTaken = errors.New("slot already taken by an overlapping booking")

// BookingRepository stores appointment bookings.
type BookingRepository interface {
	// FindActiveForDate returns the professional's bookings for the date,
	// excluding cancelled and no-show records.
	FindActiveForDate(ctx context.Context, professionalID, date string) ([]models.Booking, error)
	// CreateIfFree inserts the booking inside a transaction, re-checking for
	// overlapping active bookings first. Returns ErrSlotTaken on conflict.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	SetStatus(ctx context.Context, id, status string) error
	ListForClient(ctx context.Context, clientID string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
