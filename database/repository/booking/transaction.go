// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"serenite/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree inserts the booking inside a mongo session transaction. The
// overlap re-check and the insert are atomic, so two concurrent callers who
// were both offered the same slot cannot both book it.
func (r *mongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		// Half-open interval overlap: existing.start < new.end AND existing.end > new.start.
		filter := bson.M{
			"professional_id": booking.ProfessionalID,
			"date":            booking.Date,
			"status":          bson.M{"$nin": inactiveStatuses},
			"start":           bson.M{"$lt": booking.End},
			"end":             bson.M{"$gt": booking.Start},
		}
		conflicts, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict re-check failed: %w", err)
		}
		if conflicts > 0 {
			return ErrSlotTaken
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
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
		return err
	}

	return nil
}
