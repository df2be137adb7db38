package bookingRepo

import (
	"context"
	"fmt"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("medibook")
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
	}
}

func activeFilter(doctorID, date string) bson.M {
	return bson.M{
		"doctor_id": doctorID,
		"date":      date,
		"status":    bson.M{"$nin": bson.A{models.StatusRejected, models.StatusCancelled}},
	}
}

// ListBookedTimes returns the occupied times for a doctor on a date.
func (repo *MongoBookingRepo) ListBookedTimes(ctx context.Context, doctorID, date string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"time": 1})
	cursor, err := repo.bookingColl.Find(ctx, activeFilter(doctorID, date), opts)
	if err != nil {
		return nil, fmt.Errorf("error listing booked times: %w", err)
	}
	defer cursor.Close(ctx)

	var times []string
	for cursor.Next(ctx) {
		var doc struct {
			Time string `bson:"time"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding booked time: %w", err)
		}
		times = append(times, doc.Time)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return times, nil
}

// IsSlotBooked checks whether an active booking holds the tuple.
func (repo *MongoBookingRepo) IsSlotBooked(ctx context.Context, doctorID, date, timeStr string) (bool, error) {
	filter := activeFilter(doctorID, date)
	filter["time"] = timeStr
	count, err := repo.bookingColl.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking slot %s %s %s: %w", doctorID, date, timeStr, err)
	}
	return count > 0, nil
}

// InsertBookingIfAbsent reserves the slot with a conditional upsert keyed
// on the (doctor, date, time) tuple scoped to active statuses. The partial
// unique index created by EnsureIndexes makes two concurrent upserts for
// the same tuple resolve to exactly one insert; the loser surfaces as a
// duplicate-key error and is reported as a conflict, not a failure.
func (repo *MongoBookingRepo) InsertBookingIfAbsent(ctx context.Context, booking *models.Booking) (bool, error) {
	filter := activeFilter(booking.DoctorID, booking.Date)
	filter["time"] = booking.Time

	update := bson.M{"$setOnInsert": booking}
	opts := options.Update().SetUpsert(true)

	res, err := repo.bookingColl.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("error inserting booking: %w", err)
	}
	return res.UpsertedCount == 1, nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("booking %s not found: %w", bookingID, err)
	}
	return &booking, nil
}

// UpdateStatus transitions a booking's status.
func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, bookingID, status string) error {
	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}

// ListByDoctorDate returns all active bookings for a doctor on a date.
func (repo *MongoBookingRepo) ListByDoctorDate(ctx context.Context, doctorID, date string) ([]models.Booking, error) {
	cursor, err := repo.bookingColl.Find(ctx, activeFilter(doctorID, date))
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
