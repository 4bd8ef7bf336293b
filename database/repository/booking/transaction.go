package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"bookassist/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBooking upserts the customer keyed by email and inserts a confirmed
// booking inside one transaction, so a failed insert never leaves a customer
// update behind.
func (r *MongoBookingRepo) CreateBooking(ctx context.Context, record models.BookingRecord) (*models.Booking, error) {
	now := time.Now()
	booking := &models.Booking{
		ID:          uuid.NewString(),
		Name:        record.Name,
		Email:       record.Email,
		Phone:       record.Phone,
		ServiceType: record.ServiceType,
		Date:        record.Date,
		Time:        record.Time,
		Price:       record.Price,
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   now,
	}

	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		customerID, err := r.upsertCustomer(sc, record, now)
		if err != nil {
			return err
		}
		booking.CustomerID = customerID

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
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
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	return booking, nil
}

// upsertCustomer creates or refreshes the customer document for this email
// and returns its stable ID.
func (r *MongoBookingRepo) upsertCustomer(sc mongo.SessionContext, record models.BookingRecord, now time.Time) (string, error) {
	filter := bson.M{"email": record.Email}
	update := bson.M{
		"$set": bson.M{
			"name":       record.Name,
			"phone":      record.Phone,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"id":         uuid.NewString(),
			"email":      record.Email,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var customer models.Customer
	if err := r.customerColl.FindOneAndUpdate(sc, filter, update, opts).Decode(&customer); err != nil {
		return "", fmt.Errorf("upsert customer failed: %w", err)
	}
	return customer.ID, nil
}
