package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"bookassist/database"
	"bookassist/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	customerColl *mongo.Collection
	bookingColl  *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("bookassist")
	repo := &MongoBookingRepo{
		customerColl: db.Collection("customers"),
		bookingColl:  db.Collection("bookings"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	customerIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.customerColl.Indexes().CreateMany(ctx, customerIndexes); err != nil {
		return fmt.Errorf("failed to create customer indexes: %w", err)
	}

	bookingIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.bookingColl.Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetAll retrieves all bookings, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.findBookings(bson.M{})
}

// GetByDate retrieves all bookings on a given "YYYY-MM-DD" date.
func (r *MongoBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	return r.findBookings(bson.M{"date": date})
}

// GetByCustomerEmail retrieves a customer's booking history.
func (r *MongoBookingRepo) GetByCustomerEmail(email string) ([]models.Booking, error) {
	return r.findBookings(bson.M{"email": email})
}

// Search matches bookings by name, email, or service type substring.
func (r *MongoBookingRepo) Search(query string) ([]models.Booking, error) {
	pattern := primitive.Regex{Pattern: query, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"email": pattern},
		{"service_type": pattern},
	}}
	return r.findBookings(filter)
}

func (r *MongoBookingRepo) findBookings(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// UpdateStatus moves a booking to a new status.
func (r *MongoBookingRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.bookingColl.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// Delete removes a booking document by its ID.
func (r *MongoBookingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.bookingColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// Stats aggregates total, per-status, and per-service booking counts.
func (r *MongoBookingRepo) Stats() (*models.BookingStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	total, err := r.bookingColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	stats := &models.BookingStats{
		Total:     total,
		ByStatus:  map[string]int64{},
		ByService: map[string]int64{},
	}
	if err := r.groupCounts(ctx, "$status", stats.ByStatus); err != nil {
		return nil, err
	}
	if err := r.groupCounts(ctx, "$service_type", stats.ByService); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *MongoBookingRepo) groupCounts(ctx context.Context, field string, out map[string]int64) error {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": field, "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.bookingColl.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("failed to aggregate bookings by %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return fmt.Errorf("failed to decode aggregation row: %w", err)
		}
		out[row.ID] = row.Count
	}
	return nil
}

// GetCustomerByEmail retrieves a customer by unique email.
func (r *MongoBookingRepo) GetCustomerByEmail(email string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.customerColl.FindOne(ctx, bson.M{"email": email}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer with email %s: %w", email, err)
	}
	return &customer, nil
}
