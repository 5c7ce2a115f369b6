package rsvp

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound signals that no record matched the given id or email.
	ErrNotFound = errors.New("rsvp not found")
	// ErrInvalidID signals a malformed identifier, rejected before any store access.
	ErrInvalidID = errors.New("invalid rsvp id")
)

// ListOptions controls ordering and bounding of List results.
type ListOptions struct {
	// Limit of 0 (or negative) means unbounded
	Limit int64
}

// Repository is the persistence-access layer over the rsvps collection.
type Repository interface {
	Create(ctx context.Context, rec *RSVP) (*RSVP, error)
	List(ctx context.Context, filter map[string]interface{}, opts ListOptions) ([]RSVP, error)
	GetByID(ctx context.Context, id string) (*RSVP, error)
	GetByEmail(ctx context.Context, email string) (*RSVP, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*RSVP, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*Stats, error)
}

type repository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repository{coll: coll}
}

// ===========================
// 🎯 Create RSVP
// Stamps createdAt/updatedAt and inserts. No uniqueness check at this layer;
// the submission flow pre-checks duplicates via GetByEmail.
func (r *repository) Create(ctx context.Context, rec *RSVP) (*RSVP, error) {
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid
	}
	return rec, nil
}

// ===========================
// 📄 List RSVPs - exact-match filter, newest-first
func (r *repository) List(ctx context.Context, filter map[string]interface{}, opts ListOptions) ([]RSVP, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cur, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := []RSVP{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ===========================
// 🔍 Get RSVP By ID
func (r *repository) GetByID(ctx context.Context, id string) (*RSVP, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var rec RSVP
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ===========================
// 📧 Get RSVP By Email - case-insensitive via lower-cased lookup, first match
func (r *repository) GetByEmail(ctx context.Context, email string) (*RSVP, error) {
	var rec RSVP
	err := r.coll.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ===========================
// 🛠 Update RSVP - merges only provided fields, refreshes updatedAt
func (r *repository) Update(ctx context.Context, id string, fields map[string]interface{}) (*RSVP, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updatedAt"] = time.Now().UTC()

	after := options.After
	var rec RSVP
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ===========================
// ❌ Delete RSVP - permanent, reports whether anything was removed
func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// ===========================
// 📊 Stats - one aggregation pass over the whole collection.
// totalGuests counts the plus-one: +1 per record where attending and guests
// are both true. An empty collection yields the all-zero struct.
func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	isAttending := bson.M{"$eq": bson.A{"$attending", true}}
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":       nil,
			"total":     bson.M{"$sum": 1},
			"attending": bson.M{"$sum": bson.M{"$cond": bson.A{isAttending, 1, 0}}},
			"notAttending": bson.M{"$sum": bson.M{"$cond": bson.A{isAttending, 0, 1}}},
			"totalGuests": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{
					isAttending,
					bson.M{"$eq": bson.A{"$guests", true}},
				}}, 1, 0}}},
		}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var stats Stats
	if cur.Next(ctx) {
		if err := cur.Decode(&stats); err != nil {
			return nil, err
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return &stats, nil
}
