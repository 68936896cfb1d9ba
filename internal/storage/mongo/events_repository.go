package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventdeck/server/internal/domain/events"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventsRepository struct {
	coll *driver.Collection
}

func (r *EventsRepository) List(ctx context.Context) ([]bson.M, error) {
	done := observe(events.Collection, "find")
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		done(err)
		return nil, fmt.Errorf("find events: %w", err)
	}

	docs := []bson.M{}
	err = cursor.All(ctx, &docs)
	done(err)
	if err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return docs, nil
}

func (r *EventsRepository) ListPage(ctx context.Context, opts events.PageOptions) ([]bson.M, error) {
	findOpts := options.Find().SetSkip(opts.Skip).SetLimit(opts.Limit)
	if opts.SortLatest {
		findOpts.SetSort(bson.D{{Key: "schedule", Value: -1}})
	}

	done := observe(events.Collection, "find")
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("find events page: %w", err)
	}

	docs := []bson.M{}
	err = cursor.All(ctx, &docs)
	done(err)
	if err != nil {
		return nil, fmt.Errorf("decode events page: %w", err)
	}
	return docs, nil
}

func (r *EventsRepository) Get(ctx context.Context, id string) (bson.M, error) {
	// A malformed id surfaces as an opaque error, indistinguishable from a
	// store failure. The API reports it as a 500, not a 400.
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse event id: %w", err)
	}

	done := observe(events.Collection, "findOne")
	var doc bson.M
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, driver.ErrNoDocuments) {
		done(nil)
		return nil, events.ErrNotFound
	}
	done(err)
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	return doc, nil
}

func (r *EventsRepository) Insert(ctx context.Context, doc bson.M) (string, error) {
	done := observe(events.Collection, "insertOne")
	result, err := r.coll.InsertOne(ctx, doc)
	done(err)
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert event: unexpected id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *EventsRepository) Update(ctx context.Context, id string, doc bson.M) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("parse event id: %w", err)
	}

	done := observe(events.Collection, "updateOne")
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	done(err)
	if err != nil {
		return 0, fmt.Errorf("update event: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *EventsRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("parse event id: %w", err)
	}

	done := observe(events.Collection, "deleteOne")
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	done(err)
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	return result.DeletedCount, nil
}
