package mongo

import (
	"context"
	"fmt"

	"github.com/eventdeck/server/internal/domain/nudges"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type NudgesRepository struct {
	coll *driver.Collection
}

func (r *NudgesRepository) Insert(ctx context.Context, doc bson.M) (string, error) {
	done := observe(nudges.Collection, "insertOne")
	result, err := r.coll.InsertOne(ctx, doc)
	done(err)
	if err != nil {
		return "", fmt.Errorf("insert nudge: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert nudge: unexpected id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}
