package events

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Repository is the events collection access contract. Documents cross this
// boundary as raw bson maps: the collection is schemaless by contract and the
// API passes stored fields through untouched.
type Repository interface {
	List(ctx context.Context) ([]bson.M, error)
	ListPage(ctx context.Context, opts PageOptions) ([]bson.M, error)
	Get(ctx context.Context, id string) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (string, error)
	Update(ctx context.Context, id string, doc bson.M) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
