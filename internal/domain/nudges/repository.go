package nudges

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Repository is the nudges collection access contract. The entity is
// create-only: no read, update, or delete endpoint exists.
type Repository interface {
	Insert(ctx context.Context, doc bson.M) (string, error)
}
