package mongo

import (
	"context"
	"fmt"

	"github.com/eventdeck/server/internal/domain/events"
	"github.com/eventdeck/server/internal/domain/nudges"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Repository groups data access by collection.
type Repository struct {
	db *driver.Database
}

func NewRepository(client *driver.Client, database string) (*Repository, error) {
	if client == nil {
		return nil, fmt.Errorf("mongo repository: client is nil")
	}
	if database == "" {
		return nil, fmt.Errorf("mongo repository: database name is empty")
	}
	return &Repository{db: client.Database(database)}, nil
}

func (r *Repository) Events() events.Repository {
	return &EventsRepository{coll: r.db.Collection(events.Collection)}
}

func (r *Repository) Nudges() nudges.Repository {
	return &NudgesRepository{coll: r.db.Collection(nudges.Collection)}
}

// Ping reports whether the store is reachable. Used by the readiness probe.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}
