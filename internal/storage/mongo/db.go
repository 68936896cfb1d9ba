package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/eventdeck/server/internal/config"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect establishes the process-wide client. The client owns its own
// connection pool; it is created once at startup and disconnected during
// shutdown, never per request.
func Connect(ctx context.Context, cfg config.MongoConfig) (*driver.Client, error) {
	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := driver.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}
