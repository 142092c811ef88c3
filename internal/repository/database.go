package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UnknownOlympus/hrms-lite/internal/schema"
)

// NewClient connects to MongoDB at uri and confirms the deployment answers a ping.
// The database path of uri is not used for the connection, so credentials default to
// authSource=admin. timeout bounds server selection, the connection handshake and
// the ping itself.
// The returned client must be disconnected by the caller.
func NewClient(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(schema.ServerURI(uri)).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection to MongoDB: %w", err)
	}

	if err = Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// Ping issues the admin ping command, the cheapest round-trip a server answers.
func Ping(ctx context.Context, client *mongo.Client) error {
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return nil
}

// ClientPinger adapts a client to the health checker.
type ClientPinger struct {
	Client *mongo.Client
}

func (p ClientPinger) Ping(ctx context.Context) error {
	return Ping(ctx, p.Client)
}
