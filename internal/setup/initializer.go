package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/UnknownOlympus/hrms-lite/internal/schema"
)

// codeNamespaceExists is returned by create when the collection appeared concurrently.
const codeNamespaceExists = 48

type Initializer struct {
	log *slog.Logger
}

func NewInitializer(log *slog.Logger) *Initializer {
	return &Initializer{log: log.With(slog.String("division", "schema"))}
}

// Initialize creates every collection of the schema with its validator and indexes.
// Existing collections and matching indexes are left as they are, so running it
// again is harmless. The first failure stops the remaining steps.
func (i *Initializer) Initialize(ctx context.Context, db *mongo.Database) error {
	const opn = "Initializer.Initialize"
	log := i.log.With(slog.String("op", opn), slog.String("database", db.Name()))

	log.InfoContext(ctx, "Creating database")

	for _, col := range schema.Collections() {
		created, err := ensureCollection(ctx, db, col)
		if err != nil {
			return fmt.Errorf("%w: collection %q: %w", ErrSchema, col.Name, err)
		}

		names, err := db.Collection(col.Name).Indexes().CreateMany(ctx, col.Indexes)
		if err != nil {
			return fmt.Errorf("%w: indexes on %q: %w", ErrSchema, col.Name, err)
		}

		log.InfoContext(ctx, "Collection ready", "collection", col.Name, "created", created, "indexes", names)
	}

	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, col schema.Collection) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: col.Name}})
	if err != nil {
		return false, fmt.Errorf("failed to list collections: %w", err)
	}
	if len(names) > 0 {
		return false, nil
	}

	err = db.CreateCollection(ctx, col.Name, options.CreateCollection().SetValidator(col.Validator))
	if err != nil {
		var se mongo.ServerError
		if errors.As(err, &se) && se.HasErrorCode(codeNamespaceExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create collection: %w", err)
	}

	return true, nil
}
