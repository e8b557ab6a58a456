package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type DB struct {
	URL            string        `yaml:"url" envconfig:"DB_URL" default:"mongodb://localhost:27017"`
	Name           string        `yaml:"name" envconfig:"DB_NAME" default:"restaurant"`
	ConnectTimeout time.Duration `yaml:"connectTimeout" envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
}

// Indexes maps a collection name to the indexes it must carry.
type Indexes map[string][]mongo.IndexModel

// NewMongoDB connects, pings the primary and makes sure the given indexes exist.
// The returned database shares one client for the whole process lifetime.
func NewMongoDB(ctx context.Context, cfg *DB, indexes Indexes) (*mongo.Database, error) {
	connCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, errors.Wrap(err, "mongo.Connect")
	}
	if err = client.Ping(connCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo.Ping")
	}

	db := client.Database(cfg.Name)
	for coll, models := range indexes {
		if len(models) == 0 {
			continue
		}
		if _, err = db.Collection(coll).Indexes().CreateMany(connCtx, models); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, errors.Wrapf(err, "create indexes %s", coll)
		}
	}
	return db, nil
}

func Close(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}
