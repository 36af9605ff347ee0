// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection used by the whole app.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema sets up the indexes this service relies on. Each index is
// idempotent. Legacy collections are deliberately left untouched — we read
// them as-is and never assume anything about their shape.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	// createdAt ordering is what the listing asks every candidate for; an
	// index keeps the ordered fetch from degenerating into the
	// missing-index retry path on large collections.
	write := appCfg.WriteCollections
	if len(write) == 0 {
		write = []string{"funcionarios", "employees"}
	}
	for _, coll := range write {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		})
		if err != nil {
			return fmt.Errorf("ensure index on %s: %w", coll, err)
		}
	}

	_, err := db.Collection("feedbacks").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_feedback_employee"),
	})
	if err != nil {
		return fmt.Errorf("ensure index on feedbacks: %w", err)
	}

	logger.Info("schema ensured")
	return nil
}
