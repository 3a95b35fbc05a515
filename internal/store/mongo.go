package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	colUsers    = "users"
	colMenu     = "menu"
	colReviews  = "reviews"
	colCarts    = "carts"
	colPayments = "payments"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the cluster with Stable API v1 options, verifies the
// connection with a ping and ensures the indexes the repos rely on.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	api := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(api))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := &Store{client: client, db: client.Database(database)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Users() *mongo.Collection    { return s.db.Collection(colUsers) }
func (s *Store) Menu() *mongo.Collection     { return s.db.Collection(colMenu) }
func (s *Store) Reviews() *mongo.Collection  { return s.db.Collection(colReviews) }
func (s *Store) Carts() *mongo.Collection    { return s.db.Collection(colCarts) }
func (s *Store) Payments() *mongo.Collection { return s.db.Collection(colPayments) }

// ensureIndexes creates the unique email index that makes user creation
// idempotent at the store level instead of check-then-insert.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}
	return nil
}
