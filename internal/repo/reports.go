package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"food-heaven-server/internal/models"
)

// Reports serves the read-only reporting queries across collections.
type Reports struct {
	Users    *mongo.Collection
	Menu     *mongo.Collection
	Payments *mongo.Collection
}

func (r *Reports) UserCount(ctx context.Context) (int64, error) {
	n, err := r.Users.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *Reports) MenuCount(ctx context.Context) (int64, error) {
	n, err := r.Menu.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count menu: %w", err)
	}
	return n, nil
}

func (r *Reports) PaymentCount(ctx context.Context) (int64, error) {
	n, err := r.Payments.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return n, nil
}

// Revenue sums the price field across all payments; an empty collection
// yields 0 rather than an error.
func (r *Reports) Revenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := r.Payments.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate revenue: %w", err)
	}
	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, fmt.Errorf("decode revenue: %w", err)
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

func (r *Reports) AllPayments(ctx context.Context) ([]models.Payment, error) {
	cur, err := r.Payments.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

func (r *Reports) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := r.Menu.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find menu: %w", err)
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return items, nil
}
