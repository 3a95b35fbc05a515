package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"food-heaven-server/internal/models"
)

type Payments struct {
	Col *mongo.Collection
}

func (r *Payments) ByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := r.Col.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

func (r *Payments) Create(ctx context.Context, p models.Payment) (string, error) {
	res, err := r.Col.InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}
