package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"food-heaven-server/internal/models"
)

type Reviews struct {
	Col *mongo.Collection
}

func (r *Reviews) All(ctx context.Context) ([]models.Review, error) {
	cur, err := r.Col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}
