package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"food-heaven-server/internal/models"
)

type Menu struct {
	Col *mongo.Collection
}

func (r *Menu) All(ctx context.Context) ([]models.MenuItem, error) {
	cur, err := r.Col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find menu: %w", err)
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return items, nil
}

// ByID returns (nil, nil) when the item does not exist.
func (r *Menu) ByID(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("bad menu id %q: %w", id, err)
	}
	var item models.MenuItem
	err = r.Col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return &item, nil
}

func (r *Menu) Create(ctx context.Context, item models.MenuItem) (string, error) {
	res, err := r.Col.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert menu item: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *Menu) Update(ctx context.Context, id string, item models.MenuItem) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("bad menu id %q: %w", id, err)
	}
	res, err := r.Col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: item.Name},
			{Key: "category", Value: item.Category},
			{Key: "price", Value: item.Price},
			{Key: "recipe", Value: item.Recipe},
			{Key: "image", Value: item.Image},
		}}},
	)
	if err != nil {
		return 0, fmt.Errorf("update menu item: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *Menu) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("bad menu id %q: %w", id, err)
	}
	res, err := r.Col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("delete menu item: %w", err)
	}
	return res.DeletedCount, nil
}
