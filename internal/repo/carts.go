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

type Carts struct {
	Col *mongo.Collection
}

func (r *Carts) ByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := r.Col.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, fmt.Errorf("find carts: %w", err)
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode carts: %w", err)
	}
	return items, nil
}

// ByID returns (nil, nil) when the cart item does not exist.
func (r *Carts) ByID(ctx context.Context, id string) (*models.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("bad cart id %q: %w", id, err)
	}
	var item models.CartItem
	err = r.Col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return &item, nil
}

func (r *Carts) Create(ctx context.Context, item models.CartItem) (string, error) {
	res, err := r.Col.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert cart item: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *Carts) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("bad cart id %q: %w", id, err)
	}
	res, err := r.Col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteByIDs removes every cart item whose id is in ids. Ids that do not
// parse as ObjectIDs are ignored rather than failing the whole purge.
func (r *Carts) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return 0, nil
	}
	res, err := r.Col.DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
	if err != nil {
		return 0, fmt.Errorf("delete cart items: %w", err)
	}
	return res.DeletedCount, nil
}
