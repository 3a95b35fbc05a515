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

// ErrDuplicateEmail is returned when a user with the same email already
// exists; the unique index is the source of truth, not a prior lookup.
var ErrDuplicateEmail = errors.New("email already exists")

type Users struct {
	Col *mongo.Collection
}

func (r *Users) All(ctx context.Context) ([]models.User, error) {
	cur, err := r.Col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// ByEmail returns (nil, nil) when no user with the email exists.
func (r *Users) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.Col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *Users) Create(ctx context.Context, u models.User) (string, error) {
	res, err := r.Col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return "", ErrDuplicateEmail
	}
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *Users) PromoteAdmin(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("bad user id %q: %w", id, err)
	}
	res, err := r.Col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: models.RoleAdmin}}}},
	)
	if err != nil {
		return 0, fmt.Errorf("promote user: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *Users) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("bad user id %q: %w", id, err)
	}
	res, err := r.Col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount, nil
}

// IsAdmin satisfies the access guard's role lookup.
func (r *Users) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := r.ByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil && u.IsAdmin(), nil
}
