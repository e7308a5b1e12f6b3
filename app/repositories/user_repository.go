// Package repositories holds the document-store access layer. Every
// repository takes an injected *mongo.Database; there are no ambient
// connection globals.
package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wazihas/boutique/app/models"
	"github.com/wazihas/boutique/pkg/auth"
	"github.com/wazihas/boutique/pkg/metrics"
)

// UserRepository handles store operations for users.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// EnsureIndexes creates the uniqueness indexes registration relies on:
// unique email, and unique mobile for the documents that carry one.
// Pushing uniqueness into the store closes the find-then-insert race that
// an application-level existence check would leave open.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "mobile", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"mobile": bson.M{"$type": "string"}}),
		},
	})
	return err
}

// Create inserts a new user. A collision with either uniqueness index is
// returned as ErrDuplicate. CreatedAt and a default role are filled in when
// unset.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	defer metrics.ObserveStoreQuery("users", "insert", time.Now())

	if user.Role == "" {
		user.Role = auth.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// FindByEmail looks a user up by email. A miss is ErrNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	defer metrics.ObserveStoreQuery("users", "find", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

// All returns every user, newest first.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	defer metrics.ObserveStoreQuery("users", "find", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetRole updates the role of the user with the given id.
func (r *UserRepository) SetRole(ctx context.Context, id string, role auth.Role) (UpdateCounts, error) {
	defer metrics.ObserveStoreQuery("users", "update", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateCounts{}, ErrInvalidID
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": role}},
	)
	return countsFrom(res), err
}

// Delete removes the user with the given id and returns the deleted count.
func (r *UserRepository) Delete(ctx context.Context, id string) (int64, error) {
	defer metrics.ObserveStoreQuery("users", "delete", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// RoleByEmail resolves the stored role for an email. An unknown email
// resolves to the default role, never to an error; only a store failure
// propagates.
func (r *UserRepository) RoleByEmail(ctx context.Context, email string) (auth.Role, error) {
	user, err := r.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return auth.RoleUser, nil
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}
