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
	"github.com/wazihas/boutique/pkg/metrics"
)

// ProductRepository handles store operations for catalogue products.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// EnsureIndexes creates the sort index backing the newest-first listing.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}

// Create inserts a new product and fills in its generated id.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	defer metrics.ObserveStoreQuery("products", "insert", time.Now())

	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}
	return nil
}

// All returns every product, newest first.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	defer metrics.ObserveStoreQuery("products", "find", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Find returns the product with the given id. A malformed id is
// ErrInvalidID; a miss is ErrNotFound.
func (r *ProductRepository) Find(ctx context.Context, id string) (models.Product, error) {
	defer metrics.ObserveStoreQuery("products", "find", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, ErrInvalidID
	}

	var product models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// ProductUpdate carries the mutable product fields for Update.
type ProductUpdate struct {
	Title       string      `bson:"title"`
	Price       float64     `bson:"price"`
	Description string      `bson:"description"`
	Size        interface{} `bson:"size"`
}

// Update overwrites the mutable fields of the product with the given id.
func (r *ProductRepository) Update(ctx context.Context, id string, upd ProductUpdate) (UpdateCounts, error) {
	defer metrics.ObserveStoreQuery("products", "update", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateCounts{}, ErrInvalidID
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": upd},
	)
	return countsFrom(res), err
}

// Delete removes the product with the given id and returns the deleted count.
func (r *ProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	defer metrics.ObserveStoreQuery("products", "delete", time.Now())

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
