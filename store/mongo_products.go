package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"docushop/errs"
	"docushop/models"
)

// MongoProductStore persists catalog entries in the products collection.
type MongoProductStore struct {
	coll *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{coll: db.Collection(collProducts)}
}

func (s *MongoProductStore) Insert(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.CreatedAt = time.Now().UTC()

	result, err := s.coll.InsertOne(ctx, product)
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "inserting product")
	}
	product.ID = result.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (s *MongoProductStore) FindAll(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "finding products")
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "decoding products")
	}
	return products, nil
}

func (s *MongoProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("product not found")
	}
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "finding product")
	}
	return &product, nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errs.Wrap(errs.CodeStore, err, "deleting product")
	}
	if result.DeletedCount == 0 {
		return errs.NotFound("product not found")
	}
	return nil
}
