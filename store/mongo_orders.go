package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"docushop/errs"
	"docushop/models"
)

// MongoOrderStore persists orders in the orders collection.
type MongoOrderStore struct {
	coll *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{coll: db.Collection(collOrders)}
}

func (s *MongoOrderStore) Insert(ctx context.Context, order *models.Order) (*models.Order, error) {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "inserting order")
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (s *MongoOrderStore) FindAll(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "finding orders")
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "decoding orders")
	}
	return orders, nil
}

func (s *MongoOrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("order not found")
	}
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "finding order")
	}
	return &order, nil
}

func (s *MongoOrderStore) SetStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("order not found")
	}
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "updating order status")
	}
	return &order, nil
}

func (s *MongoOrderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errs.Wrap(errs.CodeStore, err, "deleting order")
	}
	if result.DeletedCount == 0 {
		return errs.NotFound("order not found")
	}
	return nil
}
