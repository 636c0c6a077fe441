package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"docushop/errs"
	"docushop/models"
)

// MongoSettingsStore holds the shipping and crypto-address singletons.
// Both are maintained with find-or-create upserts against an empty
// filter: the collection is meant to contain exactly one document.
type MongoSettingsStore struct {
	shipping *mongo.Collection
	crypto   *mongo.Collection
}

func NewMongoSettingsStore(db *mongo.Database) *MongoSettingsStore {
	return &MongoSettingsStore{
		shipping: db.Collection(collShipping),
		crypto:   db.Collection(collCryptoAddresses),
	}
}

func (s *MongoSettingsStore) GetShipping(ctx context.Context) (*models.Shipping, error) {
	update := bson.M{"$setOnInsert": bson.M{
		"method":            models.DefaultShippingMethod,
		"cost":              0.0,
		"estimatedDelivery": models.DefaultShippingDelivery,
		"updated_at":        time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var shipping models.Shipping
	if err := s.shipping.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&shipping); err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "loading shipping settings")
	}
	return &shipping, nil
}

func (s *MongoSettingsStore) UpdateShipping(ctx context.Context, method string, cost float64, estimatedDelivery string) (*models.Shipping, error) {
	update := bson.M{"$set": bson.M{
		"method":            method,
		"cost":              cost,
		"estimatedDelivery": estimatedDelivery,
		"updated_at":        time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var shipping models.Shipping
	if err := s.shipping.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&shipping); err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "updating shipping settings")
	}
	return &shipping, nil
}

func (s *MongoSettingsStore) GetCryptoAddress(ctx context.Context) (*models.CryptoAddress, error) {
	update := bson.M{"$setOnInsert": bson.M{
		"bitcoin":   "",
		"ethereum":  "",
		"usdt":      "",
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var addr models.CryptoAddress
	if err := s.crypto.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&addr); err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "loading crypto addresses")
	}
	return &addr, nil
}

func (s *MongoSettingsStore) UpdateCryptoAddress(ctx context.Context, bitcoin, ethereum, usdt string) (*models.CryptoAddress, error) {
	update := bson.M{"$set": bson.M{
		"bitcoin":   bitcoin,
		"ethereum":  ethereum,
		"usdt":      usdt,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var addr models.CryptoAddress
	if err := s.crypto.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&addr); err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "updating crypto addresses")
	}
	return &addr, nil
}
