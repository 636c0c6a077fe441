package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"docushop/config"
)

const (
	collOrders          = "orders"
	collProducts        = "products"
	collPaymentMethods  = "payment_methods"
	collShipping        = "shipping"
	collCryptoAddresses = "crypto_addresses"
	collUsers           = "users"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the stores rely on. The unique index
// on payment_methods.type is what guarantees one document per payment
// type even under concurrent upserts.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collPaymentMethods).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "type", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating payment_methods type index: %w", err)
	}

	_, err = db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating users email index: %w", err)
	}
	return nil
}
