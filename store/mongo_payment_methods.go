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

// MongoPaymentMethodStore persists the per-type payment configuration.
// All writes go through atomic upserts keyed on the type field, so the
// find-then-create race of the old implementation cannot produce
// duplicates or drop concurrent partial updates.
type MongoPaymentMethodStore struct {
	coll *mongo.Collection
}

func NewMongoPaymentMethodStore(db *mongo.Database) *MongoPaymentMethodStore {
	return &MongoPaymentMethodStore{coll: db.Collection(collPaymentMethods)}
}

func (s *MongoPaymentMethodStore) Upsert(ctx context.Context, t models.PaymentType, patch PaymentMethodPatch) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Bank != nil {
		set["bank"] = patch.Bank
	}
	if patch.PayPal != nil {
		set["paypal"] = patch.PayPal
	}
	if patch.Skype != nil {
		set["skype"] = patch.Skype
	}
	if patch.Crypto != nil {
		// Per-field writes keep the merge shallow: currencies absent
		// from the patch survive in the stored credentials.
		if patch.Crypto.Bitcoin != nil {
			set["crypto.bitcoin"] = *patch.Crypto.Bitcoin
		}
		if patch.Crypto.Ethereum != nil {
			set["crypto.ethereum"] = *patch.Crypto.Ethereum
		}
		if patch.Crypto.USDT != nil {
			set["crypto.usdt"] = *patch.Crypto.USDT
		}
	}

	setOnInsert := bson.M{
		"type":       t,
		"created_at": time.Now().UTC(),
	}
	if patch.Active != nil {
		set["active"] = *patch.Active
	} else {
		setOnInsert["active"] = true
	}

	update := bson.M{"$set": set, "$setOnInsert": setOnInsert}
	_, err := s.coll.UpdateOne(ctx, bson.M{"type": t}, update, options.Update().SetUpsert(true))
	if err != nil {
		return errs.Wrap(errs.CodeStore, err, "upserting payment method")
	}
	return nil
}

func (s *MongoPaymentMethodStore) FindByType(ctx context.Context, t models.PaymentType) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := s.coll.FindOne(ctx, bson.M{"type": t}).Decode(&method)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("payment method not found")
	}
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "finding payment method")
	}
	return &method, nil
}

func (s *MongoPaymentMethodStore) FindAll(ctx context.Context, activeOnly bool) ([]models.PaymentMethod, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "finding payment methods")
	}
	defer cursor.Close(ctx)

	var methods []models.PaymentMethod
	if err := cursor.All(ctx, &methods); err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "decoding payment methods")
	}
	return methods, nil
}

func (s *MongoPaymentMethodStore) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	update := bson.M{"$set": bson.M{
		"active":     active,
		"updated_at": time.Now().UTC(),
	}}
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errs.Wrap(errs.CodeStore, err, "updating payment method")
	}
	if result.MatchedCount == 0 {
		return errs.NotFound("payment method not found")
	}
	return nil
}

func (s *MongoPaymentMethodStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errs.Wrap(errs.CodeStore, err, "deleting payment method")
	}
	if result.DeletedCount == 0 {
		return errs.NotFound("payment method not found")
	}
	return nil
}
