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

// MongoUserStore persists accounts in the users collection.
type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(collUsers)}
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = time.Now().UTC()

	result, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "inserting user")
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) FindByRole(ctx context.Context, role string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"role": role})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("user not found")
	}
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "finding user")
	}
	return &user, nil
}

func (s *MongoUserStore) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}}
	count, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, errs.Wrap(errs.CodeStore, err, "counting users")
	}
	return count > 0, nil
}

func (s *MongoUserStore) UpdateCredentials(ctx context.Context, id primitive.ObjectID, email, passwordHash string) error {
	update := bson.M{"$set": bson.M{
		"email":    email,
		"password": passwordHash,
	}}
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errs.Wrap(errs.CodeStore, err, "updating user credentials")
	}
	if result.MatchedCount == 0 {
		return errs.NotFound("user not found")
	}
	return nil
}

func (s *MongoUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "finding users")
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errs.Wrap(errs.CodeStore, err, "decoding users")
	}
	return users, nil
}
