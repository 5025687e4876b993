// Package mongodb implements [gotok.IssuanceManager] on top of MongoDB.
package mongodb

import (
	"context"
	"errors"

	"github.com/luikyv/gotok/pkg/gotok"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultCollection = "issued_tokens"

type IssuanceManager struct {
	Collection *mongo.Collection
}

func NewIssuanceManager(database *mongo.Database) IssuanceManager {
	return IssuanceManager{
		Collection: database.Collection(DefaultCollection),
	}
}

func (manager IssuanceManager) Save(
	ctx context.Context,
	token gotok.IssuedToken,
) error {
	shouldUpsert := true
	filter := bson.D{{Key: "_id", Value: token.ID}}
	if _, err := manager.Collection.ReplaceOne(ctx, filter, token, &options.ReplaceOptions{Upsert: &shouldUpsert}); err != nil {
		return err
	}

	return nil
}

func (manager IssuanceManager) IssuedToken(
	ctx context.Context,
	id string,
) (
	gotok.IssuedToken,
	error,
) {
	filter := bson.D{{Key: "_id", Value: id}}
	var token gotok.IssuedToken
	if err := manager.Collection.FindOne(ctx, filter).Decode(&token); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return gotok.IssuedToken{}, gotok.ErrNotFound
		}
		return gotok.IssuedToken{}, err
	}

	return token, nil
}

func (manager IssuanceManager) IssuedTokens(
	ctx context.Context,
	sessionID string,
) (
	[]gotok.IssuedToken,
	error,
) {
	filter := bson.D{{Key: "session_id", Value: sessionID}}
	opts := options.Find().SetSort(bson.D{{Key: "issued_at", Value: 1}})
	cursor, err := manager.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	tokens := []gotok.IssuedToken{}
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, err
	}

	return tokens, nil
}

// EnsureIndexes creates the index used to list the tokens of a session.
func (manager IssuanceManager) EnsureIndexes(ctx context.Context) error {
	_, err := manager.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "issued_at", Value: 1}},
	})
	return err
}
