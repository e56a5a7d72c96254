package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardapio/storefront-service/internal/domain/model"
)

// CartDocument is the MongoDB shape of a mirrored cart. The session ID
// is the document key, so one session owns at most one mirror.
type CartDocument struct {
	SessionID string           `bson:"_id"`
	Items     []model.LineItem `bson:"items"`
	UpdatedAt time.Time        `bson:"updated_at"`
}

// CartsRepository stores cart mirrors in the carts collection.
type CartsRepository struct {
	collection *mongo.Collection
}

// NewCartsRepository creates a carts repository.
func NewCartsRepository(db *MongoDB) *CartsRepository {
	return &CartsRepository{collection: db.Carts}
}

// Save upserts the full item list for a session.
func (r *CartsRepository) Save(ctx context.Context, sessionID string, items []model.LineItem) error {
	doc := CartDocument{
		SessionID: sessionID,
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": sessionID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Load returns the mirrored item list, or (nil, nil) when absent.
func (r *CartsRepository) Load(ctx context.Context, sessionID string) ([]model.LineItem, error) {
	var doc CartDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// Delete removes the mirror for a session. Absence is not an error.
func (r *CartsRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	return err
}
