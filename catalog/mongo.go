package catalog

import (
	"context"
	"fmt"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const menuCollection = "menu_items"

// MongoSource reads the catalog from the menu_items collection.
type MongoSource struct {
	Collection *mongo.Collection
}

// NewMongoSource creates a MongoSource on the given database
func NewMongoSource(client *mongo.Client, database string) *MongoSource {
	return &MongoSource{
		Collection: client.Database(database).Collection(menuCollection),
	}
}

// Load returns every catalog entry, ordered by id as stored.
func (s *MongoSource) Load(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := s.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []itemDocument
	for cursor.Next(ctx) {
		var d itemDocument
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		docs = append(docs, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("menu items cursor: %w", err)
	}
	return toModels(docs)
}
