package products

import (
	"context"
	"fmt"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "products"

// Store reads the product catalog used to enrich line items with names and
// categories. The catalog is small, so reads are always full scans.
type Store interface {
	GetProducts(ctx context.Context) ([]store.Product, error)
}

type productStore struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	return &productStore{coll: db.Collection(collectionName)}, nil
}

func (s *productStore) GetProducts(ctx context.Context) ([]store.Product, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products := make([]store.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
