package bills

import (
	"context"
	"fmt"
	"time"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "bills"

// Store reads raw billing documents. Date filtering happens in the query so
// the engine only ever sees the requested window.
type Store interface {
	GetBills(ctx context.Context, from, to *time.Time) ([]store.Bill, error)
}

type billStore struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	return &billStore{coll: db.Collection(collectionName)}, nil
}

// GetBills returns every bill, or only bills whose createdAt falls inside
// the inclusive [from, to] range when both bounds are set.
func (s *billStore) GetBills(ctx context.Context, from, to *time.Time) ([]store.Bill, error) {
	filter := bson.M{}
	if from != nil && to != nil {
		filter["createdAt"] = bson.M{"$gte": *from, "$lte": *to}
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}

	bills := make([]store.Bill, 0)
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, fmt.Errorf("decode bills: %w", err)
	}
	return bills, nil
}
