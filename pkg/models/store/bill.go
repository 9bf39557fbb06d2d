package store

import "go.mongodb.org/mongo-driver/bson/primitive"

// Bill is a raw billing document as persisted in MongoDB. The bills
// collection has lived through two schema generations, so every drifted
// field carries both candidate keys; the normalizer decides resolution
// order. Fields that can hold more than one BSON shape stay untyped.
type Bill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt   interface{}        `bson:"createdAt,omitempty"`
	Date        interface{}        `bson:"date,omitempty"`
	TotalAmount float64            `bson:"totalAmount,omitempty"`
	Total       float64            `bson:"total,omitempty"`
	Items       []BillItem         `bson:"items,omitempty"`
}

// BillItem is one purchased line inside a Bill. The product reference moved
// across three keys over time and may be a string, an ObjectID or a number.
type BillItem struct {
	Quantity    float64     `bson:"quantity,omitempty"`
	Qty         float64     `bson:"qty,omitempty"`
	Price       float64     `bson:"price,omitempty"`
	ProductID   interface{} `bson:"productId,omitempty"`
	ProductIDV1 interface{} `bson:"product_id,omitempty"`
	LegacyID    interface{} `bson:"id,omitempty"`
	Name        string      `bson:"name,omitempty"`
	ProductName string      `bson:"productName,omitempty"`
}

// Product is a catalog document from the products collection.
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"productId,omitempty"`
	Name      string             `bson:"name,omitempty"`
	Category  string             `bson:"category,omitempty"`
}
