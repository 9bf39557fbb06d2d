package analytics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/domain"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// UnknownProductID marks a line item whose bill carried no product
	// reference under any of the historical keys.
	UnknownProductID = "unknown"
	// UnknownProductName marks a line item with no usable display name.
	UnknownProductName = "Unknown Product"
)

// Config controls the normalization policy.
//
// StrictFiltering drops items whose resolved quantity or price is not
// strictly positive and stringifies a missing product reference as
// UnknownProductID. Disabling it keeps every item and leaves the product id
// as whatever was found, the policy an older sibling of this service used.
// The two policies produce different analytics for the same data, so the
// choice is explicit configuration rather than an implementation accident.
type Config struct {
	StrictFiltering    bool
	GroupByProductOnly bool
}

// Normalizer flattens heterogeneous bill documents into canonical line
// items. Malformed bills degrade by omission: a bill whose date cannot be
// parsed contributes zero line items and never aborts the batch.
type Normalizer struct {
	cfg Config
}

func NewNormalizer(cfg Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Normalize flattens bills into line items, preserving bill and item order.
func (n *Normalizer) Normalize(bills []store.Bill) []domain.LineItem {
	items := make([]domain.LineItem, 0)
	for _, bill := range bills {
		date, ok := resolveBillDate(bill)
		if !ok {
			continue
		}
		total := resolveBillTotal(bill)
		for _, raw := range bill.Items {
			qty := resolveQty(raw)
			price := raw.Price
			if n.cfg.StrictFiltering && (qty <= 0 || price <= 0) {
				continue
			}
			productID := resolveProductID(raw)
			if productID == "" && n.cfg.StrictFiltering {
				productID = UnknownProductID
			}
			items = append(items, domain.LineItem{
				Date:      date,
				ProductID: productID,
				Name:      resolveName(raw),
				Qty:       qty,
				Price:     price,
				Revenue:   price * qty,
				Total:     total,
			})
		}
	}
	return items
}

// billDateLayouts are the string forms the parent system has written over
// time, tried in order.
var billDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// resolveBillDate prefers createdAt over the legacy date key and unwraps the
// extended-JSON {$date: ...} form some historical imports left behind.
func resolveBillDate(bill store.Bill) (time.Time, bool) {
	raw := bill.CreatedAt
	if isAbsent(raw) {
		raw = bill.Date
	}
	return parseTimestamp(unwrapDate(raw))
}

func resolveBillTotal(bill store.Bill) float64 {
	if bill.TotalAmount != 0 {
		return bill.TotalAmount
	}
	return bill.Total
}

func resolveQty(item store.BillItem) float64 {
	if item.Quantity != 0 {
		return item.Quantity
	}
	return item.Qty
}

// resolveProductID tries the three historical product reference keys in
// order and stringifies the first hit. Returns "" when none is set.
func resolveProductID(item store.BillItem) string {
	for _, candidate := range []interface{}{item.ProductID, item.ProductIDV1, item.LegacyID} {
		if id := stringifyID(candidate); id != "" {
			return id
		}
	}
	return ""
}

func resolveName(item store.BillItem) string {
	if item.Name != "" {
		return item.Name
	}
	if item.ProductName != "" {
		return item.ProductName
	}
	return UnknownProductName
}

func isAbsent(v interface{}) bool {
	return v == nil || v == ""
}

func unwrapDate(v interface{}) interface{} {
	switch d := v.(type) {
	case bson.M:
		if inner, ok := d["$date"]; ok {
			return inner
		}
	case bson.D:
		for _, e := range d {
			if e.Key == "$date" {
				return e.Value
			}
		}
	case map[string]interface{}:
		if inner, ok := d["$date"]; ok {
			return inner
		}
	}
	return v
}

func parseTimestamp(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time().UTC(), true
	case string:
		for _, layout := range billDateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func stringifyID(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	case int:
		return strconv.Itoa(id)
	case int32:
		return strconv.Itoa(int(id))
	case int64:
		return strconv.FormatInt(id, 10)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
