package analytics

import (
	"testing"
	"time"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rankDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func soldItem(productID, name string, qty, price float64) domain.LineItem {
	return domain.LineItem{
		Date:      rankDate,
		ProductID: productID,
		Name:      name,
		Qty:       qty,
		Price:     price,
		Revenue:   qty * price,
	}
}

func TestRank_CatalogJoin(t *testing.T) {
	catalog := []domain.Product{
		{ProductID: "P1", Name: "Widget", Category: "Hardware"},
		{ProductID: "P2", Name: "Gadget", Category: "Electronics"},
	}
	items := []domain.LineItem{
		soldItem("P1", "Widget", 2, 10),
		soldItem("P2", "Gadget", 1, 50),
		soldItem("P9", "Mystery Box", 1, 5),
	}

	ranked := NewRanker(Config{}).Rank(items, catalog, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, domain.RankedProduct{
		ProductID: "P2", Name: "Gadget", Category: "Electronics",
		TotalQty: 1, TotalRevenue: 50,
	}, ranked[0])
	assert.Equal(t, "Hardware", ranked[1].Category)
	// Unmatched items keep their carried name and get the Unknown category.
	assert.Equal(t, domain.RankedProduct{
		ProductID: "P9", Name: "Mystery Box", Category: UnknownCategory,
		TotalQty: 1, TotalRevenue: 5,
	}, ranked[2])
}

func TestRank_GroupsByNameTriple(t *testing.T) {
	// Same product id under two carried names yields two rows. Historical
	// behaviour, preserved on purpose.
	items := []domain.LineItem{
		soldItem("P1", "Widget", 1, 10),
		soldItem("P1", "Widgett", 1, 10),
		soldItem("P1", "Widget", 2, 10),
	}

	ranked := NewRanker(Config{}).Rank(items, nil, 10)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Widget", ranked[0].Name)
	assert.Equal(t, float64(30), ranked[0].TotalRevenue)
	assert.Equal(t, "Widgett", ranked[1].Name)
}

func TestRank_GroupByProductOnly(t *testing.T) {
	items := []domain.LineItem{
		soldItem("P1", "Widget", 1, 10),
		soldItem("P1", "Widgett", 1, 10),
	}

	ranked := NewRanker(Config{GroupByProductOnly: true}).Rank(items, nil, 10)

	require.Len(t, ranked, 1)
	// First-seen name wins.
	assert.Equal(t, "Widget", ranked[0].Name)
	assert.Equal(t, float64(20), ranked[0].TotalRevenue)
}

func TestRank_StableOnRevenueTies(t *testing.T) {
	items := []domain.LineItem{
		soldItem("first", "First", 1, 10),
		soldItem("second", "Second", 2, 5),
		soldItem("third", "Third", 1, 20),
	}

	ranked := NewRanker(Config{}).Rank(items, nil, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "third", ranked[0].ProductID)
	// first and second tie at 10; normalization order breaks the tie.
	assert.Equal(t, "first", ranked[1].ProductID)
	assert.Equal(t, "second", ranked[2].ProductID)
}

func TestRank_Limit(t *testing.T) {
	items := []domain.LineItem{
		soldItem("a", "A", 1, 1),
		soldItem("b", "B", 1, 2),
		soldItem("c", "C", 1, 3),
	}

	ranked := NewRanker(Config{}).Rank(items, nil, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "c", ranked[0].ProductID)
	assert.Equal(t, "b", ranked[1].ProductID)
}

func TestRank_EmptyCatalogAndItems(t *testing.T) {
	ranked := NewRanker(Config{}).Rank([]domain.LineItem{soldItem("x", "X", 1, 1)}, nil, 10)
	require.Len(t, ranked, 1)
	assert.Equal(t, UnknownCategory, ranked[0].Category)

	assert.Empty(t, NewRanker(Config{}).Rank(nil, nil, 10))
}

func TestRank_CatalogNameFallback(t *testing.T) {
	catalog := []domain.Product{{ProductID: "P1", Name: "Catalog Widget", Category: "Hardware"}}
	items := []domain.LineItem{soldItem("P1", "", 1, 10)}

	ranked := NewRanker(Config{}).Rank(items, catalog, 10)

	require.Len(t, ranked, 1)
	assert.Equal(t, "Catalog Widget", ranked[0].Name)
}
