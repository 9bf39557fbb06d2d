package analytics

import (
	"sort"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/domain"
)

// UnknownCategory is assigned to line items with no catalog match.
const UnknownCategory = "Unknown"

// Ranker joins line items to the product catalog and ranks the resulting
// groups by revenue.
//
// The historical grouping key is the (productId, name, category) triple, so
// two bills that carry different names for the same product produce separate
// rows. GroupByProductOnly collapses such rows onto the first-seen name.
type Ranker struct {
	groupByProductOnly bool
}

func NewRanker(cfg Config) *Ranker {
	return &Ranker{groupByProductOnly: cfg.GroupByProductOnly}
}

type groupKey struct {
	productID string
	name      string
	category  string
}

// Rank left-joins items to the catalog on productId, aggregates quantity and
// revenue per group and returns at most limit groups, best revenue first.
// The sort is stable: on equal revenue, the group whose first line item
// appeared earlier in normalization order wins.
func (r *Ranker) Rank(items []domain.LineItem, catalog []domain.Product, limit int) []domain.RankedProduct {
	byID := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ProductID] = p
	}

	groups := make(map[groupKey]*domain.RankedProduct, len(items))
	order := make([]groupKey, 0, len(items))

	for _, item := range items {
		name := item.Name
		category := UnknownCategory
		if match, ok := byID[item.ProductID]; ok {
			if name == "" {
				name = match.Name
			}
			if match.Category != "" {
				category = match.Category
			}
		}

		key := groupKey{productID: item.ProductID, name: name, category: category}
		if r.groupByProductOnly {
			key = groupKey{productID: item.ProductID}
		}

		group, ok := groups[key]
		if !ok {
			group = &domain.RankedProduct{ProductID: item.ProductID, Name: name, Category: category}
			groups[key] = group
			order = append(order, key)
		}
		group.TotalQty += item.Qty
		group.TotalRevenue += item.Revenue
	}

	ranked := make([]domain.RankedProduct, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, *groups[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue > ranked[j].TotalRevenue
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
