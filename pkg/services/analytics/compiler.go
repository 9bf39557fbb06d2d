package analytics

import (
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/domain"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/store"
)

// ReportTopLimit is the ranking depth of the comprehensive report;
// NarrativeTopLimit is the shorter cut used by the text report.
const (
	ReportTopLimit    = 10
	NarrativeTopLimit = 3
)

// Engine bundles the normalization and ranking policies behind the
// request-scoped analytics operations. It is pure with respect to its
// inputs: the same bills and catalog always yield the same report.
type Engine struct {
	normalizer *Normalizer
	ranker     *Ranker
}

func NewEngine(cfg Config) *Engine {
	return &Engine{
		normalizer: NewNormalizer(cfg),
		ranker:     NewRanker(cfg),
	}
}

func (e *Engine) Normalize(bills []store.Bill) []domain.LineItem {
	return e.normalizer.Normalize(bills)
}

func (e *Engine) TopProducts(items []domain.LineItem, catalog []domain.Product, limit int) []domain.RankedProduct {
	return e.ranker.Rank(items, catalog, limit)
}

// Compile runs every aggregate view over one normalized batch and attaches
// the scalar summary. billCount is the pre-normalization bill count, so
// bills that produced zero valid line items still count as orders.
func (e *Engine) Compile(items []domain.LineItem, billCount int, catalog []domain.Product) domain.Report {
	var totalRevenue, totalQty float64
	for _, item := range items {
		totalRevenue += item.Revenue
		totalQty += item.Qty
	}

	return domain.Report{
		Daily:        Aggregate(items, domain.GranularityDay),
		Weekly:       Aggregate(items, domain.GranularityISOWeek),
		Monthly:      Aggregate(items, domain.GranularityMonth),
		TopProducts:  e.ranker.Rank(items, catalog, ReportTopLimit),
		RevenueTrend: Aggregate(items, domain.GranularityDay),
		Summary: domain.Summary{
			TotalRevenue:      totalRevenue,
			TotalOrders:       billCount,
			TotalProductsSold: int(totalQty),
		},
	}
}
