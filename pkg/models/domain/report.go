package domain

import "time"

// LineItem is one normalized product line extracted from a bill, the atomic
// unit of aggregation. Revenue is always Price * Qty.
type LineItem struct {
	Date      time.Time
	ProductID string
	Name      string
	Qty       float64
	Price     float64
	Revenue   float64
	Total     float64 // bill-level total, carried through for reference
}

type Product struct {
	ProductID string
	Name      string
	Category  string
}

// Granularity selects the time bucket used for revenue aggregation.
type Granularity string

const (
	GranularityDay     Granularity = "day"
	GranularityISOWeek Granularity = "isoWeek"
	GranularityMonth   Granularity = "month"
)

// Bucket is the revenue total for one time interval that had at least one
// contributing line item.
type Bucket struct {
	Period       string
	TotalRevenue float64
}

type RankedProduct struct {
	ProductID    string
	Name         string
	Category     string
	TotalQty     float64
	TotalRevenue float64
}

type Summary struct {
	TotalRevenue      float64
	TotalOrders       int
	TotalProductsSold int
}

// Report is the full aggregated view over one normalized batch.
type Report struct {
	Daily        []Bucket
	Weekly       []Bucket
	Monthly      []Bucket
	TopProducts  []RankedProduct
	RevenueTrend []Bucket
	Summary      Summary
}

// Empty reports whether the report was compiled from zero line items.
func (r Report) Empty() bool {
	return len(r.Daily) == 0 && len(r.Weekly) == 0 && len(r.Monthly) == 0
}
