package api

type DailySales struct {
	Day        string  `json:"day"`
	TotalSales float64 `json:"totalSales"`
}

type WeeklySales struct {
	Week       string  `json:"week"`
	TotalSales float64 `json:"totalSales"`
}

type MonthlySales struct {
	Month      string  `json:"month"`
	TotalSales float64 `json:"totalSales"`
}

type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Qty       float64 `json:"qty"`
	Revenue   float64 `json:"revenue"`
}

type RevenueTrendPoint struct {
	Day          string  `json:"day"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type Summary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	TotalProductsSold int     `json:"total_products_sold"`
}

// Report is the comprehensive sales report. The empty-data response reuses
// the exact same shape with every list set to [] and an extra message, so
// consumers only ever branch on list lengths.
type Report struct {
	Daily        []DailySales        `json:"daily"`
	Weekly       []WeeklySales       `json:"weekly"`
	Monthly      []MonthlySales      `json:"monthly"`
	TopProducts  []TopProduct        `json:"top_products"`
	RevenueTrend []RevenueTrendPoint `json:"revenue_trend"`
	Summary      Summary             `json:"summary"`
	Message      string              `json:"message,omitempty"`
}

type TextReport struct {
	Report string `json:"report"`
}

type Status struct {
	Status       string `json:"status"`
	SelfPing     string `json:"self_ping"`
	PingInterval string `json:"ping_interval"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	SelfPing  string `json:"self_ping"`
}
