package adapters

import (
	"encoding/json"
	"testing"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/api"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/domain"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyReport_SerializesEmptyLists(t *testing.T) {
	body, err := json.Marshal(EmptyReport())

	require.NoError(t, err)
	assert.Contains(t, string(body), `"daily":[]`)
	assert.Contains(t, string(body), `"weekly":[]`)
	assert.Contains(t, string(body), `"monthly":[]`)
	assert.Contains(t, string(body), `"top_products":[]`)
	assert.Contains(t, string(body), `"revenue_trend":[]`)
	assert.Contains(t, string(body), `"message":"No billing data"`)
	assert.NotContains(t, string(body), "null")
}

func TestMapReportDomainToAPI(t *testing.T) {
	report := domain.Report{
		Daily:   []domain.Bucket{{Period: "2024-01-10", TotalRevenue: 30}},
		Weekly:  []domain.Bucket{{Period: "2024-W02", TotalRevenue: 30}},
		Monthly: []domain.Bucket{{Period: "2024-01", TotalRevenue: 30}},
		TopProducts: []domain.RankedProduct{
			{ProductID: "P1", Name: "Widget", Category: "Hardware", TotalQty: 3, TotalRevenue: 30},
		},
		RevenueTrend: []domain.Bucket{{Period: "2024-01-10", TotalRevenue: 30}},
		Summary:      domain.Summary{TotalRevenue: 30, TotalOrders: 1, TotalProductsSold: 3},
	}

	out := MapReportDomainToAPI(report)

	assert.Equal(t, []api.DailySales{{Day: "2024-01-10", TotalSales: 30}}, out.Daily)
	assert.Equal(t, []api.WeeklySales{{Week: "2024-W02", TotalSales: 30}}, out.Weekly)
	assert.Equal(t, []api.MonthlySales{{Month: "2024-01", TotalSales: 30}}, out.Monthly)
	assert.Equal(t, []api.TopProduct{
		{ProductID: "P1", Name: "Widget", Category: "Hardware", Qty: 3, Revenue: 30},
	}, out.TopProducts)
	assert.Equal(t, []api.RevenueTrendPoint{{Day: "2024-01-10", TotalRevenue: 30}}, out.RevenueTrend)
	assert.Equal(t, api.Summary{TotalRevenue: 30, TotalOrders: 1, TotalProductsSold: 3}, out.Summary)
	// A populated report carries no message.
	assert.Empty(t, out.Message)
}

func TestMapBuckets_PreserveOrder(t *testing.T) {
	buckets := []domain.Bucket{
		{Period: "2024-01-01", TotalRevenue: 1},
		{Period: "2024-01-02", TotalRevenue: 2},
		{Period: "2024-01-03", TotalRevenue: 3},
	}

	daily := MapBucketsToDailySales(buckets)

	require.Len(t, daily, 3)
	assert.Equal(t, "2024-01-01", daily[0].Day)
	assert.Equal(t, "2024-01-03", daily[2].Day)
}

func TestMapStoreProductsToDomain(t *testing.T) {
	products := []store.Product{
		{ProductID: "P1", Name: "Widget", Category: "Hardware"},
		{ProductID: "P2", Name: "Gadget"},
	}

	out := MapStoreProductsToDomain(products)

	require.Len(t, out, 2)
	assert.Equal(t, domain.Product{ProductID: "P1", Name: "Widget", Category: "Hardware"}, out[0])
	assert.Empty(t, out[1].Category)
}
