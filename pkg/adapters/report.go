package adapters

import (
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/api"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/domain"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/store"
)

// NoBillingDataMessage tags the empty-data response so dashboards can show
// a friendly hint without branching on a separate shape.
const NoBillingDataMessage = "No billing data"

// EmptyReport builds the distinguished empty-data response. Every list is a
// non-nil empty slice so it serializes as [] rather than null.
func EmptyReport() api.Report {
	return api.Report{
		Daily:        []api.DailySales{},
		Weekly:       []api.WeeklySales{},
		Monthly:      []api.MonthlySales{},
		TopProducts:  []api.TopProduct{},
		RevenueTrend: []api.RevenueTrendPoint{},
		Summary:      api.Summary{},
		Message:      NoBillingDataMessage,
	}
}

func MapBucketsToDailySales(buckets []domain.Bucket) []api.DailySales {
	out := make([]api.DailySales, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, api.DailySales{Day: b.Period, TotalSales: b.TotalRevenue})
	}
	return out
}

func MapBucketsToWeeklySales(buckets []domain.Bucket) []api.WeeklySales {
	out := make([]api.WeeklySales, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, api.WeeklySales{Week: b.Period, TotalSales: b.TotalRevenue})
	}
	return out
}

func MapBucketsToMonthlySales(buckets []domain.Bucket) []api.MonthlySales {
	out := make([]api.MonthlySales, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, api.MonthlySales{Month: b.Period, TotalSales: b.TotalRevenue})
	}
	return out
}

// MapBucketsToRevenueTrend is the daily view relabeled for the trend chart.
func MapBucketsToRevenueTrend(buckets []domain.Bucket) []api.RevenueTrendPoint {
	out := make([]api.RevenueTrendPoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, api.RevenueTrendPoint{Day: b.Period, TotalRevenue: b.TotalRevenue})
	}
	return out
}

func MapRankedProductsToAPI(ranked []domain.RankedProduct) []api.TopProduct {
	out := make([]api.TopProduct, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, api.TopProduct{
			ProductID: p.ProductID,
			Name:      p.Name,
			Category:  p.Category,
			Qty:       p.TotalQty,
			Revenue:   p.TotalRevenue,
		})
	}
	return out
}

func MapReportDomainToAPI(report domain.Report) api.Report {
	return api.Report{
		Daily:        MapBucketsToDailySales(report.Daily),
		Weekly:       MapBucketsToWeeklySales(report.Weekly),
		Monthly:      MapBucketsToMonthlySales(report.Monthly),
		TopProducts:  MapRankedProductsToAPI(report.TopProducts),
		RevenueTrend: MapBucketsToRevenueTrend(report.RevenueTrend),
		Summary: api.Summary{
			TotalRevenue:      report.Summary.TotalRevenue,
			TotalOrders:       report.Summary.TotalOrders,
			TotalProductsSold: report.Summary.TotalProductsSold,
		},
	}
}

func MapStoreProductToDomain(p store.Product) domain.Product {
	return domain.Product{
		ProductID: p.ProductID,
		Name:      p.Name,
		Category:  p.Category,
	}
}

func MapStoreProductsToDomain(products []store.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, MapStoreProductToDomain(p))
	}
	return out
}
