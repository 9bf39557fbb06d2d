package analytics

import (
	"fmt"
	"sort"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/domain"
)

// Aggregate sums revenue per time bucket. Only buckets with at least one
// contributing line item are materialized; gaps are never zero-filled.
// Buckets come back in ascending period order.
func Aggregate(items []domain.LineItem, g domain.Granularity) []domain.Bucket {
	totals := make(map[string]float64, len(items))
	for _, item := range items {
		totals[bucketLabel(item, g)] += item.Revenue
	}

	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	// Labels are zero-padded, so lexicographic order is chronological.
	sort.Strings(labels)

	buckets := make([]domain.Bucket, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, domain.Bucket{Period: label, TotalRevenue: totals[label]})
	}
	return buckets
}

func bucketLabel(item domain.LineItem, g domain.Granularity) string {
	switch g {
	case domain.GranularityISOWeek:
		// ISO 8601 week numbering: Monday start, week 1 holds the first
		// Thursday. Late December can land in week 1 of the next year.
		year, week := item.Date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case domain.GranularityMonth:
		return item.Date.Format("2006-01")
	default:
		return item.Date.Format("2006-01-02")
	}
}
