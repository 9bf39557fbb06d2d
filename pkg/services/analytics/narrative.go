package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/domain"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/services/locale"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// translations maps (locale, key) to a format template. Lookup falls back
// from the requested locale to English and finally to the key itself, so a
// narrative is always produced. Placeholder order is identical across
// locales for each key.
var translations = map[string]map[string]string{
	"en": {
		"report_title":        "📊 Sales Analysis Report",
		"total_revenue":       "Total revenue generated: ₹%s.",
		"total_orders":        "Total number of orders: %d.",
		"total_products_sold": "Total products sold: %d.",
		"best_day":            "Best performing day: %s (₹%s).",
		"best_week":           "Best week: %s (₹%s).",
		"best_month":          "Best month: %s (₹%s).",
		"top_products_title":  "Top selling products:",
		"top_product_line":    "- %s (%s) sold %d units, revenue %s",
	},
	"hi": {
		"report_title":        "📊 बिक्री विश्लेषण रिपोर्ट",
		"total_revenue":       "कुल राजस्व उत्पन्न: ₹%s।",
		"total_orders":        "ऑर्डर की कुल संख्या: %d।",
		"total_products_sold": "कुल बिके उत्पाद: %d।",
		"best_day":            "सबसे अच्छा प्रदर्शन करने वाला दिन: %s (₹%s)।",
		"best_week":           "सबसे अच्छा सप्ताह: %s (₹%s)।",
		"best_month":          "सबसे अच्छा महीना: %s (₹%s)।",
		"top_products_title":  "सबसे ज्यादा बिकने वाले उत्पाद:",
		"top_product_line":    "- %s (%s) ने %d इकाइयाँ बेचीं, राजस्व %s",
	},
	"mr": {
		"report_title":        "📊 विक्री विश्लेषण अहवाल",
		"total_revenue":       "एकूण महसूल: ₹%s।",
		"total_orders":        "एकूण ऑर्डरची संख्या: %d।",
		"total_products_sold": "एकूण विकलेली उत्पादने: %d।",
		"best_day":            "सर्वोत्तम कामगिरीचा दिवस: %s (₹%s).",
		"best_week":           "सर्वोत्तम आठवडा: %s (₹%s).",
		"best_month":          "सर्वोत्तम महिना: %s (₹%s).",
		"top_products_title":  " सर्वाधिक विकली जाणारी उत्पादने:",
		"top_product_line":    "- %s (%s) ने %d युनिट्स विकले, महसूल %s",
	},
	"te": {
		"report_title":        "📊 అమ్మకాల విశ్లేషణ నివేదిక",
		"total_revenue":       "మొత్తం ఆదాయం: ₹%s।",
		"total_orders":        "మొత్తం ఆర్డర్ల సంఖ్య: %d।",
		"total_products_sold": "మొత్తం అమ్ముడైన ఉత్పత్తులు: %d।",
		"best_day":            "ఉత్తమ పనితీరు కనబరిచిన రోజు: %s (₹%s).",
		"best_week":           "ఉత్తమ వారం: %s (₹%s).",
		"best_month":          "ఉత్తమ నెల: %s (₹%s).",
		"top_products_title":  "అత్యధికంగా అమ్ముడైన ఉత్పత్తులు:",
		"top_product_line":    "- %s (%s) %d యూనిట్లు అమ్ముడయ్యాయి, ఆదాయం %s",
	},
}

// Translate resolves a narrative template for a locale with a two-level
// fallback: exact (locale, key), then the English key, then the key name.
func Translate(loc, key string) string {
	if catalog, ok := translations[loc]; ok {
		if tpl, ok := catalog[key]; ok {
			return tpl
		}
	}
	if tpl, ok := translations[locale.Default][key]; ok {
		return tpl
	}
	return key
}

// RenderNarrative turns a compiled report into the localized text summary.
// The report must be non-empty; callers short-circuit the empty case onto
// the empty JSON shape instead. top is the narrative-depth ranking
// (NarrativeTopLimit rows).
func RenderNarrative(report domain.Report, top []domain.RankedProduct, loc string) string {
	lines := []string{
		Translate(loc, "report_title"),
		fmt.Sprintf(Translate(loc, "total_revenue"), groupedAmount(loc, report.Summary.TotalRevenue)),
		fmt.Sprintf(Translate(loc, "total_orders"), report.Summary.TotalOrders),
		fmt.Sprintf(Translate(loc, "total_products_sold"), report.Summary.TotalProductsSold),
	}

	if best, ok := bestBucket(report.Daily); ok {
		lines = append(lines, fmt.Sprintf(Translate(loc, "best_day"), best.Period, plainAmount(best.TotalRevenue)))
	}
	if best, ok := bestBucket(report.Weekly); ok {
		lines = append(lines, fmt.Sprintf(Translate(loc, "best_week"), best.Period, plainAmount(best.TotalRevenue)))
	}
	if best, ok := bestBucket(report.Monthly); ok {
		lines = append(lines, fmt.Sprintf(Translate(loc, "best_month"), best.Period, plainAmount(best.TotalRevenue)))
	}

	lines = append(lines, Translate(loc, "top_products_title"))
	for _, product := range top {
		lines = append(lines, fmt.Sprintf(Translate(loc, "top_product_line"),
			product.Name, product.Category, int(product.TotalQty), plainAmount(product.TotalRevenue)))
	}

	return strings.Join(lines, " ")
}

// bestBucket is a stable argmax: on ties the earliest period wins, because
// buckets arrive in ascending order and only a strictly greater total
// replaces the current best.
func bestBucket(buckets []domain.Bucket) (domain.Bucket, bool) {
	if len(buckets) == 0 {
		return domain.Bucket{}, false
	}
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.TotalRevenue > best.TotalRevenue {
			best = b
		}
	}
	return best, true
}

// groupedAmount renders a revenue figure with the locale's digit grouping
// and exactly two decimal places.
func groupedAmount(loc string, v float64) string {
	p := message.NewPrinter(locale.Tag(loc))
	return p.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func plainAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
