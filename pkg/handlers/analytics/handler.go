package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/adapters"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/api"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/models/domain"
	analyticssvc "github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/services/analytics"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/services/keepalive"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/services/locale"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/store/mongodb/bills"
	"github.com/Sambhav2504/Smart-Billing-Inventory-Management-System/pkg/store/mongodb/products"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// HealthChecker verifies the backing document store.
type HealthChecker func(ctx context.Context) error

type Handler struct {
	bills     bills.Store
	products  products.Store
	engine    *analyticssvc.Engine
	keepAlive *keepalive.Pinger
	checkDB   HealthChecker
}

func NewHandler(
	billStore bills.Store,
	productStore products.Store,
	engine *analyticssvc.Engine,
	keepAlive *keepalive.Pinger,
	checkDB HealthChecker,
) *Handler {
	return &Handler{
		bills:     billStore,
		products:  productStore,
		engine:    engine,
		keepAlive: keepAlive,
		checkDB:   checkDB,
	}
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, api.Status{
		Status:       "Analytics API running 🚀",
		SelfPing:     h.selfPingState(),
		PingInterval: h.pingInterval(),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "healthy"
	if err := h.checkDB(r.Context()); err != nil {
		dbStatus = fmt.Sprintf("unhealthy: %v", err)
	}

	writeJSON(r.Context(), w, api.Health{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  dbStatus,
		SelfPing:  h.selfPingState(),
	})
}

func (h *Handler) DailySales(w http.ResponseWriter, r *http.Request) {
	items, _, ok := h.loadLineItems(w, r)
	if !ok {
		return
	}
	if len(items) == 0 {
		writeJSON(r.Context(), w, adapters.EmptyReport())
		return
	}
	buckets := analyticssvc.Aggregate(items, domain.GranularityDay)
	writeJSON(r.Context(), w, adapters.MapBucketsToDailySales(buckets))
}

func (h *Handler) WeeklySales(w http.ResponseWriter, r *http.Request) {
	items, _, ok := h.loadLineItems(w, r)
	if !ok {
		return
	}
	if len(items) == 0 {
		writeJSON(r.Context(), w, adapters.EmptyReport())
		return
	}
	buckets := analyticssvc.Aggregate(items, domain.GranularityISOWeek)
	writeJSON(r.Context(), w, adapters.MapBucketsToWeeklySales(buckets))
}

func (h *Handler) MonthlySales(w http.ResponseWriter, r *http.Request) {
	items, _, ok := h.loadLineItems(w, r)
	if !ok {
		return
	}
	if len(items) == 0 {
		writeJSON(r.Context(), w, adapters.EmptyReport())
		return
	}
	buckets := analyticssvc.Aggregate(items, domain.GranularityMonth)
	writeJSON(r.Context(), w, adapters.MapBucketsToMonthlySales(buckets))
}

func (h *Handler) TopProducts(w http.ResponseWriter, r *http.Request) {
	items, _, ok := h.loadLineItems(w, r)
	if !ok {
		return
	}
	if len(items) == 0 {
		writeJSON(r.Context(), w, adapters.EmptyReport())
		return
	}
	catalog, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}
	ranked := h.engine.TopProducts(items, catalog, analyticssvc.ReportTopLimit)
	writeJSON(r.Context(), w, adapters.MapRankedProductsToAPI(ranked))
}

func (h *Handler) RevenueTrend(w http.ResponseWriter, r *http.Request) {
	items, _, ok := h.loadLineItems(w, r)
	if !ok {
		return
	}
	if len(items) == 0 {
		writeJSON(r.Context(), w, adapters.EmptyReport())
		return
	}
	buckets := analyticssvc.Aggregate(items, domain.GranularityDay)
	writeJSON(r.Context(), w, adapters.MapBucketsToRevenueTrend(buckets))
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	items, billCount, ok := h.loadLineItems(w, r)
	if !ok {
		return
	}
	if len(items) == 0 {
		writeJSON(r.Context(), w, adapters.EmptyReport())
		return
	}
	catalog, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}
	report := h.engine.Compile(items, billCount, catalog)
	writeJSON(r.Context(), w, adapters.MapReportDomainToAPI(report))
}

func (h *Handler) TextReport(w http.ResponseWriter, r *http.Request) {
	lang := locale.Resolve(r.Header.Get("Accept-Language"))

	items, billCount, ok := h.loadLineItems(w, r)
	if !ok {
		return
	}
	if len(items) == 0 {
		writeJSON(r.Context(), w, adapters.EmptyReport())
		return
	}
	catalog, ok := h.loadCatalog(w, r)
	if !ok {
		return
	}

	report := h.engine.Compile(items, billCount, catalog)
	top := h.engine.TopProducts(items, catalog, analyticssvc.NarrativeTopLimit)
	writeJSON(r.Context(), w, api.TextReport{
		Report: analyticssvc.RenderNarrative(report, top, lang),
	})
}

// loadLineItems validates the date range, fetches the matching bills and
// normalizes them. It writes the error response itself, so callers bail out
// when ok is false. The returned count is the raw bill count, which the
// summary reports as total orders.
func (h *Handler) loadLineItems(w http.ResponseWriter, r *http.Request) ([]domain.LineItem, int, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	from, to, err := parseDateRange(r)
	if err != nil {
		http.Error(w, "Invalid date format. Use YYYY-MM-DD", http.StatusBadRequest)
		return nil, 0, false
	}

	rawBills, err := h.bills.GetBills(ctx, from, to)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load bills")
		http.Error(w, "failed to load billing data", http.StatusInternalServerError)
		return nil, 0, false
	}

	items := h.engine.Normalize(rawBills)
	logger.Debug().
		Int("bills", len(rawBills)).
		Int("line_items", len(items)).
		Msg("normalized billing data")
	return items, len(rawBills), true
}

func (h *Handler) loadCatalog(w http.ResponseWriter, r *http.Request) ([]domain.Product, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	catalog, err := h.products.GetProducts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load product catalog")
		http.Error(w, "failed to load product catalog", http.StatusInternalServerError)
		return nil, false
	}
	return adapters.MapStoreProductsToDomain(catalog), true
}

// parseDateRange reads startDate/endDate query params. Filtering only kicks
// in when both are present; the range is inclusive, end extended to
// 23:59:59.
func parseDateRange(r *http.Request) (*time.Time, *time.Time, error) {
	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr == "" || endStr == "" {
		return nil, nil, nil
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid startDate %q: %w", startStr, err)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid endDate %q: %w", endStr, err)
	}

	endOfDay := end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return &start, &endOfDay, nil
}

func (h *Handler) selfPingState() string {
	if h.keepAlive != nil && h.keepAlive.Active() {
		return "active"
	}
	return "inactive"
}

func (h *Handler) pingInterval() string {
	if h.keepAlive == nil {
		return ""
	}
	return fmt.Sprintf("%.0f seconds", h.keepAlive.Interval().Seconds())
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
