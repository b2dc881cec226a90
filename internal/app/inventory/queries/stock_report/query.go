// Package stock_report serves the stock aggregations: total valuation,
// valuation per manufacturer, and the low and critical stock lists.
package stock_report

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// Thresholds are the defaults used when a request does not name one.
type Thresholds struct {
	Low      int64
	Critical int64
}

// DefaultThresholds are 10 units for low stock and 5 for critical stock.
var DefaultThresholds = Thresholds{Low: 10, Critical: 5}

// Query handles the stock report queries.
type Query struct {
	reports    contracts.ReportModel
	thresholds Thresholds
}

// NewQuery creates a new stock report query.
func NewQuery(reports contracts.ReportModel, thresholds Thresholds) *Query {
	return &Query{
		reports:    reports,
		thresholds: thresholds,
	}
}

// TotalStockValue is the sum of price * amountInStock over all products.
func (q *Query) TotalStockValue(ctx context.Context) (float64, error) {
	return q.reports.TotalStockValue(ctx)
}

// TotalStockValueByManufacturer omits manufacturers without products.
func (q *Query) TotalStockValueByManufacturer(ctx context.Context) ([]*contracts.ManufacturerStockValue, error) {
	return q.reports.TotalStockValueByManufacturer(ctx)
}

// LowStock lists full products with amountInStock below threshold, or below
// the configured low threshold when threshold is nil.
func (q *Query) LowStock(ctx context.Context, threshold *int64) ([]*contracts.ProductView, error) {
	t, err := resolveThreshold(threshold, q.thresholds.Low)
	if err != nil {
		return nil, err
	}
	return q.reports.ProductsBelowStock(ctx, t)
}

// CriticalStock lists the reorder projection of products below threshold, or
// below the configured critical threshold when threshold is nil.
func (q *Query) CriticalStock(ctx context.Context, threshold *int64) ([]*contracts.CriticalStockItem, error) {
	t, err := resolveThreshold(threshold, q.thresholds.Critical)
	if err != nil {
		return nil, err
	}
	return q.reports.CriticalStock(ctx, t)
}

func resolveThreshold(threshold *int64, fallback int64) (int64, error) {
	if threshold == nil {
		return fallback, nil
	}
	if *threshold < 0 {
		verr := domain.NewValidationError()
		verr.Add("threshold", "threshold must be a non-negative integer")
		return 0, verr
	}
	return *threshold, nil
}
