package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/models/m_product"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

const stockValueExpr = "SUM(" + m_product.Price + " * " + m_product.AmountInStock + ")"

// ReportModel implements the stock aggregations as Spanner queries.
type ReportModel struct {
	client *spanner.Client
}

func NewReportModel(client *spanner.Client) contracts.ReportModel {
	return &ReportModel{client: client}
}

// TotalStockValue sums price * amount over all products.
func (rm *ReportModel) TotalStockValue(ctx context.Context) (float64, error) {
	stmt := query.From(m_product.TableName).
		Select("COALESCE(" + stockValueExpr + ", 0.0) AS total").
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to compute total stock value: %w", err)
	}

	var total float64
	if err := row.Columns(&total); err != nil {
		return 0, fmt.Errorf("failed to parse total stock value: %w", err)
	}
	return total, nil
}

// TotalStockValueByManufacturer groups the stock value per manufacturer,
// highest first. Manufacturers without products have no group and are absent.
func (rm *ReportModel) TotalStockValueByManufacturer(ctx context.Context) ([]*contracts.ManufacturerStockValue, error) {
	totals := query.From(m_product.TableName).
		Select(m_product.ManufacturerID, stockValueExpr+" AS total").
		GroupBy(m_product.ManufacturerID).
		Build()

	stmt := query.From("("+totals.SQL+") t").
		Select(append(append([]string{}, manufacturerViewColumns...), "t.total")...).
		Join("manufacturers m", "m.manufacturer_id = t.manufacturer_id").
		LeftJoin("contacts c", joinContact).
		OrderBy("t.total", query.Desc).
		OrderBy("m.name", query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	result := make([]*contracts.ManufacturerStockValue, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate stock values: %w", err)
		}

		var (
			mfr   manufacturerRow
			total float64
		)
		if err := row.Columns(append(mfr.ptrs(), &total)...); err != nil {
			return nil, fmt.Errorf("failed to scan stock value: %w", err)
		}
		result = append(result, &contracts.ManufacturerStockValue{
			Manufacturer:    mfr.view(),
			TotalStockValue: total,
		})
	}

	return result, nil
}

// ProductsBelowStock returns full product records with amount < threshold,
// scarcest first.
func (rm *ReportModel) ProductsBelowStock(ctx context.Context, threshold int64) ([]*contracts.ProductView, error) {
	stmt := productViews().
		Where(query.Lt("p.amount_in_stock", threshold)).
		OrderBy("p.amount_in_stock", query.Asc).
		OrderBy("p.name", query.Asc).
		Build()

	return collectProducts(rm.client.Single().Query(ctx, stmt))
}

// CriticalStock projects the products below threshold to the fields needed
// to place a reorder.
func (rm *ReportModel) CriticalStock(ctx context.Context, threshold int64) ([]*contracts.CriticalStockItem, error) {
	stmt := query.From("products p").
		Select("p.name", "m.name AS manufacturer_name", "c.name AS contact_name", "c.phone", "c.email").
		Join("manufacturers m", joinManufacturer).
		LeftJoin("contacts c", joinContact).
		Where(query.Lt("p.amount_in_stock", threshold)).
		OrderBy("p.amount_in_stock", query.Asc).
		OrderBy("p.name", query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	items := make([]*contracts.CriticalStockItem, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate critical stock: %w", err)
		}

		var (
			item               contracts.CriticalStockItem
			name, phone, email spanner.NullString
		)
		if err := row.Columns(&item.ProductName, &item.ManufacturerName, &name, &phone, &email); err != nil {
			return nil, fmt.Errorf("failed to scan critical stock: %w", err)
		}
		item.ContactName = stringPtr(name)
		item.ContactPhone = stringPtr(phone)
		item.ContactEmail = stringPtr(email)
		items = append(items, &item)
	}

	return items, nil
}
