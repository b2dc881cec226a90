package repo

import (
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// Join predicates shared by the denormalized reads (p, m, c aliases).
const (
	joinManufacturer = "m.manufacturer_id = p.manufacturer_id"
	joinContact      = "c.contact_id = m.contact_id"
)

var manufacturerViewColumns = []string{
	"m.manufacturer_id",
	"m.name AS manufacturer_name",
	"m.country",
	"m.website",
	"m.description AS manufacturer_description",
	"m.address",
	"c.contact_id",
	"c.name AS contact_name",
	"c.email AS contact_email",
	"c.phone AS contact_phone",
}

var productViewColumns = append([]string{
	"p.product_id",
	"p.name",
	"p.sku",
	"p.description",
	"p.price",
	"p.category",
	"p.amount_in_stock",
	"p.created_at",
	"p.updated_at",
}, manufacturerViewColumns...)

// productViews is the base query for denormalized product reads. The inner
// join drops products whose manufacturer is missing; the contact is optional.
func productViews() *query.Builder {
	return query.From("products p").
		Select(productViewColumns...).
		Join("manufacturers m", joinManufacturer).
		LeftJoin("contacts c", joinContact)
}

func manufacturerViews() *query.Builder {
	return query.From("manufacturers m").
		Select(manufacturerViewColumns...).
		LeftJoin("contacts c", joinContact)
}

type manufacturerRow struct {
	id, name, country, website string
	description, address       spanner.NullString
	contactID, contactName     spanner.NullString
	contactEmail, contactPhone spanner.NullString
}

func (m *manufacturerRow) ptrs() []interface{} {
	return []interface{}{
		&m.id, &m.name, &m.country, &m.website, &m.description, &m.address,
		&m.contactID, &m.contactName, &m.contactEmail, &m.contactPhone,
	}
}

func (m *manufacturerRow) view() contracts.ManufacturerView {
	v := contracts.ManufacturerView{
		ID:          m.id,
		Name:        m.name,
		Country:     m.country,
		Website:     m.website,
		Description: stringPtr(m.description),
		Address:     stringPtr(m.address),
	}
	if m.contactID.Valid {
		v.Contact = &contracts.ContactView{
			ID:    m.contactID.StringVal,
			Name:  m.contactName.StringVal,
			Email: m.contactEmail.StringVal,
			Phone: m.contactPhone.StringVal,
		}
	}
	return v
}

func scanProductView(row *spanner.Row) (*contracts.ProductView, error) {
	var (
		v   contracts.ProductView
		mfr manufacturerRow
	)
	dest := append([]interface{}{
		&v.ID, &v.Name, &v.SKU, &v.Description, &v.Price, &v.Category,
		&v.AmountInStock, &v.CreatedAt, &v.UpdatedAt,
	}, mfr.ptrs()...)

	if err := row.Columns(dest...); err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	v.Manufacturer = mfr.view()
	return &v, nil
}

func scanManufacturerView(row *spanner.Row) (*contracts.ManufacturerView, error) {
	var mfr manufacturerRow
	if err := row.Columns(mfr.ptrs()...); err != nil {
		return nil, fmt.Errorf("failed to scan manufacturer: %w", err)
	}
	v := mfr.view()
	return &v, nil
}
