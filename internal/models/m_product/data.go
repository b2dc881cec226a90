package m_product

import "time"

// Data represents a row of the products table.
type Data struct {
	ProductID      string    `spanner:"product_id"`
	Name           string    `spanner:"name"`
	SKU            string    `spanner:"sku"`
	Description    string    `spanner:"description"`
	Price          float64   `spanner:"price"`
	Category       string    `spanner:"category"`
	AmountInStock  int64     `spanner:"amount_in_stock"`
	ManufacturerID string    `spanner:"manufacturer_id"`
	CreatedAt      time.Time `spanner:"created_at"`
	UpdatedAt      time.Time `spanner:"updated_at"`
}
