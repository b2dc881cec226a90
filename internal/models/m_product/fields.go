package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	// SKUIndex is the unique index guarding the natural key.
	SKUIndex = "products_by_sku"

	ProductID      = "product_id"
	Name           = "name"
	SKU            = "sku"
	Description    = "description"
	Price          = "price"
	Category       = "category"
	AmountInStock  = "amount_in_stock"
	ManufacturerID = "manufacturer_id"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)

// Columns lists every column in table order.
var Columns = []string{
	ProductID,
	Name,
	SKU,
	Description,
	Price,
	Category,
	AmountInStock,
	ManufacturerID,
	CreatedAt,
	UpdatedAt,
}
