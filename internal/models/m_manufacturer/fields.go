package m_manufacturer

// Field name constants for the manufacturers table.
const (
	TableName = "manufacturers"

	// NameIndex is the unique index on manufacturer names.
	NameIndex = "manufacturers_by_name"

	ManufacturerID = "manufacturer_id"
	Name           = "name"
	Country        = "country"
	Website        = "website"
	Description    = "description"
	Address        = "address"
	ContactID      = "contact_id"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)

var Columns = []string{
	ManufacturerID,
	Name,
	Country,
	Website,
	Description,
	Address,
	ContactID,
	CreatedAt,
	UpdatedAt,
}
