package m_contact

// Field name constants for the contacts table.
const (
	TableName = "contacts"

	ContactID = "contact_id"
	Name      = "name"
	Email     = "email"
	Phone     = "phone"
	CreatedAt = "created_at"
)

var Columns = []string{ContactID, Name, Email, Phone, CreatedAt}
