package m_contact

import "time"

// Data represents a row of the contacts table.
type Data struct {
	ContactID string    `spanner:"contact_id"`
	Name      string    `spanner:"name"`
	Email     string    `spanner:"email"`
	Phone     string    `spanner:"phone"`
	CreatedAt time.Time `spanner:"created_at"`
}
