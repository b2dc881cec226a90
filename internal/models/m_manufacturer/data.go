package m_manufacturer

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the manufacturers table.
type Data struct {
	ManufacturerID string             `spanner:"manufacturer_id"`
	Name           string             `spanner:"name"`
	Country        string             `spanner:"country"`
	Website        string             `spanner:"website"`
	Description    spanner.NullString `spanner:"description"`
	Address        spanner.NullString `spanner:"address"`
	ContactID      spanner.NullString `spanner:"contact_id"`
	CreatedAt      time.Time          `spanner:"created_at"`
	UpdatedAt      time.Time          `spanner:"updated_at"`
}
