package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_contact"
)

// ContactRepo implements ContactRepository for Spanner.
type ContactRepo struct {
	model *m_contact.Model
}

func NewContactRepo() contracts.ContactRepository {
	return &ContactRepo{model: m_contact.NewModel()}
}

func (r *ContactRepo) InsertMut(c *domain.Contact) *spanner.Mutation {
	return r.model.InsertMut(&m_contact.Data{
		ContactID: c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
	})
}
