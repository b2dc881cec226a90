package testutil

import (
	"context"
	"strings"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/models/m_contact"
	"github.com/light-bringer/inventory-service/internal/models/m_manufacturer"
	"github.com/light-bringer/inventory-service/internal/models/m_product"
)

// ProductRow is the subset of product columns fixtures care about.
type ProductRow struct {
	Name          string
	SKU           string
	Price         float64
	Category      string
	AmountInStock int64
}

// InsertManufacturer writes a manufacturer, optionally with a contact
// "<name> Contact" reachable at sales@<name>.example.
func InsertManufacturer(t *testing.T, client *spanner.Client, name string, withContact bool) string {
	t.Helper()

	manufacturerID := uuid.New().String()
	mutations := []*spanner.Mutation{}

	var contactID spanner.NullString
	if withContact {
		contactID = spanner.NullString{StringVal: uuid.New().String(), Valid: true}
		mutations = append(mutations, m_contact.NewModel().InsertMut(&m_contact.Data{
			ContactID: contactID.StringVal,
			Name:      name + " Contact",
			Email:     "sales@" + strings.ToLower(name) + ".example",
			Phone:     "+1 555 0100",
		}))
	}

	mutations = append(mutations, m_manufacturer.NewModel().InsertMut(&m_manufacturer.Data{
		ManufacturerID: manufacturerID,
		Name:           name,
		Country:        "Germany",
		Website:        "https://" + strings.ToLower(name) + ".example",
		ContactID:      contactID,
	}))

	_, err := client.Apply(context.Background(), mutations)
	require.NoError(t, err, "failed to create test manufacturer")
	return manufacturerID
}

// InsertProduct writes a product for manufacturerID.
func InsertProduct(t *testing.T, client *spanner.Client, row ProductRow, manufacturerID string) string {
	t.Helper()

	productID := uuid.New().String()
	category := row.Category
	if category == "" {
		category = "tools"
	}

	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		m_product.NewModel().InsertMut(&m_product.Data{
			ProductID:      productID,
			Name:           row.Name,
			SKU:            row.SKU,
			Description:    row.Name + " description",
			Price:          row.Price,
			Category:       category,
			AmountInStock:  row.AmountInStock,
			ManufacturerID: manufacturerID,
		}),
	})
	require.NoError(t, err, "failed to create test product")
	return productID
}

// OutboxEventTypes returns the event types in the outbox, oldest first.
func OutboxEventTypes(t *testing.T, client *spanner.Client) []string {
	t.Helper()

	iter := client.Single().Query(context.Background(), spanner.Statement{
		SQL: "SELECT event_type FROM outbox_events ORDER BY created_at, event_id",
	})
	defer iter.Stop()

	var types []string
	err := iter.Do(func(row *spanner.Row) error {
		var eventType string
		if err := row.Columns(&eventType); err != nil {
			return err
		}
		types = append(types, eventType)
		return nil
	})
	require.NoError(t, err, "failed to read outbox")
	return types
}
