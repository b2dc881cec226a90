package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_manufacturer"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// ManufacturerRepo implements ManufacturerRepository for Spanner.
type ManufacturerRepo struct {
	model *m_manufacturer.Model
}

func NewManufacturerRepo() contracts.ManufacturerRepository {
	return &ManufacturerRepo{model: m_manufacturer.NewModel()}
}

func (r *ManufacturerRepo) InsertMut(m *domain.Manufacturer) *spanner.Mutation {
	return r.model.InsertMut(&m_manufacturer.Data{
		ManufacturerID: m.ID(),
		Name:           m.Name(),
		Country:        m.Country(),
		Website:        m.Website(),
		Description:    nullString(m.Description()),
		Address:        nullString(m.Address()),
		ContactID:      nullString(m.ContactID()),
	})
}

// Exists reports whether a manufacturer row with the id is present.
func (r *ManufacturerRepo) Exists(ctx context.Context, rd committer.Reader, manufacturerID string) (bool, error) {
	_, err := rd.ReadRow(ctx, m_manufacturer.TableName, spanner.Key{manufacturerID}, []string{m_manufacturer.ManufacturerID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check manufacturer existence: %w", err)
	}
	return true, nil
}

// NameTaken reports whether another manufacturer already uses name.
func (r *ManufacturerRepo) NameTaken(ctx context.Context, rd committer.Reader, name string) (bool, error) {
	stmt := query.From(m_manufacturer.TableName).
		Select(m_manufacturer.ManufacturerID).
		Where(query.Eq(m_manufacturer.Name, name)).
		Limit(1).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up manufacturer name: %w", err)
	}
	return true, nil
}

func nullString(s *string) spanner.NullString {
	if s == nil {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: *s, Valid: true}
}

func stringPtr(ns spanner.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.StringVal
	return &s
}
