package repo

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_manufacturer"
	"github.com/light-bringer/inventory-service/internal/models/m_product"
)

const (
	fkProductManufacturer = "fk_products_manufacturer"
)

// MapConstraintError translates Spanner constraint violations raised at
// commit time into domain errors. Other errors are returned unchanged.
//
// Unique index violations surface as AlreadyExists naming the index; a
// foreign key violation on products means the manufacturer vanished
// between the existence check and the commit.
func MapConstraintError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch status.Code(err) {
	case codes.AlreadyExists:
		switch {
		case strings.Contains(msg, m_product.SKUIndex):
			return domain.ErrDuplicateSKU
		case strings.Contains(msg, m_manufacturer.NameIndex):
			return domain.ErrDuplicateManufacturerName
		}
	case codes.FailedPrecondition:
		if strings.Contains(msg, fkProductManufacturer) {
			return domain.ErrManufacturerNotFound
		}
	}

	return err
}
