package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

func TestMapConstraintError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, MapConstraintError(nil))
	})

	t.Run("sku index violation", func(t *testing.T) {
		err := status.Error(codes.AlreadyExists, "Unique index violation on index products_by_sku at index key [WID-1]")
		assert.ErrorIs(t, MapConstraintError(fmt.Errorf("transaction failed: %w", err)), domain.ErrDuplicateSKU)
	})

	t.Run("manufacturer name violation", func(t *testing.T) {
		err := status.Error(codes.AlreadyExists, "Unique index violation on index manufacturers_by_name at index key [Acme]")
		assert.ErrorIs(t, MapConstraintError(err), domain.ErrDuplicateManufacturerName)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := status.Error(codes.FailedPrecondition, "Foreign key constraint `fk_products_manufacturer` is violated on table `products`")
		assert.ErrorIs(t, MapConstraintError(err), domain.ErrManufacturerNotFound)
	})

	t.Run("unrelated errors pass through", func(t *testing.T) {
		err := status.Error(codes.AlreadyExists, "Row [p-1] in table products already exists")
		assert.Same(t, err, MapConstraintError(err))

		plain := errors.New("boom")
		assert.Same(t, plain, MapConstraintError(plain))
	})
}
