package domain

import "errors"

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrProductNotFound      = errors.New("product not found")
	ErrManufacturerNotFound = errors.New("manufacturer not found")
	ErrInvalidID            = errors.New("id is not valid")

	// Uniqueness conflicts
	ErrDuplicateSKU              = errors.New("a product with this sku already exists")
	ErrDuplicateManufacturerName = errors.New("a manufacturer with this name already exists")

	// Manufacturer reference contract
	ErrManufacturerAmbiguous = errors.New("provide either manufacturer or manufacturerId, not both")
	ErrManufacturerRequired  = errors.New("either manufacturer or manufacturerId is required")

	// Product invariants
	ErrNameTooShort     = errors.New("name must be at least 2 characters")
	ErrSKUTooShort      = errors.New("sku must be at least 2 characters")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrEmptyCategory    = errors.New("category cannot be empty")
	ErrNegativeStock    = errors.New("amountInStock must be a non-negative integer")
	ErrStockTooLarge    = errors.New("amountInStock must be at most 2147483647")

	// Manufacturer and contact invariants
	ErrCountryTooShort   = errors.New("country must be at least 2 characters")
	ErrEmptyWebsite      = errors.New("website cannot be empty")
	ErrIncompleteContact = errors.New("contact is incomplete")
)
