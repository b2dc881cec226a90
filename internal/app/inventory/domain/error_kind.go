package domain

import "errors"

// ErrorKind is the transport-agnostic failure taxonomy. REST and GraphQL
// adapters map kinds to status codes and error extensions respectively.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindMalformedInput
	KindContractViolation
	KindNotFound
	KindConflict
)

// String returns the code exposed to clients.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformedInput:
		return "BAD_USER_INPUT"
	case KindContractViolation:
		return "CONTRACT_VIOLATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

var malformedInputErrors = []error{
	ErrInvalidID,
	ErrNameTooShort,
	ErrSKUTooShort,
	ErrEmptyDescription,
	ErrInvalidPrice,
	ErrEmptyCategory,
	ErrNegativeStock,
	ErrStockTooLarge,
	ErrCountryTooShort,
	ErrEmptyWebsite,
	ErrIncompleteContact,
}

// Classify maps an error returned by a use case or query to its kind.
// Unknown errors are internal.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindInternal
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return KindMalformedInput
	}

	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrManufacturerNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicateSKU), errors.Is(err, ErrDuplicateManufacturerName):
		return KindConflict
	case errors.Is(err, ErrManufacturerAmbiguous), errors.Is(err, ErrManufacturerRequired):
		return KindContractViolation
	}

	for _, target := range malformedInputErrors {
		if errors.Is(err, target) {
			return KindMalformedInput
		}
	}

	return KindInternal
}
