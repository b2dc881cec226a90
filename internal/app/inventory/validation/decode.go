package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// DecodeJSON decodes a request body into dst. Decoding failures are returned
// as a *domain.ValidationError: type mismatches under the offending field,
// malformed documents under the global key.
func DecodeJSON(r io.Reader, dst interface{}) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		verr := domain.NewValidationError()
		verr.Add(domain.GlobalField, "request body must contain a single JSON object")
		return verr
	}
	return nil
}

func decodeError(err error) error {
	verr := domain.NewValidationError()

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		verr.Add(typeErr.Field, fmt.Sprintf("%s must be of type %s", typeErr.Field, jsonType(typeErr.Type.Kind().String())))
	case errors.As(err, &syntaxErr):
		verr.Add(domain.GlobalField, fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	case errors.Is(err, io.EOF):
		verr.Add(domain.GlobalField, "request body is required")
	default:
		verr.Add(domain.GlobalField, "malformed JSON")
	}
	return verr
}

func jsonType(kind string) string {
	switch kind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "integer"
	case "float32", "float64":
		return "number"
	case "string":
		return "string"
	case "struct", "map":
		return "object"
	case "slice", "array":
		return "array"
	case "bool":
		return "boolean"
	default:
		return kind
	}
}
