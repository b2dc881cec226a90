package graphql

import (
	"errors"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

// Error is returned from resolvers. graphql-go copies Extensions into the
// error entry, so clients read the failure class from extensions.code.
type Error struct {
	Message string
	Code    string
	Fields  map[string][]string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.Fields) > 0 {
		ext["fields"] = e.Fields
	}
	return ext
}

// toError classifies err like the REST adapter does. Internal causes are
// logged and hidden from the client.
func toError(log *logger.Logger, op string, err error) error {
	kind := domain.Classify(err)
	out := &Error{Message: err.Error(), Code: kind.String()}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		out.Message = "validation failed"
		out.Fields = verr.Fields
	}

	if kind == domain.KindInternal {
		if log != nil {
			log.Error("graphql resolver failed", "operation", op, "error", err)
		}
		out.Message = "internal server error"
	}
	return out
}
