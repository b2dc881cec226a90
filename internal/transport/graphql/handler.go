package graphql

import (
	_ "embed"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

//go:embed schema.graphql
var schemaSDL string

const maxQueryDepth = 10

// NewSchema parses the inventory schema against a resolver over service.
func NewSchema(service Service, log *logger.Logger) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, NewResolver(service, log), graphql.MaxDepth(maxQueryDepth))
}

// NewHandler serves POST /graphql requests of the form
// {"query": ..., "operationName": ..., "variables": {...}}.
func NewHandler(service Service, log *logger.Logger) (http.Handler, error) {
	schema, err := NewSchema(service, log)
	if err != nil {
		return nil, err
	}
	return &relay.Handler{Schema: schema}, nil
}
