package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// queryParams reads optional query parameters, collecting parse failures.
type queryParams struct {
	c    *gin.Context
	verr *domain.ValidationError
}

func newQueryParams(c *gin.Context) *queryParams {
	return &queryParams{c: c, verr: domain.NewValidationError()}
}

func (q *queryParams) str(name string) *string {
	v, ok := q.c.GetQuery(name)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func (q *queryParams) float(name string) *float64 {
	v := q.str(name)
	if v == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
	if err != nil {
		q.verr.Add(name, name+" must be a number")
		return nil
	}
	return &f
}

// integer accepts whole numbers only; "1.5" and "abc" are rejected with msg.
func (q *queryParams) integer(name, msg string) *int64 {
	v := q.str(name)
	if v == nil {
		return nil
	}
	i, err := strconv.ParseInt(strings.TrimSpace(*v), 10, 64)
	if err != nil {
		q.verr.Add(name, msg)
		return nil
	}
	return &i
}

func (q *queryParams) err() error {
	return q.verr.OrNil()
}
