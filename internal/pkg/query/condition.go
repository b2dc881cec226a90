package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// compareCondition implements binary comparisons (field <op> value).
type compareCondition struct {
	field string
	op    string
	value interface{}
}

func (c *compareCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, paramName), map[string]interface{}{paramName: c.value}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("category", "tools") generates "category = @p0"
func Eq(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Lt generates "field < @pN".
func Lt(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "<", value: value}
}

// Lte generates "field <= @pN".
func Lte(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "<=", value: value}
}

// Gte generates "field >= @pN".
func Gte(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: ">=", value: value}
}

// ContainsFold matches rows where any of fields contains term, ignoring case.
// The term is matched literally: LIKE wildcards in it are escaped.
// Example: ContainsFold("ab", "name", "sku") generates
// "(LOWER(name) LIKE @p0 OR LOWER(sku) LIKE @p0)" with @p0 = "%ab%".
func ContainsFold(term string, fields ...string) Condition {
	return &containsFoldCondition{term: term, fields: fields}
}

type containsFoldCondition struct {
	term   string
	fields []string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (c *containsFoldCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	parts := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE @%s", f, paramName))
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(c.term)) + "%"
	return "(" + strings.Join(parts, " OR ") + ")", map[string]interface{}{paramName: pattern}
}
