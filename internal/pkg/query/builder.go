package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

type join struct {
	kind  string
	table string
	on    string
}

type orderKey struct {
	column string
	dir    Direction
}

// Builder constructs SQL SELECT queries for Cloud Spanner.
// It is immutable: every method returns a modified copy, so a base query
// can be shared and specialised. Parameter names are generated.
type Builder struct {
	table        string
	selectCols   []string
	joins        []join
	whereClauses []Condition
	groupBy      []string
	orderBy      []orderKey
	limitVal     int64
}

// From creates a new Builder for the specified table (an alias may follow the name).
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select specifies the columns or expressions to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Join adds an INNER JOIN.
func (b *Builder) Join(table, on string) *Builder {
	nb := b.clone()
	nb.joins = append(nb.joins, join{kind: "JOIN", table: table, on: on})
	return nb
}

// LeftJoin adds a LEFT JOIN.
func (b *Builder) LeftJoin(table, on string) *Builder {
	nb := b.clone()
	nb.joins = append(nb.joins, join{kind: "LEFT JOIN", table: table, on: on})
	return nb
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// GroupBy sets the grouping columns.
func (b *Builder) GroupBy(columns ...string) *Builder {
	nb := b.clone()
	nb.groupBy = append(nb.groupBy, columns...)
	return nb
}

// OrderBy appends a sort key. Earlier keys take precedence.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderBy = append(nb.orderBy, orderKey{column: column, dir: direction})
	return nb
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Build constructs the final spanner.Statement with SQL and parameters.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	for _, j := range b.joins {
		fmt.Fprintf(&sql, " %s %s ON %s", j.kind, j.table, j.on)
	}

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		paramIndex := 0
		for _, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(paramIndex)
			whereParts = append(whereParts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	if len(b.groupBy) > 0 {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(strings.Join(b.groupBy, ", "))
	}

	if len(b.orderBy) > 0 {
		keys := make([]string, 0, len(b.orderBy))
		for _, k := range b.orderBy {
			if k.dir == Desc {
				keys = append(keys, k.column+" DESC")
			} else {
				keys = append(keys, k.column+" ASC")
			}
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(keys, ", "))
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	return &Builder{
		table:        b.table,
		selectCols:   append([]string(nil), b.selectCols...),
		joins:        append([]join(nil), b.joins...),
		whereClauses: append([]Condition(nil), b.whereClauses...),
		groupBy:      append([]string(nil), b.groupBy...),
		orderBy:      append([]orderKey(nil), b.orderBy...),
		limitVal:     b.limitVal,
	}
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
