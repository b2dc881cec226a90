package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "sku").
		Build()

	assert.Equal(t, "SELECT product_id, name, sku FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("manufacturers").Build()

	assert.Equal(t, "SELECT * FROM manufacturers", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_WhereConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Eq("category", "tools")).
		Where(Gte("price", 5.0)).
		Where(Lte("price", 50.0)).
		Where(Lt("amount_in_stock", int64(10))).
		Build()

	assert.Equal(t,
		"SELECT product_id FROM products WHERE category = @p0 AND price >= @p1 AND price <= @p2 AND amount_in_stock < @p3",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "tools",
		"p1": 5.0,
		"p2": 50.0,
		"p3": int64(10),
	}, stmt.Params)
}

func TestBuilder_Joins(t *testing.T) {
	stmt := From("products p").
		Select("p.name", "m.name", "c.phone").
		Join("manufacturers m", "m.manufacturer_id = p.manufacturer_id").
		LeftJoin("contacts c", "c.contact_id = m.contact_id").
		Where(Eq("p.manufacturer_id", "m-1")).
		Build()

	assert.Equal(t,
		"SELECT p.name, m.name, c.phone FROM products p"+
			" JOIN manufacturers m ON m.manufacturer_id = p.manufacturer_id"+
			" LEFT JOIN contacts c ON c.contact_id = m.contact_id"+
			" WHERE p.manufacturer_id = @p0",
		stmt.SQL)
	assert.Equal(t, "m-1", stmt.Params["p0"])
}

func TestBuilder_GroupBy(t *testing.T) {
	stmt := From("products p").
		Select("p.manufacturer_id", "SUM(p.price * p.amount_in_stock) AS total").
		GroupBy("p.manufacturer_id").
		OrderBy("total", Desc).
		Build()

	assert.Equal(t,
		"SELECT p.manufacturer_id, SUM(p.price * p.amount_in_stock) AS total FROM products p GROUP BY p.manufacturer_id ORDER BY total DESC",
		stmt.SQL)
}

func TestBuilder_OrderByMultipleKeys(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		OrderBy("price", Desc).
		OrderBy("name", Asc).
		Build()

	assert.Equal(t, "SELECT product_id FROM products ORDER BY price DESC, name ASC", stmt.SQL)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Limit(20).
		Build()

	assert.Equal(t, "SELECT product_id FROM products LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"limit": int64(20)}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")

	withCategory := base.Where(Eq("category", "tools"))
	withJoin := base.Join("manufacturers m", "m.manufacturer_id = products.manufacturer_id")

	assert.Equal(t, "SELECT product_id FROM products", base.Build().SQL)
	assert.Equal(t, "SELECT product_id FROM products WHERE category = @p0", withCategory.Build().SQL)
	assert.NotContains(t, withJoin.Build().SQL, "WHERE")
}

func TestCondition_Eq(t *testing.T) {
	sql, params := Eq("sku", "WID-1").SQL(3)

	assert.Equal(t, "sku = @p3", sql)
	assert.Equal(t, map[string]interface{}{"p3": "WID-1"}, params)
}

func TestCondition_ContainsFold(t *testing.T) {
	t.Run("single param shared by every field", func(t *testing.T) {
		sql, params := ContainsFold("Drill", "p.name", "p.description", "p.sku").SQL(1)

		assert.Equal(t, "(LOWER(p.name) LIKE @p1 OR LOWER(p.description) LIKE @p1 OR LOWER(p.sku) LIKE @p1)", sql)
		assert.Equal(t, map[string]interface{}{"p1": "%drill%"}, params)
	})

	t.Run("wildcards are escaped", func(t *testing.T) {
		_, params := ContainsFold(`50%_off\`, "name").SQL(0)
		assert.Equal(t, `%50\%\_off\\%`, params["p0"])
	})

	t.Run("param numbering continues after contains", func(t *testing.T) {
		stmt := From("products").
			Where(ContainsFold("x", "name", "sku")).
			Where(Eq("category", "tools")).
			Build()

		assert.Equal(t, "SELECT * FROM products WHERE (LOWER(name) LIKE @p0 OR LOWER(sku) LIKE @p0) AND category = @p1", stmt.SQL)
		require.Len(t, stmt.Params, 2)
	})
}

func TestBuilder_String(t *testing.T) {
	s := From("products").Where(Eq("sku", "A1")).String()

	assert.Contains(t, s, "SQL: SELECT * FROM products WHERE sku = @p0")
	assert.Contains(t, s, "Params: map[p0:A1]")
}
