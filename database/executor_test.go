package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCollectsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, mrr FROM companies").WillReturnRows(
		sqlmock.NewRows([]string{"name", "mrr"}).
			AddRow("Acme", 1200.50).
			AddRow("Globex", 640.00),
	)

	result, err := Execute(context.Background(), db, "SELECT name, mrr FROM companies")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "mrr"}, result.Columns)
	assert.Equal(t, 2, result.RowCount)
	assert.Len(t, result.Rows, 2)
	assert.Equal(t, "Acme", result.Rows[0][0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteConvertsByteSlicesToStrings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT email FROM users").WillReturnRows(
		sqlmock.NewRows([]string{"email"}).AddRow([]byte("a@example.com")),
	)

	result, err := Execute(context.Background(), db, "SELECT email FROM users")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", result.Rows[0][0])
}

func TestExecuteEmptyResultSet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name FROM products").WillReturnRows(
		sqlmock.NewRows([]string{"name"}),
	)

	result, err := Execute(context.Background(), db, "SELECT name FROM products")
	require.NoError(t, err)
	assert.Equal(t, 0, result.RowCount)
	assert.Empty(t, result.Rows)
}

func TestExecuteSurfacesDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	driverErr := fmt.Errorf("Error 1064: You have an error in your SQL syntax")
	mock.ExpectQuery("SELECT bogus").WillReturnError(driverErr)

	_, err = Execute(context.Background(), db, "SELECT bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1064")
}

func TestListTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT table_name FROM information_schema.tables").
		WithArgs("e_commerce").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
			AddRow("customers").
			AddRow("orders"))

	tables, err := ListTables(context.Background(), db, "e_commerce")
	require.NoError(t, err)
	assert.Equal(t, []string{"customers", "orders"}, tables)
}

func TestSampleContextSkipsFailingTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tables := []TableSchema{
		{Name: "customers"},
		{Name: "orders"},
	}

	mock.ExpectQuery("SELECT \\* FROM customers LIMIT 3").WillReturnRows(
		sqlmock.NewRows([]string{"customer_id", "name"}).AddRow(1, "Ada"),
	)
	mock.ExpectQuery("SELECT \\* FROM orders LIMIT 3").
		WillReturnError(fmt.Errorf("table gone"))

	out := SampleContext(context.Background(), db, tables, 3)
	assert.Contains(t, out, "customers")
	assert.Contains(t, out, "Ada")
	assert.NotContains(t, out, "orders")
}

func TestSampleContextDisabled(t *testing.T) {
	out := SampleContext(context.Background(), nil, nil, 0)
	assert.Empty(t, out)
}
