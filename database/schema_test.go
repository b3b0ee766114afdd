package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownDatabases(t *testing.T) {
	for _, name := range DatabaseNames {
		tables, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, tables, name)
	}
}

func TestLookupUnknownDatabase(t *testing.T) {
	_, err := Lookup("payroll")
	require.ErrorIs(t, err, ErrUnknownDatabase)
}

func TestEnterpriseSaasHasCompaniesTable(t *testing.T) {
	tables, err := Lookup("enterprise_saas")
	require.NoError(t, err)

	found := false
	for _, table := range tables {
		if table.Name == "companies" {
			found = true
		}
	}
	assert.True(t, found, "enterprise_saas must describe a companies table")
}

func TestDescribeIsDeterministic(t *testing.T) {
	tables, err := Lookup("e_commerce")
	require.NoError(t, err)
	assert.Equal(t, Describe(tables), Describe(tables))
}

func TestDescribeContainsEveryTableAndColumn(t *testing.T) {
	tables, err := Lookup("analytics")
	require.NoError(t, err)

	desc := Describe(tables)
	for _, table := range tables {
		assert.Contains(t, desc, table.Name)
		for _, col := range table.Columns {
			assert.Contains(t, desc, col.Name)
		}
	}
}
