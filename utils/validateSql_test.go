package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSQLAllowsReads(t *testing.T) {
	assert.True(t, ValidateSQL("SELECT COUNT(*) FROM companies"))
	assert.True(t, ValidateSQL("WITH t AS (SELECT 1) SELECT * FROM t"))
	// Keyword inside an identifier is not a keyword.
	assert.True(t, ValidateSQL("SELECT last_update FROM products"))
	assert.True(t, ValidateSQL("SELECT * FROM order_items"))
}

func TestValidateSQLRejectsDestructiveStatements(t *testing.T) {
	assert.False(t, ValidateSQL("DROP TABLE companies"))
	assert.False(t, ValidateSQL("delete from users"))
	assert.False(t, ValidateSQL("UPDATE users SET role = 'admin'"))
	assert.False(t, ValidateSQL("SELECT 1; TRUNCATE TABLE events"))
	assert.False(t, ValidateSQL("insert into users (email) values ('x')"))
}
