package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text2sql/database"
)

func TestBuildPromptIncludesSchemaVerbatim(t *testing.T) {
	for _, name := range database.DatabaseNames {
		tables, err := database.Lookup(name)
		require.NoError(t, err)
		desc := database.Describe(tables)

		prompt, err := BuildPrompt(desc, "how many rows are there?")
		require.NoError(t, err)
		assert.Contains(t, prompt, desc, "prompt for %s must contain the schema description verbatim", name)
	}
}

func TestBuildPromptIncludesQuestionAndRules(t *testing.T) {
	prompt, err := BuildPrompt("Database Schema:\n- companies: ...", "total revenue last month")
	require.NoError(t, err)

	assert.Contains(t, prompt, "total revenue last month")
	assert.Contains(t, prompt, "Use proper MySQL syntax")
	assert.Contains(t, prompt, "Do not include semicolon at the end")
	assert.Contains(t, prompt, "SQL Query:")
}
