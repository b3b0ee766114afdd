package llm

import (
	"github.com/tmc/langchaingo/prompts"
)

// sqlPromptText instructs the model to emit exactly one single-line MySQL
// statement with no markdown and no trailing semicolon.
const sqlPromptText = `Based on the table schema below, write a SQL query that would answer the user's question:

IMPORTANT RULES:
- Only provide the SQL query, nothing else
- Provide the SQL query in a single line without line breaks
- Use proper MySQL syntax
- Do not include any explanations or markdown formatting
- Do not include semicolon at the end

Table Schema:
{{.schema}}

Question: {{.question}}

SQL Query:`

// stopWords cut the completion off before the model starts inventing a
// result set or trailing prose.
var stopWords = []string{"\nSQLResult:", "\n\n"}

var sqlPrompt = prompts.NewPromptTemplate(sqlPromptText, []string{"schema", "question"})

// BuildPrompt renders the instruction template with the schema description
// and the user's question. The schema text appears in the output verbatim.
func BuildPrompt(schemaDesc, question string) (string, error) {
	return sqlPrompt.Format(map[string]any{
		"schema":   schemaDesc,
		"question": question,
	})
}
