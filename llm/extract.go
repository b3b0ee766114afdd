package llm

import (
	"fmt"
	"strings"
)

// ErrNotSQL is returned when the model's text does not contain a statement
// starting with a recognised SQL keyword.
var ErrNotSQL = fmt.Errorf("LLM response does not contain a SQL statement")

// leadingMarkers are the wrappers models tend to put in front of the
// statement despite being told not to.
var leadingMarkers = []string{"```sql", "```", "SQL Query:", "Query:"}

var validPrefixes = []string{"select", "insert", "update", "delete", "with"}

// ExtractSQL strips markdown fences, label prefixes, backticks, and the
// trailing semicolon from the model's output, yielding exactly the inner
// statement. It fails with ErrNotSQL when no statement is left or the text
// does not start with a SQL keyword.
func ExtractSQL(raw string) (string, error) {
	query := strings.TrimSpace(raw)

	for changed := true; changed; {
		changed = false
		for _, marker := range leadingMarkers {
			if strings.HasPrefix(query, marker) {
				query = strings.TrimSpace(strings.TrimPrefix(query, marker))
				changed = true
			}
		}
	}

	query = strings.TrimSpace(strings.TrimSuffix(query, "```"))
	query = strings.TrimRight(query, ";")
	query = strings.TrimSpace(strings.Trim(query, "`"))

	if query == "" {
		return "", ErrNotSQL
	}

	lowerQuery := strings.ToLower(query)
	for _, prefix := range validPrefixes {
		if strings.HasPrefix(lowerQuery, prefix) {
			return query, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotSQL, query)
}
