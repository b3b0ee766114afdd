// Package query runs the question-to-result pipeline: prompt assembly, LLM
// call, SQL extraction, and database execution.
package query

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"text2sql/database"
	"text2sql/llm"
	"text2sql/utils"
)

// ErrForbidden is returned when the read-only guard rejects a generated
// statement before execution.
var ErrForbidden = fmt.Errorf("query contains forbidden operations")

// DBGetter hands out database handles by schema name.
type DBGetter interface {
	Get(ctx context.Context, name string) (*sql.DB, error)
}

// Service wires the pipeline stages together. One request flows straight
// through; nothing is retried or queued.
type Service struct {
	Log        *slog.Logger
	Provider   llm.Provider
	DBs        DBGetter
	ReadOnly   bool
	SampleRows int
	LLMTimeout time.Duration
}

// Outcome is the result of one pipeline run. SQL is populated as soon as a
// statement was extracted, so callers can display it even when execution
// failed.
type Outcome struct {
	Database string
	Question string
	SQL      string
	Result   *database.QueryResult
}

// Run executes the full pipeline for one question against one database.
func (s *Service) Run(ctx context.Context, dbName, question string) (*Outcome, error) {
	outcome := &Outcome{Database: dbName, Question: question}

	tables, err := database.Lookup(dbName)
	if err != nil {
		return outcome, err
	}

	db, err := s.DBs.Get(ctx, dbName)
	if err != nil {
		return outcome, err
	}

	schemaDesc := database.Describe(tables)
	if s.SampleRows > 0 {
		if sample := database.SampleContext(ctx, db, tables, s.SampleRows); sample != "" {
			schemaDesc += "\nExample rows:\n" + sample
		}
	}

	llmCtx := ctx
	if s.LLMTimeout > 0 {
		var cancel context.CancelFunc
		llmCtx, cancel = context.WithTimeout(ctx, s.LLMTimeout)
		defer cancel()
	}

	raw, err := s.Provider.GenerateSQL(llmCtx, schemaDesc, question)
	if err != nil {
		return outcome, fmt.Errorf("generate SQL: %w", err)
	}

	sqlText, err := llm.ExtractSQL(raw)
	if err != nil {
		return outcome, err
	}
	outcome.SQL = sqlText

	if s.ReadOnly && !utils.ValidateSQL(sqlText) {
		return outcome, ErrForbidden
	}

	result, err := database.Execute(ctx, db, sqlText)
	if err != nil {
		return outcome, fmt.Errorf("execute query: %w", err)
	}
	outcome.Result = result

	s.Log.Info("query executed",
		"database", dbName,
		"provider", s.Provider.Name(),
		"rows", result.RowCount,
	)
	return outcome, nil
}

// ExecuteSQL runs an already-extracted statement, applying the same guard as
// Run. The CSV export uses it to re-execute the statement shown to the user
// without another round trip to the model.
func (s *Service) ExecuteSQL(ctx context.Context, dbName, sqlText string) (*database.QueryResult, error) {
	if _, err := database.Lookup(dbName); err != nil {
		return nil, err
	}
	db, err := s.DBs.Get(ctx, dbName)
	if err != nil {
		return nil, err
	}
	if s.ReadOnly && !utils.ValidateSQL(sqlText) {
		return nil, ErrForbidden
	}
	return database.Execute(ctx, db, sqlText)
}

// Tables lists the tables that exist in the connected database. Used by the
// UI info panel; an error here is cosmetic and callers may ignore it.
func (s *Service) Tables(ctx context.Context, dbName string) ([]string, error) {
	db, err := s.DBs.Get(ctx, dbName)
	if err != nil {
		return nil, err
	}
	return database.ListTables(ctx, db, dbName)
}
