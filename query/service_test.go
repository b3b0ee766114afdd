package query

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text2sql/database"
	"text2sql/llm"
)

type stubProvider struct {
	text string
	err  error

	gotSchema   string
	gotQuestion string
}

func (s *stubProvider) GenerateSQL(_ context.Context, schemaDesc, question string) (string, error) {
	s.gotSchema = schemaDesc
	s.gotQuestion = question
	return s.text, s.err
}

func (s *stubProvider) Name() string { return "stub" }

type stubDBs struct {
	db  *sql.DB
	err error
}

func (s stubDBs) Get(context.Context, string) (*sql.DB, error) { return s.db, s.err }

func newTestService(t *testing.T, provider llm.Provider) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Service{
		Log:      slog.New(slog.NewTextHandler(testWriter{t}, nil)),
		Provider: provider,
		DBs:      stubDBs{db: db},
	}, mock
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestRunHappyPath(t *testing.T) {
	provider := &stubProvider{text: "```sql\nSELECT COUNT(*) FROM companies;\n```"}
	svc, mock := newTestService(t, provider)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM companies`).WillReturnRows(
		sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(int64(12)),
	)

	outcome, err := svc.Run(context.Background(), "enterprise_saas", "how many companies are there?")
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM companies", outcome.SQL)
	assert.Equal(t, 1, outcome.Result.RowCount)
	assert.Equal(t, int64(12), outcome.Result.Rows[0][0])
	assert.Equal(t, "how many companies are there?", provider.gotQuestion)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunSendsSchemaDescriptionToProvider(t *testing.T) {
	provider := &stubProvider{text: "SELECT 1"}
	svc, mock := newTestService(t, provider)
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	_, err := svc.Run(context.Background(), "enterprise_saas", "anything")
	require.NoError(t, err)

	tables, err := database.Lookup("enterprise_saas")
	require.NoError(t, err)
	assert.Contains(t, provider.gotSchema, database.Describe(tables))
}

func TestRunAppendsSampleRowsToSchemaContext(t *testing.T) {
	provider := &stubProvider{text: "SELECT 1"}
	svc, mock := newTestService(t, provider)
	svc.SampleRows = 2

	tables, err := database.Lookup("analytics")
	require.NoError(t, err)
	for _, table := range tables {
		mock.ExpectQuery(fmt.Sprintf(`SELECT \* FROM %s LIMIT 2`, table.Name)).
			WillReturnRows(sqlmock.NewRows([]string{"c"}).AddRow("v"))
	}
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	_, err = svc.Run(context.Background(), "analytics", "anything")
	require.NoError(t, err)
	assert.Contains(t, provider.gotSchema, "Example rows:")
	assert.Contains(t, provider.gotSchema, "rows from sessions")
}

func TestRunUnknownDatabase(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{text: "SELECT 1"})

	_, err := svc.Run(context.Background(), "payroll", "anything")
	require.ErrorIs(t, err, database.ErrUnknownDatabase)
}

func TestRunProviderFailure(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{err: fmt.Errorf("401 invalid api key")})

	_, err := svc.Run(context.Background(), "e_commerce", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestRunMalformedResponse(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{text: "I am not able to help with that."})

	_, err := svc.Run(context.Background(), "e_commerce", "anything")
	require.ErrorIs(t, err, llm.ErrNotSQL)
}

func TestRunReadOnlyGuard(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{text: "DELETE FROM users"})
	svc.ReadOnly = true

	outcome, err := svc.Run(context.Background(), "enterprise_saas", "remove everyone")
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "DELETE FROM users", outcome.SQL)
}

func TestRunGuardDisabledByDefault(t *testing.T) {
	svc, mock := newTestService(t, &stubProvider{text: "DELETE FROM users"})
	mock.ExpectQuery("DELETE FROM users").WillReturnRows(sqlmock.NewRows(nil))

	_, err := svc.Run(context.Background(), "enterprise_saas", "remove everyone")
	require.NoError(t, err)
}

func TestRunSurfacesExecutionError(t *testing.T) {
	svc, mock := newTestService(t, &stubProvider{text: "SELECT bogus FROM companies"})
	mock.ExpectQuery("SELECT bogus FROM companies").
		WillReturnError(fmt.Errorf("Error 1054: Unknown column 'bogus'"))

	outcome, err := svc.Run(context.Background(), "enterprise_saas", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1054")
	assert.Equal(t, "SELECT bogus FROM companies", outcome.SQL)
	assert.Nil(t, outcome.Result)
}
