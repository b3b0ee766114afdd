// Package ui serves the server-rendered web interface: a question form, the
// generated SQL, and the result table.
package ui

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	gomponents "maragu.dev/gomponents"

	"text2sql/database"
	"text2sql/query"
)

const csvMaxRows = 5000

type Handler struct {
	Log     *slog.Logger
	Service *query.Service
	MaxRows int
}

func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.QueryPage)
	r.Post("/run", h.RunQuery)
	r.Post("/download.csv", h.DownloadCSV)
}

// QueryPage renders the empty form, optionally preselecting ?db=.
func (h *Handler) QueryPage(w http.ResponseWriter, r *http.Request) {
	state := h.newState(r.URL.Query().Get("db"))
	h.fillTables(r, &state)
	renderHTML(w, http.StatusOK, queryPage(state))
}

// RunQuery handles the form submit: runs the pipeline and re-renders the
// page with the generated SQL plus either the result table or the error.
func (h *Handler) RunQuery(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, queryPage(h.newState("")))
		return
	}

	state := h.newState(r.Form.Get("database"))
	state.Question = strings.TrimSpace(r.Form.Get("question"))
	h.fillTables(r, &state)

	if state.Question == "" {
		state.RunError = "Please enter a natural language query."
		renderHTML(w, http.StatusOK, queryPage(state))
		return
	}

	outcome, err := h.Service.Run(r.Context(), state.SelectedDB, state.Question)
	state.SQL = outcome.SQL
	if err != nil {
		state.RunError = err.Error()
		renderHTML(w, http.StatusOK, queryPage(state))
		return
	}

	state.Result = outcome.Result
	renderHTML(w, http.StatusOK, queryPage(state))
}

// DownloadCSV re-executes the statement shown on the page and streams it as
// a CSV attachment.
func (h *Handler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, queryPage(h.newState("")))
		return
	}

	dbName := r.Form.Get("database")
	sqlText := strings.TrimSpace(r.Form.Get("sql"))
	state := h.newState(dbName)
	state.SQL = sqlText

	if sqlText == "" {
		state.RunError = "Nothing to export yet. Run a query first."
		renderHTML(w, http.StatusOK, queryPage(state))
		return
	}

	result, err := h.Service.ExecuteSQL(r.Context(), state.SelectedDB, sqlText)
	if err != nil {
		state.RunError = err.Error()
		renderHTML(w, http.StatusOK, queryPage(state))
		return
	}

	rows := result.Rows
	if len(rows) > csvMaxRows {
		rows = rows[:csvMaxRows]
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(result.Columns); err != nil {
		http.Error(w, "failed writing CSV header", http.StatusInternalServerError)
		return
	}
	for i := range rows {
		record := make([]string, 0, len(rows[i]))
		for j := range rows[i] {
			record = append(record, cellString(rows[i][j]))
		}
		if err := writer.Write(record); err != nil {
			http.Error(w, "failed writing CSV rows", http.StatusInternalServerError)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		http.Error(w, "failed finalizing CSV", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", state.SelectedDB+"_results.csv"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) newState(selected string) pageState {
	if _, err := database.Lookup(selected); err != nil {
		selected = database.DatabaseNames[0]
	}
	return pageState{
		Databases:  database.DatabaseNames,
		SelectedDB: selected,
		MaxRows:    h.MaxRows,
	}
}

// fillTables populates the sidebar table list. Failures are cosmetic and
// logged at debug level only.
func (h *Handler) fillTables(r *http.Request, state *pageState) {
	tables, err := h.Service.Tables(r.Context(), state.SelectedDB)
	if err != nil {
		h.Log.Debug("listing tables for sidebar", "database", state.SelectedDB, "error", err)
		return
	}
	state.Tables = tables
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
