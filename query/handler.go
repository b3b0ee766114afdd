package query

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"text2sql/database"
	"text2sql/llm"
)

type QueryRequest struct {
	Database string `json:"database"`
	Question string `json:"question"`
}

type QueryResponse struct {
	Database string   `json:"database,omitempty"`
	Question string   `json:"question,omitempty"`
	SQL      string   `json:"sql,omitempty"`
	Columns  []string `json:"columns,omitempty"`
	Rows     [][]any  `json:"rows,omitempty"`
	RowCount int      `json:"row_count"`
	Error    string   `json:"error,omitempty"`
}

// Handler exposes the pipeline as a JSON API.
type Handler struct {
	Log     *slog.Logger
	Service *Service
}

// HandleGenerateQuery serves POST /api/query.
func (h *Handler) HandleGenerateQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, QueryResponse{Error: "invalid request body"})
		return
	}

	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, QueryResponse{Error: "question is required"})
		return
	}
	if req.Database == "" {
		req.Database = database.DatabaseNames[0]
	}

	outcome, err := h.Service.Run(r.Context(), req.Database, req.Question)
	if err != nil {
		h.Log.Error("query pipeline failed",
			"database", req.Database,
			"error", err,
		)
		writeJSON(w, statusFor(err), QueryResponse{
			Database: req.Database,
			Question: req.Question,
			SQL:      outcome.SQL,
			Error:    err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, QueryResponse{
		Database: outcome.Database,
		Question: outcome.Question,
		SQL:      outcome.SQL,
		Columns:  outcome.Result.Columns,
		Rows:     outcome.Result.Rows,
		RowCount: outcome.Result.RowCount,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, database.ErrUnknownDatabase),
		errors.Is(err, ErrForbidden):
		return http.StatusBadRequest
	case errors.Is(err, llm.ErrNotSQL):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body QueryResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
