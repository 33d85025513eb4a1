// Package server exposes the ledger over a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/fairshare/internal/service"
	"github.com/mmynk/fairshare/internal/storage"
)

// Server holds the HTTP handlers for the ledger API.
type Server struct {
	svc *service.LedgerService
}

// New creates a Server over the given service.
func New(svc *service.LedgerService) *Server {
	return &Server{svc: svc}
}

// Routes returns a mux with all API routes registered.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/groups", s.handleCreateGroup)
	mux.HandleFunc("GET /api/groups", s.handleListGroups)
	mux.HandleFunc("GET /api/groups/{id}", s.handleGetGroup)

	mux.HandleFunc("POST /api/groups/{id}/members", s.handleAddMembers)
	mux.HandleFunc("GET /api/groups/{id}/members", s.handleGetMembers)
	mux.HandleFunc("DELETE /api/groups/{id}/members/{memberID}", s.handleRemoveMember)

	mux.HandleFunc("POST /api/groups/{id}/expenses", s.handleAddExpense)
	mux.HandleFunc("GET /api/groups/{id}/expenses", s.handleGetExpenses)
	mux.HandleFunc("PUT /api/expenses/{id}", s.handleUpdateExpense)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)
	mux.HandleFunc("GET /api/expenses/{id}/splits", s.handleGetExpenseSplits)

	mux.HandleFunc("GET /api/groups/{id}/balances", s.handleGetBalances)
	mux.HandleFunc("GET /api/groups/{id}/settlements/plan", s.handlePlanSettlements)
	mux.HandleFunc("POST /api/groups/{id}/settlements", s.handleRecordSettlement)
	mux.HandleFunc("GET /api/groups/{id}/settlements", s.handleListSettlements)

	return mux
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError writes a JSON error body.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service and storage errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrEmptyDescription),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrNotMember),
		errors.Is(err, service.ErrSelfSettlement):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeBody decodes the request body into v, rejecting unknown fields.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
