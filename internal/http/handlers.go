package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"paisa/internal/core"
)

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleListExpenses returns all records, optionally filtered by the
// month query parameter ("All" and absent both mean unfiltered).
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(r.URL.Query().Get("month"))

	expenses, err := s.service.ListExpenses(r.Context(), month)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	writeData(w, http.StatusOK, expenses)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.getSummary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, summary)
}

type createExpenseRequest struct {
	Description string     `json:"description"`
	Amount      core.Money `json:"amount"`
	Category    string     `json:"category"`
	Month       string     `json:"month"`
	Date        string     `json:"date"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, core.ErrInvalidAmount) {
			writeError(w, http.StatusBadRequest, "Amount must be a positive number")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.service.CreateExpense(r.Context(), core.Expense{
		Description: sanitizeInput(req.Description),
		Amount:      req.Amount,
		Category:    sanitizeInput(req.Category),
		Month:       sanitizeInput(req.Month),
		Date:        sanitizeInput(req.Date),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	s.invalidateSummary()
	writeData(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	// A malformed id cannot match any record
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Expense not found")
		return
	}

	if err := s.service.DeleteExpense(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	s.invalidateSummary()
	writeMessage(w, http.StatusOK, "Expense deleted")
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
