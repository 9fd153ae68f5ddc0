package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"paisa/internal/core"
	"paisa/internal/services"
	"paisa/internal/storage"
)

func newTestServer(t *testing.T, seed bool) *Server {
	t.Helper()
	store := storage.NewMemoryStore()
	if seed {
		if err := storage.SeedIfEmpty(context.Background(), store); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return NewServer(":0", services.NewExpenseService(store, nil))
}

func doRequest(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)

	var decoded map[string]any
	if rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("%s %s: invalid JSON response %q: %v", method, path, rr.Body.String(), err)
		}
	}
	return rr, decoded
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, false)
	rr, body := doRequest(t, srv, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	if body["status"] != "ok" || body["timestamp"] == "" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestListExpensesSeededAndFiltered(t *testing.T) {
	srv := newTestServer(t, true)

	rr, body := doRequest(t, srv, http.MethodGet, "/api/expenses", "")
	if rr.Code != http.StatusOK || body["success"] != true {
		t.Fatalf("status=%d body=%v", rr.Code, body)
	}
	data := body["data"].([]any)
	if len(data) != 12 {
		t.Fatalf("expected 12 seeded records, got %d", len(data))
	}

	rr, body = doRequest(t, srv, http.MethodGet, "/api/expenses?month=January", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	jan := body["data"].([]any)
	if len(jan) != 10 {
		t.Fatalf("expected 10 January records, got %d", len(jan))
	}
	for _, item := range jan {
		if item.(map[string]any)["month"] != "January" {
			t.Fatalf("filter leaked record: %v", item)
		}
	}

	rr, body = doRequest(t, srv, http.MethodGet, "/api/expenses?month=All", "")
	if len(body["data"].([]any)) != 12 {
		t.Fatalf("month=All should return everything")
	}

	rr, body = doRequest(t, srv, http.MethodGet, "/api/expenses?month=March", "")
	if got := body["data"].([]any); len(got) != 0 {
		t.Fatalf("expected empty result for March, got %v", got)
	}
}

func TestSummarySeeded(t *testing.T) {
	srv := newTestServer(t, true)

	rr, body := doRequest(t, srv, http.MethodGet, "/api/expenses/summary", "")
	if rr.Code != http.StatusOK || body["success"] != true {
		t.Fatalf("status=%d body=%v", rr.Code, body)
	}
	data := body["data"].(map[string]any)

	overall := data["overall"].(map[string]any)
	if overall["count"].(float64) != 12 || overall["total"].(float64) != 655 {
		t.Fatalf("overall wrong: %v", overall)
	}

	byMonth := data["byMonth"].([]any)
	if len(byMonth) != 2 {
		t.Fatalf("expected 2 months, got %d", len(byMonth))
	}
	first := byMonth[0].(map[string]any)
	second := byMonth[1].(map[string]any)
	if first["month"] != "January" || second["month"] != "February" {
		t.Fatalf("expected calendar order, got %v then %v", first["month"], second["month"])
	}
	if first["total"].(float64) != 475 || second["total"].(float64) != 180 {
		t.Fatalf("month totals wrong: %v / %v", first, second)
	}

	byCategory := data["byCategory"].([]any)
	top := byCategory[0].(map[string]any)
	if top["category"] != "Food" || top["total"].(float64) != 370 {
		t.Fatalf("expected Food 370 first, got %v", top)
	}

	// Cross-collection invariant
	var monthSum, catSum float64
	for _, m := range byMonth {
		monthSum += m.(map[string]any)["total"].(float64)
	}
	for _, c := range byCategory {
		catSum += c.(map[string]any)["total"].(float64)
	}
	if monthSum != 655 || catSum != 655 {
		t.Fatalf("totals disagree: months=%v categories=%v", monthSum, catSum)
	}
}

func TestCreateExpense(t *testing.T) {
	srv := newTestServer(t, true)

	rr, body := doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"description":"Test Chai","amount":15,"category":"Food","month":"February","date":"2026-02-20"}`)
	if rr.Code != http.StatusCreated || body["success"] != true {
		t.Fatalf("status=%d body=%v", rr.Code, body)
	}
	created := body["data"].(map[string]any)
	if created["amount"].(float64) != 15 {
		t.Fatalf("amount: expected 15, got %v", created["amount"])
	}
	if created["id"].(float64) == 0 || created["created_at"] == "" {
		t.Fatalf("expected assigned id and timestamp: %v", created)
	}

	// The new record shows up in the February listing
	_, listBody := doRequest(t, srv, http.MethodGet, "/api/expenses?month=February", "")
	found := false
	for _, item := range listBody["data"].([]any) {
		if item.(map[string]any)["description"] == "Test Chai" {
			found = true
		}
	}
	if !found {
		t.Fatalf("created expense missing from February listing")
	}

	// And the summary reflects it (cache invalidated on write)
	_, sumBody := doRequest(t, srv, http.MethodGet, "/api/expenses/summary", "")
	overall := sumBody["data"].(map[string]any)["overall"].(map[string]any)
	if overall["count"].(float64) != 13 || overall["total"].(float64) != 670 {
		t.Fatalf("summary not refreshed after create: %v", overall)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	srv := newTestServer(t, false)

	cases := []struct {
		name string
		body string
	}{
		{"missing amount", `{"description":"Missing amount"}`},
		{"missing description", `{"amount":10,"category":"Food","month":"May","date":"2026-05-01"}`},
		{"zero amount", `{"description":"x","amount":0,"category":"Food","month":"May","date":"2026-05-01"}`},
		{"negative amount", `{"description":"x","amount":-5,"category":"Food","month":"May","date":"2026-05-01"}`},
		{"non-numeric amount", `{"description":"x","amount":"abc","category":"Food","month":"May","date":"2026-05-01"}`},
		{"missing month", `{"description":"x","amount":10,"category":"Food","date":"2026-05-01"}`},
		{"garbage body", `{not json`},
	}
	for _, tc := range cases {
		rr, body := doRequest(t, srv, http.MethodPost, "/api/expenses", tc.body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d (%v)", tc.name, rr.Code, body)
		}
		if body["success"] != false || body["error"] == "" {
			t.Fatalf("%s: expected error envelope, got %v", tc.name, body)
		}
	}

	// Nothing persisted
	_, listBody := doRequest(t, srv, http.MethodGet, "/api/expenses", "")
	if len(listBody["data"].([]any)) != 0 {
		t.Fatalf("invalid input was persisted")
	}
}

func TestDeleteExpense(t *testing.T) {
	srv := newTestServer(t, false)

	_, created := doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"description":"Test Chai","amount":15,"category":"Food","month":"February","date":"2026-02-20"}`)
	id := int64(created["data"].(map[string]any)["id"].(float64))

	rr, body := doRequest(t, srv, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), "")
	if rr.Code != http.StatusOK || body["success"] != true {
		t.Fatalf("delete: status=%d body=%v", rr.Code, body)
	}

	// Repeat delete on the same id is a 404
	rr, body = doRequest(t, srv, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", id), "")
	if rr.Code != http.StatusNotFound || body["success"] != false {
		t.Fatalf("repeat delete: status=%d body=%v", rr.Code, body)
	}

	rr, _ = doRequest(t, srv, http.MethodDelete, "/api/expenses/99999", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", rr.Code)
	}

	rr, _ = doRequest(t, srv, http.MethodDelete, "/api/expenses/abc", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("malformed id: expected 404, got %d", rr.Code)
	}
}

// failingStore simulates an unavailable storage medium.
type failingStore struct{}

var errMediumDown = errors.New("disk I/O error")

func (failingStore) Insert(context.Context, core.Expense) (core.Expense, error) {
	return core.Expense{}, errMediumDown
}
func (failingStore) ListAll(context.Context, string) ([]core.Expense, error) {
	return nil, errMediumDown
}
func (failingStore) GetByID(context.Context, int64) (core.Expense, bool, error) {
	return core.Expense{}, false, errMediumDown
}
func (failingStore) DeleteByID(context.Context, int64) (bool, error) { return false, errMediumDown }
func (failingStore) Aggregate(context.Context) (core.Summary, error) {
	return core.Summary{}, errMediumDown
}
func (failingStore) Close() error { return nil }

func TestStorageErrorsReturn500(t *testing.T) {
	srv := NewServer(":0", services.NewExpenseService(failingStore{}, nil))

	paths := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/expenses", ""},
		{http.MethodGet, "/api/expenses/summary", ""},
		{http.MethodPost, "/api/expenses", `{"description":"x","amount":1,"category":"Food","month":"May","date":"2026-05-01"}`},
		{http.MethodDelete, "/api/expenses/1", ""},
	}
	for _, tc := range paths {
		rr, body := doRequest(t, srv, tc.method, tc.path, tc.body)
		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("%s %s: expected 500, got %d", tc.method, tc.path, rr.Code)
		}
		if body["success"] != false {
			t.Fatalf("%s %s: expected failure envelope, got %v", tc.method, tc.path, body)
		}
	}
}

func TestDashboardServed(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Paisa") {
		t.Fatalf("dashboard page missing heading")
	}
}
