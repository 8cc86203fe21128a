package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func recordN(t *testing.T, svc Service, n int) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		svc.RecordSession(Summary{
			EndedAt:        base.Add(time.Duration(i) * time.Minute),
			Outcome:        OutcomeFailed,
			Pressure:       10,
			MaxPressure:    10,
			CrisesResolved: i,
			Rounds:         i + 1,
			Roles:          map[string]string{"1001": "Student"},
		})
	}
}

func TestMemoryServiceListRecentNewestFirst(t *testing.T) {
	svc := NewMemoryService(50)
	recordN(t, svc, 5)

	items, err := svc.ListRecent(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].EndedAt.After(items[i-1].EndedAt) {
			t.Fatalf("items not newest-first: %v before %v", items[i-1].EndedAt, items[i].EndedAt)
		}
	}
	if items[0].CrisesResolved != 4 {
		t.Fatalf("newest CrisesResolved = %d, want 4", items[0].CrisesResolved)
	}
}

func TestMemoryServiceBoundedCapacity(t *testing.T) {
	svc := NewMemoryService(10)
	recordN(t, svc, 30)

	items, err := svc.ListRecent(context.Background(), 100)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	// 100 is over the clamp threshold, so the default page size applies.
	if len(items) != 10 {
		t.Fatalf("len(items) = %d, want 10", len(items))
	}
}

func TestMemoryServiceFillsZeroEndedAt(t *testing.T) {
	svc := NewMemoryService(10)
	svc.RecordSession(Summary{Outcome: OutcomeReset})

	items, err := svc.ListRecent(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(items) != 1 || items[0].EndedAt.IsZero() {
		t.Fatalf("expected EndedAt to be filled, got %+v", items)
	}
}

func TestNewServiceFromEnvMemoryDefault(t *testing.T) {
	svc, backend, err := NewServiceFromEnv("", "", "")
	if err != nil {
		t.Fatalf("NewServiceFromEnv: %v", err)
	}
	defer svc.Close()
	if backend != "memory" {
		t.Fatalf("backend = %q, want memory", backend)
	}
}

func TestHTTPHandlerRecent(t *testing.T) {
	svc := NewMemoryService(10)
	recordN(t, svc, 2)
	handler := NewHTTPHandler(svc)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/history/recent?limit=5", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Items []Summary `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(body.Items))
	}
	if body.Items[0].Roles["1001"] != "Student" {
		t.Fatalf("roles not preserved: %+v", body.Items[0])
	}
}

func TestHTTPHandlerRecentRejectsPost(t *testing.T) {
	handler := NewHTTPHandler(NewMemoryService(10))
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/history/recent", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
