package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bobmcallan/invest-portal/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, common.NewSilentLogger())
}

func TestRequest_SendsNoCacheHeadersAndGET(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Cache-Control"); got != "no-cache, no-store" {
			t.Errorf("expected Cache-Control no-cache, no-store, got %q", got)
		}
		if got := r.Header.Get("Pragma"); got != "no-cache" {
			t.Errorf("expected Pragma no-cache, got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("expected Accept application/json, got %q", got)
		}
		w.Write([]byte(`{"status":"ok"}`))
	})

	health, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !health.OK() {
		t.Errorf("expected status ok, got %q", health.Status)
	}
}

func TestRequest_PropagatesCorrelationID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Correlation-ID"); got != "req-42" {
			t.Errorf("expected correlation id req-42, got %q", got)
		}
		w.Write([]byte(`{"status":"ok"}`))
	})

	ctx := common.WithCorrelationID(context.Background(), "req-42")
	if _, err := c.Health(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequest_PreservesBasePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/engine/api/health" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/engine/", time.Second, nil)
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequest_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"boom"}`))
	})

	_, err := c.CurrentPortfolio(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fe.Path != "/api/portfolio/current" {
		t.Errorf("expected path /api/portfolio/current, got %s", fe.Path)
	}
	if fe.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", fe.Status)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("expected status in error message, got %q", err.Error())
	}
}

func TestRequest_NotFoundIsFetchError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Decision(context.Background(), 999)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Status != http.StatusNotFound {
		t.Fatalf("expected 404 FetchError, got %v", err)
	}
	if fe.Path != "/api/decisions/999" {
		t.Errorf("expected path /api/decisions/999, got %s", fe.Path)
	}
}

func TestRequest_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, common.NewSilentLogger())
	_, err := c.PerformanceMetrics(context.Background())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T (%v)", err, err)
	}
	if fe.Status != 0 {
		t.Errorf("expected no status on transport failure, got %d", fe.Status)
	}
	if fe.Err == nil {
		t.Error("expected underlying cause on transport failure")
	}
}

func TestRequest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond, common.NewSilentLogger())
	_, err := c.Health(context.Background())

	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TimeoutError, got %T (%v)", err, err)
	}
	if te.After != 50*time.Millisecond {
		t.Errorf("expected After 50ms, got %s", te.After)
	}
	if te.Path != "/api/health" {
		t.Errorf("expected path /api/health, got %s", te.Path)
	}
}

func TestRequest_UndecodableBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := c.PerformanceMetrics(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fe.Status != http.StatusOK {
		t.Errorf("expected status 200 on decode failure, got %d", fe.Status)
	}
	if fe.Err == nil {
		t.Error("expected decode cause")
	}
}

func TestRequest_CancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Health(ctx)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	var te *TimeoutError
	if errors.As(err, &te) {
		t.Error("cancellation should not be reported as a timeout")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestQueryDefaults(t *testing.T) {
	tests := []struct {
		name      string
		call      func(c *Client) error
		wantPath  string
		wantQuery string
	}{
		{"value history default", func(c *Client) error { _, err := c.ValueHistory(context.Background(), 0); return err }, "/api/portfolio/value-history", "days=30"},
		{"value history override", func(c *Client) error { _, err := c.ValueHistory(context.Background(), 60); return err }, "/api/portfolio/value-history", "days=60"},
		{"recent decisions default", func(c *Client) error { _, err := c.RecentDecisions(context.Background(), -1); return err }, "/api/decisions/recent", "limit=10"},
		{"recent decisions override", func(c *Client) error { _, err := c.RecentDecisions(context.Background(), 5); return err }, "/api/decisions/recent", "limit=5"},
		{"with outcomes default", func(c *Client) error { _, err := c.DecisionsWithOutcomes(context.Background(), 0); return err }, "/api/decisions/with-outcomes", "limit=20"},
		{"recent trades default", func(c *Client) error { _, err := c.RecentTrades(context.Background(), 0); return err }, "/api/trades/recent", "limit=20"},
		{"trades for decision", func(c *Client) error { _, err := c.TradesForDecision(context.Background(), 7); return err }, "/api/trades/for-decision/7", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.wantPath {
					t.Errorf("expected path %s, got %s", tt.wantPath, r.URL.Path)
				}
				if r.URL.RawQuery != tt.wantQuery {
					t.Errorf("expected query %q, got %q", tt.wantQuery, r.URL.RawQuery)
				}
				if strings.HasSuffix(r.URL.Path, "/recent") && strings.HasPrefix(r.URL.Path, "/api/trades") {
					w.Write([]byte(`{"trades":[],"total_trades":0}`))
					return
				}
				if strings.HasPrefix(r.URL.Path, "/api/portfolio") {
					w.Write([]byte(`{"snapshots":[]}`))
					return
				}
				w.Write([]byte(`[]`))
			})
			if err := tt.call(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValueHistory_Decodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"snapshots": []map[string]interface{}{
				{"date": "2024-03-01", "total_value": 100000, "cash_balance": 40000, "equity_value": 60000},
				{"date": "2024-03-02", "total_value": 101000, "cash_balance": 40000, "equity_value": 61000},
			},
			"latest_snapshot_date": "2024-03-02T15:30:00",
			"total_return_pct":     1.0,
			"days_tracked":         2,
		})
	})

	history, err := c.ValueHistory(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history.Snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(history.Snapshots))
	}
	if history.Snapshots[1].TotalValue != 101000 {
		t.Errorf("expected total_value 101000, got %v", history.Snapshots[1].TotalValue)
	}
	if history.LatestSnapshotDate.IsZero() {
		t.Error("expected latest_snapshot_date to be parsed")
	}
}

func TestFetchError_Messages(t *testing.T) {
	tests := []struct {
		err  *FetchError
		want string
	}{
		{&FetchError{Path: "/api/health", Status: 503, Message: "Service Unavailable"}, "failed to fetch /api/health: 503 Service Unavailable"},
		{&FetchError{Path: "/api/health", Err: errors.New("connection refused")}, "failed to fetch /api/health: connection refused"},
		{&FetchError{Path: "/api/health"}, "failed to fetch /api/health"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	c := NewClient("http://localhost:8000/", 0, nil)
	if c.timeout != DefaultTimeout {
		t.Errorf("expected default timeout %s, got %s", DefaultTimeout, c.timeout)
	}
	if c.BaseURL() != "http://localhost:8000" {
		t.Errorf("expected trailing slash trimmed, got %s", c.BaseURL())
	}
}

func TestRequest_CallerDeadlineIsNotClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, common.NewSilentLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.Health(ctx)

	var te *TimeoutError
	if errors.As(err, &te) {
		t.Fatalf("caller deadline reported as client timeout: %v", err)
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T (%v)", err, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded in chain, got %v", err)
	}
}

func TestRequest_OversizedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"`))
		w.Write([]byte(strings.Repeat("x", maxBodyBytes)))
		w.Write([]byte(`"}`))
	})

	_, err := c.Health(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T (%v)", err, err)
	}
	if !errors.Is(err, errBodyTooLarge) {
		t.Errorf("expected size limit error, got %v", err)
	}
	if !strings.Contains(err.Error(), "byte limit") {
		t.Errorf("expected message to name the limit, got %q", err.Error())
	}
}

func TestRequest_BodyAtLimitDecodes(t *testing.T) {
	padding := maxBodyBytes - len(`{"status":"ok","pad":""}`)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","pad":"` + strings.Repeat("x", padding) + `"}`))
	})

	h, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Status != "ok" {
		t.Errorf("expected status ok, got %s", h.Status)
	}
}
