package spinque

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(&Config{
		BaseURL:        baseURL,
		RateLimit:      1000,
		RateBurst:      1000,
		RequestTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestBuildSearchURLWithoutCategory(t *testing.T) {
	client := newTestClient(t, "https://rest.spinque.com/4/oorlogsbronnen/api/in10")

	got := client.buildSearchURL("market garden", "", 10, 0)
	want := "https://rest.spinque.com/4/oorlogsbronnen/api/in10" +
		"/e/integrated_search/p/topic/market%20garden/results,count?count=10&offset=0&config=production"
	if got != want {
		t.Errorf("buildSearchURL() =\n  %s\nwant\n  %s", got, want)
	}
}

func TestBuildSearchURLWithCategory(t *testing.T) {
	client := newTestClient(t, "https://rest.spinque.com/4/oorlogsbronnen/api/in10")

	got := client.buildSearchURL("roermond", "Person", 5, 10)

	if !strings.Contains(got, "/q/class:FILTER/p/value/1.0(http%3A%2F%2Fschema.org%2FPerson)") {
		t.Errorf("buildSearchURL() missing class filter segment: %s", got)
	}
	if !strings.Contains(got, "count=5&offset=10") {
		t.Errorf("buildSearchURL() missing paging parameters: %s", got)
	}
	if !strings.HasSuffix(got, "config=production") {
		t.Errorf("buildSearchURL() missing config parameter: %s", got)
	}
}

func TestDecodeSearchResponse(t *testing.T) {
	testcases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid response",
			body: `[{"offset":0,"count":1,"items":[{"rank":1,"probability":0.5,
				"tuple":[{"id":"x","class":["http://schema.org/Person"],"attributes":{}}]}]},
				{"total":42,"stats":[]}]`,
		},
		{
			name: "empty items is valid",
			body: `[{"offset":0,"count":0,"items":[]},{"total":0}]`,
		},
		{
			name:    "not an array",
			body:    `{"error":"nope"}`,
			wantErr: "not a JSON array",
		},
		{
			name:    "missing stats element",
			body:    `[{"items":[]}]`,
			wantErr: "expected 2 response elements",
		},
		{
			name:    "missing items field",
			body:    `[{"offset":0,"count":0},{"total":3}]`,
			wantErr: "no items field",
		},
		{
			name:    "negative total",
			body:    `[{"items":[]},{"total":-1}]`,
			wantErr: "negative total",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			page, stats, err := decodeSearchResponse([]byte(tc.body))

			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("decodeSearchResponse: %v", err)
				}
				if page == nil || stats == nil {
					t.Fatal("expected page and stats")
				}
				if page.Items == nil {
					t.Error("Items should never be nil on success")
				}
				return
			}

			if err == nil {
				t.Fatal("expected error")
			}
			searchErr, ok := err.(*SearchError)
			if !ok {
				t.Fatalf("expected *SearchError, got %T", err)
			}
			if searchErr.Type != types.ErrorTypeMalformedResponse {
				t.Errorf("Type = %s, want %s", searchErr.Type, types.ErrorTypeMalformedResponse)
			}
			if !strings.Contains(searchErr.Message, tc.wantErr) {
				t.Errorf("Message = %q, want it to contain %q", searchErr.Message, tc.wantErr)
			}
		})
	}
}

func TestSearchSuccess(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"offset":0,"count":1,"items":[{"rank":1,"probability":0.9,
				"tuple":[{"id":"nimh/1","class":["http://schema.org/Photograph"],
				"attributes":{"http://schema.org/name":"Bevrijding Amsterdam"}}]}]},
			{"total":128,"stats":[]}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	page, stats, err := client.Search(context.Background(), "amsterdam", "Photograph", 1, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(page.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(page.Items))
	}
	if page.Items[0].Category() != "Photograph" {
		t.Errorf("Category() = %q", page.Items[0].Category())
	}
	if stats.Total != 128 {
		t.Errorf("Total = %d, want 128", stats.Total)
	}
	if !strings.Contains(gotPath, "/e/integrated_search/p/topic/amsterdam") {
		t.Errorf("request path = %s", gotPath)
	}
}

func TestSearchHTTPErrorIsClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, _, err := client.Search(context.Background(), "amsterdam", "", 10, 0)
	if err == nil {
		t.Fatal("expected error")
	}

	searchErr, ok := err.(*SearchError)
	if !ok {
		t.Fatalf("expected *SearchError, got %T", err)
	}
	if searchErr.Type != types.ErrorTypeRateLimit {
		t.Errorf("Type = %s, want %s", searchErr.Type, types.ErrorTypeRateLimit)
	}
	if !searchErr.IsRetryable() {
		t.Error("rate limit errors should be retryable")
	}
}

func TestSearchContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := client.Search(ctx, "amsterdam", "", 10, 0)
	if err == nil {
		t.Fatal("expected error after context timeout")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(nil); err == nil {
		t.Error("nil config should be rejected")
	}
	if _, err := NewClient(&Config{}); err == nil {
		t.Error("missing base URL should be rejected")
	}
}
