package dailymed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/henrybloomingdale/dailymed-cli/internal/nlm"
)

// recordingServer captures the path and query of the last request and
// replies with a minimal JSON body.
func recordingServer(t *testing.T) (*httptest.Server, *http.Request) {
	t.Helper()
	req := &http.Request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*req = *r
		w.Write([]byte(`{"metadata":{},"data":[]}`))
	}))
	t.Cleanup(srv.Close)
	return srv, req
}

func TestList_DefaultPagination(t *testing.T) {
	tests := []struct {
		name     string
		res      Resource
		wantSize string
	}{
		{name: "search uses pagesize 5", res: SPLs, wantSize: "5"},
		{name: "drugnames uses pagesize 10", res: DrugNames, wantSize: "10"},
		{name: "ndcs uses pagesize 10", res: NDCs, wantSize: "10"},
		{name: "drugclasses uses pagesize 10", res: DrugClasses, wantSize: "10"},
		{name: "uniis uses pagesize 10", res: UNIIs, wantSize: "10"},
		{name: "rxcuis uses pagesize 10", res: RxCUIs, wantSize: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, req := recordingServer(t)
			c := NewClient(WithBaseURL(srv.URL))

			if _, err := c.List(context.Background(), tt.res, ListQuery{}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			q := req.URL.Query()
			if got := q.Get("page"); got != "1" {
				t.Errorf("expected default page 1, got %q", got)
			}
			if got := q.Get("pagesize"); got != tt.wantSize {
				t.Errorf("expected default pagesize %s, got %q", tt.wantSize, got)
			}
			if len(q) != 2 {
				t.Errorf("expected only page and pagesize, got %v", q)
			}
		})
	}
}

func TestList_ExplicitPagination(t *testing.T) {
	srv, req := recordingServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	if _, err := c.SearchSPLs(context.Background(), ListQuery{Page: 3, PageSize: 25}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := req.URL.Query()
	if got := q.Get("page"); got != "3" {
		t.Errorf("expected page 3, got %q", got)
	}
	if got := q.Get("pagesize"); got != "25" {
		t.Errorf("expected pagesize 25, got %q", got)
	}
}

func TestList_FiltersPassedThrough(t *testing.T) {
	srv, req := recordingServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	filters := url.Values{}
	filters.Set("drug_name", "aspirin")
	if _, err := c.SearchSPLs(context.Background(), ListQuery{Page: 1, PageSize: 5, Filters: filters}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := req.URL.Query()
	want := url.Values{"drug_name": {"aspirin"}, "page": {"1"}, "pagesize": {"5"}}
	if len(q) != len(want) {
		t.Fatalf("expected exactly %d query keys, got %v", len(want), q)
	}
	for k, v := range want {
		if q.Get(k) != v[0] {
			t.Errorf("expected %s=%q, got %q", k, v[0], q.Get(k))
		}
	}
}

func TestList_OmittedFiltersAbsent(t *testing.T) {
	srv, req := recordingServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	if _, err := c.DrugNames(context.Background(), ListQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := req.URL.Query()
	for _, f := range DrugNames.Filters {
		if _, ok := q[f.Name]; ok {
			t.Errorf("omitted filter %q must not appear in query, got %q", f.Name, q.Get(f.Name))
		}
	}
}

// An explicitly supplied falsy value is a real filter, not an absent one.
func TestList_ExplicitFalseIsSent(t *testing.T) {
	srv, req := recordingServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	filters := url.Values{}
	filters.Set("boxed_warning", "false")
	if _, err := c.SearchSPLs(context.Background(), ListQuery{Filters: filters}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.URL.Query().Get("boxed_warning"); got != "false" {
		t.Errorf("expected boxed_warning=false on the wire, got %q", got)
	}
}

func TestList_RejectsUnknownFilter(t *testing.T) {
	c := NewClient(WithBaseURL("http://127.0.0.1:1"))

	filters := url.Values{}
	filters.Set("drug_name", "aspirin")
	_, err := c.DrugNames(context.Background(), ListQuery{Filters: filters})
	if err == nil {
		t.Fatal("expected error for filter not accepted by drugnames")
	}
	if !strings.Contains(err.Error(), "drug_name") {
		t.Errorf("expected offending filter in error, got: %v", err)
	}
}

func TestGetBySetID_Paths(t *testing.T) {
	tests := []struct {
		method   func(*Client, context.Context, string) (*nlm.Response, error)
		wantPath string
	}{
		{method: (*Client).SPL, wantPath: "/spls/abc-123.xml"},
		{method: (*Client).SPLHistory, wantPath: "/spls/abc-123/history.json"},
		{method: (*Client).SPLNDCs, wantPath: "/spls/abc-123/ndcs.json"},
		{method: (*Client).SPLPackaging, wantPath: "/spls/abc-123/packaging.json"},
	}

	for _, tt := range tests {
		t.Run(tt.wantPath, func(t *testing.T) {
			srv, req := recordingServer(t)
			c := NewClient(WithBaseURL(srv.URL))

			if _, err := tt.method(c, context.Background(), "abc-123"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.URL.Path != tt.wantPath {
				t.Errorf("expected path %q, got %q", tt.wantPath, req.URL.Path)
			}
			if len(req.URL.Query()) != 0 {
				t.Errorf("per-label endpoints must send no query parameters, got %v", req.URL.Query())
			}
		})
	}
}

func TestGetBySetID_EscapesID(t *testing.T) {
	srv, req := recordingServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	if _, err := c.SPLHistory(context.Background(), "a b/c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(req.URL.EscapedPath(), "/") != 3 {
		t.Errorf("set id was not escaped: %q", req.URL.EscapedPath())
	}
}

func TestGetBySetID_EmptyID(t *testing.T) {
	c := NewClient(WithBaseURL("http://127.0.0.1:1"))
	if _, err := c.SPL(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty set id")
	}
}

func TestSPL_ReturnsXML(t *testing.T) {
	const doc = `<?xml version="1.0"?><document/>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(doc))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	resp, err := c.SPL(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Kind != nlm.KindXML {
		t.Fatalf("expected KindXML, got %v", resp.Kind)
	}
	if resp.XML != doc {
		t.Errorf("expected verbatim XML, got %q", resp.XML)
	}
}

func TestSearchSPLs_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.SearchSPLs(context.Background(), ListQuery{})
	var he *nlm.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *nlm.HTTPError, got %T: %v", err, err)
	}
	if he.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", he.StatusCode)
	}
}

func TestResourceTable_Commands(t *testing.T) {
	seen := make(map[string]bool)
	for _, res := range Resources {
		if seen[res.Command] {
			t.Errorf("duplicate command %q", res.Command)
		}
		seen[res.Command] = true
		if res.DefaultPageSize <= 0 {
			t.Errorf("%s: missing default page size", res.Command)
		}
		if !strings.HasSuffix(res.Path, ".json") {
			t.Errorf("%s: list endpoints must be .json, got %q", res.Command, res.Path)
		}
	}
	for _, res := range SetIDResources {
		if seen[res.Command] {
			t.Errorf("duplicate command %q", res.Command)
		}
		seen[res.Command] = true
	}
	if len(seen) != 10 {
		t.Errorf("expected 10 subcommands, got %d", len(seen))
	}
}
