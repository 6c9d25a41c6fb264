// Package dailymed provides a client for the DailyMed v2 REST API.
//
// Each operation is a thin parameter-assembly step over the shared nlm base
// client. The paginated endpoints are driven by a single Resource table (see
// resources.go) consumed by the generic List method; the named methods are
// one-line delegations so the wire format lives in exactly one place.
package dailymed

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/henrybloomingdale/dailymed-cli/internal/nlm"
)

// Client is a DailyMed API client. It embeds the shared NLM base client for
// URL construction, timeouts, pacing, and response dispatch.
type Client struct {
	*nlm.Client
}

// Option configures a Client (alias for nlm.Option).
type Option = nlm.Option

// Re-export base client options so callers need only this package.
var (
	WithBaseURL          = nlm.WithBaseURL
	WithHTTPClient       = nlm.WithHTTPClient
	WithTimeout          = nlm.WithTimeout
	WithMaxResponseBytes = nlm.WithMaxResponseBytes
	WithLogger           = nlm.WithLogger
)

// NewClient creates a new DailyMed client with the given options.
func NewClient(opts ...Option) *Client {
	return &Client{Client: nlm.NewClient(opts...)}
}

// NewClientWithBase creates a DailyMed client using an existing base client.
func NewClientWithBase(base *nlm.Client) *Client {
	return &Client{Client: base}
}

// ListQuery carries pagination and the already-filtered optional parameters
// for a list endpoint. Filters must contain only keys the caller actually
// supplied; absent filters are never sent, but an explicit falsy value
// (e.g. boxed_warning=false) belongs in Filters like any other.
type ListQuery struct {
	Page     int // <= 0 means page 1
	PageSize int // <= 0 means the resource default
	Filters  url.Values
}

// List performs a paginated GET against the given resource. Page and
// pagesize are always sent, falling back to defaults when unset. Filter
// keys not accepted by the resource are rejected before any request is made.
func (c *Client) List(ctx context.Context, res Resource, q ListQuery) (*nlm.Response, error) {
	params := url.Values{}
	for key, vals := range q.Filters {
		if !res.allows(key) {
			return nil, fmt.Errorf("filter %q is not accepted by %s", key, res.Path)
		}
		for _, v := range vals {
			params.Add(key, v)
		}
	}

	page := q.Page
	if page <= 0 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = res.DefaultPageSize
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("pagesize", strconv.Itoa(size))

	return c.Get(ctx, res.Path, params)
}

// GetBySetID performs a GET against a per-label endpoint. These endpoints
// take no query parameters.
func (c *Client) GetBySetID(ctx context.Context, res SetIDResource, setID string) (*nlm.Response, error) {
	if setID == "" {
		return nil, fmt.Errorf("set id cannot be empty")
	}
	return c.Get(ctx, "spls/"+url.PathEscape(setID)+res.Suffix, nil)
}

// SearchSPLs searches Structured Product Labeling documents.
func (c *Client) SearchSPLs(ctx context.Context, q ListQuery) (*nlm.Response, error) {
	return c.List(ctx, SPLs, q)
}

// SPL retrieves a single SPL document by set id. The result is raw XML.
func (c *Client) SPL(ctx context.Context, setID string) (*nlm.Response, error) {
	return c.GetBySetID(ctx, LabelXML, setID)
}

// SPLHistory retrieves the version history for an SPL.
func (c *Client) SPLHistory(ctx context.Context, setID string) (*nlm.Response, error) {
	return c.GetBySetID(ctx, LabelHistory, setID)
}

// SPLNDCs retrieves the NDCs associated with an SPL.
func (c *Client) SPLNDCs(ctx context.Context, setID string) (*nlm.Response, error) {
	return c.GetBySetID(ctx, LabelNDCs, setID)
}

// SPLPackaging retrieves product packaging information for an SPL.
func (c *Client) SPLPackaging(ctx context.Context, setID string) (*nlm.Response, error) {
	return c.GetBySetID(ctx, LabelPackaging, setID)
}

// DrugNames lists drug names.
func (c *Client) DrugNames(ctx context.Context, q ListQuery) (*nlm.Response, error) {
	return c.List(ctx, DrugNames, q)
}

// NDCs lists National Drug Codes.
func (c *Client) NDCs(ctx context.Context, q ListQuery) (*nlm.Response, error) {
	return c.List(ctx, NDCs, q)
}

// DrugClasses lists drug classes.
func (c *Client) DrugClasses(ctx context.Context, q ListQuery) (*nlm.Response, error) {
	return c.List(ctx, DrugClasses, q)
}

// UNIIs lists unique ingredient identifiers.
func (c *Client) UNIIs(ctx context.Context, q ListQuery) (*nlm.Response, error) {
	return c.List(ctx, UNIIs, q)
}

// RxCUIs lists RxNorm concept identifiers.
func (c *Client) RxCUIs(ctx context.Context, q ListQuery) (*nlm.Response, error) {
	return c.List(ctx, RxCUIs, q)
}
