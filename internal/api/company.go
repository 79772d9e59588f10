package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// SearchCompanies returns one page of companies matching params.
func (c *Client) SearchCompanies(ctx context.Context, params SearchParams) (SearchResponse, error) {
	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("p", strconv.Itoa(params.Page))
	query.Set("l", strconv.Itoa(params.Limit))
	for _, city := range params.Cities {
		query.Add("city", city)
	}
	var resp SearchResponse
	err := c.get(ctx, "/company", query, &resp)
	return resp, err
}

// Company fetches the full record for a firmenbuchnummer.
func (c *Client) Company(ctx context.Context, fn string) (Company, error) {
	var resp struct {
		Company Company `json:"company"`
	}
	err := c.get(ctx, "/company/"+url.PathEscape(fn), nil, &resp)
	return resp.Company, err
}

// Suggestions returns autocomplete candidates for q.
func (c *Client) Suggestions(ctx context.Context, q string) ([]SearchSuggestion, error) {
	var resp struct {
		Suggestions []SearchSuggestion `json:"suggestions"`
	}
	err := c.get(ctx, "/search", url.Values{"q": {q}}, &resp)
	return resp.Suggestions, err
}

// Cities lists seat cities with company counts, optionally narrowed by q.
func (c *Client) Cities(ctx context.Context, q string) ([]City, error) {
	var query url.Values
	if strings.TrimSpace(q) != "" {
		query = url.Values{"q": {q}}
	}
	var resp struct {
		Cities []City `json:"cities"`
	}
	err := c.get(ctx, "/cities", query, &resp)
	return resp.Cities, err
}

func (c *Client) Metrics(ctx context.Context) (Metrics, error) {
	var m Metrics
	err := c.get(ctx, "/metrics", nil, &m)
	return m, err
}

func (c *Client) Recommendations(ctx context.Context) ([]Recommendation, error) {
	var resp struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	err := c.get(ctx, "/recommendations", nil, &resp)
	return resp.Recommendations, err
}
