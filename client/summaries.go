package client

import (
	"context"
	"net/http"
	"net/url"

	"pdfsummarizer/types"
)

// ListSummaries fetches every saved summary (GET /summaries)
func (c *Client) ListSummaries(ctx context.Context) ([]types.SummaryListing, error) {
	var list []types.SummaryListing
	if err := c.doJSONRequest(ctx, http.MethodGet, "/summaries", nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []types.SummaryListing{}
	}
	return list, nil
}

// GetSummary fetches a full saved record (GET /summaries/{id})
func (c *Client) GetSummary(ctx context.Context, id types.SummaryID) (*types.SummaryResult, error) {
	var result types.SummaryResult
	if err := c.doJSONRequest(ctx, http.MethodGet, summaryPath(id), nil, &result); err != nil {
		return nil, err
	}
	if result.SummaryID.IsZero() {
		result.SummaryID = id
	}
	return &result, nil
}

// SaveSummary persists a summary (POST /summaries/save) and returns its id.
// A 2xx response without an id is reported as ErrNoSummaryID.
func (c *Client) SaveSummary(ctx context.Context, req types.SaveRequest) (types.SummaryID, error) {
	var resp types.SaveResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, "/summaries/save", req, &resp); err != nil {
		return "", err
	}
	if resp.SummaryID.IsZero() {
		return "", ErrNoSummaryID
	}
	return resp.SummaryID, nil
}

// DeleteSummary removes a saved summary (DELETE /summaries/{id})
func (c *Client) DeleteSummary(ctx context.Context, id types.SummaryID) error {
	var ack types.MessageResponse
	return c.doJSONRequest(ctx, http.MethodDelete, summaryPath(id), nil, &ack)
}

func summaryPath(id types.SummaryID) string {
	return "/summaries/" + url.PathEscape(id.String())
}
