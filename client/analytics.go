package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"glowbook/models"
)

// GetProviderAnalytics fetches the analytics dashboard for a provider the
// current user manages. Period is a backend-defined window like "30d".
func (c *Client) GetProviderAnalytics(ctx context.Context, providerID, period string) (*models.ProviderAnalytics, error) {
	path := "/providers/" + pathEscape(providerID) + "/analytics"
	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}
	var out models.ProviderAnalytics
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch analytics for provider %s: %w", providerID, err)
	}
	return &out, nil
}
