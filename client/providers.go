package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"glowbook/models"
)

// GetProvider fetches a provider storefront, including its services.
func (c *Client) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	var out models.Provider
	if err := c.do(ctx, http.MethodGet, "/providers/"+pathEscape(providerID), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch provider %s: %w", providerID, err)
	}
	return &out, nil
}

// SearchProviders finds providers matching a free-text query.
func (c *Client) SearchProviders(ctx context.Context, query string) ([]models.Provider, error) {
	var out []models.Provider
	path := "/providers/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("provider search failed: %w", err)
	}
	return out, nil
}

// FollowProvider follows a provider. The response is authoritative and
// should overwrite any optimistic local state.
func (c *Client) FollowProvider(ctx context.Context, providerID string) (*models.FollowStatus, error) {
	var out models.FollowStatus
	if err := c.do(ctx, http.MethodPost, "/providers/"+pathEscape(providerID)+"/follow", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to follow provider %s: %w", providerID, err)
	}
	return &out, nil
}

// UnfollowProvider unfollows a provider, returning the authoritative state.
func (c *Client) UnfollowProvider(ctx context.Context, providerID string) (*models.FollowStatus, error) {
	var out models.FollowStatus
	if err := c.do(ctx, http.MethodDelete, "/providers/"+pathEscape(providerID)+"/follow", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to unfollow provider %s: %w", providerID, err)
	}
	return &out, nil
}

// ListServices fetches the provider's bookable offerings.
func (c *Client) ListServices(ctx context.Context, providerID string) ([]models.Service, error) {
	var out []models.Service
	if err := c.do(ctx, http.MethodGet, "/providers/"+pathEscape(providerID)+"/services", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch services for provider %s: %w", providerID, err)
	}
	return out, nil
}

// UpdateStorefront edits the provider's own storefront fields.
func (c *Client) UpdateStorefront(ctx context.Context, providerID string, update models.StorefrontUpdate) (*models.Provider, error) {
	var out models.Provider
	if err := c.do(ctx, http.MethodPatch, "/providers/"+pathEscape(providerID), update, &out); err != nil {
		return nil, fmt.Errorf("failed to update storefront %s: %w", providerID, err)
	}
	return &out, nil
}
