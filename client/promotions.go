package client

import (
	"context"
	"fmt"
	"net/http"

	"glowbook/models"
)

// ListPromotions fetches active promotions visible to the current user.
func (c *Client) ListPromotions(ctx context.Context) ([]models.Promotion, error) {
	var out []models.Promotion
	if err := c.do(ctx, http.MethodGet, "/promotions", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch promotions: %w", err)
	}
	return out, nil
}

// RedeemPromotion redeems a promotion code and returns the updated record.
func (c *Client) RedeemPromotion(ctx context.Context, code string) (*models.Promotion, error) {
	req := struct {
		Code string `json:"code"`
	}{Code: code}
	var out models.Promotion
	if err := c.do(ctx, http.MethodPost, "/promotions/redeem", req, &out); err != nil {
		return nil, fmt.Errorf("failed to redeem promotion %s: %w", code, err)
	}
	return &out, nil
}

// GetLoyaltyStatus fetches the user's loyalty standing.
func (c *Client) GetLoyaltyStatus(ctx context.Context) (*models.LoyaltyStatus, error) {
	var out models.LoyaltyStatus
	if err := c.do(ctx, http.MethodGet, "/loyalty", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch loyalty status: %w", err)
	}
	return &out, nil
}
