package client

import (
	"context"
	"fmt"
	"net/http"

	"glowbook/models"
)

// ListChatRooms fetches the user's conversations, most recent first.
func (c *Client) ListChatRooms(ctx context.Context) ([]models.ChatRoom, error) {
	var out []models.ChatRoom
	if err := c.do(ctx, http.MethodGet, "/chats", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch chat rooms: %w", err)
	}
	return out, nil
}

// ListMessages fetches the messages in a chat room.
func (c *Client) ListMessages(ctx context.Context, roomID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	if err := c.do(ctx, http.MethodGet, "/chats/"+pathEscape(roomID)+"/messages", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch messages for room %s: %w", roomID, err)
	}
	return out, nil
}

// SendMessage sends a message and returns the created record.
func (c *Client) SendMessage(ctx context.Context, roomID, body string) (*models.ChatMessage, error) {
	req := struct {
		Body string `json:"body"`
	}{Body: body}
	var out models.ChatMessage
	if err := c.do(ctx, http.MethodPost, "/chats/"+pathEscape(roomID)+"/messages", req, &out); err != nil {
		return nil, fmt.Errorf("failed to send message to room %s: %w", roomID, err)
	}
	return &out, nil
}
