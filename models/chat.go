package models

import "time"

// ChatRoom is a one-to-one conversation between a user and a provider.
type ChatRoom struct {
	ID          string    `json:"id"`
	PeerID      string    `json:"peerId"`
	PeerName    string    `json:"peerName"`
	LastMessage string    `json:"lastMessage,omitempty"`
	UnreadCount int       `json:"unreadCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ChatMessage is a single message inside a chat room.
type ChatMessage struct {
	ID       string    `json:"id"`
	RoomID   string    `json:"roomId"`
	SenderID string    `json:"senderId"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sentAt"`
}
