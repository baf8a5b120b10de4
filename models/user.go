// models/user.go
package models

import "time"

// User represents a platform user.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse is the backend's reply to a successful sign-in or sign-up.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
