package models

import "time"

// Provider represents a beauty-services provider storefront.
type Provider struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio,omitempty"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	CoverURL       string    `json:"coverUrl,omitempty"`
	Location       string    `json:"location,omitempty"`
	Rating         float64   `json:"rating,omitempty"`
	ReviewCount    int       `json:"reviewCount,omitempty"`
	FollowersCount int       `json:"followersCount"`
	IsFollowing    bool      `json:"isFollowing"`
	Services       []Service `json:"services,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FollowStatus is the authoritative follow state returned by the backend
// after a follow or unfollow call.
type FollowStatus struct {
	IsFollowing    bool `json:"isFollowing"`
	FollowersCount int  `json:"followersCount"`
}

// StorefrontUpdate carries the editable fields of a provider storefront.
type StorefrontUpdate struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	CoverURL *string `json:"coverUrl,omitempty"`
}
