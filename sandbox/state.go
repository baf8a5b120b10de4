// File: glowbook/sandbox/state.go
package sandbox

import (
	"strings"
	"sync"
	"time"

	"glowbook/models"

	"github.com/google/uuid"
)

// userRecord pairs a user with its fixture password.
type userRecord struct {
	models.User
	Password string
}

// state is the sandbox's in-memory world: a handful of seeded users,
// providers, posts and promotions, plus whatever the client creates during a
// run. Everything is guarded by one mutex; the sandbox optimizes for
// simplicity, not throughput.
type state struct {
	mu sync.Mutex

	users     map[string]*userRecord // by id
	providers map[string]*models.Provider
	services  map[string]*models.Service
	posts     map[string]*models.Post
	postOrder []string
	comments  map[string][]models.Comment // by post id

	postLikes    map[string]map[string]bool // post id -> user ids
	commentLikes map[string]map[string]bool
	follows      map[string]map[string]bool // provider id -> user ids

	bookings   map[string]*models.Booking
	promotions map[string]*models.Promotion
	loyalty    map[string]*models.LoyaltyStatus
	chats      map[string]*models.ChatRoom
	messages   map[string][]models.ChatMessage // by room id
}

func (st *state) userByEmail(email string) *userRecord {
	for _, u := range st.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

func (st *state) likeCount(likes map[string]map[string]bool, id string) int {
	return len(likes[id])
}

func (st *state) setLike(likes map[string]map[string]bool, id, userID string, on bool) {
	if likes[id] == nil {
		likes[id] = make(map[string]bool)
	}
	if on {
		likes[id][userID] = true
	} else {
		delete(likes[id], userID)
	}
}

// viewPost renders a post with like state personalized for the viewer.
func (st *state) viewPost(p *models.Post, userID string) models.Post {
	out := *p
	out.LikeCount = st.likeCount(st.postLikes, p.ID)
	out.LikedByCurrentUser = st.postLikes[p.ID][userID]
	out.CommentCount = len(st.comments[p.ID])
	return out
}

// viewProvider renders a provider with follow state personalized for the
// viewer.
func (st *state) viewProvider(p *models.Provider, userID string) models.Provider {
	out := *p
	out.FollowersCount = len(st.follows[p.ID])
	out.IsFollowing = st.follows[p.ID][userID]
	for _, svc := range st.services {
		if svc.ProviderID == p.ID {
			out.Services = append(out.Services, *svc)
		}
	}
	return out
}

// seedState builds the fixture world the demo runner and integration tests
// exercise.
func seedState() *state {
	st := &state{
		users:        make(map[string]*userRecord),
		providers:    make(map[string]*models.Provider),
		services:     make(map[string]*models.Service),
		posts:        make(map[string]*models.Post),
		comments:     make(map[string][]models.Comment),
		postLikes:    make(map[string]map[string]bool),
		commentLikes: make(map[string]map[string]bool),
		follows:      make(map[string]map[string]bool),
		bookings:     make(map[string]*models.Booking),
		promotions:   make(map[string]*models.Promotion),
		loyalty:      make(map[string]*models.LoyaltyStatus),
		chats:        make(map[string]*models.ChatRoom),
		messages:     make(map[string][]models.ChatMessage),
	}

	now := time.Now()

	mia := &userRecord{
		User: models.User{
			ID:        "user-mia",
			Name:      "Mia Torres",
			Email:     "mia@example.com",
			CreatedAt: now.AddDate(0, -3, 0),
		},
		Password: "glow1234",
	}
	st.users[mia.ID] = mia
	st.loyalty[mia.ID] = &models.LoyaltyStatus{Points: 320, Tier: "silver"}

	providers := []struct {
		id, name, bio, location string
		rating                  float64
		services                []models.Service
	}{
		{
			id: "prov-luna", name: "Luna Hair Studio",
			bio: "Cuts, color and styling in the heart of downtown.", location: "Downtown",
			rating: 4.8,
			services: []models.Service{
				{Name: "Haircut", Category: "Hair", Price: 50, DurationMinutes: 45},
				{Name: "Color & Highlights", Category: "Hair", Price: 120, DurationMinutes: 120},
				{Name: "Blowout", Category: "Hair", Price: 35, DurationMinutes: 30},
			},
		},
		{
			id: "prov-velvet", name: "Velvet Nails",
			bio: "Gel, acrylic and nail art.", location: "Riverside",
			rating: 4.6,
			services: []models.Service{
				{Name: "Gel Manicure", Category: "Nails", Price: 40, DurationMinutes: 60},
				{Name: "Pedicure", Category: "Nails", Price: 45, DurationMinutes: 50},
			},
		},
		{
			id: "prov-glowup", name: "GlowUp Skincare",
			bio: "Facials and skin treatments.", location: "Midtown",
			rating: 4.9,
			services: []models.Service{
				{Name: "Classic Facial", Category: "Skincare", Price: 75, DurationMinutes: 60},
				{Name: "Chemical Peel", Category: "Skincare", Price: 110, DurationMinutes: 45},
			},
		},
	}

	for _, p := range providers {
		st.providers[p.id] = &models.Provider{
			ID:        p.id,
			Name:      p.name,
			Bio:       p.bio,
			Location:  p.location,
			Rating:    p.rating,
			CreatedAt: now.AddDate(-1, 0, 0),
		}
		for i := range p.services {
			svc := p.services[i]
			svc.ID = p.id + "-svc-" + uuid.New().String()[:8]
			svc.ProviderID = p.id
			st.services[svc.ID] = &svc
		}
	}

	posts := []struct {
		id, author, authorName, caption string
		likes                           int
	}{
		{"post-1", "prov-luna", "Luna Hair Studio", "Fresh balayage from this morning ✨", 12},
		{"post-2", "prov-velvet", "Velvet Nails", "Chrome french tips are back.", 8},
		{"post-3", "prov-glowup", "GlowUp Skincare", "Before/after: four weeks of treatment.", 21},
	}
	for i, p := range posts {
		st.posts[p.id] = &models.Post{
			ID:         p.id,
			AuthorID:   p.author,
			AuthorName: p.authorName,
			Caption:    p.caption,
			CreatedAt:  now.Add(-time.Duration(i+1) * time.Hour),
		}
		st.postOrder = append(st.postOrder, p.id)
		st.postLikes[p.id] = make(map[string]bool)
		for j := 0; j < p.likes; j++ {
			st.postLikes[p.id]["seed-fan-"+uuid.New().String()[:8]] = true
		}
	}

	st.promotions["promo-welcome"] = &models.Promotion{
		ID:          "promo-welcome",
		Title:       "Welcome Treat",
		Description: "15% off your first booking.",
		Code:        "WELCOME15",
		DiscountPct: 15,
		ExpiresAt:   now.AddDate(0, 1, 0),
	}
	st.promotions["promo-luna"] = &models.Promotion{
		ID:          "promo-luna",
		ProviderID:  "prov-luna",
		Title:       "Midweek Color",
		Description: "10% off color appointments Tuesday to Thursday.",
		Code:        "MIDWEEK10",
		DiscountPct: 10,
		ExpiresAt:   now.AddDate(0, 0, 14),
	}

	room := &models.ChatRoom{
		ID:          "chat-luna",
		PeerID:      "prov-luna",
		PeerName:    "Luna Hair Studio",
		LastMessage: "See you Saturday!",
		UpdatedAt:   now.Add(-30 * time.Minute),
	}
	st.chats[room.ID] = room
	st.messages[room.ID] = []models.ChatMessage{
		{ID: uuid.New().String(), RoomID: room.ID, SenderID: mia.ID, Body: "Hi! Do you have anything open Saturday?", SentAt: now.Add(-40 * time.Minute)},
		{ID: uuid.New().String(), RoomID: room.ID, SenderID: "prov-luna", Body: "See you Saturday!", SentAt: now.Add(-30 * time.Minute)},
	}

	return st
}
