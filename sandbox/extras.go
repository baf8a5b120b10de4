package sandbox

import (
	"net/http"
	"sort"
	"time"

	"glowbook/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) listPromotionsHandler(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	promos := []models.Promotion{}
	for _, p := range s.state.promotions {
		if p.ExpiresAt.After(time.Now()) {
			promos = append(promos, *p)
		}
	}
	sort.Slice(promos, func(i, j int) bool { return promos[i].ID < promos[j].ID })
	c.JSON(http.StatusOK, promos)
}

func (s *Server) redeemPromotionHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, p := range s.state.promotions {
		if p.Code == req.Code {
			if p.Redeemed {
				jsonError(c, http.StatusConflict, "promotion already redeemed", "")
				return
			}
			p.Redeemed = true
			c.JSON(http.StatusOK, *p)
			return
		}
	}
	jsonError(c, http.StatusNotFound, "promotion not found", "")
}

func (s *Server) loyaltyHandler(c *gin.Context) {
	userID := currentUserID(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	loyalty, ok := s.state.loyalty[userID]
	if !ok {
		c.JSON(http.StatusOK, models.LoyaltyStatus{Points: 0, Tier: "bronze"})
		return
	}
	c.JSON(http.StatusOK, *loyalty)
}

func (s *Server) listChatRoomsHandler(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rooms := []models.ChatRoom{}
	for _, r := range s.state.chats {
		rooms = append(rooms, *r)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].UpdatedAt.After(rooms[j].UpdatedAt) })
	c.JSON(http.StatusOK, rooms)
}

func (s *Server) listMessagesHandler(c *gin.Context) {
	roomID := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.chats[roomID]; !ok {
		jsonError(c, http.StatusNotFound, "chat room not found", "")
		return
	}
	c.JSON(http.StatusOK, s.state.messages[roomID])
}

func (s *Server) sendMessageHandler(c *gin.Context) {
	userID := currentUserID(c)
	roomID := c.Param("id")

	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	room, ok := s.state.chats[roomID]
	if !ok {
		jsonError(c, http.StatusNotFound, "chat room not found", "")
		return
	}
	msg := models.ChatMessage{
		ID:       "msg-" + uuid.New().String()[:8],
		RoomID:   roomID,
		SenderID: userID,
		Body:     req.Body,
		SentAt:   time.Now(),
	}
	s.state.messages[roomID] = append(s.state.messages[roomID], msg)
	room.LastMessage = req.Body
	room.UpdatedAt = msg.SentAt
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
