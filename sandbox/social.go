package sandbox

import (
	"net/http"
	"time"

	"glowbook/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) feedHandler(c *gin.Context) {
	userID := currentUserID(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	page := models.FeedPage{Posts: []models.Post{}}
	for _, id := range s.state.postOrder {
		page.Posts = append(page.Posts, s.state.viewPost(s.state.posts[id], userID))
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) getPostHandler(c *gin.Context) {
	userID := currentUserID(c)
	postID := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	post, ok := s.state.posts[postID]
	if !ok {
		jsonError(c, http.StatusNotFound, "post not found", "")
		return
	}
	c.JSON(http.StatusOK, s.state.viewPost(post, userID))
}

// likePostHandler sets the caller's like. Post likes deliberately return no
// body: the mobile clients keep their optimistic count for this endpoint.
func (s *Server) likePostHandler(c *gin.Context) {
	s.setPostLike(c, true)
}

func (s *Server) unlikePostHandler(c *gin.Context) {
	s.setPostLike(c, false)
}

func (s *Server) setPostLike(c *gin.Context, on bool) {
	userID := currentUserID(c)
	postID := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.posts[postID]; !ok {
		jsonError(c, http.StatusNotFound, "post not found", "")
		return
	}
	s.state.setLike(s.state.postLikes, postID, userID, on)
	c.Status(http.StatusNoContent)
}

func (s *Server) listCommentsHandler(c *gin.Context) {
	userID := currentUserID(c)
	postID := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.posts[postID]; !ok {
		jsonError(c, http.StatusNotFound, "post not found", "")
		return
	}
	comments := make([]models.Comment, 0, len(s.state.comments[postID]))
	for _, cm := range s.state.comments[postID] {
		cm.LikeCount = s.state.likeCount(s.state.commentLikes, cm.ID)
		cm.LikedByCurrentUser = s.state.commentLikes[cm.ID][userID]
		comments = append(comments, cm)
	}
	c.JSON(http.StatusOK, comments)
}

func (s *Server) createCommentHandler(c *gin.Context) {
	userID := currentUserID(c)
	postID := c.Param("id")

	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.posts[postID]; !ok {
		jsonError(c, http.StatusNotFound, "post not found", "")
		return
	}
	authorName := ""
	if u, ok := s.state.users[userID]; ok {
		authorName = u.Name
	}
	comment := models.Comment{
		ID:         "comment-" + uuid.New().String()[:8],
		PostID:     postID,
		AuthorID:   userID,
		AuthorName: authorName,
		Body:       req.Body,
		CreatedAt:  time.Now(),
	}
	s.state.comments[postID] = append(s.state.comments[postID], comment)
	c.JSON(http.StatusCreated, comment)
}

func (s *Server) likeCommentHandler(c *gin.Context) {
	s.setCommentLike(c, true)
}

func (s *Server) unlikeCommentHandler(c *gin.Context) {
	s.setCommentLike(c, false)
}

func (s *Server) setCommentLike(c *gin.Context, on bool) {
	userID := currentUserID(c)
	commentID := c.Param("id")

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	found := false
	for _, list := range s.state.comments {
		for _, cm := range list {
			if cm.ID == commentID {
				found = true
			}
		}
	}
	if !found {
		jsonError(c, http.StatusNotFound, "comment not found", "")
		return
	}
	s.state.setLike(s.state.commentLikes, commentID, userID, on)
	c.Status(http.StatusNoContent)
}
