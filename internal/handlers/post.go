package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/microblog/internal/database"
	"github.com/thereayou/microblog/internal/handlers/dto"
	"github.com/thereayou/microblog/internal/middleware"
	"github.com/thereayou/microblog/internal/models"
)

type PostHandler struct {
	db *database.Database
}

func NewPostHandler(db *database.Database) *PostHandler {
	return &PostHandler{db: db}
}

func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author := c.GetString(middleware.UserNameKey)
	post, err := h.db.CreatePost(c.Request.Context(), author, req.Content, req.ReplyTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) UserPosts(c *gin.Context) {
	uid, err := h.db.FindUID(c.Request.Context(), c.Param("name"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	posts, err := h.db.GetPosts(c.Request.Context(), uid, rangeFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Timeline(c *gin.Context) {
	posts, err := h.db.Timeline(c.Request.Context(), rangeFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read timeline"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Mentions(c *gin.Context) {
	uid := c.GetString(middleware.UserIDKey)
	posts, err := h.db.GetMentions(c.Request.Context(), uid, rangeFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read mentions"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// rangeFromQuery maps ?begin=&end= to a feed range, falling back to the
// first page. Bad values fall back too; ranges never fail.
func rangeFromQuery(c *gin.Context) models.Range {
	r := models.DefaultRange()
	if begin, err := strconv.ParseInt(c.Query("begin"), 10, 64); err == nil {
		r.Begin = begin
	}
	if end, err := strconv.ParseInt(c.Query("end"), 10, 64); err == nil {
		r.End = end
	}
	return r
}
