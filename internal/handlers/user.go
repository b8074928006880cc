package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/microblog/internal/database"
	"github.com/thereayou/microblog/internal/middleware"
)

type UserHandler struct {
	db *database.Database
}

func NewUserHandler(db *database.Database) *UserHandler {
	return &UserHandler{db: db}
}

// targetUID resolves the :name route param, writing the error response
// itself when the user is unknown.
func (h *UserHandler) targetUID(c *gin.Context) (string, bool) {
	uid, err := h.db.FindUID(c.Request.Context(), c.Param("name"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown user"})
		return "", false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return "", false
	}
	return uid, true
}

// Profile returns the public profile of :name.
func (h *UserHandler) Profile(c *gin.Context) {
	target, ok := h.targetUID(c)
	if !ok {
		return
	}
	user, err := h.db.GetUser(c.Request.Context(), target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Follow(c *gin.Context) {
	target, ok := h.targetUID(c)
	if !ok {
		return
	}
	uid := c.GetString(middleware.UserIDKey)
	if err := h.db.Follow(c.Request.Context(), uid, target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "follow failed"})
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	target, ok := h.targetUID(c)
	if !ok {
		return
	}
	uid := c.GetString(middleware.UserIDKey)
	if err := h.db.Unfollow(c.Request.Context(), uid, target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unfollow failed"})
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) Followers(c *gin.Context) {
	target, ok := h.targetUID(c)
	if !ok {
		return
	}
	names, err := h.db.FollowerNames(c.Request.Context(), target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"followers": names})
}

func (h *UserHandler) Following(c *gin.Context) {
	target, ok := h.targetUID(c)
	if !ok {
		return
	}
	names, err := h.db.FollowingNames(c.Request.Context(), target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": names})
}

// CommonFollowers lists the people both the caller and :name follow.
func (h *UserHandler) CommonFollowers(c *gin.Context) {
	target, ok := h.targetUID(c)
	if !ok {
		return
	}
	uid := c.GetString(middleware.UserIDKey)
	names, err := h.db.CommonFollowerNames(c.Request.Context(), uid, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commonFollowers": names})
}

// AlsoFollowed lists the people the caller follows who follow :name.
func (h *UserHandler) AlsoFollowed(c *gin.Context) {
	target, ok := h.targetUID(c)
	if !ok {
		return
	}
	uid := c.GetString(middleware.UserIDKey)
	names, err := h.db.AlsoFollowedNames(c.Request.Context(), uid, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alsoFollowed": names})
}

// NewUsers pages through usernames in signup order.
func (h *UserHandler) NewUsers(c *gin.Context) {
	names, err := h.db.NewUsers(c.Request.Context(), rangeFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": names})
}
