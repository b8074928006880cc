package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/microblog/internal/database"
	"github.com/thereayou/microblog/internal/middleware"
	"github.com/thereayou/microblog/internal/store"
)

// newTestRouter wires the handlers onto a quiet gin engine over an
// in-memory store, mirroring the server's route table.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.NewDatabase(store.NewMemoryStore())
	authH := NewAuthHandler(db)
	postH := NewPostHandler(db)
	userH := NewUserHandler(db)

	r := gin.New()
	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)
	r.POST("/auth/logout", middleware.AuthMiddleware(db), authH.Logout)

	api := r.Group("/api/v1")
	api.GET("/timeline", postH.Timeline)
	api.GET("/users", userH.NewUsers)
	api.GET("/users/:name/posts", postH.UserPosts)
	api.GET("/users/:name/followers", userH.Followers)

	authed := api.Group("", middleware.AuthMiddleware(db))
	authed.POST("/posts", postH.Create)
	authed.GET("/mentions", postH.Mentions)
	authed.POST("/users/:name/follow", userH.Follow)
	authed.DELETE("/users/:name/follow", userH.Unfollow)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, name string) (uid, token string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": name, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		UID   string `json:"uid"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.UID, resp.Token
}

func TestRegister_DuplicateName(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginLogout(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "alice", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "alice", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	w = doJSON(t, r, http.MethodPost, "/auth/logout", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The revoked token no longer authenticates.
	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", resp.Token, gin.H{"content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePost_RequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/posts", "", gin.H{"content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", "bogus-token", gin.H{"content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostAndFeeds(t *testing.T) {
	r := newTestRouter(t)
	_, aliceTok := register(t, r, "alice")
	_, bobTok := register(t, r, "bob")

	// alice follows bob, bob thanks alice.
	w := doJSON(t, r, http.MethodPost, "/api/v1/users/bob/follow", aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", bobTok, gin.H{"content": "thanks @alice!"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// bob's posts page renders the mention link.
	w = doJSON(t, r, http.MethodGet, "/api/v1/users/bob/posts?begin=0&end=0", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "bob", posts[0].Name)
	assert.Equal(t, `thanks <a href="!alice">@alice</a>!`, posts[0].Content)

	// alice's mention feed carries the raw content.
	w = doJSON(t, r, http.MethodGet, "/api/v1/mentions?begin=0&end=0", aliceTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "thanks @alice!", posts[0].Content)

	// bob shows up in alice's view of his followers.
	w = doJSON(t, r, http.MethodGet, "/api/v1/users/bob/followers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var followers struct {
		Followers []string `json:"followers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &followers))
	assert.Equal(t, []string{"alice"}, followers.Followers)
}

func TestUserPosts_UnknownUser(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/ghost/posts", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTimeline_Empty(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/timeline?begin=0&end=0", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Empty(t, posts)
}

func TestNewUsers(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "alice")
	register(t, r, "bob")

	w := doJSON(t, r, http.MethodGet, "/api/v1/users?begin=0&end=-1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Users []string `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"alice", "bob"}, resp.Users)
}
