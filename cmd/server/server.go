package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/thereayou/microblog/internal/database"
	"github.com/thereayou/microblog/internal/handlers"
	"github.com/thereayou/microblog/internal/store"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Store  store.Store
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	var st store.Store
	if os.Getenv("STORE") == "memory" {
		log.Println("using in-memory store, data will not survive a restart")
		st = store.NewMemoryStore()
	} else {
		redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb := redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
		st = store.NewRedisStore(rdb)
	}

	db := database.NewDatabase(st)

	authH := handlers.NewAuthHandler(db)
	postH := handlers.NewPostHandler(db)
	userH := handlers.NewUserHandler(db)

	router := gin.Default()
	APIEndpoints(router, db, authH, postH, userH)

	return &Server{
		Router: router,
		DB:     db,
		Store:  st,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
