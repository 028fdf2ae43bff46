package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/corkboard/corkboard/handlers"
	"github.com/corkboard/corkboard/internal/config"
	"github.com/corkboard/corkboard/internal/database"
	"github.com/corkboard/corkboard/internal/posts"
	"github.com/corkboard/corkboard/internal/sessions"
	"github.com/corkboard/corkboard/internal/users"
	"github.com/corkboard/corkboard/pkg/logger"
	"github.com/corkboard/corkboard/pkg/metrics"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	ctx := context.Background()

	// Document store: MongoDB when configured and reachable. When the store
	// is unavailable at startup the process keeps serving from in-process
	// repositories so the process still serves, and /ready reports it.
	var (
		userRepo users.Repository = users.NewMemoryRepository()
		postRepo posts.Repository = posts.NewMemoryRepository()
		mongoOK  bool
	)
	if cfg.MongoDB.URI != "" {
		// retry with backoff to tolerate startup races against the database
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.Connect(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts, continuing with in-memory repositories: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			db := client.Database(cfg.MongoDB.Database)
			userRepo = users.NewMongoRepository(db.Collection("users"))
			postRepo = posts.NewMongoRepository(db.Collection("posts"))
			mongoOK = true
			logger.Infof("Connected to MongoDB (database %s)", cfg.MongoDB.Database)
		}
	} else {
		logger.Warnf("MONGO_URI is not set; using in-memory repositories")
	}

	// Sessions stay in process unless a Redis host is configured.
	var (
		sessionRepo sessions.Repository = sessions.NewMemoryRepository()
		redisOK     bool
	)
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s), keeping in-memory sessions: %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			sessionRepo = sessions.NewRedisRepository(rdb, "session:")
			redisOK = true
			logger.Infof("Using Redis for session storage")
		}
	}

	userSvc := users.NewService(userRepo)
	sessionSvc := sessions.NewService(sessionRepo)
	postSvc := posts.NewService(postRepo)

	r := handlers.NewRouter(handlers.Deps{
		Cfg:      cfg,
		Users:    userSvc,
		Sessions: sessionSvc,
		Posts:    postSvc,
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	handlers.NewOpsHandler(func() (bool, gin.H) {
		mongoReady := mongoOK || cfg.MongoDB.URI == ""
		redisReady := redisOK || cfg.Redis.Host == ""
		return mongoReady && redisReady, gin.H{"mongo": mongoReady, "redis": redisReady}
	}).Register(r)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting corkboard on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
