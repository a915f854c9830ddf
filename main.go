package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/khaoyai-getaway/content-service/handlers"
	"github.com/khaoyai-getaway/content-service/internal/config"
	"github.com/khaoyai-getaway/content-service/internal/content/handler"
	"github.com/khaoyai-getaway/content-service/internal/content/repository"
	"github.com/khaoyai-getaway/content-service/internal/content/service"
	"github.com/khaoyai-getaway/content-service/internal/database"
	"github.com/khaoyai-getaway/content-service/internal/storage"
	"github.com/khaoyai-getaway/content-service/pkg/logger"
	"github.com/khaoyai-getaway/content-service/pkg/metrics"
	"github.com/khaoyai-getaway/content-service/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: backend=%s mongo=%v redis=%v", cfg.Content.Backend, cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsCfg))

	// Connect to Redis early so the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Content repository backend selection. Blob is the default; file is the
	// local-development fallback; mongo is for deployments that already run one.
	ctx := context.Background()
	var repo repository.Repository
	var blobStore *storage.BlobStore
	var mongoClient *mongo.Client

	switch cfg.Content.Backend {
	case "file":
		repo = repository.NewFileRepo(cfg.Content.Pathname)
		logger.Infof("using file-backed content repository: %s", cfg.Content.Pathname)
	case "mongo":
		// Retry with backoff to tolerate startup races against the database
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
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
			logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		}
		defer func() { _ = mongoClient.Disconnect(ctx) }()
		col := mongoClient.Database(cfg.MongoDB.Database).Collection("content")
		repo = repository.NewMongoRepo(col)
		logger.Infof("using MongoDB-backed content repository")
	default:
		store, err := storage.NewBlobStore(storage.LoadBlobConfig())
		if err != nil {
			logger.Warnf("blob store unavailable (%v), falling back to file repository", err)
			repo = repository.NewFileRepo(cfg.Content.Pathname)
		} else {
			blobStore = store
			repo = repository.NewBlobRepo(store, cfg.Content.Pathname)
			logger.Infof("using blob-backed content repository: %s", cfg.Content.Pathname)
		}
	}

	seed := repository.NewFileRepo(cfg.Content.SeedPath)
	svc := service.New(repo, seed)

	// Mutating endpoints are guarded when an admin secret is configured
	adminMW := middleware.AdminAuthMiddleware(cfg.Admin.JWTSecret)
	if cfg.Admin.JWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET not set, mutating endpoints are unauthenticated")
	}

	h := handler.New(svc)
	h.Register(r, adminMW)

	if blobStore != nil {
		handlers.RegisterUploadRoutes(r, blobStore, adminMW)
	} else {
		logger.Warn("upload endpoints disabled: no blob store configured")
	}
	handlers.RegisterSwagger(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the configured backend's dependencies are up
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		switch cfg.Content.Backend {
		case "mongo":
			ok := mongoClient != nil && mongoClient.Ping(c.Request.Context(), nil) == nil
			deps["mongodb"] = ok
			ready = ready && ok
		case "file":
			deps["storage"] = true
		default:
			deps["blob"] = blobStore != nil
			ready = ready && blobStore != nil
		}

		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			ready = ready && redisClient != nil
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	reg := prometheus.NewRegistry()
	metrics.RegisterCollectors(reg)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("content service listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
