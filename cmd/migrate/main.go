// Command migrate imports the seed content document from the local
// filesystem into the configured persistent backend. It is a one-shot
// tool, safe to rerun: the backend document is simply overwritten.
package main

import (
	"context"
	"log"
	"time"

	"github.com/khaoyai-getaway/content-service/internal/config"
	"github.com/khaoyai-getaway/content-service/internal/content/repository"
	"github.com/khaoyai-getaway/content-service/internal/content/service"
	"github.com/khaoyai-getaway/content-service/internal/database"
	"github.com/khaoyai-getaway/content-service/internal/storage"
	"github.com/khaoyai-getaway/content-service/pkg/logger"
)

func main() {
	logger.Init("info")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var repo repository.Repository
	switch cfg.Content.Backend {
	case "file":
		repo = repository.NewFileRepo(cfg.Content.Pathname)
	case "mongo":
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, 10*time.Second)
		if err != nil {
			log.Fatalf("mongodb: %v", err)
		}
		defer client.Disconnect(context.Background())
		col := client.Database(cfg.MongoDB.Database).Collection("content")
		repo = repository.NewMongoRepo(col)
	default:
		store, err := storage.NewBlobStore(storage.LoadBlobConfig())
		if err != nil {
			log.Fatalf("blob store: %v", err)
		}
		repo = repository.NewBlobRepo(store, cfg.Content.Pathname)
	}

	seed := repository.NewFileRepo(cfg.Content.SeedPath)
	svc := service.New(repo, seed)

	doc, err := svc.Migrate(ctx)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Printf("migrated content document version %s to %s backend", doc.Version, cfg.Content.Backend)
}
