package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/sention-aktivitus/klientportal-api/internal/config"
	dbpkg "github.com/sention-aktivitus/klientportal-api/internal/db"
	"github.com/sention-aktivitus/klientportal-api/internal/middleware"
	"github.com/sention-aktivitus/klientportal-api/internal/routes"
	"github.com/sention-aktivitus/klientportal-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx := context.Background()

	blobs, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init blob storage: %v", err)
	}

	queue := storage.NewRedisDeletionQueue(rdb)

	reaper := storage.NewReaper(queue, blobs, time.Minute)
	go reaper.Run(ctx)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, blobs, queue)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
