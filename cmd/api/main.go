package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/washapp/carwash-api/internal/config"
	dbpkg "github.com/washapp/carwash-api/internal/db"
	"github.com/washapp/carwash-api/internal/middleware"
	"github.com/washapp/carwash-api/internal/routes"
	"github.com/washapp/carwash-api/internal/storage"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)
	store := storage.NewImageStore(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, store, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
