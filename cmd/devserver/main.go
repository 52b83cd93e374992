package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"github.com/jsoto007/nush/internal/db"
	"github.com/jsoto007/nush/internal/devserver"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// ───────────────────────── CATALOG ─────────────────────────
	var catalog devserver.CatalogRepository
	if os.Getenv("DATABASE_URL") != "" {
		pool := db.ConnectPostgres()
		defer pool.Close()
		catalog = devserver.NewPostgresCatalog(pool)
		log.Println("serving fixtures from Postgres")
	} else {
		catalog = devserver.SeededCatalog()
		log.Println("serving in-memory seed fixtures")
	}

	// ───────────────────────── SERVER ─────────────────────────
	server := devserver.New(catalog, cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r := server.Engine()

	addr := os.Getenv("NUSH_DEV_ADDR")
	if addr == "" {
		addr = ":5001"
	}

	log.Printf("nush dev server running at http://localhost%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
