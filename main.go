package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/routes"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/session"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/speech"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB (optional; the assistant runs fully in memory without it)
	db := initDatabase()

	var repo *catalog.Repository
	if db != nil {
		// Auto-migrate all tables
		if err := db.AutoMigrate(
			&models.Product{},
			&models.Order{},
			&models.OrderItem{},
		); err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}
		repo = catalog.NewRepository(db)
	}

	// Build the catalog: load persisted products when a DB is configured,
	// otherwise (or on first run) fall back to the built-in seed set.
	store := buildCatalog(repo)

	// Conversation sessions
	sessions := session.NewManager(session.Deps{
		Store:   store,
		Speaker: speech.LogSynthesizer{},
	})

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, store, repo, sessions)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection. Returns nil when no database
// is configured, which keeps local demos zero-setup.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		log.Println("⚠️ No database configured, running in-memory only")
		return nil
	}

	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

func buildCatalog(repo *catalog.Repository) *catalog.Store {
	categories := catalog.SeedCategories()
	products := catalog.SeedProducts()

	if repo != nil {
		persisted, err := repo.Load()
		switch {
		case err != nil:
			log.Printf("❌ Failed to load catalog, using seed data: %v", err)
		case len(persisted) == 0:
			if err := repo.ReplaceAll(products); err != nil {
				log.Printf("❌ Failed to seed catalog: %v", err)
			} else {
				log.Printf("✅ Seeded catalog with %d products", len(products))
			}
		default:
			products = persisted
			log.Printf("✅ Loaded %d products from database", len(products))
		}
	}

	return catalog.NewStore(categories, products)
}
