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

	"github.com/imransheikh-git/catalog-admin-api/auth"
	"github.com/imransheikh-git/catalog-admin-api/catalog"
	"github.com/imransheikh-git/catalog-admin-api/models"
	"github.com/imransheikh-git/catalog-admin-api/routes"
)

func main() {
	log.Println("✅ Starting catalog admin API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.Subcategory{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	production := os.Getenv("APP_ENV") == "production"

	// Session tokens. An empty secret is a configuration error, not a
	// silently unverifiable token.
	issuer, err := auth.NewTokenIssuer(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	credentials, err := auth.NewEnvCredentials(
		os.Getenv("ADMIN_USERNAME"),
		os.Getenv("ADMIN_PASSWORD_HASH"),
	)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	directory := catalog.NewGormDirectory(db)
	service := catalog.NewService(catalog.NewGormProductStore(db), directory)

	// Gin setup
	r := gin.Default()

	// CORS settings. Cookie auth needs credentials, so the frontend origin
	// must be explicit.
	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:     service,
		Directory:   directory,
		Credentials: credentials,
		Tokens:      issuer,
		Production:  production,
	})

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

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
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
