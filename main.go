package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kiwicar-nz/marketplace-api/config"
	favoritecontroller "github.com/kiwicar-nz/marketplace-api/controllers/favorite"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/pricing"
	"github.com/kiwicar-nz/marketplace-api/routes"
	"github.com/kiwicar-nz/marketplace-api/vehiclelookup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting kiwicar API...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.ListingImage{},
		&models.PriceHistory{},
		&models.Favorite{},
		&models.SellDraft{},
		&models.VehicleRecord{},
		&models.OdometerReading{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	vehicles, err := vehiclelookup.NewService(db, vehiclelookup.StubProvider{}, 512)
	if err != nil {
		log.Fatalf("❌ Vehicle lookup init failed: %v", err)
	}

	r := gin.Default()
	r.MaxMultipartMemory = 64 << 20 // uploads are capped at 10 x 5MB anyway

	allowOrigins := cfg.CORSOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	estimator := pricing.MarketEstimator{}
	routes.SetupRoutes(r, routes.Deps{
		DB:            db,
		Vehicles:      vehicles,
		Estimator:     estimator,
		Describer:     estimator,
		Alerts:        favoritecontroller.NewAlertHub(),
		UploadDir:     cfg.UploadDir,
		PublicBaseURL: cfg.PublicBaseURL,
	})

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config) *gorm.DB {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
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

	dsn := "host=" + host + " user=" + user + " password=" + password +
		" dbname=" + dbname + " port=" + port + " sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
