package db

import (
	"log"
	"os"

	"foodreel/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=foodreel port=5432 sslmode=disable"
	}

	var err error
	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the toggle handlers rely on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")
}

// Migrate runs auto-migration for all collections. Split out from Init so
// tests can run it against their own gorm.DB.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.User{},
		&models.FoodPartner{},
		&models.FoodItem{},
		&models.Like{},
		&models.Save{},
		&models.Comment{},
	)
}
