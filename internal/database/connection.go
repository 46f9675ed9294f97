// internal/database/connection.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/electromart/support-backend/internal/config"
	"github.com/electromart/support-backend/internal/models"
)

// Initialize opens the startup connection used for migrations and
// seeding. Catalog reads at request time do not share it; they open
// their own short-lived connections.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_brand ON products(category, brand)",
		"CREATE INDEX IF NOT EXISTS idx_products_rating ON products(rating DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.Warnf("Failed to create index: %s, Error: %v", index, err)
		}
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

// SeedCatalog inserts the starter catalog when the products table is
// empty. Rows are inserted in a fixed order so catalog-order lookups
// stay deterministic across fresh databases.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if count > 0 {
		return nil
	}

	logrus.Info("Seeding product catalog...")

	products := []models.Product{
		{Name: "Dell XPS 13", Category: "Laptop", Brand: "Dell", Price: 1199.99, Stock: 50, Rating: 4.5, Description: "13-inch ultrabook with InfinityEdge display and Intel Core i7."},
		{Name: "MacBook Air M3", Category: "Laptop", Brand: "Apple", Price: 1299.00, Stock: 25, Rating: 4.8, Description: "Apple silicon laptop with all-day battery life."},
		{Name: "HP Pavilion 15", Category: "Laptop", Brand: "HP", Price: 749.99, Stock: 40, Rating: 4.2, Description: "15.6-inch everyday laptop with AMD Ryzen 5."},
		{Name: "iPhone 15 Pro", Category: "Smartphone", Brand: "Apple", Price: 999.00, Stock: 60, Rating: 4.7, Description: "Titanium design, A17 Pro chip, 48MP camera system."},
		{Name: "Samsung Galaxy S24", Category: "Smartphone", Brand: "Samsung", Price: 899.99, Stock: 80, Rating: 4.6, Description: "6.2-inch AMOLED flagship with Galaxy AI features."},
		{Name: "Sony WH-1000XM5", Category: "Headphones", Brand: "Sony", Price: 349.99, Stock: 120, Rating: 4.8, Description: "Industry-leading noise cancelling over-ear headphones."},
		{Name: "AirPods Pro 2", Category: "Headphones", Brand: "Apple", Price: 249.00, Stock: 0, Rating: 4.7, Description: "Active noise cancellation earbuds with USB-C case."},
		{Name: "LG C3 OLED 55", Category: "TV", Brand: "LG", Price: 1399.99, Stock: 15, Rating: 4.9, Description: "55-inch OLED evo TV with Dolby Vision and 120Hz gaming."},
		{Name: "Samsung Crystal UHD 50", Category: "TV", Brand: "Samsung", Price: 529.99, Stock: 35, Rating: 4.3, Description: "50-inch 4K smart TV with Crystal Processor."},
		{Name: "Canon EOS R50", Category: "Camera", Brand: "Canon", Price: 679.99, Stock: 20, Rating: 4.6, Description: "Compact mirrorless camera with 24MP APS-C sensor."},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	logrus.Infof("Seeded %d products", len(products))
	return nil
}
