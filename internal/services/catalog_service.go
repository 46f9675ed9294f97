// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/electromart/support-backend/internal/config"
	"github.com/electromart/support-backend/internal/models"
)

// CatalogStore is the read-only collaborator backing catalog lookups.
// Implementations return rows in catalog order; CatalogService applies
// its own sort and limit on top.
type CatalogStore interface {
	FetchProducts(filter models.QueryFilter) ([]models.Product, error)
	FetchByName(nameHint string) (*models.Product, error)
}

// CatalogService filters, orders, and projects catalog rows. Store
// failures never reach the caller: listings degrade to an empty slice
// and detail lookups to nil, with the failure logged.
type CatalogService struct {
	store CatalogStore
}

func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListProducts returns summaries matching the filter, sorted by rating
// descending then price ascending (stable on catalog order), truncated
// to the filter limit.
func (s *CatalogService) ListProducts(filter models.QueryFilter) []models.ProductSummary {
	if filter.Limit <= 0 {
		filter.Limit = models.DefaultResultLimit
	}

	rows, err := s.store.FetchProducts(filter)
	if err != nil {
		logrus.WithError(err).Error("Catalog unavailable during product listing")
		return []models.ProductSummary{}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Rating != rows[j].Rating {
			return rows[i].Rating > rows[j].Rating
		}
		return rows[i].Price < rows[j].Price
	})

	if len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}

	summaries := make([]models.ProductSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, rows[i].Summary())
	}

	return summaries
}

// GetProductDetail returns the first catalog-order product whose name
// contains the hint, case-insensitively, or nil when nothing matches or
// the store is unreachable.
func (s *CatalogService) GetProductDetail(nameHint string) *models.ProductDetail {
	row, err := s.store.FetchByName(nameHint)
	if err != nil {
		logrus.WithError(err).WithField("hint", nameHint).Error("Catalog unavailable during detail lookup")
		return nil
	}

	if row == nil {
		return nil
	}

	detail := row.Detail()
	return &detail
}

// gormCatalogStore reads the products table over a fresh connection per
// call. Chat traffic never holds a pool open; the connection is released
// on every exit path.
type gormCatalogStore struct {
	cfg config.DatabaseConfig
}

func NewGormCatalogStore(cfg config.DatabaseConfig) CatalogStore {
	return &gormCatalogStore{cfg: cfg}
}

func (s *gormCatalogStore) open() (*gorm.DB, func(), error) {
	db, err := gorm.Open(postgres.Open(s.cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to catalog: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close catalog connection")
		}
	}

	return db, cleanup, nil
}

func (s *gormCatalogStore) FetchProducts(filter models.QueryFilter) ([]models.Product, error) {
	db, cleanup, err := s.open()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	query := db.Model(&models.Product{})

	if filter.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}

	if filter.Brand != "" {
		query = query.Where("LOWER(brand) = ?", strings.ToLower(filter.Brand))
	}

	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}

	if filter.RatingMin != nil {
		query = query.Where("rating >= ?", *filter.RatingMin)
	}

	var products []models.Product
	if err := query.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *gormCatalogStore) FetchByName(nameHint string) (*models.Product, error) {
	db, cleanup, err := s.open()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	searchTerm := "%" + strings.ToLower(nameHint) + "%"

	var product models.Product
	if err := db.Where("LOWER(name) LIKE ?", searchTerm).Order("id").First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product by name: %w", err)
	}

	return &product, nil
}
