// internal/models/product.go
package models

// Product is the catalog row. The catalog is owned and mutated by the
// store; this service only ever reads it.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:255;not null;index"`
	Category    string  `json:"category" gorm:"size:100;index"`
	Brand       string  `json:"brand" gorm:"size:100;index"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int     `json:"stock" gorm:"default:0"`
	Rating      float64 `json:"rating" gorm:"type:decimal(3,2);default:0"`
	Description string  `json:"description" gorm:"type:text"`
}

// ProductSummary is the browse projection returned by catalog listings.
type ProductSummary struct {
	Name   string  `json:"name"`
	Brand  string  `json:"brand"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
	Stock  int     `json:"stock"`
}

// ProductDetail carries every catalog field for a single product.
type ProductDetail struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

// QueryFilter holds the optional predicates for a catalog browse. It is
// built per request by the intent resolver and consumed once.
type QueryFilter struct {
	Category  string   `json:"category,omitempty"`
	Brand     string   `json:"brand,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
	RatingMin *float64 `json:"rating_min,omitempty"`
	Limit     int      `json:"limit"`
}

// DefaultResultLimit caps catalog listings when no explicit limit is set.
const DefaultResultLimit = 5

// Summary projects a Product onto its browse fields.
func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		Name:   p.Name,
		Brand:  p.Brand,
		Price:  p.Price,
		Rating: p.Rating,
		Stock:  p.Stock,
	}
}

// Detail projects a Product onto the full detail view.
func (p *Product) Detail() ProductDetail {
	return ProductDetail{
		Name:        p.Name,
		Category:    p.Category,
		Brand:       p.Brand,
		Price:       p.Price,
		Rating:      p.Rating,
		Stock:       p.Stock,
		Description: p.Description,
	}
}
