// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/electromart/support-backend/internal/models"
	"github.com/electromart/support-backend/internal/services"
	"github.com/electromart/support-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filter := models.QueryFilter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
	}

	if priceMaxStr := c.Query("price_max"); priceMaxStr != "" {
		if priceMax, err := strconv.ParseFloat(priceMaxStr, 64); err == nil {
			filter.PriceMax = &priceMax
		} else {
			utils.BadRequestResponse(c, "Invalid price_max", nil)
			return
		}
	}

	if ratingMinStr := c.Query("rating_min"); ratingMinStr != "" {
		if ratingMin, err := strconv.ParseFloat(ratingMinStr, 64); err == nil {
			filter.RatingMin = &ratingMin
		} else {
			utils.BadRequestResponse(c, "Invalid rating_min", nil)
			return
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 50 {
			filter.Limit = limit
		}
	}

	products := h.catalogService.ListProducts(filter)

	utils.SuccessResponse(c, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GET /products/detail
func (h *ProductHandler) GetProductDetail(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.BadRequestResponse(c, "Missing name parameter", nil)
		return
	}

	detail := h.catalogService.GetProductDetail(name)
	if detail == nil {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": detail,
	})
}
