package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAX838/divine-sounds/store"
)

type UpdateProductRequest struct {
	Name           *string     `json:"name"`
	Description    *string     `json:"description"`
	Price          *float64    `json:"price"`
	Stock          *int        `json:"stock"`
	CategoryID     *uint       `json:"category_id"`
	ImageURL       *string     `json:"image_url"`
	Featured       *bool       `json:"featured"`
	Specifications []SpecInput `json:"specifications"`
}

// UpdateProduct applies a partial update; only supplied fields change.
// Existing orders keep their snapshot name and price regardless.
func UpdateProduct(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product, err := catalog.FindProductByID(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			if *req.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
				return
			}
			product.Price = *req.Price
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must be non-negative"})
				return
			}
			product.Stock = *req.Stock
		}
		if req.CategoryID != nil {
			if _, err := catalog.FindCategoryByID(*req.CategoryID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category"})
				}
				return
			}
			product.CategoryID = req.CategoryID
		}
		if req.ImageURL != nil {
			product.ImageURL = *req.ImageURL
		}
		if req.Featured != nil {
			product.Featured = *req.Featured
		}
		if req.Specifications != nil {
			product.Specifications = specModels(req.Specifications)
		}
		product.Category = nil

		if err := catalog.UpdateProduct(product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		updated, err := catalog.FindProductByID(id)
		if err != nil {
			c.JSON(http.StatusOK, product)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
