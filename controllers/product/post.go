package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JAX838/divine-sounds/models"
	"github.com/JAX838/divine-sounds/store"
)

type SpecInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CreateProductRequest struct {
	Name           string      `json:"name" binding:"required"`
	Description    string      `json:"description"`
	Price          float64     `json:"price" binding:"required,gte=0"`
	Stock          int         `json:"stock" binding:"gte=0"`
	CategoryID     *uint       `json:"category_id"`
	ImageURL       string      `json:"image_url"`
	Featured       bool        `json:"featured"`
	Specifications []SpecInput `json:"specifications"`
}

// CreateProduct adds a product to the catalog. A supplied category must
// exist; uncategorized products are allowed.
func CreateProduct(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
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
		}

		product := models.Product{
			Name:           req.Name,
			Description:    req.Description,
			Price:          req.Price,
			Stock:          req.Stock,
			CategoryID:     req.CategoryID,
			ImageURL:       req.ImageURL,
			Featured:       req.Featured,
			Specifications: specModels(req.Specifications),
		}

		if err := catalog.CreateProduct(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		created, err := catalog.FindProductByID(product.ID)
		if err != nil {
			c.JSON(http.StatusCreated, product)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func specModels(in []SpecInput) []models.ProductSpec {
	specs := make([]models.ProductSpec, 0, len(in))
	for i, s := range in {
		specs = append(specs, models.ProductSpec{Position: i, Key: s.Key, Value: s.Value})
	}
	return specs
}
