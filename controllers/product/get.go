package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JAX838/divine-sounds/store"
)

// GetProducts lists the catalog. Optional query filters:
// ?category=ID, ?featured=true, ?limit=6
func GetProducts(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter store.ProductFilter

		if raw := c.Query("category"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category filter"})
				return
			}
			catID := uint(id)
			filter.CategoryID = &catID
		}

		if raw := c.Query("featured"); raw != "" {
			v := strings.ToLower(raw) == "true" || raw == "1"
			filter.Featured = &v
		}

		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				filter.Limit = n
			}
		}

		products, err := catalog.ListProducts(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product with its category and spec list.
func GetProductByID(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
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
		c.JSON(http.StatusOK, product)
	}
}

func productID(c *gin.Context) (uint, bool) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}
