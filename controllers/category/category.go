package categoryController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JAX838/divine-sounds/models"
	"github.com/JAX838/divine-sounds/store"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// GetCategories lists all categories sorted by name.
func GetCategories(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.ListCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategory adds a category. Names are unique; duplicates are rejected.
func CreateCategory(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		category := models.Category{Name: req.Name, Description: req.Description}
		if err := catalog.CreateCategory(&category); err != nil {
			if errors.Is(err, store.ErrDuplicateCategory) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// DeleteCategory removes a category only when no product references it.
// Deletion never cascades or reassigns.
func DeleteCategory(catalog store.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		if _, err := catalog.FindCategoryByID(uint(id)); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}

		linked, err := catalog.CountProductsByCategory(uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count linked products"})
			return
		}
		if linked > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete category with associated products"})
			return
		}

		if err := catalog.DeleteCategory(uint(id)); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
