package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/JAX838/divine-sounds/models"
)

// ProductFilter narrows ListProducts. Zero values mean "no constraint".
type ProductFilter struct {
	CategoryID *uint
	Featured   *bool
	Limit      int
}

// CatalogStore persists products and categories.
type CatalogStore interface {
	CreateProduct(p *models.Product) error
	UpdateProduct(p *models.Product) error
	DeleteProduct(id uint) error
	FindProductByID(id uint) (*models.Product, error)
	ListProducts(f ProductFilter) ([]models.Product, error)
	CountProductsByCategory(categoryID uint) (int64, error)

	CreateCategory(c *models.Category) error
	DeleteCategory(id uint) error
	FindCategoryByID(id uint) (*models.Category, error)
	ListCategories() ([]models.Category, error)
}

type gormCatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) CatalogStore {
	return &gormCatalogStore{db: db}
}

func (s *gormCatalogStore) CreateProduct(p *models.Product) error {
	for i := range p.Specifications {
		p.Specifications[i].Position = i
	}
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *gormCatalogStore) UpdateProduct(p *models.Product) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Replace the spec list wholesale so ordering stays intact.
		if err := tx.Where("product_id = ?", p.ID).Delete(&models.ProductSpec{}).Error; err != nil {
			return err
		}
		for i := range p.Specifications {
			p.Specifications[i].ID = 0
			p.Specifications[i].ProductID = p.ID
			p.Specifications[i].Position = i
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
	})
}

func (s *gormCatalogStore) DeleteProduct(id uint) error {
	res := s.db.Select("Specifications").Delete(&models.Product{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormCatalogStore) FindProductByID(id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Category").
		Preload("Specifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *gormCatalogStore) ListProducts(f ProductFilter) ([]models.Product, error) {
	q := s.db.
		Preload("Category").
		Preload("Specifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var products []models.Product
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *gormCatalogStore) CountProductsByCategory(categoryID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (s *gormCatalogStore) CreateCategory(c *models.Category) error {
	var existing models.Category
	err := s.db.Where("LOWER(name) = ?", strings.ToLower(c.Name)).First(&existing).Error
	if err == nil {
		return ErrDuplicateCategory
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(c).Error
}

func (s *gormCatalogStore) DeleteCategory(id uint) error {
	res := s.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormCatalogStore) FindCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *gormCatalogStore) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
