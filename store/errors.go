package store

import "errors"

var (
	// ErrNotFound is returned when a referenced product, category or order
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrCategoryInUse is returned when a category still has products
	// linked to it and therefore cannot be deleted.
	ErrCategoryInUse = errors.New("category has associated products")

	// ErrDuplicateCategory is returned when a category with the same name
	// already exists.
	ErrDuplicateCategory = errors.New("category already exists")
)
