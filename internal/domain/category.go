package domain

import "errors"

var (
	MessageFailedListCategories  = "Error retrieving categories"
	MessageFailedFetchCategories = "Error fetching categories"
	MessageFailedCategoryByID    = "Error retrieving category by ID"
	MessageFailedAddCategory     = "Error adding new category"
	MessageFailedUpdateCategory  = "Error updating the category"
	MessageFailedDeleteCategory  = "Error deleting the category"
	MessageCategoryNotFound      = "Category not found"

	ErrCategoryNotFound = errors.New("category not found")
)

// Category Model
type Category struct {
	CategoryID   uint   `gorm:"column:categoryID;primaryKey"` // Primary key
	CategoryName string `gorm:"column:categoryName;not null"` // Display name
}

func (Category) TableName() string {
	return "category"
}
