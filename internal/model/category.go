package model

// Category represents a product category in the catalog.
type Category struct {
	ID   int    `json:"categoryId" db:"category_id"`
	Name string `json:"categoryName" db:"category_name"`
}

// CategoryRequest represents the request payload for creating or updating a category.
type CategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required"`
}

// DeleteCategoryResponse represents the response payload for a category delete.
type DeleteCategoryResponse struct {
	Message           string `json:"message"`
	DeletedCategoryID int    `json:"deletedCategoryId"`
}
