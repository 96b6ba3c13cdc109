package model

// Product represents a product in the catalog. Every product belongs to
// exactly one category.
type Product struct {
	ID         int    `json:"productId" db:"product_id"`
	Name       string `json:"productName" db:"product_name"`
	CategoryID int    `json:"categoryId" db:"category_id"`
}

// ProductWithCategory is a product joined to its category name, as returned
// by the paginated listing.
type ProductWithCategory struct {
	ID           int    `json:"productId" db:"product_id"`
	Name         string `json:"productName" db:"product_name"`
	CategoryID   int    `json:"categoryId" db:"category_id"`
	CategoryName string `json:"categoryName" db:"category_name"`
}

// ProductRequest represents the request payload for creating or updating a product.
type ProductRequest struct {
	ProductName string `json:"productName" validate:"required"`
	CategoryID  int    `json:"categoryId" validate:"required,gt=0"`
}

// Pagination describes one page of a paginated listing.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ProductPage is the response payload for the paginated product listing.
type ProductPage struct {
	Data       []ProductWithCategory `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

// DeleteProductResponse represents the response payload for a product delete.
type DeleteProductResponse struct {
	Message          string `json:"message"`
	DeletedProductID int    `json:"deletedProductId"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
