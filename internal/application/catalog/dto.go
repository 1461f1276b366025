package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Code          string           `json:"code" binding:"required,min=1,max=50"`
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Description   string           `json:"description" binding:"max=2000"`
	Unit          string           `json:"unit" binding:"required,min=1,max=20"`
	Barcode       string           `json:"barcode" binding:"max=50"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	TaxRateID     *uuid.UUID       `json:"tax_rate_id"`
	Manufactured  bool             `json:"manufactured"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" binding:"omitempty,max=2000"`
	Unit          *string          `json:"unit" binding:"omitempty,min=1,max=20"`
	Barcode       *string          `json:"barcode" binding:"omitempty,max=50"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	TaxRateID     *uuid.UUID       `json:"tax_rate_id"`
	Status        *string          `json:"status" binding:"omitempty,oneof=active inactive discontinued"`
	Manufactured  *bool            `json:"manufactured"`
}

// ListProductsRequest represents the product list query string
type ListProductsRequest struct {
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=active inactive discontinued"`
	CategoryID *uuid.UUID `form:"category_id"`
}
