package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code         string `json:"code" validate:"required,min=1,max=50"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"omitempty,max=1000"`
	CurrentStock int64  `json:"current_stock" validate:"min=0"`
	MinStock     int64  `json:"min_stock" validate:"min=0"`
	MaxStock     int64  `json:"max_stock" validate:"min=0"`
	Unit         string `json:"unit" validate:"required,min=1,max=20"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// No acepta campos de stock: el stock solo se muta vía movimientos de inventario.
type UpdateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	MinStock    int64  `json:"min_stock" validate:"min=0"`
	MaxStock    int64  `json:"max_stock" validate:"min=0"`
	Unit        string `json:"unit" validate:"required,min=1,max=20"`
}

// InventoryStatusResponse resumen agregado del inventario activo con alertas:
// productos por debajo del mínimo y productos en o sobre su tope máximo.
type InventoryStatusResponse struct {
	TotalProducts     int                `json:"total_products"`
	TotalStock        int64              `json:"total_stock"`
	LowStockCount     int                `json:"low_stock_count"`
	HighStockCount    int                `json:"high_stock_count"`
	LowStockProducts  []*ProductResponse `json:"low_stock_products"`
	HighStockProducts []*ProductResponse `json:"high_stock_products"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	CurrentStock    int64     `json:"current_stock"`
	MinStock        int64     `json:"min_stock"`
	MaxStock        int64     `json:"max_stock"`
	Unit            string    `json:"unit"`
	Version         int64     `json:"version"`
	IsActive        bool      `json:"is_active"`
	IsStockLow      bool      `json:"is_stock_low"`
	StockPercentage float64   `json:"stock_percentage"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
