package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// UserID no viene en el body: se toma del token JWT en el handler.
type RegisterMovementRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Reason    string `json:"reason" validate:"required,min=3"`
}

// RegisterMovementResponse resultado de un movimiento aceptado.
type RegisterMovementResponse struct {
	Success       bool      `json:"success"`
	MovementID    int64     `json:"movement_id"`
	TransactionID string    `json:"transaction_id"`
	ProductID     int64     `json:"product_id"`
	ProductCode   string    `json:"product_code"`
	ProductName   string    `json:"product_name"`
	MovementType  string    `json:"movement_type"`
	Quantity      int64     `json:"quantity"`
	PreviousStock int64     `json:"previous_stock"`
	NewStock      int64     `json:"new_stock"`
	UserID        int64     `json:"user_id"`
	Username      string    `json:"username"`
	Timestamp     time.Time `json:"timestamp"`
	Message       string    `json:"message"`
}

// MovementResponse un movimiento en listados / consultas de auditoría.
type MovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ProductID     int64     `json:"product_id"`
	Quantity      int64     `json:"quantity"`
	MovementType  string    `json:"movement_type"`
	Reason        string    `json:"reason"`
	PreviousStock int64     `json:"previous_stock"`
	NewStock      int64     `json:"new_stock"`
	UserID        int64     `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}
