package http

import (
	"time"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterUserRequest is the body of POST /api/v1/users.
type RegisterUserRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
	Terminal string `json:"terminal"`
}

// SessionResponse carries a freshly issued session token.
type SessionResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// LoginRequest is the body of POST /api/v1/users/login.
type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
	Terminal string `json:"terminal"`
}

// LogoutRequest is the body of POST /api/v1/users/logout.
type LogoutRequest struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// ChangePasswordRequest is the body of POST /api/v1/users/password.
type ChangePasswordRequest struct {
	UserID      string `json:"user_id"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// AddFundsRequest is the body of POST /api/v1/users/funds.
type AddFundsRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
	Amount   int64  `json:"amount"`
}

// CreateStoreRequest is the body of POST /api/v1/stores.
type CreateStoreRequest struct {
	UserID  string `json:"user_id"`
	Token   string `json:"token"`
	StoreID string `json:"store_id"`
}

// AddBookRequest is the body of POST /api/v1/stores/:storeId/books.
// BookInfo is the raw metadata blob; its "price" field sets the unit price.
type AddBookRequest struct {
	UserID   string `json:"user_id"`
	Token    string `json:"token"`
	BookID   string `json:"book_id"`
	BookInfo string `json:"book_info"`
	Stock    int    `json:"stock"`
}

// AddStockLevelRequest is the body of POST /api/v1/stores/:storeId/books/:bookId/stock.
type AddStockLevelRequest struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
	Count  int    `json:"count"`
}

// StockEntryResponse is one catalog row of GET /api/v1/stores/:storeId/stock.
type StockEntryResponse struct {
	BookID     string `json:"book_id"`
	BookInfo   string `json:"book_info"`
	Price      int64  `json:"price"`
	StockLevel int    `json:"stock_level"`
}

// OrderItemRequest is one requested (book, count) pair of a placement.
type OrderItemRequest struct {
	BookID string `json:"book_id"`
	Count  int    `json:"count"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	UserID  string             `json:"user_id"`
	Token   string             `json:"token"`
	StoreID string             `json:"store_id"`
	Items   []OrderItemRequest `json:"items"`
}

// PlaceOrderResponse returns the id of the placed order.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
}

// PayOrderRequest is the body of POST /api/v1/orders/:orderId/payment.
// Payment re-verifies the credential instead of the session token.
type PayOrderRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:orderId/cancellation.
type CancelOrderRequest struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// ShipOrderRequest is the body of POST /api/v1/orders/:orderId/shipment.
type ShipOrderRequest struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// ReceiveOrderRequest is the body of POST /api/v1/orders/:orderId/receipt.
type ReceiveOrderRequest struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// OrderLineResponse is one line of an order history entry.
type OrderLineResponse struct {
	BookID string `json:"book_id"`
	Count  int    `json:"count"`
	Price  int64  `json:"price"`
}

// OrderHistoryResponse is one order of GET /api/v1/users/:userId/orders.
type OrderHistoryResponse struct {
	OrderID    string              `json:"order_id"`
	StoreID    string              `json:"store_id"`
	Status     string              `json:"status"`
	TotalPrice int64               `json:"total_price"`
	CreatedAt  time.Time           `json:"created_at"`
	Lines      []OrderLineResponse `json:"lines"`
}
