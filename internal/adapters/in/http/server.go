// Package http is the inbound HTTP adapter. It binds request bodies to
// commands and queries, verifies sessions through the identity provider, and
// maps domain error kinds to stable status codes. All business rules live in
// the handlers behind it.
package http

import (
	"log/slog"
	"net/http"

	"bookstore/internal/adapters/out/identity"
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	identity *identity.Provider
	logger   *slog.Logger

	// Command handlers
	registerUserHandler   commands.RegisterUserCommandHandler
	changePasswordHandler commands.ChangePasswordCommandHandler
	addFundsHandler       commands.AddFundsCommandHandler
	createStoreHandler    commands.CreateStoreCommandHandler
	addBookHandler        commands.AddBookCommandHandler
	addStockLevelHandler  commands.AddStockLevelCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler
	payOrderHandler       commands.PayOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	shipOrderHandler      commands.ShipOrderCommandHandler
	receiveOrderHandler   commands.ReceiveOrderCommandHandler

	// Query handlers
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getStoreStockHandler   queries.GetStoreStockQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	identityProvider *identity.Provider,
	logger *slog.Logger,
	registerUserHandler commands.RegisterUserCommandHandler,
	changePasswordHandler commands.ChangePasswordCommandHandler,
	addFundsHandler commands.AddFundsCommandHandler,
	createStoreHandler commands.CreateStoreCommandHandler,
	addBookHandler commands.AddBookCommandHandler,
	addStockLevelHandler commands.AddStockLevelCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	receiveOrderHandler commands.ReceiveOrderCommandHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getStoreStockHandler queries.GetStoreStockQueryHandler,
) *Server {
	return &Server{
		identity:               identityProvider,
		logger:                 logger.With("component", "http_server"),
		registerUserHandler:    registerUserHandler,
		changePasswordHandler:  changePasswordHandler,
		addFundsHandler:        addFundsHandler,
		createStoreHandler:     createStoreHandler,
		addBookHandler:         addBookHandler,
		addStockLevelHandler:   addStockLevelHandler,
		placeOrderHandler:      placeOrderHandler,
		payOrderHandler:        payOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		shipOrderHandler:       shipOrderHandler,
		receiveOrderHandler:    receiveOrderHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		getStoreStockHandler:   getStoreStockHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.POST("/users/login", s.Login)
	api.POST("/users/logout", s.Logout)
	api.POST("/users/password", s.ChangePassword)
	api.POST("/users/funds", s.AddFunds)
	api.GET("/users/:userId/orders", s.GetOrderHistory)

	api.POST("/stores", s.CreateStore)
	api.POST("/stores/:storeId/books", s.AddBook)
	api.POST("/stores/:storeId/books/:bookId/stock", s.AddStockLevel)
	api.GET("/stores/:storeId/stock", s.GetStoreStock)

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:orderId/payment", s.PayOrder)
	api.POST("/orders/:orderId/cancellation", s.CancelOrder)
	api.POST("/orders/:orderId/shipment", s.ShipOrder)
	api.POST("/orders/:orderId/receipt", s.ReceiveOrder)
}

// RegisterUser handles POST /api/v1/users - creates an account and issues
// its initial session token.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	token, err := s.identity.IssueToken(req.UserID, req.Terminal)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(req.UserID, req.Password, token, req.Terminal)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SessionResponse{UserID: req.UserID, Token: token})
}

// Login handles POST /api/v1/users/login - verifies the credential and
// rotates the session token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	token, err := s.identity.Login(ctx.Request().Context(), req.UserID, req.Password, req.Terminal)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SessionResponse{UserID: req.UserID, Token: token})
}

// Logout handles POST /api/v1/users/logout - clears the current session.
func (s *Server) Logout(ctx echo.Context) error {
	var req LogoutRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err := s.identity.Logout(ctx.Request().Context(), req.UserID, req.Token); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangePassword handles POST /api/v1/users/password - replaces the
// credential after verifying the old one.
func (s *Server) ChangePassword(ctx echo.Context) error {
	var req ChangePasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(req.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.changePasswordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AddFunds handles POST /api/v1/users/funds - tops up a balance.
func (s *Server) AddFunds(ctx echo.Context) error {
	var req AddFundsRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddFundsCommand(req.UserID, req.Password, req.Amount)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.addFundsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateStore handles POST /api/v1/stores - opens a store for a seller.
func (s *Server) CreateStore(ctx echo.Context) error {
	var req CreateStoreRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err := s.identity.VerifyToken(ctx.Request().Context(), req.UserID, req.Token); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateStoreCommand(req.StoreID, req.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createStoreHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddBook handles POST /api/v1/stores/:storeId/books - lists a book.
func (s *Server) AddBook(ctx echo.Context) error {
	var req AddBookRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err := s.identity.VerifyToken(ctx.Request().Context(), req.UserID, req.Token); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddBookCommand(req.UserID, ctx.Param("storeId"), req.BookID, req.BookInfo, req.Stock)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.addBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddStockLevel handles POST /api/v1/stores/:storeId/books/:bookId/stock -
// restocks a listed book.
func (s *Server) AddStockLevel(ctx echo.Context) error {
	var req AddStockLevelRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err := s.identity.VerifyToken(ctx.Request().Context(), req.UserID, req.Token); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddStockLevelCommand(req.UserID, ctx.Param("storeId"), ctx.Param("bookId"), req.Count)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.addStockLevelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetStoreStock handles GET /api/v1/stores/:storeId/stock - returns the
// store's catalog with current stock levels.
func (s *Server) GetStoreStock(ctx echo.Context) error {
	query, err := queries.NewGetStoreStockQuery(ctx.Param("storeId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	catalog, err := s.getStoreStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]StockEntryResponse, len(catalog))
	for i, row := range catalog {
		response[i] = StockEntryResponse{
			BookID:     row.BookID,
			BookInfo:   row.BookInfo,
			Price:      row.Price,
			StockLevel: row.StockLevel,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places an order and returns its id.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err := s.identity.VerifyToken(ctx.Request().Context(), req.UserID, req.Token); err != nil {
		return s.fail(ctx, err)
	}

	items := make([]commands.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.OrderItem{BookID: item.BookID, Count: item.Count}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, req.UserID, req.StoreID, items)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// PayOrder handles POST /api/v1/orders/:orderId/payment.
func (s *Server) PayOrder(ctx echo.Context) error {
	var req PayOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewPayOrderCommand(orderID, req.UserID, req.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err := s.identity.VerifyToken(ctx.Request().Context(), req.UserID, req.Token); err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ShipOrder handles POST /api/v1/orders/:orderId/shipment.
func (s *Server) ShipOrder(ctx echo.Context) error {
	var req ShipOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err := s.identity.VerifyToken(ctx.Request().Context(), req.UserID, req.Token); err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(orderID, req.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReceiveOrder handles POST /api/v1/orders/:orderId/receipt.
func (s *Server) ReceiveOrder(ctx echo.Context) error {
	var req ReceiveOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	if err := s.identity.VerifyToken(ctx.Request().Context(), req.UserID, req.Token); err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReceiveOrderCommand(orderID, req.UserID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.receiveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrderHistory handles GET /api/v1/users/:userId/orders.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	userID := ctx.Param("userId")
	if err := s.identity.VerifyToken(ctx.Request().Context(), userID, ctx.QueryParam("token")); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(userID)
	if err != nil {
		return s.fail(ctx, err)
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderHistoryResponse, len(history))
	for i, entry := range history {
		lines := make([]OrderLineResponse, len(entry.Lines))
		for j, line := range entry.Lines {
			lines[j] = OrderLineResponse{BookID: line.BookID, Count: line.Count, Price: line.Price}
		}

		response[i] = OrderHistoryResponse{
			OrderID:    entry.ID.String(),
			StoreID:    entry.StoreID,
			Status:     entry.Status,
			TotalPrice: entry.TotalPrice,
			CreatedAt:  entry.CreatedAt,
			Lines:      lines,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status, message := classifyError(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed", "error", err)
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
