package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/store"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stockEntry(t *testing.T, storeID, bookID string, price int64, stock int) *store.StockEntry {
	entry, err := store.RestoreStockEntry(storeID, bookID, bookBlob, price, stock)
	require.NoError(t, err)
	return entry
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "alice", "store-1", []commands.OrderItem{
		{BookID: "book-1", Count: 2},
		{BookID: "book-2", Count: 1},
	})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	storeRepo := new(MockStoreRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Exists", mock.Anything, "alice").Return(true, nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Exists", mock.Anything, "store-1").Return(true, nil).Once(),
		storeRepo.On("GetStockEntry", mock.Anything, "store-1", "book-1").
			Return(stockEntry(t, "store-1", "book-1", 4500, 10), nil).Once(),
		storeRepo.On("ReserveStock", mock.Anything, "store-1", "book-1", 2).Return(nil).Once(),
		storeRepo.On("GetStockEntry", mock.Anything, "store-1", "book-2").
			Return(stockEntry(t, "store-1", "book-2", 1200, 5), nil).Once(),
		storeRepo.On("ReserveStock", mock.Anything, "store-1", "book-2", 1).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	storeRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "alice", "store-1", []commands.OrderItem{
		{BookID: "book-1", Count: 100},
	})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	storeRepo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Exists", mock.Anything, "alice").Return(true, nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Exists", mock.Anything, "store-1").Return(true, nil).Once(),
		storeRepo.On("GetStockEntry", mock.Anything, "store-1", "book-1").
			Return(stockEntry(t, "store-1", "book-1", 4500, 10), nil).Once(),
		storeRepo.On("ReserveStock", mock.Anything, "store-1", "book-1", 100).
			Return(errs.NewInsufficientStockError("book-1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	storeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_UnknownStore(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "alice", "nowhere", []commands.OrderItem{
		{BookID: "book-1", Count: 1},
	})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	storeRepo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Exists", mock.Anything, "alice").Return(true, nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Exists", mock.Anything, "nowhere").Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommand_RejectsEmptyItems(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "alice", "store-1", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPlaceOrderCommand_RejectsNonPositiveCount(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "alice", "store-1", []commands.OrderItem{
		{BookID: "book-1", Count: 0},
	})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
