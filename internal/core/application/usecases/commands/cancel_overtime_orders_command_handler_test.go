package commands_test

import (
	"testing"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expiredOrder(t *testing.T, age time.Duration) *order.Order {
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"alice",
		"store-1",
		order.Created,
		0,
		time.Now().UTC().Add(-age),
		[]order.Line{mustNewLine(t, "book-1", 2, 4500)},
	)
	require.NoError(t, err)
	return o
}

func TestCancelOvertimeOrdersCommandHandler_Handle_CancelsExpired(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOvertimeOrdersCommand(12 * time.Minute)
	require.NoError(t, err)

	expired := expiredOrder(t, time.Hour)
	fresh := expiredOrder(t, time.Minute)

	scanOrderRepo := new(MockOrderRepository)
	scanUow := new(MockUoW)
	scanUow.On("OrderRepository").Return(scanOrderRepo).Once()
	scanOrderRepo.On("GetAllInStatus", mock.Anything, order.Created).
		Return([]*order.Order{expired, fresh}, nil).Once()

	storeRepo := new(MockStoreRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("ReleaseStock", mock.Anything, "store-1", "book-1", 2).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, expired, order.Created).Return(nil).Once(),
		orderRepo.On("DeleteLines", mock.Anything, expired.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(scanUow).Once()
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOvertimeOrdersCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Cancelled, expired.Status())
	require.Equal(t, order.Created, fresh.Status())
	storeRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOvertimeOrdersCommandHandler_Handle_LostRaceDoesNotAbortSweep(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOvertimeOrdersCommand(12 * time.Minute)
	require.NoError(t, err)

	first := expiredOrder(t, time.Hour)
	second := expiredOrder(t, time.Hour)

	scanOrderRepo := new(MockOrderRepository)
	scanUow := new(MockUoW)
	scanUow.On("OrderRepository").Return(scanOrderRepo).Once()
	scanOrderRepo.On("GetAllInStatus", mock.Anything, order.Created).
		Return([]*order.Order{first, second}, nil).Once()

	// first order got paid mid-sweep: its CAS update loses
	firstStoreRepo := new(MockStoreRepository)
	firstOrderRepo := new(MockOrderRepository)
	firstUow := new(MockUoW)
	mock.InOrder(
		firstUow.On("Begin", ctx).Return(nil).Once(),
		firstUow.On("StoreRepository").Return(firstStoreRepo).Once(),
		firstStoreRepo.On("ReleaseStock", mock.Anything, "store-1", "book-1", 2).Return(nil).Once(),
		firstUow.On("OrderRepository").Return(firstOrderRepo).Once(),
		firstOrderRepo.On("Update", mock.Anything, first, order.Created).
			Return(errs.NewInvalidOrderStatusError(first.ID().String(), order.Created.String())).Once(),
		firstUow.On("Rollback", ctx).Return(nil).Once(),
	)

	secondStoreRepo := new(MockStoreRepository)
	secondOrderRepo := new(MockOrderRepository)
	secondUow := new(MockUoW)
	mock.InOrder(
		secondUow.On("Begin", ctx).Return(nil).Once(),
		secondUow.On("StoreRepository").Return(secondStoreRepo).Once(),
		secondStoreRepo.On("ReleaseStock", mock.Anything, "store-1", "book-1", 2).Return(nil).Once(),
		secondUow.On("OrderRepository").Return(secondOrderRepo).Once(),
		secondOrderRepo.On("Update", mock.Anything, second, order.Created).Return(nil).Once(),
		secondOrderRepo.On("DeleteLines", mock.Anything, second.ID()).Return(nil).Once(),
		secondUow.On("Commit", ctx).Return(nil).Once(),
		secondUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(scanUow).Once()
	factory.On("Create").Return(firstUow).Once()
	factory.On("Create").Return(secondUow).Once()

	h := commands.NewCancelOvertimeOrdersCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
	require.Equal(t, order.Cancelled, second.Status())
	secondOrderRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOvertimeOrdersCommand_RejectsNonPositiveTimeout(t *testing.T) {
	_, err := commands.NewCancelOvertimeOrdersCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
