package commands

import (
	"context"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// CancelOrderCommandHandler handles buyer-initiated cancellation. Reserved
// stock returns to the store, and when the order was already paid the settled
// amount moves back from the store owner to the buyer. Both compensations and
// the status flip commit in one transaction; the status write is
// compare-and-set guarded on the status the order was loaded in.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Shipped and settled orders
// cannot be cancelled.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !cancelledOrder.BelongsTo(cmd.BuyerID()) {
		return errs.NewAuthorizationFailedError("order " + cmd.OrderID().String() + " does not belong to " + cmd.BuyerID())
	}

	priorStatus := cancelledOrder.Status()
	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	storeRepo := uow.StoreRepository()
	for _, line := range cancelledOrder.Lines() {
		if err = storeRepo.ReleaseStock(ctx, cancelledOrder.StoreID(), line.BookID(), line.Count()); err != nil {
			return err
		}
	}

	if priorStatus == order.Paid {
		sellerStore, storeErr := storeRepo.Get(ctx, cancelledOrder.StoreID())
		if storeErr != nil {
			return storeErr
		}

		err = uow.UserRepository().Transfer(ctx, sellerStore.OwnerID(), cmd.BuyerID(), cancelledOrder.TotalPrice())
		if err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, cancelledOrder, priorStatus); err != nil {
		return err
	}

	if err = orderRepo.DeleteLines(ctx, cancelledOrder.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
