package commands

import (
	"context"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles order placement. All requested lines are
// reserved inside one transaction with the unit price in effect at that
// moment frozen onto each line. Any failed reservation rolls back every
// reservation already made, so placement is all-or-nothing.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the placement command. The order is created in Created
// status awaiting payment.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	buyerExists, err := uow.UserRepository().Exists(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}
	if !buyerExists {
		return errs.NewObjectNotFoundError("userId", cmd.BuyerID())
	}

	storeRepo := uow.StoreRepository()
	storeExists, err := storeRepo.Exists(ctx, cmd.StoreID())
	if err != nil {
		return err
	}
	if !storeExists {
		return errs.NewObjectNotFoundError("storeId", cmd.StoreID())
	}

	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		entry, entryErr := storeRepo.GetStockEntry(ctx, cmd.StoreID(), item.BookID)
		if entryErr != nil {
			return entryErr
		}

		if reserveErr := storeRepo.ReserveStock(ctx, cmd.StoreID(), item.BookID, item.Count); reserveErr != nil {
			return reserveErr
		}

		line, lineErr := order.NewLine(item.BookID, item.Count, entry.Price())
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.BuyerID(), cmd.StoreID(), lines)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
