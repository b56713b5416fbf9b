package commands

import (
	"context"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// ReceiveOrderCommandHandler handles receipt confirmation, the terminal step
// of a successful order. The lines are removed once the order settles.
type ReceiveOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewReceiveOrderCommandHandler creates a handler for receipt confirmation.
func NewReceiveOrderCommandHandler(uowFactory UoWFactory) ReceiveOrderCommandHandler {
	return ReceiveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command. Only Shipped orders can be
// confirmed, and only by their buyer.
func (h ReceiveOrderCommandHandler) Handle(ctx context.Context, cmd ReceiveOrderCommand) error {
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
	receivedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !receivedOrder.BelongsTo(cmd.BuyerID()) {
		return errs.NewAuthorizationFailedError("order " + cmd.OrderID().String() + " does not belong to " + cmd.BuyerID())
	}

	if err = receivedOrder.Receive(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, receivedOrder, order.Shipped); err != nil {
		return err
	}

	if err = orderRepo.DeleteLines(ctx, receivedOrder.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
