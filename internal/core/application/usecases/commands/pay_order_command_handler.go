package commands

import (
	"context"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// PayOrderCommandHandler handles order payment. The buyer's balance moves to
// the store owner's balance and the status flips to Paid, all inside one
// transaction. The status write is compare-and-set guarded on Created, so a
// payment racing a cancellation or the overtime sweep settles exactly once.
//
// Example:
//
//	handler := NewPayOrderCommandHandler(uowFactory)
//	cmd, _ := NewPayOrderCommand(orderID, "alice", "secret")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInsufficientFunds):
//	    log.Println("buyer cannot cover the total")
//	case errors.Is(err, errs.ErrInvalidOrderStatus):
//	    log.Println("order is no longer payable")
//	case err != nil:
//	    log.Printf("payment failed: %v", err)
//	}
type PayOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPayOrderCommandHandler creates a handler for payment operations.
func NewPayOrderCommandHandler(uowFactory UoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command. A balance exactly equal to the total
// is sufficient; the settled total is recorded on the order for a later
// refund on cancellation.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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
	paidOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !paidOrder.BelongsTo(cmd.BuyerID()) {
		return errs.NewAuthorizationFailedError("order " + cmd.OrderID().String() + " does not belong to " + cmd.BuyerID())
	}

	userRepo := uow.UserRepository()
	buyer, err := userRepo.Get(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}
	if err = buyer.VerifyPassword(cmd.Password()); err != nil {
		return err
	}

	if err = paidOrder.Pay(); err != nil {
		return err
	}

	sellerStore, err := uow.StoreRepository().Get(ctx, paidOrder.StoreID())
	if err != nil {
		return err
	}

	if err = userRepo.Transfer(ctx, cmd.BuyerID(), sellerStore.OwnerID(), paidOrder.TotalPrice()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, paidOrder, order.Created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
