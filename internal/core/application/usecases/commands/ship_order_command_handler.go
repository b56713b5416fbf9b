package commands

import (
	"context"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// ShipOrderCommandHandler handles shipment. Only the owner of the store the
// order was placed against may ship it, and only from Paid status.
type ShipOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewShipOrderCommandHandler creates a handler for shipment operations.
func NewShipOrderCommandHandler(uowFactory UoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment command. Once shipped the order can no longer
// be cancelled.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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
	shippedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	sellerStore, err := uow.StoreRepository().Get(ctx, shippedOrder.StoreID())
	if err != nil {
		return err
	}
	if !sellerStore.IsOwnedBy(cmd.SellerID()) {
		return errs.NewAuthorizationFailedError("store " + sellerStore.ID() + " is not owned by " + cmd.SellerID())
	}

	if err = shippedOrder.Ship(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, shippedOrder, order.Paid); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
