package commands

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/core/domain/model/order"
)

// CancelOvertimeOrdersCommandHandler cancels unpaid orders that outlived the
// payment deadline, releasing their reserved stock. Each expired order is
// cancelled in its own transaction so one failure never aborts the sweep;
// the compare-and-set status write makes an order that got paid mid-sweep a
// clean per-order failure instead of a lost payment.
type CancelOvertimeOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOvertimeOrdersCommandHandler creates a handler for the overtime
// sweep.
func NewCancelOvertimeOrdersCommandHandler(uowFactory UoWFactory) CancelOvertimeOrdersCommandHandler {
	return CancelOvertimeOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep. Expiry is judged against the order's stored
// placement time. Per-order failures are collected and returned joined after
// the whole sweep ran.
func (h CancelOvertimeOrdersCommandHandler) Handle(ctx context.Context, cmd CancelOvertimeOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unpaidOrders, err := h.uowFactory.Create().OrderRepository().GetAllInStatus(ctx, order.Created)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var sweepErrs []error
	for _, unpaidOrder := range unpaidOrders {
		if !unpaidOrder.IsOvertime(now, cmd.Timeout()) {
			continue
		}

		if cancelErr := h.cancelOne(ctx, unpaidOrder); cancelErr != nil {
			sweepErrs = append(sweepErrs, cancelErr)
		}
	}

	return errors.Join(sweepErrs...)
}

func (h CancelOvertimeOrdersCommandHandler) cancelOne(ctx context.Context, expiredOrder *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	priorStatus := expiredOrder.Status()
	if err := expiredOrder.Cancel(); err != nil {
		return err
	}

	storeRepo := uow.StoreRepository()
	for _, line := range expiredOrder.Lines() {
		if err := storeRepo.ReleaseStock(ctx, expiredOrder.StoreID(), line.BookID(), line.Count()); err != nil {
			return err
		}
	}

	orderRepo := uow.OrderRepository()
	if err := orderRepo.Update(ctx, expiredOrder, priorStatus); err != nil {
		return err
	}

	if err := orderRepo.DeleteLines(ctx, expiredOrder.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
