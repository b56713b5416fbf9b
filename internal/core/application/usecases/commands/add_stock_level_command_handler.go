package commands

import (
	"context"

	"bookstore/internal/pkg/errs"
)

// AddStockLevelCommandHandler handles explicit seller restocks.
type AddStockLevelCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewAddStockLevelCommandHandler creates a handler for restock operations.
func NewAddStockLevelCommandHandler(uowFactory StoreUoWFactory) AddStockLevelCommandHandler {
	return AddStockLevelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command. The increment is a single atomic
// stock movement on the (store, book) row.
func (h AddStockLevelCommandHandler) Handle(ctx context.Context, cmd AddStockLevelCommand) error {
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

	storeRepo := uow.StoreRepository()
	targetStore, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}
	if !targetStore.IsOwnedBy(cmd.SellerID()) {
		return errs.NewAuthorizationFailedError("store " + cmd.StoreID() + " is not owned by " + cmd.SellerID())
	}

	if err = storeRepo.ReleaseStock(ctx, cmd.StoreID(), cmd.BookID(), cmd.Count()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
