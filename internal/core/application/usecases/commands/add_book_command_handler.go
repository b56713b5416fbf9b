package commands

import (
	"context"

	"bookstore/internal/core/domain/model/store"
	"bookstore/internal/pkg/errs"
)

// AddBookCommandHandler handles book listing. Only the store's owner may list
// books; a duplicate (store, book) pair surfaces as a conflict error.
type AddBookCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewAddBookCommandHandler creates a handler for book listing operations.
func NewAddBookCommandHandler(uowFactory StoreUoWFactory) AddBookCommandHandler {
	return AddBookCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing command. The unit price is lifted out of the
// metadata blob when the stock entry is constructed.
func (h AddBookCommandHandler) Handle(ctx context.Context, cmd AddBookCommand) error {
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

	entry, err := store.NewStockEntry(cmd.StoreID(), cmd.BookID(), cmd.BookInfo(), cmd.Stock())
	if err != nil {
		return err
	}

	if err = storeRepo.AddStockEntry(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
