package commands

import (
	"context"

	"bookstore/internal/core/domain/model/store"
	"bookstore/internal/pkg/errs"
)

// CreateStoreCommandHandler handles store creation. The owner account must be
// registered; a taken store id surfaces as a conflict error.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store creation.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store creation command.
func (h CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) error {
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

	ownerExists, err := uow.UserRepository().Exists(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}
	if !ownerExists {
		return errs.NewObjectNotFoundError("userId", cmd.OwnerID())
	}

	newStore, err := store.NewStore(cmd.StoreID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = uow.StoreRepository().Add(ctx, newStore); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
