package commands

import (
	"context"
)

// AddFundsCommandHandler handles balance top-ups. The credential is verified
// against the stored account before the credit is applied.
type AddFundsCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAddFundsCommandHandler creates a handler for top-up operations.
func NewAddFundsCommandHandler(uowFactory UserUoWFactory) AddFundsCommandHandler {
	return AddFundsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the top-up command. The credit is a single atomic balance
// increment; a wrong credential fails with an authorization error before any
// mutation.
func (h AddFundsCommandHandler) Handle(ctx context.Context, cmd AddFundsCommand) error {
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

	userRepo := uow.UserRepository()
	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = account.VerifyPassword(cmd.Password()); err != nil {
		return err
	}

	if err = userRepo.Credit(ctx, cmd.UserID(), cmd.Amount()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
