package commands

import (
	"context"
)

// ChangePasswordCommandHandler handles credential changes.
type ChangePasswordCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewChangePasswordCommandHandler creates a handler for credential changes.
func NewChangePasswordCommandHandler(uowFactory UserUoWFactory) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the credential change. A wrong old credential fails with
// an authorization error before any mutation.
func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
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

	if err = account.ChangePassword(cmd.OldPassword(), cmd.NewPassword()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
