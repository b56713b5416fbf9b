package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangePasswordCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangePasswordCommand("alice", "secret", "next")
	require.NoError(t, err)

	account := mustNewUser(t, "alice", "secret")

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "alice").Return(account, nil).Once(),
		repo.On("Update", mock.Anything, account).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangePasswordCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, account.VerifyPassword("next"))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangePasswordCommandHandler_Handle_WrongOldPassword(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangePasswordCommand("alice", "wrong", "next")
	require.NoError(t, err)

	account := mustNewUser(t, "alice", "secret")

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "alice").Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangePasswordCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAuthorizationFailed)
	require.NoError(t, account.VerifyPassword("secret"))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangePasswordCommand_RequiresAllFields(t *testing.T) {
	_, err := commands.NewChangePasswordCommand("alice", "secret", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewChangePasswordCommand("alice", "", "next")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
