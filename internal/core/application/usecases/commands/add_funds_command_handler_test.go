package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddFundsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddFundsCommand("alice", "secret", 100)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "alice").Return(mustNewUser(t, "alice", "secret"), nil).Once(),
		repo.On("Credit", mock.Anything, "alice", int64(100)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddFundsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddFundsCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddFundsCommand("alice", "wrong", 100)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "alice").Return(mustNewUser(t, "alice", "secret"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddFundsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAuthorizationFailed)
	repo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddFundsCommand_NonPositiveAmount(t *testing.T) {
	_, err := commands.NewAddFundsCommand("alice", "secret", 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewAddFundsCommand("alice", "secret", -5)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
