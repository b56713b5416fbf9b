package commands

import (
	"errors"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand represents a seller's request to open a new store.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID string
	ownerID string

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to open a store owned by ownerID.
func NewCreateStoreCommand(storeID, ownerID string) (CreateStoreCommand, error) {
	cmd := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// StoreID returns the identifier of the store to open.
func (c CreateStoreCommand) StoreID() string {
	return c.storeID
}

// OwnerID returns the seller account opening the store.
func (c CreateStoreCommand) OwnerID() string {
	return c.ownerID
}

func (c *CreateStoreCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeId")
	}

	c.storeID = storeID
	return nil
}

func (c *CreateStoreCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("ownerId")
	}

	c.ownerID = ownerID
	return nil
}
