package store

import (
	"errors"

	"bookstore/internal/pkg/errs"
)

var (
	// ErrStoreIsNotConstructed is returned when a Store instance was not created
	// through NewStore.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")
)

// Store represents one seller's shop. It is created once and immutable in the
// order core; the owner is the account credited by payment settlements.
type Store struct {
	id      string
	ownerID string

	isConstructed bool
}

// NewStore creates a store owned by the given seller account.
func NewStore(id, ownerID string) (*Store, error) {
	s := &Store{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Store instance was created through NewStore.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

// ID returns the store identifier.
func (s *Store) ID() string {
	return s.id
}

// OwnerID returns the seller account that owns the store.
func (s *Store) OwnerID() string {
	return s.ownerID
}

// IsOwnedBy reports whether userID owns this store.
func (s *Store) IsOwnedBy(userID string) bool {
	return s.ownerID == userID
}

func (s *Store) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("storeID")
	}
	s.id = id
	return nil
}

func (s *Store) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("ownerID")
	}
	s.ownerID = ownerID
	return nil
}
