package userrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/user"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking written aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("userId", aggregate.ID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"password": dto.Password,
		"balance":  dto.Balance,
		"token":    dto.Token,
		"terminal": dto.Terminal,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by id.
func (r *GormUserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether an account with the given id is registered.
func (r *GormUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Credit adds a non-negative amount to an account's balance in one statement.
func (r *GormUserRepository) Credit(ctx context.Context, id string, amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userId", id)
	}

	return nil
}

// Transfer moves amount from one account to another. The debit statement
// carries the balance >= amount guard, so a short balance mutates nothing.
// Callers run it inside a unit of work so the debit and credit commit
// together or not at all.
func (r *GormUserRepository) Transfer(ctx context.Context, fromID, toID string, amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	debit := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ? AND balance >= ?", fromID, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if debit.Error != nil {
		return debit.Error
	}
	if debit.RowsAffected == 0 {
		exists, err := r.Exists(ctx, fromID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("userId", fromID)
		}
		return errs.NewInsufficientFundsError(fromID)
	}

	credit := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", toID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if credit.Error != nil {
		return credit.Error
	}
	if credit.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userId", toID)
	}

	return nil
}
