package storerepo

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/store"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStoreRepository implements ports.StoreRepository using GORM.
type GormStoreRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking written aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormStoreRepository creates a new GORM store repository.
func NewGormStoreRepository(db *gorm.DB, tracker aggregateTracker) *GormStoreRepository {
	return &GormStoreRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new store to the database.
func (r *GormStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := storeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("storeId", aggregate.ID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a store by id.
func (r *GormStoreRepository) Get(ctx context.Context, id string) (*store.Store, error) {
	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storeId", id)
		}
		return nil, err
	}

	return storeToDomain(dto)
}

// Exists reports whether a store with the given id exists.
func (r *GormStoreRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&StoreDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddStockEntry lists a book in a store.
func (r *GormStoreRepository) AddStockEntry(ctx context.Context, entry *store.StockEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("bookId", entry.BookID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(entry.StoreID()+"/"+entry.BookID(), entry)
	return nil
}

// GetStockEntry retrieves one (store, book) catalog row.
func (r *GormStoreRepository) GetStockEntry(ctx context.Context, storeID, bookID string) (*store.StockEntry, error) {
	var dto StockEntryDTO
	err := r.db.WithContext(ctx).First(&dto, "store_id = ? AND book_id = ?", storeID, bookID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bookId", bookID)
		}
		return nil, err
	}

	return entryToDomain(dto)
}

// ReserveStock decrements a stock level with the floor-zero guard in the same
// statement. Losing the guard never mutates the row.
func (r *GormStoreRepository) ReserveStock(ctx context.Context, storeID, bookID string, count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidError("count")
	}

	result := r.db.WithContext(ctx).Model(&StockEntryDTO{}).
		Where("store_id = ? AND book_id = ? AND stock_level >= ?", storeID, bookID, count).
		UpdateColumn("stock_level", gorm.Expr("stock_level - ?", count))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		err := r.db.WithContext(ctx).Model(&StockEntryDTO{}).
			Where("store_id = ? AND book_id = ?", storeID, bookID).
			Count(&exists).Error
		if err != nil {
			return err
		}
		if exists == 0 {
			return errs.NewObjectNotFoundError("bookId", bookID)
		}
		return errs.NewInsufficientStockError(bookID)
	}

	return nil
}

// ReleaseStock increments a stock level. Compensating paths call it for every
// reserved line, so a missing row indicates corrupted state rather than user
// error.
func (r *GormStoreRepository) ReleaseStock(ctx context.Context, storeID, bookID string, count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidError("count")
	}

	result := r.db.WithContext(ctx).Model(&StockEntryDTO{}).
		Where("store_id = ? AND book_id = ?", storeID, bookID).
		UpdateColumn("stock_level", gorm.Expr("stock_level + ?", count))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("bookId", bookID,
			fmt.Errorf("release for store %s found no stock entry", storeID))
	}

	return nil
}
