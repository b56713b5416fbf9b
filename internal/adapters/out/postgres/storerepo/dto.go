// Package storerepo implements the store repository and inventory operations
// over PostgreSQL, mapping stores and stock entries to their database rows.
package storerepo

import (
	"bookstore/internal/core/domain/model/store"
)

// StoreDTO is the database row for a seller's store.
type StoreDTO struct {
	ID      string `gorm:"primaryKey;size:128"`
	OwnerID string `gorm:"size:128;not null;index"`
}

// TableName overrides GORM's default naming to use "stores".
func (StoreDTO) TableName() string {
	return "stores"
}

// StockEntryDTO is the database row for one (store, book) catalog entry.
// The composite primary key gives the uniqueness constraint reservations
// rely on.
type StockEntryDTO struct {
	StoreID    string `gorm:"primaryKey;size:128"`
	BookID     string `gorm:"primaryKey;size:128"`
	BookInfo   string `gorm:"type:text"`
	Price      int64  `gorm:"not null"`
	StockLevel int    `gorm:"not null;default:0"`
}

// TableName overrides GORM's default naming to use "stock_entries".
func (StockEntryDTO) TableName() string {
	return "stock_entries"
}

func storeFromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:      aggregate.ID(),
		OwnerID: aggregate.OwnerID(),
	}
}

func storeToDomain(dto StoreDTO) (*store.Store, error) {
	return store.NewStore(dto.ID, dto.OwnerID)
}

func entryFromDomain(entry *store.StockEntry) StockEntryDTO {
	return StockEntryDTO{
		StoreID:    entry.StoreID(),
		BookID:     entry.BookID(),
		BookInfo:   entry.BookInfo(),
		Price:      entry.Price(),
		StockLevel: entry.StockLevel(),
	}
}

func entryToDomain(dto StockEntryDTO) (*store.StockEntry, error) {
	return store.RestoreStockEntry(dto.StoreID, dto.BookID, dto.BookInfo, dto.Price, dto.StockLevel)
}
