// Package orderrepo implements the order repository over PostgreSQL, mapping
// the order aggregate and its lines to their database rows.
package orderrepo

import (
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order header. Status is indexed for the
// overtime sweep; CreatedAt stores the placement time explicitly so expiry
// never has to be parsed out of the identifier.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID    string    `gorm:"size:128;not null;index"`
	StoreID    string    `gorm:"size:128;not null;index"`
	Status     int       `gorm:"not null;index"`
	TotalPrice int64     `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the database row for one order line. The composite primary
// key matches the (order, book) uniqueness of the domain.
type OrderLineDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID  string    `gorm:"size:128;primaryKey"`
	Count   int       `gorm:"not null"`
	Price   int64     `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) (OrderDTO, []OrderLineDTO) {
	header := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		BuyerID:    aggregate.BuyerID(),
		StoreID:    aggregate.StoreID(),
		Status:     int(aggregate.Status()),
		TotalPrice: aggregate.TotalPrice(),
		CreatedAt:  aggregate.CreatedAt(),
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID: aggregate.ID().Bytes(),
			BookID:  line.BookID(),
			Count:   line.Count(),
			Price:   line.Price(),
		})
	}

	return header, lines
}

func toDomain(dto OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, l := range lineDTOs {
		line, lineErr := order.NewLine(l.BookID, l.Count, l.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.BuyerID, dto.StoreID, order.Status(dto.Status), dto.TotalPrice, dto.CreatedAt, lines)
}
