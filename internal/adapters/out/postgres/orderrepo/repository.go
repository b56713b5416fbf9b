package orderrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking written aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and all of its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	header, lines := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&header).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("orderId", aggregate.ID().String(), err)
		}
		return err
	}
	if len(lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	lines, err := r.linesFor(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, lines)
}

// Update persists the order's status and settled total, guarded by a
// compare-and-set on the expected status. A concurrent conflicting transition
// makes the guard fail and surfaces as an invalid-order-status error.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(expectedStatus)).
		Updates(map[string]any{
			"status":      int(aggregate.Status()),
			"total_price": aggregate.TotalPrice(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var exists int64
		err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).
			Count(&exists).Error
		if err != nil {
			return err
		}
		if exists == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
		}
		return errs.NewInvalidOrderStatusError(aggregate.ID().String(), expectedStatus.String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// DeleteLines removes all lines of an order at terminal settlement.
func (r *GormOrderRepository) DeleteLines(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("order_id = ?", id.Bytes()).
		Delete(&OrderLineDTO{}).Error
}

// GetAllByUser retrieves all orders a buyer has placed, newest first.
func (r *GormOrderRepository) GetAllByUser(ctx context.Context, userID string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "buyer_id = ?", userID).Error
	if err != nil {
		return nil, err
	}

	return r.hydrate(ctx, dtos)
}

// GetAllInStatus retrieves all orders in the given status. The overtime sweep
// scans Created orders through this.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return r.hydrate(ctx, dtos)
}

func (r *GormOrderRepository) linesFor(ctx context.Context, orderID uuid.UUID) ([]OrderLineDTO, error) {
	var lines []OrderLineDTO
	if err := r.db.WithContext(ctx).Find(&lines, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *GormOrderRepository) hydrate(ctx context.Context, dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		lines, err := r.linesFor(ctx, dto.ID)
		if err != nil {
			return nil, err
		}

		o, err := toDomain(dto, lines)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
