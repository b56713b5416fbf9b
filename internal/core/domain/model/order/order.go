package order

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order lifecycle. It ties a buyer to a
// store, carries the reserved lines with their frozen prices, and drives the
// status state machine from placement through settlement.
//
// Invariants:
//   - id is valid and unique, buyer and store are set
//   - at least one line at creation; lines are removed only when the order
//     terminally settles (consumed on cancellation, folded on receipt)
//   - totalPrice is zero until payment and holds the settled amount afterwards
//   - status transitions follow the Status state machine
//   - createdAt records placement time for the overtime sweep
type Order struct {
	id         kernel.UUID
	buyerID    string
	storeID    string
	status     Status
	totalPrice int64
	createdAt  time.Time
	lines      []Line

	isConstructed bool
}

// NewOrder creates an order in Created status with the given reserved lines.
// Placement time is recorded for the overtime sweep.
func NewOrder(id kernel.UUID, buyerID, storeID string, lines []Line) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setStoreID(storeID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// placement-time rules. Lines may be empty for terminally settled orders.
func RestoreOrder(
	id kernel.UUID,
	buyerID, storeID string,
	status Status,
	totalPrice int64,
	createdAt time.Time,
	lines []Line,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if buyerID == "" {
		return nil, errs.NewValueIsRequiredError("buyerID")
	}
	if storeID == "" {
		return nil, errs.NewValueIsRequiredError("storeID")
	}

	return &Order{
		id:            id,
		buyerID:       buyerID,
		storeID:       storeID,
		status:        status,
		totalPrice:    totalPrice,
		createdAt:     createdAt,
		lines:         lines,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was created through a constructor.
// Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the buyer who placed the order.
func (o *Order) BuyerID() string {
	return o.buyerID
}

// StoreID returns the store the order was placed against.
func (o *Order) StoreID() string {
	return o.storeID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the settled amount. Zero until the order is paid.
func (o *Order) TotalPrice() int64 {
	return o.totalPrice
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Lines returns the order lines. The slice must not be mutated by callers.
func (o *Order) Lines() []Line {
	return o.lines
}

// Total sums count*price over the current lines. This is the settlement amount
// computed at payment time.
func (o *Order) Total() int64 {
	var total int64
	for _, line := range o.lines {
		total += line.Subtotal()
	}
	return total
}

// BelongsTo reports whether userID is the buyer of this order.
func (o *Order) BelongsTo(userID string) bool {
	return o.buyerID == userID
}

// Pay transitions the order to Paid and records the settled total for a later
// refund on cancellation. Only Created orders can be paid.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return errs.NewInvalidOrderStatusError(o.id.String(), o.status.String())
	}

	o.totalPrice = o.Total()
	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled. Allowed from Created and Paid;
// the caller is responsible for releasing stock and reversing settlement in
// the same transaction.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return errs.NewInvalidOrderStatusError(o.id.String(), o.status.String())
	}

	o.status = newStatus
	return nil
}

// Ship transitions the order to Shipped. Only Paid orders can be shipped.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return errs.NewInvalidOrderStatusError(o.id.String(), o.status.String())
	}

	o.status = newStatus
	return nil
}

// Receive transitions the order to the terminal Received status.
func (o *Order) Receive() error {
	newStatus, err := o.status.Receive()
	if err != nil {
		return errs.NewInvalidOrderStatusError(o.id.String(), o.status.String())
	}

	o.status = newStatus
	return nil
}

// IsOvertime reports whether an unpaid order has outlived the payment deadline.
// Only Created orders expire.
func (o *Order) IsOvertime(now time.Time, timeout time.Duration) bool {
	return o.status == Created && now.Sub(o.createdAt) > timeout
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID string) error {
	if buyerID == "" {
		return errs.NewValueIsRequiredError("buyerID")
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setStoreID(storeID string) error {
	if storeID == "" {
		return errs.NewValueIsRequiredError("storeID")
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}
