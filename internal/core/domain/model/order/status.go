package order

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders always follow the settlement
// workflow.
//
// State transitions:
//
//	Created ──┬──> Paid ──┬──> Shipped ──> Received
//	          │           │
//	          └───────────┴──> Cancelled
//
// Shipped and Received are distinct codes: Shipped means the seller handed the
// order over, Received is the terminal confirmation by the buyer.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status after order placement. Stock is reserved
	// but the order is not yet paid; it may still be cancelled or expire.
	Created

	// Paid indicates settlement has completed: the buyer's balance was moved
	// to the seller and the settled total is recorded on the order.
	Paid

	// Cancelled is a terminal status. Reserved stock has been released and,
	// for paid orders, the settlement has been reversed.
	Cancelled

	// Shipped indicates the seller dispatched the order.
	Shipped

	// Received is the terminal status reached when the buyer confirms receipt.
	Received
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Paid:      "Paid",
		Cancelled: "Cancelled",
		Shipped:   "Shipped",
		Received:  "Received",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Paid:      "Paid",
		Cancelled: "Cancelled",
		Shipped:   "Shipped",
		Received:  "Received",
	}
}

// Validate checks that the Status holds one of the defined lifecycle values.
// Used when reconstructing orders from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid. Only Created orders can be paid;
// the status guard is what prevents double payment.
func (s Status) Pay() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidOrderStatusError("", s.String())
	}
	return Paid, nil
}

// Cancel transitions the status to Cancelled. Allowed from Created (buyer or
// overtime sweep) and from Paid (with settlement reversal). Re-cancellation
// and cancelling shipped orders are rejected.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Paid {
		return 0, errs.NewInvalidOrderStatusError("", s.String())
	}
	return Cancelled, nil
}

// Ship transitions the status to Shipped. Only Paid orders can be shipped.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvalidOrderStatusError("", s.String())
	}
	return Shipped, nil
}

// Receive transitions the status to Received. Only Shipped orders can be
// confirmed; Received is terminal.
func (s Status) Receive() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidOrderStatusError("", s.String())
	}
	return Received, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Received
}
