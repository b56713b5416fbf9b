package order

import (
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one book entry within an order: the book, the reserved count, and
// the unit price frozen at reservation time. Freezing the price decouples
// placed orders from later catalog price changes.
type Line struct {
	bookID string
	count  int
	price  int64

	isConstructed bool
}

// NewLine creates a validated order line. Count must be positive and price
// non-negative.
func NewLine(bookID string, count int, price int64) (Line, error) {
	line := Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setBookID(bookID),
		line.setCount(count),
		line.setPrice(price),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line instance was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// BookID returns the book the line refers to.
func (l Line) BookID() string {
	return l.bookID
}

// Count returns the number of reserved units.
func (l Line) Count() int {
	return l.count
}

// Price returns the unit price frozen at reservation time.
func (l Line) Price() int64 {
	return l.price
}

// Subtotal returns count times the frozen unit price.
func (l Line) Subtotal() int64 {
	return int64(l.count) * l.price
}

func (l *Line) setBookID(bookID string) error {
	if bookID == "" {
		return errs.NewValueIsRequiredError("bookID")
	}
	l.bookID = bookID
	return nil
}

func (l *Line) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count is invalid", fmt.Errorf("%d is not greater than 0", count))
	}
	l.count = count
	return nil
}

func (l *Line) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	l.price = price
	return nil
}
