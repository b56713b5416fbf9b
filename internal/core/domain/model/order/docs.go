// Package order provides the order aggregate of the bookstore order core.
//
// The package includes:
//   - Order: the aggregate root tying a buyer, a store, and the reserved lines
//   - Line: one book/count entry with its unit price frozen at reservation time
//   - Status: a state machine enforcing the settlement workflow
//
// Key business rules:
//   - Orders are placed in Created status with at least one line
//   - Created orders may be paid or cancelled; unpaid orders expire after the
//     payment deadline via the overtime sweep
//   - Paid orders may be shipped or cancelled with a full settlement reversal
//   - Shipped orders terminate via buyer receipt confirmation
//   - The settled total is recorded on the order at payment time so a later
//     cancellation can refund exactly what was transferred
package order
