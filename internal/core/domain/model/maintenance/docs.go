// Package maintenance contains the Maintenance aggregate root, its status
// state machine, and the PartOrder child entity. A maintenance record is one
// service visit of a vehicle: it opens in progress, may accumulate part orders
// (moving it to waiting-for-parts), and closes into the terminal completed
// status. Part orders placed after completion are recorded but never reopen
// the record.
package maintenance
