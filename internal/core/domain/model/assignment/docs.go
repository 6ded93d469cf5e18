// Package assignment implements the order-to-worker assignment aggregate.
//
// An assignment binds exactly one order to exactly one worker and carries its
// own lifecycle (Pending -> Current -> Delivered) plus the timestamps the
// delivery flow needs: assigned-at, last-update, estimated arrival, and actual
// delivery. A worker has at most one Current assignment; further work queues
// behind it as Pending and is promoted lazily by the scheduler.
package assignment
