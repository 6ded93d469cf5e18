// Package worker implements the delivery worker aggregate and its availability
// state machine.
//
// A worker registers in NotVerified, is moved to Inactive by an admin accept,
// and from then on cycles through Inactive, Available, and Unavailable as they
// start days, end days, and opt in or out of new work. Unavailability caused by
// the concurrent-workload cap is tracked separately (capacity hold) from a
// manual opt-out, so only cap-forced unavailability is released automatically
// when a delivery completes.
package worker
