package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order in the system. It is the aggregate root
// that manages the order lifecycle from checkout through assignment to
// delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a recipient name, email, and delivery address
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// recipientName is the person receiving the delivery
	recipientName string

	// recipientEmail is the delivery confirmation contact
	recipientEmail string

	// address is the delivery destination
	address string

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order with validation. This represents a customer
// checkout, so the order starts in Pending status.
//
// All parameters are validated; validation errors for multiple fields are
// aggregated into a single returned error.
func NewOrder(id kernel.UUID, recipientName, recipientEmail, address string) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRecipient(recipientName, recipientEmail),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its persisted status.
func RestoreOrder(id kernel.UUID, recipientName, recipientEmail, address string, status Status) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRecipient(recipientName, recipientEmail),
		o.setAddress(address),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
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

// RecipientName returns the name of the person receiving the delivery.
func (o *Order) RecipientName() string {
	return o.recipientName
}

// RecipientEmail returns the delivery confirmation contact address.
func (o *Order) RecipientEmail() string {
	return o.recipientEmail
}

// Address returns the delivery destination.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Assign marks the order as bound to a worker.
// The order must currently be assignable (Pending or Verified).
func (o *Order) Assign() error {
	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartDelivery marks the order as out for delivery: its assignment became
// the worker's current one. The order must be Assigned.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered. Terminal.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled. Terminal; allowed from any
// non-terminal status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setRecipient validates and sets the recipient details.
func (o *Order) setRecipient(name, email string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if email == "" {
		return errs.NewValueIsRequiredError("recipientEmail")
	}

	o.recipientName = name
	o.recipientEmail = email
	return nil
}

// setAddress validates and sets the delivery destination.
func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	o.address = address
	return nil
}

// setStatus validates and sets the order status.
// Used during restoration from persistent state.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}
