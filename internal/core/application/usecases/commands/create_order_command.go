package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrRecipientNameIsRequired  = errors.New("recipient name is required")
	ErrRecipientEmailIsRequired = errors.New("recipient email is required")
	ErrAddressIsRequired        = errors.New("address is required")
)

// CreateOrderCommand represents a request to accept a new delivery order into
// the backlog. The order starts in Pending and is picked up by the next
// assignment attempt or sweep.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	recipientName  string
	recipientEmail string
	address        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to accept a new order.
// Automatically generates a unique ID for the order.
func NewCreateOrderCommand(recipientName, recipientEmail, address string) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setRecipientName(recipientName),
		command.setRecipientEmail(recipientEmail),
		command.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RecipientName returns the recipient name from the command.
func (c CreateOrderCommand) RecipientName() string {
	return c.recipientName
}

// RecipientEmail returns the recipient email from the command.
func (c CreateOrderCommand) RecipientEmail() string {
	return c.recipientEmail
}

// Address returns the delivery address from the command.
func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setRecipientName(name string) error {
	if name == "" {
		return ErrRecipientNameIsRequired
	}

	c.recipientName = name
	return nil
}

func (c *CreateOrderCommand) setRecipientEmail(email string) error {
	if email == "" {
		return ErrRecipientEmailIsRequired
	}

	c.recipientEmail = email
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
