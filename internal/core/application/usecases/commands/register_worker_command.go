package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterWorkerCommandIsNotConstructed = errors.New(
		"RegisterWorkerCommand must be created via NewRegisterWorkerCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrPhoneIsRequired = errors.New("phone is required")
	ErrEmailIsRequired = errors.New("email is required")
)

// RegisterWorkerCommand represents a request to register a new delivery
// worker. The worker starts in NotVerified and must be accepted before they
// can work.
//
// Example:
//
//	cmd, err := NewRegisterWorkerCommand("Jane Doe", "+15550100", "jane@example.com", worker.VehicleScooter, "AB-123")
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
//	fmt.Printf("Registered worker %s", cmd.WorkerID())
type RegisterWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID     kernel.UUID
	name         string
	phone        string
	email        string
	vehicleType  worker.VehicleType
	registration string

	guard guard.ConstructorGuard
}

// NewRegisterWorkerCommand creates a command to register a new worker.
// Automatically generates a unique ID for the worker. Vehicle details are
// validated by the aggregate at handling time.
func NewRegisterWorkerCommand(
	name, phone, email string,
	vehicleType worker.VehicleType,
	registration string,
) (RegisterWorkerCommand, error) {
	command := RegisterWorkerCommand{
		vehicleType:  vehicleType,
		registration: registration,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkerID(kernel.NewUUID()),
		command.setName(name),
		command.setPhone(phone),
		command.setEmail(email),
	); err != nil {
		return RegisterWorkerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterWorkerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterWorkerCommandIsNotConstructed)
}

// WorkerID returns the generated worker ID.
func (c RegisterWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Name returns the worker name from the command.
func (c RegisterWorkerCommand) Name() string {
	return c.name
}

// Phone returns the worker phone from the command.
func (c RegisterWorkerCommand) Phone() string {
	return c.phone
}

// Email returns the worker email from the command.
func (c RegisterWorkerCommand) Email() string {
	return c.email
}

// VehicleType returns the declared vehicle type.
func (c RegisterWorkerCommand) VehicleType() worker.VehicleType {
	return c.vehicleType
}

// Registration returns the declared vehicle registration.
func (c RegisterWorkerCommand) Registration() string {
	return c.registration
}

func (c *RegisterWorkerCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.workerID = id
	return nil
}

func (c *RegisterWorkerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterWorkerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterWorkerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
