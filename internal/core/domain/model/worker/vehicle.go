package worker

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// VehicleType describes the kind of vehicle a worker delivers with.
type VehicleType string

// List of supported vehicle types.
const (
	VehicleBicycle VehicleType = "bicycle"
	VehicleScooter VehicleType = "scooter"
	VehicleCar     VehicleType = "car"
)

var allowedVehicleTypes = [...]VehicleType{
	VehicleBicycle, VehicleScooter, VehicleCar,
}

// Validate checks if the VehicleType is one of the supported types.
func (t VehicleType) Validate() error {
	for _, v := range allowedVehicleTypes {
		if t == v {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("vehicleType is invalid", fmt.Errorf("%q is not a supported vehicle type", string(t)))
}

// Vehicle is a value object describing the worker's delivery vehicle.
// Motorized vehicles must carry a registration number; bicycles don't have one.
type Vehicle struct {
	vehicleType  VehicleType
	registration string
}

// NewVehicle creates a Vehicle descriptor with validation.
// Registration is required for scooters and cars.
func NewVehicle(vehicleType VehicleType, registration string) (Vehicle, error) {
	if err := vehicleType.Validate(); err != nil {
		return Vehicle{}, err
	}

	if vehicleType != VehicleBicycle && registration == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("registration")
	}

	return Vehicle{
		vehicleType:  vehicleType,
		registration: registration,
	}, nil
}

// Type returns the vehicle type.
func (v Vehicle) Type() VehicleType {
	return v.vehicleType
}

// Registration returns the vehicle registration number, empty for bicycles.
func (v Vehicle) Registration() string {
	return v.registration
}
