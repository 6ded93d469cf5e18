// Package workerrepo provides data transfer objects and mapping functions for worker persistence.
// This package implements the repository pattern for the worker domain aggregate, handling
// the conversion between domain entities and database representations.
package workerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO represents the database structure for persisting worker aggregates.
type WorkerDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Phone               string    `gorm:"type:varchar(32);not null"`
	Email               string    `gorm:"type:varchar(255);not null"`
	VehicleType         string    `gorm:"type:varchar(32);not null"`
	VehicleRegistration string    `gorm:"type:varchar(64)"`
	Status              int       `gorm:"type:int;not null;index"`
	CapacityHold        bool      `gorm:"type:boolean;not null;default:false"`
}

// TableName specifies the database table name for worker entities.
// Overrides GORM's default naming convention to use "workers" instead of "worker_dtos".
func (WorkerDTO) TableName() string {
	return "workers"
}

// fromDomain converts a worker domain aggregate to its database representation.
func fromDomain(aggregate *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Name(),
		Phone:               aggregate.Phone(),
		Email:               aggregate.Email(),
		VehicleType:         string(aggregate.Vehicle().Type()),
		VehicleRegistration: aggregate.Vehicle().Registration(),
		Status:              int(aggregate.Status()),
		CapacityHold:        aggregate.CapacityHold(),
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := worker.NewVehicle(worker.VehicleType(dto.VehicleType), dto.VehicleRegistration)
	if err != nil {
		return nil, err
	}

	return worker.RestoreWorker(
		id,
		dto.Name,
		dto.Phone,
		dto.Email,
		vehicle,
		worker.Status(dto.Status),
		dto.CapacityHold,
	)
}
