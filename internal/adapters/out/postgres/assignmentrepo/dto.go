// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. This package implements the repository pattern
// for the assignment domain aggregate, handling the conversion between domain
// entities and database representations.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. Indexed by worker and order for queue and residue lookups.
type AssignmentDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status           int        `gorm:"type:int;not null;index"`
	AssignedAt       time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
	EstimatedArrival time.Time  `gorm:"not null"`
	ActualDelivery   *time.Time `gorm:""`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		WorkerID:         aggregate.WorkerID().Bytes(),
		Status:           int(aggregate.Status()),
		AssignedAt:       aggregate.AssignedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		EstimatedArrival: aggregate.EstimatedArrival(),
		ActualDelivery:   aggregate.ActualDelivery(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		orderID,
		workerID,
		assignment.Status(dto.Status),
		dto.AssignedAt,
		dto.UpdatedAt,
		dto.EstimatedArrival,
		dto.ActualDelivery,
	)
}
