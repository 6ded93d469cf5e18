// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status for efficient backlog scans.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientName  string    `gorm:"type:varchar(255);not null"`
	RecipientEmail string    `gorm:"type:varchar(255);not null"`
	Address        string    `gorm:"type:varchar(512);not null"`
	Status         int       `gorm:"type:int;not null;index"`
	CreatedAt      int64     `gorm:"autoCreateTime:nano"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		RecipientName:  aggregate.RecipientName(),
		RecipientEmail: aggregate.RecipientEmail(),
		Address:        aggregate.Address(),
		Status:         int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.RecipientName, dto.RecipientEmail, dto.Address, order.Status(dto.Status))
}
