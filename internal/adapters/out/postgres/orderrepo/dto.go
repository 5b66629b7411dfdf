// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and the checklist are stored as jsonb documents; the contract
// link and customer email are indexed for the resolution paths.
//
// Virtual placeholder rows are never written to this table.
type OrderDTO struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CustomerName  string              `gorm:"type:text"`
	CustomerEmail string              `gorm:"type:text;index"`
	CreatedAt     time.Time           `gorm:"type:timestamptz"`
	Items         []kernel.LineItem   `gorm:"serializer:json;type:jsonb"`
	ContractID    *uuid.UUID          `gorm:"type:uuid;index"`
	Workflow      []workflow.Category `gorm:"serializer:json;type:jsonb"`
	Status        int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var contractID *uuid.UUID
	if id := aggregate.ContractID(); id != nil {
		raw := id.Bytes()
		contractID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerName:  aggregate.CustomerName(),
		CustomerEmail: aggregate.CustomerEmail(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         aggregate.Items(),
		ContractID:    contractID,
		Workflow:      aggregate.Workflow(),
		Status:        int(aggregate.StoredStatus()),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var contractID *kernel.UUID
	if dto.ContractID != nil {
		cID, contractErr := kernel.UUIDFromBytes((*dto.ContractID)[:])
		if contractErr != nil {
			return nil, contractErr
		}

		contractID = &cID
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerEmail,
		dto.CreatedAt,
		dto.Items,
		contractID,
		dto.Workflow,
		order.Status(dto.Status),
	)
}
