// Package contractrepo provides data transfer objects and mapping functions for
// contract persistence. Contracts carry the authoritative checklist copy the
// task-change write path syncs into.
package contractrepo

import (
	"storefront/internal/core/domain/model/contract"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/workflow"

	"github.com/google/uuid"
)

// ContractDTO represents the database structure for persisting contract
// aggregates. Store items and the checklist copy are stored as jsonb; the
// client email is indexed for the email-based resolution path.
type ContractDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ClientEmail string              `gorm:"type:text;index"`
	StoreItems  []kernel.LineItem   `gorm:"serializer:json;type:jsonb"`
	Workflow    []workflow.Category `gorm:"serializer:json;type:jsonb"`
}

// TableName specifies the database table name for contract entities.
func (ContractDTO) TableName() string {
	return "contracts"
}

// fromDomain converts a contract domain aggregate to its database representation.
func fromDomain(aggregate *contract.Contract) ContractDTO {
	return ContractDTO{
		ID:          aggregate.ID().Bytes(),
		ClientEmail: aggregate.ClientEmail(),
		StoreItems:  aggregate.StoreItems(),
		Workflow:    aggregate.Workflow(),
	}
}

// toDomain converts a database DTO to a contract domain aggregate using RestoreContract.
func toDomain(dto ContractDTO) (*contract.Contract, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return contract.RestoreContract(id, dto.ClientEmail, dto.StoreItems, dto.Workflow)
}
