package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"storefront/internal/core/domain/model/contract"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadOrders reads every stored order, newest first, and restores the domain
// aggregates the read models are computed from.
func loadOrders(ctx context.Context, db *gorm.DB) ([]*order.Order, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_email,
			created_at,
			items,
			contract_id,
			workflow,
			status
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			customerName  string
			customerEmail string
			createdAt     sql.NullTime
			itemsRaw      []byte
			contractIDRaw sql.NullString
			workflowRaw   []byte
			status        int
		)

		err = rows.Scan(
			&id,
			&customerName,
			&customerEmail,
			&createdAt,
			&itemsRaw,
			&contractIDRaw,
			&workflowRaw,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		items, itemsErr := unmarshalItems(itemsRaw)
		if itemsErr != nil {
			return nil, itemsErr
		}

		wf, wfErr := unmarshalWorkflow(workflowRaw)
		if wfErr != nil {
			return nil, wfErr
		}

		var contractID *kernel.UUID
		if contractIDRaw.Valid {
			cid, cidErr := kernel.UUIDFromString(contractIDRaw.String)
			if cidErr != nil {
				return nil, cidErr
			}
			contractID = &cid
		}

		restored, restoreErr := order.RestoreOrder(
			orderID,
			customerName,
			customerEmail,
			createdAt.Time,
			items,
			contractID,
			wf,
			order.Status(status),
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadContracts reads every contract and restores the domain aggregates.
func loadContracts(ctx context.Context, db *gorm.DB) ([]*contract.Contract, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_email,
			store_items,
			workflow
		FROM contracts
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contracts := make([]*contract.Contract, 0)

	for rows.Next() {
		var (
			id            uuid.UUID
			clientEmail   string
			storeItemsRaw []byte
			workflowRaw   []byte
		)

		err = rows.Scan(
			&id,
			&clientEmail,
			&storeItemsRaw,
			&workflowRaw,
		)
		if err != nil {
			return nil, err
		}

		contractID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		storeItems, itemsErr := unmarshalItems(storeItemsRaw)
		if itemsErr != nil {
			return nil, itemsErr
		}

		wf, wfErr := unmarshalWorkflow(workflowRaw)
		if wfErr != nil {
			return nil, wfErr
		}

		restored, restoreErr := contract.RestoreContract(contractID, clientEmail, storeItems, wf)
		if restoreErr != nil {
			return nil, restoreErr
		}
		contracts = append(contracts, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return contracts, nil
}

func unmarshalItems(raw []byte) ([]kernel.LineItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var items []kernel.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func unmarshalWorkflow(raw []byte) ([]workflow.Category, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var wf []workflow.Category
	if err := json.Unmarshal(raw, &wf); err != nil {
		return nil, err
	}
	return wf, nil
}
