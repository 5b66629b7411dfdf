package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	createdAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []kernel.LineItem{{Name: "Album"}, {ProductID: "print-10x15"}}

	t.Run("should create valid order with all parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Ana López", "ana@x.com", createdAt, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "Ana López", o.CustomerName())
		assert.Equal(t, "ana@x.com", o.CustomerEmail())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Len(t, o.Items(), 2)
		assert.Nil(t, o.ContractID())
		assert.Empty(t, o.Workflow())
		assert.Equal(t, order.Unknown, o.StoredStatus())
		assert.False(t, o.IsVirtual())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "Ana", "ana@x.com", createdAt, items)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should allow empty customer fields and items", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", "", time.Time{}, nil)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("should copy the item slice", func(t *testing.T) {
		input := []kernel.LineItem{{Name: "Album"}}
		o, _ := order.NewOrder(validID, "Ana", "ana@x.com", createdAt, input)

		input[0].Name = "changed"

		assert.Equal(t, "Album", o.Items()[0].Name)
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	contractID := kernel.NewUUID()
	wf := []workflow.Category{
		{ID: "c1", Name: "Entrega", Tasks: []workflow.Task{{ID: "t1", Title: "Entregar Album", Done: true}}},
	}

	t.Run("should restore full state", func(t *testing.T) {
		o, err := order.RestoreOrder(
			validID, "Ana", "ana@x.com", time.Now(),
			[]kernel.LineItem{{Name: "Album"}},
			&contractID, wf, order.Processing,
		)

		require.NoError(t, err)
		require.NotNil(t, o.ContractID())
		assert.True(t, o.ContractID().IsEqual(contractID))
		assert.Equal(t, order.Processing, o.StoredStatus())
		require.Len(t, o.Workflow(), 1)
		assert.True(t, o.Workflow()[0].Tasks[0].Done)
	})

	t.Run("should fail with invalid contract link", func(t *testing.T) {
		var invalidContractID kernel.UUID

		o, err := order.RestoreOrder(validID, "Ana", "ana@x.com", time.Now(), nil, &invalidContractID, nil, order.Unknown)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestNewVirtualOrder(t *testing.T) {
	contractID := kernel.NewUUID()
	items := []kernel.LineItem{{Name: "Print"}}
	wf := []workflow.Category{{ID: "c1", Name: "Sesión"}}

	t.Run("should create placeholder linked to its contract", func(t *testing.T) {
		o, err := order.NewVirtualOrder(contractID, "Marta", "marta@x.com", items, wf)

		require.NoError(t, err)
		assert.True(t, o.IsVirtual())
		assert.True(t, o.ID().IsEqual(contractID))
		require.NotNil(t, o.ContractID())
		assert.True(t, o.ContractID().IsEqual(contractID))
		assert.True(t, o.CreatedAt().IsZero())
		assert.Len(t, o.Workflow(), 1)
	})
}

func TestOrder_DueDate(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should be 15 days after creation", func(t *testing.T) {
		createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		o, _ := order.NewOrder(validID, "Ana", "ana@x.com", createdAt, nil)

		assert.Equal(t, time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC), o.DueDate())
	})

	t.Run("should be zero when creation is unknown", func(t *testing.T) {
		o, _ := order.NewOrder(validID, "Ana", "ana@x.com", time.Time{}, nil)

		assert.True(t, o.DueDate().IsZero())
	})
}

func TestOrder_LinkContract(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should link a valid contract", func(t *testing.T) {
		o, _ := order.NewOrder(validID, "Ana", "ana@x.com", time.Now(), nil)
		contractID := kernel.NewUUID()

		require.NoError(t, o.LinkContract(contractID))
		assert.True(t, o.ContractID().IsEqual(contractID))
	})

	t.Run("should reject an invalid contract id", func(t *testing.T) {
		o, _ := order.NewOrder(validID, "Ana", "ana@x.com", time.Now(), nil)
		var invalid kernel.UUID

		require.Error(t, o.LinkContract(invalid))
		assert.Nil(t, o.ContractID())
	})
}

func TestOrder_SetWorkflow(t *testing.T) {
	t.Run("should store a deep copy", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Ana", "ana@x.com", time.Now(), nil)
		wf := []workflow.Category{
			{ID: "c1", Name: "Entrega", Tasks: []workflow.Task{{ID: "t1", Title: "Entregar Album"}}},
		}

		o.SetWorkflow(wf)
		wf[0].Tasks[0].Done = true

		assert.False(t, o.Workflow()[0].Tasks[0].Done)
	})
}

func TestOrder_SetStoredStatus(t *testing.T) {
	t.Run("should store a valid status", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Ana", "ana@x.com", time.Now(), nil)

		require.NoError(t, o.SetStoredStatus(order.Completed))
		assert.Equal(t, order.Completed, o.StoredStatus())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), "Ana", "ana@x.com", time.Now(), nil)

		require.Error(t, o.SetStoredStatus(order.Unknown))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		o := &order.Order{}

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
