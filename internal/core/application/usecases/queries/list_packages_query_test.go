package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListPackagesQuery_Valid(t *testing.T) {
	query, err := queries.NewListPackagesQuery(nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.PackageType())
}

func TestNewListPackagesQuery_WithType(t *testing.T) {
	packageType := catalog.Maternity
	query, err := queries.NewListPackagesQuery(&packageType)
	require.NoError(t, err)
	require.NotNil(t, query.PackageType())
	assert.Equal(t, catalog.Maternity, *query.PackageType())
}

func TestNewListPackagesQuery_InvalidType(t *testing.T) {
	packageType := catalog.PackageType(42)
	_, err := queries.NewListPackagesQuery(&packageType)
	require.Error(t, err)
}

func TestListPackagesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListPackagesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListPackagesQueryIsNotConstructed)
}
