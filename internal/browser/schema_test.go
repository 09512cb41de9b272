package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mrigankar1134/DBProject/internal/models"
)

func TestSchemasTabOrder(t *testing.T) {
	var names []string
	for _, s := range Schemas() {
		names = append(names, s.Resource)
	}
	assert.Equal(t, []string{
		models.RESOURCE_CUSTOMERS,
		models.RESOURCE_BRANCHES,
		models.RESOURCE_PRODUCTS,
		models.RESOURCE_SALES,
		models.RESOURCE_FINANCIALS,
	}, names)
}

func TestForResource(t *testing.T) {
	s, ok := ForResource(models.RESOURCE_BRANCHES)
	require.True(t, ok)
	assert.Equal(t, "Branches", s.Title)

	_, ok = ForResource("employees")
	assert.False(t, ok)
}

func TestDeleteCapability(t *testing.T) {
	// delete is a per-resource capability, exposed only for branches and
	// financials even though the backend accepts it everywhere
	for _, s := range Schemas() {
		want := s.Resource == models.RESOURCE_BRANCHES || s.Resource == models.RESOURCE_FINANCIALS
		assert.Equal(t, want, s.CanDelete, "resource %s", s.Resource)
	}
}

func TestColumnsSuppressHidden(t *testing.T) {
	s, ok := ForResource(models.RESOURCE_FINANCIALS)
	require.True(t, ok)

	for _, f := range s.Columns() {
		assert.NotEqual(t, "ID", f.Name, "surrogate id column must stay hidden")
	}
	for _, f := range s.FormFields() {
		assert.NotEqual(t, "ID", f.Name)
	}
}

func TestEverySchemaHasOneIdentifier(t *testing.T) {
	for _, s := range Schemas() {
		count := 0
		for _, f := range s.Fields {
			if f.Identifier {
				count++
			}
		}
		assert.Equal(t, 1, count, "resource %s", s.Resource)
	}
}

func TestResolveIdentifierPriority(t *testing.T) {
	// Invoice_ID wins over every other key
	id, ok := ResolveIdentifier(map[string]any{
		"Invoice_ID":  "INV-1",
		"Customer_ID": "C1",
		"Product_ID":  float64(7),
		"ID":          float64(3),
	})
	require.True(t, ok)
	assert.Equal(t, "INV-1", id)

	// then Customer_ID
	id, ok = ResolveIdentifier(map[string]any{
		"Customer_ID": "C1",
		"Product_ID":  float64(7),
	})
	require.True(t, ok)
	assert.Equal(t, "C1", id)

	// then Product_ID, with JSON numbers rendered integral
	id, ok = ResolveIdentifier(map[string]any{
		"Product_ID": float64(7),
		"ID":         float64(3),
	})
	require.True(t, ok)
	assert.Equal(t, "7", id)

	// then the generic ID
	id, ok = ResolveIdentifier(map[string]any{"ID": float64(3)})
	require.True(t, ok)
	assert.Equal(t, "3", id)
}

func TestResolveIdentifierSkipsEmpty(t *testing.T) {
	id, ok := ResolveIdentifier(map[string]any{
		"Invoice_ID":  "",
		"Customer_ID": "C9",
	})
	require.True(t, ok)
	assert.Equal(t, "C9", id)

	_, ok = ResolveIdentifier(map[string]any{"Branch": "Alpha"})
	assert.False(t, ok)

	_, ok = ResolveIdentifier(map[string]any{})
	assert.False(t, ok)
}
