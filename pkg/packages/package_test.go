package packages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddAndGet(t *testing.T) {
	r := NewRegistry()
	r.Add(Package{Name: "curl", Category: CategoryCLI, Default: true})

	pkg := r.Get("curl")
	require.NotNil(t, pkg)
	assert.Equal(t, "curl", pkg.Name)

	assert.Nil(t, r.Get("missing"))
}

func TestRegistryAddReplaces(t *testing.T) {
	r := NewRegistry()
	r.Add(Package{Name: "curl", Category: CategoryCLI, Default: true})
	r.Add(Package{Name: "curl", Category: CategoryNetwork, Default: false})

	require.Len(t, r.Packages, 1)
	assert.False(t, r.Get("curl").Default)
	assert.Empty(t, r.ByCategory[CategoryCLI])
	assert.Len(t, r.ByCategory[CategoryNetwork], 1)
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	r.Add(Package{Name: "curl", Category: CategoryCLI, Default: true})
	r.Add(Package{Name: "jq", Category: CategoryCLI, Default: true})

	assert.True(t, r.Remove("curl"))
	assert.False(t, r.Remove("curl"))

	assert.Nil(t, r.Get("curl"))
	assert.Equal(t, []string{"jq"}, r.Names())
	assert.Len(t, r.ByCategory[CategoryCLI], 1)
}

func TestRegistryDefaultNamesOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(Package{Name: "b", Default: true})
	r.Add(Package{Name: "a", Default: false})
	r.Add(Package{Name: "c", Default: true})

	// Manifest order, not sorted.
	assert.Equal(t, []string{"b", "c"}, r.DefaultNames())
}
