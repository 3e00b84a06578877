package catalog

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestEntriesSorted(t *testing.T) {
	all := All()
	require.Len(t, all, 19)
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	}))
}

func TestEntriesComplete(t *testing.T) {
	for _, e := range All() {
		assert.NotEmpty(t, e.Category, e.Name)
		assert.NotEmpty(t, e.Symbols, e.Name)
		assert.NotNil(t, e.Check, e.Name)
	}
}

func TestChecksPass(t *testing.T) {
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			assert.NoError(t, e.Check())
		})
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("binary_search")
	require.True(t, ok)
	assert.Equal(t, CatControl, e.Category)
	assert.Equal(t, PolicySentinel, e.Policy)

	_, ok = Lookup("qsort")
	assert.False(t, ok)
}

func TestAllIsCopy(t *testing.T) {
	all := All()
	all[0] = nil
	assert.NotNil(t, All()[0])
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{
		CatAggregate, CatArith, CatControl, CatIndirect, CatMemory, CatGeneric,
	}, Categories())
}

// -----------------------------------------------------------------------------

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "total", PolicyTotal.String())
	assert.Equal(t, "sentinel", PolicySentinel.String())
	assert.Equal(t, "wrap", PolicyWrap.String())
	assert.Equal(t, "unchecked", PolicyUnchecked.String())
	assert.Equal(t, "unknown", Policy(42).String())
	assert.Equal(t, "unknown", Policy(-1).String())
}

func TestDump(t *testing.T) {
	e, _ := Lookup("add")
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, []*Entry{e}))

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "add", out[0]["name"])
	assert.Equal(t, "arithmetic", out[0]["category"])
	assert.Equal(t, "wrap", out[0]["policy"])
	assert.Equal(t, []interface{}{"arith.Add"}, out[0]["symbols"])
	assert.NotContains(t, out[0], "Check")
}

func TestDumpOmitsEmptyNotes(t *testing.T) {
	e, _ := Lookup("callback")
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, []*Entry{e}))
	assert.NotContains(t, buf.String(), `"notes"`)
}

// -----------------------------------------------------------------------------
