package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		wantCategory string
		wantGroup    string
	}{
		{
			name:         "grocery store",
			code:         "5411",
			wantCategory: "Grocery Stores, Supermarkets",
			wantGroup:    "Food & Dining",
		},
		{
			name:         "taxi",
			code:         "4121",
			wantCategory: "Taxicabs and Limousines",
			wantGroup:    "Transport",
		},
		{
			name:         "electronics store",
			code:         "5732",
			wantCategory: "Electronics Stores",
			wantGroup:    "Shopping",
		},
		{
			name:         "family clothing",
			code:         "5651",
			wantCategory: "Family Clothing Stores",
			wantGroup:    "Shopping",
		},
		{
			name:         "pet shop",
			code:         "5995",
			wantCategory: "Pet Shops",
			wantGroup:    "Pets",
		},
		{
			name:         "wire transfer",
			code:         "4829",
			wantCategory: "Money Orders / Wire Transfer",
			wantGroup:    "Services",
		},
		{
			name:         "unknown code falls back",
			code:         "9999",
			wantCategory: Uncategorized,
			wantGroup:    Uncategorized,
		},
		{
			name:         "empty code falls back",
			code:         "",
			wantCategory: Uncategorized,
			wantGroup:    Uncategorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, group := Resolve(tt.code)
			assert.Equal(t, tt.wantCategory, category)
			assert.Equal(t, tt.wantGroup, group)
			assert.Equal(t, tt.wantCategory != Uncategorized, Known(tt.code))
		})
	}
}

func TestEveryCategoryHasExactlyOneGroup(t *testing.T) {
	seen := make(map[string]string)
	for group, names := range Groups() {
		for _, name := range names {
			prev, dup := seen[name]
			require.False(t, dup, "category %q appears in both %q and %q", name, prev, group)
			seen[name] = group
		}
	}

	for code, name := range MCCNames() {
		group, ok := seen[name]
		require.True(t, ok, "category %q (MCC %s) has no group", name, code)
		assert.NotEmpty(t, group)
	}
}

func TestEntriesSortedByCode(t *testing.T) {
	entries := Entries()
	require.NotEmpty(t, entries)

	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Code, entries[i].Code)
	}

	for _, e := range entries {
		assert.NotEmpty(t, e.Category)
		assert.NotEmpty(t, e.Group)
		assert.NotEqual(t, Uncategorized, e.Group, "shipped code %s must be grouped", e.Code)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	names := MCCNames()
	names["5411"] = "mutated"
	assert.Equal(t, "Grocery Stores, Supermarkets", CategoryName("5411"))

	groups := Groups()
	groups["Pets"][0] = "mutated"
	fresh := Groups()
	assert.Equal(t, "Pet Shops", fresh["Pets"][0])
}
