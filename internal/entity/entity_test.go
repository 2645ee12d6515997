package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCrossLingualForms(t *testing.T) {
	r := NewResolver()

	for _, form := range []string{"Moscow", "moscow", "MOSCOW", "Москва", "москва", "Moscou", "Moscú", "Moskau"} {
		got, ok := r.Resolve(form)
		require.True(t, ok, "form %q should resolve", form)
		assert.Equal(t, "Moscow", got, "form %q", form)
	}

	got, ok := r.Resolve("Sokrates")
	require.True(t, ok)
	assert.Equal(t, "Socrates", got)
}

func TestResolveRuntimeAliasShadowsTable(t *testing.T) {
	r := NewResolver()
	r.AddAlias("Moskau", "the capital")

	got, ok := r.Resolve("moskau")
	require.True(t, ok)
	assert.Equal(t, "the capital", got)

	// Other table forms stay untouched.
	got, ok = r.Resolve("Москва")
	require.True(t, ok)
	assert.Equal(t, "Moscow", got)
}

func TestResolvePassthrough(t *testing.T) {
	r := NewResolver()

	got, ok := r.Resolve("Zorbulon")
	assert.False(t, ok)
	assert.Equal(t, "Zorbulon", got)
}

func TestResolveExactCaseWinsOverFoldedCollision(t *testing.T) {
	table := NewEquivalenceTable([]Entry{
		{Canonical: "Turkey", Aliases: []string{"Türkei"}},
		{Canonical: "turkey bird", Aliases: []string{"turkey"}},
	})

	got, ok := table.Resolve("Turkey")
	require.True(t, ok)
	assert.Equal(t, "Turkey", got)

	got, ok = table.Resolve("turkey")
	require.True(t, ok)
	assert.Equal(t, "turkey bird", got)
}

func TestResolveEntitiesMergesByCanonicalName(t *testing.T) {
	r := NewResolver()
	merged := r.ResolveEntities([]Extracted{
		{Name: "Москва", Confidence: 0.8},
		{Name: "Moscou", Confidence: 0.95},
		{Name: "Moscow", Confidence: 0.7},
	})

	require.Len(t, merged, 1)
	entity := merged[0]
	assert.Equal(t, "Москва", entity.Name)
	assert.Equal(t, "Moscow", entity.Canonical)
	assert.Equal(t, []string{"Москва", "Moscou"}, entity.Aliases)
	assert.InDelta(t, 0.95, entity.Confidence, 1e-9)
}

func TestResolveEntitiesPreservesFirstSeenOrder(t *testing.T) {
	r := NewResolver()
	merged := r.ResolveEntities([]Extracted{
		{Name: "Socrates", Confidence: 0.9},
		{Name: "Athens", Confidence: 0.9},
		{Name: "Сократ", Confidence: 0.5},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, "Socrates", merged[0].Canonical)
	assert.Equal(t, "Athens", merged[1].Canonical)
	assert.Equal(t, []string{"Сократ"}, merged[0].Aliases)
}

func TestResolveEntitiesKeepsUnknownSurface(t *testing.T) {
	r := NewResolver()
	merged := r.ResolveEntities([]Extracted{
		{Name: "Zorbulon", Confidence: 0.4},
		{Name: "zorbulon", Confidence: 0.6},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "Zorbulon", merged[0].Canonical)
	assert.InDelta(t, 0.6, merged[0].Confidence, 1e-9)
}

func TestResolveEntitiesHonorsPresetCanonical(t *testing.T) {
	r := NewResolver()
	merged := r.ResolveEntities([]Extracted{
		{Name: "the bard", Canonical: "Shakespeare", Confidence: 0.5},
		{Name: "Шекспир", Confidence: 0.8},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "Shakespeare", merged[0].Canonical)
	assert.ElementsMatch(t, []string{"the bard", "Шекспир"}, merged[0].Aliases)
}

func TestDefaultTableCoverage(t *testing.T) {
	assert.GreaterOrEqual(t, len(defaultEntries), 200, "equivalence table should stay broad")
	assert.Greater(t, DefaultTable().Size(), 600)
}
