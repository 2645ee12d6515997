package interlingua

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeCategories(t *testing.T) {
	cases := []struct {
		tree *Tree
		want Category
	}{
		{NewEntity("socrates"), CategoryEntity},
		{NewRelation("is-a"), CategoryRelation},
		{NewFreeform("unparsed text"), CategoryFreeform},
		{NewStatement("socrates", "is-a", "man"), CategoryStatement},
		{NewSimilarity(NewEntity("dog"), NewEntity("wolf"), 0.8), CategorySimilarity},
		{NewGap(NewEntity("gravity"), "why does it exist"), CategoryGap},
		{NewConjunction([]*Tree{NewStatement("a", "is-a", "b")}, false), CategoryConjunction},
		{NewSection("Intro", nil), CategorySection},
		{NewDocument(nil, nil, nil), CategoryDocument},
		{NewCodeSignature(ItemFn, "parse"), CategoryCodeSignature},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.tree.Category(), "kind %s", tc.tree.Kind)
	}
}

func TestModifiersAreTransparent(t *testing.T) {
	stmt := NewStatement("socrates", "is-a", "man")
	wrapped := WithProvenance(WithConfidence(stmt, 0.9), "conversation")

	assert.Equal(t, CategoryProvenance, wrapped.Category())
	assert.Equal(t, CategoryStatement, wrapped.StructuralCategory())
	assert.Same(t, stmt, wrapped.Unwrap())
	assert.InDelta(t, 0.9, wrapped.EffectiveConfidence(), 1e-9)
}

func TestEffectiveConfidenceDefaultsToOne(t *testing.T) {
	stmt := NewStatement("a", "is-a", "b")
	assert.Equal(t, 1.0, stmt.EffectiveConfidence())

	tagged := WithProvenance(stmt, "doc")
	assert.Equal(t, 1.0, tagged.EffectiveConfidence())
}

func TestCloneIsDeep(t *testing.T) {
	orig := NewConjunction([]*Tree{
		NewStatement("dog", "is-a", "mammal"),
		NewStatement("cat", "is-a", "mammal"),
	}, false)

	dup := orig.Clone()
	require.NotSame(t, orig, dup)
	dup.Items[0].Subject.Label = "wolf"
	dup.Items[0].Subject.Symbol = 42

	assert.Equal(t, "dog", orig.Items[0].Subject.Label)
	assert.Zero(t, orig.Items[0].Subject.Symbol)
}

func TestCloneCopiesStringSlices(t *testing.T) {
	sig := NewCodeSignature(ItemStruct, "Engine")
	sig.Derives = []string{"Debug", "Clone"}

	dup := sig.Clone()
	dup.Derives[0] = "Serialize"

	assert.Equal(t, "Debug", sig.Derives[0])
}

func TestTreeJSONRoundTrip(t *testing.T) {
	orig := WithConfidence(NewStatement("berlin", "located-in", "germany"), 0.95)

	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Tree
	require.NoError(t, json.Unmarshal(raw, &back))

	assert.Equal(t, KindWithConfidence, back.Kind)
	assert.InDelta(t, 0.95, back.Confidence, 1e-9)
	require.NotNil(t, back.Inner)
	assert.Equal(t, "berlin", back.Inner.Subject.Label)
	assert.Equal(t, "located-in", back.Inner.Predicate.Label)
}

func TestChildrenVisitsEveryBranch(t *testing.T) {
	doc := NewDocument(
		NewFreeform("overview"),
		[]*Tree{NewSection("A", []*Tree{NewStatement("x", "is-a", "y")})},
		[]*Tree{NewGap(NewEntity("z"), "what is z")},
	)
	kids := doc.Children()
	require.Len(t, kids, 3)
	assert.Equal(t, KindFreeform, kids[0].Kind)
	assert.Equal(t, KindSection, kids[1].Kind)
	assert.Equal(t, KindGap, kids[2].Kind)
}
