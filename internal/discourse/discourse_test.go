package discourse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/lexicon"
)

func selfContext(t *testing.T, g *knowledge.MemoryGraph, focus interlingua.Focus) Context {
	t.Helper()
	sym, ok := g.Lookup("self")
	require.True(t, ok)
	return Context{
		Subject:     "self",
		Symbol:      sym,
		Resolved:    true,
		PointOfView: interlingua.FirstPerson,
		Focus:       focus,
	}
}

func TestBuildResponseIdentityFocusDropsState(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	g.Assert("self", "is-a", "Akh")
	g.Assert("self", "has-state", "active")

	r := NewResolver(g)
	ctx := selfContext(t, g, interlingua.FocusIdentity)

	tree, err := r.BuildResponse(ctx, g.All())
	require.NoError(t, err)
	require.Equal(t, interlingua.KindDiscourseFrame, tree.Kind)

	inner := tree.Inner
	require.Equal(t, interlingua.KindTriple, inner.Kind)
	assert.Equal(t, "is-a", inner.Predicate.Label)
	assert.Equal(t, "Akh", inner.Object.Label)
	assert.Equal(t, interlingua.FirstPerson, tree.PointOfView)
	assert.Equal(t, interlingua.FocusIdentity, tree.Focus)
}

func TestBuildResponseConfirmationKeepsState(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	g.Assert("self", "has-state", "active")
	g.Assert("self", "is-a", "Akh")

	r := NewResolver(g)
	ctx := selfContext(t, g, interlingua.FocusConfirmation)

	tree, err := r.BuildResponse(ctx, g.All())
	require.NoError(t, err)

	inner := tree.Inner
	require.Equal(t, interlingua.KindConjunction, inner.Kind)
	require.Len(t, inner.Items, 2)
	// Identity facts come before state facts.
	assert.Equal(t, "is-a", inner.Items[0].Predicate.Label)
	assert.Equal(t, "has-state", inner.Items[1].Predicate.Label)
}

func TestBuildResponseConciseTruncation(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	for i := 0; i < 5; i++ {
		g.Assert("self", "is-a", fmt.Sprintf("thing-%d", i))
	}
	g.Assert("self", "discourse:response-detail", "concise")

	r := NewResolver(g)
	ctx := selfContext(t, g, interlingua.FocusIdentity)

	tree, err := r.BuildResponse(ctx, g.All())
	require.NoError(t, err)

	inner := tree.Inner
	require.Equal(t, interlingua.KindConjunction, inner.Kind)
	assert.Len(t, inner.Items, 3)
}

func TestBuildResponseFullDetailIsUnbounded(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	for i := 0; i < 12; i++ {
		g.Assert("self", "is-a", fmt.Sprintf("thing-%d", i))
	}
	g.Assert("self", "discourse:response-detail", "full")

	r := NewResolver(g)
	ctx := selfContext(t, g, interlingua.FocusIdentity)

	tree, err := r.BuildResponse(ctx, g.All())
	require.NoError(t, err)
	assert.Len(t, tree.Inner.Items, 12)
}

func TestBuildResponseDefaultDetailIsNormal(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	for i := 0; i < 12; i++ {
		g.Assert("self", "is-a", fmt.Sprintf("thing-%d", i))
	}

	r := NewResolver(g)
	ctx := selfContext(t, g, interlingua.FocusIdentity)

	tree, err := r.BuildResponse(ctx, g.All())
	require.NoError(t, err)
	assert.Len(t, tree.Inner.Items, 8)
}

func TestBuildResponseOrdersByPredicateCategory(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	g.Assert("Akh", "knows", "Russian")
	g.Assert("Akh", "works-at", "the terminal")
	g.Assert("Akh", "can-do", "translation")
	g.Assert("Akh", "is-a", "language core")

	sym, ok := g.Lookup("Akh")
	require.True(t, ok)
	ctx := Context{Subject: "Akh", Symbol: sym, Resolved: true, Focus: interlingua.FocusGeneral}

	r := NewResolver(g)
	tree, err := r.BuildResponse(ctx, g.All())
	require.NoError(t, err)

	inner := tree.Inner
	require.Equal(t, interlingua.KindConjunction, inner.Kind)
	require.Len(t, inner.Items, 4)

	var predicates []string
	for _, item := range inner.Items {
		predicates = append(predicates, item.Predicate.Label)
	}
	assert.Equal(t, []string{"is-a", "can-do", "works-at", "knows"}, predicates)
}

func TestBuildResponseDropsInfrastructureAndMetadata(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	g.Assert("it", "refers-to", "Akh")
	g.Assert("Akh", "discourse:response-detail", "full")
	g.Assert("Akh", "akh:shard", "7")
	g.Assert("Akh", "has", "meta:created")
	g.Assert("Akh", "is-a", "language core")

	sym, ok := g.Lookup("Akh")
	require.True(t, ok)
	ctx := Context{Subject: "Akh", Symbol: sym, Resolved: true, Focus: interlingua.FocusGeneral}

	r := NewResolver(g)
	tree, err := r.BuildResponse(ctx, g.All())
	require.NoError(t, err)

	inner := tree.Inner
	require.Equal(t, interlingua.KindTriple, inner.Kind)
	assert.Equal(t, "is-a", inner.Predicate.Label)
}

func TestBuildResponseDeduplicates(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	fact := g.Assert("Akh", "is-a", "language core")

	sym, ok := g.Lookup("Akh")
	require.True(t, ok)
	ctx := Context{Subject: "Akh", Symbol: sym, Resolved: true, Focus: interlingua.FocusGeneral}

	r := NewResolver(g)
	tree, err := r.BuildResponse(ctx, []knowledge.Triple{fact, fact, fact})
	require.NoError(t, err)
	assert.Equal(t, interlingua.KindTriple, tree.Inner.Kind)
}

func TestBuildResponseNothingKnownYieldsGap(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	r := NewResolver(g)

	ctx := Context{Subject: "Zorbulon", Focus: interlingua.FocusIdentity}
	tree, err := r.BuildResponse(ctx, nil)
	require.NoError(t, err)

	require.Equal(t, interlingua.KindDiscourseFrame, tree.Kind)
	require.Equal(t, interlingua.KindGap, tree.Inner.Kind)
	assert.Equal(t, "Zorbulon", tree.Inner.Topic.Label)
}

func TestBuildResponseGroundsTheAnswer(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	fact := g.Assert("Akh", "is-a", "language core")

	sym, ok := g.Lookup("Akh")
	require.True(t, ok)
	ctx := Context{Subject: "Akh", Symbol: sym, Resolved: true}

	r := NewResolver(g)
	tree, err := r.BuildResponse(ctx, []knowledge.Triple{fact})
	require.NoError(t, err)

	inner := tree.Inner
	assert.Equal(t, fact.Subject, inner.Subject.Symbol)
	assert.Equal(t, fact.Predicate, inner.Predicate.Symbol)
	assert.Equal(t, fact.Object, inner.Object.Symbol)
}

func TestResolveContextSelfCapability(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	g.Intern("self")

	r := NewResolver(g)
	lex := lexicon.ForLanguage(lexicon.English)
	ctx := r.ResolveContext("What can self do?", lex)

	assert.Equal(t, "self", ctx.Subject)
	assert.True(t, ctx.Resolved)
	assert.Equal(t, interlingua.FirstPerson, ctx.PointOfView)
	assert.Equal(t, interlingua.FocusCapability, ctx.Focus)
	assert.Equal(t, "what", ctx.QuestionWord)
}

func TestResolveContextPronounHop(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	g.Assert("you", "refers-to", "Alice")

	r := NewResolver(g)
	lex := lexicon.ForLanguage(lexicon.English)
	ctx := r.ResolveContext("Who is you?", lex)

	assert.Equal(t, "Alice", ctx.Subject)
	assert.Equal(t, "you", ctx.Original)
	assert.True(t, ctx.PronounResolved)
	assert.Equal(t, interlingua.SecondPerson, ctx.PointOfView)
	assert.Equal(t, interlingua.FocusIdentity, ctx.Focus)
}

func TestResolveContextPronounHopToSelfIsFirstPerson(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	g.Assert("you", "refers-to", "self")

	r := NewResolver(g)
	lex := lexicon.ForLanguage(lexicon.English)
	ctx := r.ResolveContext("Who is you?", lex)

	assert.Equal(t, "self", ctx.Subject)
	assert.True(t, ctx.PronounResolved)
	assert.Equal(t, interlingua.FirstPerson, ctx.PointOfView)
}

func TestResolveContextPlainSubjectIsThirdPerson(t *testing.T) {
	g := knowledge.NewMemoryGraph()
	r := NewResolver(g)
	lex := lexicon.ForLanguage(lexicon.English)

	ctx := r.ResolveContext("Socrates", lex)

	assert.Equal(t, "Socrates", ctx.Subject)
	assert.False(t, ctx.Resolved)
	assert.Equal(t, interlingua.ThirdPerson, ctx.PointOfView)
	assert.Equal(t, interlingua.FocusGeneral, ctx.Focus)
}

func TestClassifyFocusTable(t *testing.T) {
	cases := []struct {
		kind       lexicon.QuestionKind
		capability bool
		want       interlingua.Focus
	}{
		{lexicon.QuestionWho, false, interlingua.FocusIdentity},
		{lexicon.QuestionWhat, false, interlingua.FocusIdentity},
		{lexicon.QuestionHow, false, interlingua.FocusMethod},
		{lexicon.QuestionWhy, false, interlingua.FocusCause},
		{lexicon.QuestionWhere, false, interlingua.FocusLocation},
		{lexicon.QuestionWhen, false, interlingua.FocusTime},
		{lexicon.QuestionWhich, false, interlingua.FocusDefinition},
		{lexicon.QuestionYesNo, false, interlingua.FocusConfirmation},
		{lexicon.QuestionNone, false, interlingua.FocusGeneral},
		{lexicon.QuestionWhere, true, interlingua.FocusCapability},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyFocus(tc.kind, tc.capability),
			"kind=%s capability=%v", tc.kind, tc.capability)
	}
}
