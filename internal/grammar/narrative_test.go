package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
)

func threeFacts() *interlingua.Tree {
	return interlingua.NewConjunction([]*interlingua.Tree{
		interlingua.NewStatement("Socrates", "is-a", "man"),
		interlingua.NewStatement("Plato", "is-a", "man"),
		interlingua.NewStatement("Aristotle", "is-a", "man"),
	}, false)
}

func TestNarrativeTransitionsCycle(t *testing.T) {
	g := NewNarrativeGrammar()

	got, err := g.Linearize(threeFacts(), nil)
	require.NoError(t, err)
	assert.Equal(t,
		"Socrates is a man. Furthermore, Plato is a man. In addition, Aristotle is a man.",
		got)
}

func TestNarrativeIsStatefulAcrossCalls(t *testing.T) {
	g := NewNarrativeGrammar()

	first, err := g.Linearize(threeFacts(), nil)
	require.NoError(t, err)

	second, err := g.Linearize(threeFacts(), nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "the transition cycle continues across calls")
	assert.Contains(t, second, "Notably, ")
	assert.Contains(t, second, "Moreover, ")

	g.ResetState()
	third, err := g.Linearize(threeFacts(), nil)
	require.NoError(t, err)
	assert.Equal(t, first, third, "ResetState rewinds the cycle")
}

func TestNarrativeCountersResetPerSection(t *testing.T) {
	g := NewNarrativeGrammar()

	section := func(heading string) *interlingua.Tree {
		return interlingua.NewSection(heading, []*interlingua.Tree{
			interlingua.NewStatement("Socrates", "is-a", "man"),
			interlingua.NewStatement("Plato", "is-a", "man"),
		})
	}
	doc := interlingua.NewDocument(nil, []*interlingua.Tree{
		section("Ancients"), section("Moderns"),
	}, nil)

	got, err := g.Linearize(doc, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(got, "Furthermore, "),
		"both sections restart at the first transition")
	assert.NotContains(t, got, "In addition")
}

func TestNarrativeConfidenceAdverbs(t *testing.T) {
	g := NewNarrativeGrammar()
	stmt := interlingua.NewStatement("Socrates", "is-a", "man")

	tests := []struct {
		confidence float64
		want       string
	}{
		{0.95, "Socrates is a man, with high confidence."},
		{0.8, "Socrates is a man, with reasonable confidence."},
		{0.65, "Socrates is a man, with moderate confidence."},
		{0.5, "Socrates is a man, tentatively."},
		{0.2, "Socrates is a man, speculatively."},
	}
	for _, tt := range tests {
		got, err := g.Linearize(interlingua.WithConfidence(stmt, tt.confidence), nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNarrativeSimilarityStrength(t *testing.T) {
	g := NewNarrativeGrammar()
	pair := func(score float64) *interlingua.Tree {
		return interlingua.NewSimilarity(
			interlingua.NewEntity("Socrates"), interlingua.NewEntity("Plato"), score)
	}

	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "Socrates strongly resembles Plato."},
		{0.75, "Socrates resembles Plato."},
		{0.55, "Socrates is somewhat like Plato."},
		{0.3, "Socrates is faintly reminiscent of Plato."},
	}
	for _, tt := range tests {
		got, err := g.Linearize(pair(tt.score), nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNarrativeGapOpenersCycle(t *testing.T) {
	g := NewNarrativeGrammar()

	first, err := g.Linearize(interlingua.NewGap(interlingua.NewEntity("virtue"), "What is virtue?"), nil)
	require.NoError(t, err)
	assert.Equal(t, "One open question remains regarding virtue: What is virtue?", first)

	second, err := g.Linearize(interlingua.NewGap(interlingua.NewEntity("justice"), "What is justice?"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Much remains unknown regarding justice: What is justice?", second)
}

func TestNarrativeProvenance(t *testing.T) {
	g := NewNarrativeGrammar()

	got, err := g.Linearize(
		interlingua.WithProvenance(interlingua.NewStatement("Socrates", "is-a", "man"), "conversation"), nil)
	require.NoError(t, err)
	assert.Equal(t, "According to conversation, Socrates is a man.", got)
}

func TestNarrativeInference(t *testing.T) {
	g := NewNarrativeGrammar()

	tree := interlingua.NewInference(
		[]*interlingua.Tree{
			interlingua.NewStatement("Socrates", "is-a", "man"),
			interlingua.NewStatement("man", "is-a", "mortal"),
		},
		interlingua.NewStatement("Socrates", "is-a", "mortal"),
	)
	got, err := g.Linearize(tree, nil)
	require.NoError(t, err)
	assert.Equal(t,
		"Because Socrates is a man, and because Man is a mortal, it follows that Socrates is a mortal.",
		got)
}

func TestNarrativeParseDelegates(t *testing.T) {
	g := NewNarrativeGrammar()

	tree, err := g.Parse("Socrates is a man", interlingua.CategoryStatement, nil)
	require.NoError(t, err)
	assert.Equal(t, interlingua.KindTriple, tree.Unwrap().Kind)
}
