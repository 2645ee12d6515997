package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
)

func TestFormalLinearizeStatements(t *testing.T) {
	g := NewFormalGrammar()

	tests := []struct {
		name string
		tree *interlingua.Tree
		want string
	}{
		{
			name: "plain triple",
			tree: interlingua.NewStatement("Socrates", "is-a", "man"),
			want: "The entity 'Socrates' is a 'man'.",
		},
		{
			name: "located-in phrasing",
			tree: interlingua.NewStatement("Moscow", "located-in", "Russia"),
			want: "The entity 'Moscow' is located in 'Russia'.",
		},
		{
			name: "unknown predicate falls back to hyphen splitting",
			tree: interlingua.NewStatement("Mars", "orbits", "Sun"),
			want: "The entity 'Mars' orbits 'Sun'.",
		},
		{
			name: "bracketed confidence",
			tree: interlingua.WithConfidence(interlingua.NewStatement("Socrates", "is-a", "man"), 0.85),
			want: "The entity 'Socrates' is a 'man'. [confidence: 0.85]",
		},
		{
			name: "bracketed provenance",
			tree: interlingua.WithProvenance(interlingua.NewStatement("Socrates", "is-a", "man"), "conversation"),
			want: "The entity 'Socrates' is a 'man'. [source: conversation]",
		},
		{
			name: "similarity",
			tree: interlingua.NewSimilarity(interlingua.NewEntity("Socrates"), interlingua.NewEntity("Plato"), 0.8),
			want: "The entity 'Socrates' resembles 'Plato' with similarity 0.80.",
		},
		{
			name: "gap with question",
			tree: interlingua.NewGap(interlingua.NewEntity("virtue"), "What is virtue?"),
			want: "An open question concerns 'virtue': What is virtue?",
		},
		{
			name: "gap without question",
			tree: interlingua.NewGap(interlingua.NewEntity("virtue"), ""),
			want: "An open question concerns 'virtue'.",
		},
		{
			name: "conjunction",
			tree: interlingua.NewConjunction([]*interlingua.Tree{
				interlingua.NewStatement("Socrates", "is-a", "man"),
				interlingua.NewStatement("Plato", "is-a", "man"),
			}, false),
			want: "The entity 'Socrates' is a 'man'. The entity 'Plato' is a 'man'.",
		},
		{
			name: "disjunction",
			tree: interlingua.NewConjunction([]*interlingua.Tree{
				interlingua.NewStatement("Pluto", "is-a", "planet"),
				interlingua.NewStatement("Pluto", "is-a", "dwarf-planet"),
			}, true),
			want: "The entity 'Pluto' is a 'planet'. Alternatively: The entity 'Pluto' is a 'dwarf-planet'.",
		},
		{
			name: "inference",
			tree: interlingua.NewInference(
				[]*interlingua.Tree{
					interlingua.NewStatement("Socrates", "is-a", "man"),
					interlingua.NewStatement("man", "is-a", "mortal"),
				},
				interlingua.NewStatement("Socrates", "is-a", "mortal"),
			),
			want: "The entity 'Socrates' is a 'man'. The entity 'man' is a 'mortal'. Therefore: The entity 'Socrates' is a 'mortal'.",
		},
		{
			name: "data flow",
			tree: interlingua.NewDataFlow([]*interlingua.Tree{
				interlingua.NewEntity("tokenize"),
				interlingua.NewEntity("resolve"),
				interlingua.NewEntity("encode"),
			}),
			want: "Data flows from 'tokenize' through 'resolve' to 'encode'.",
		},
		{
			name: "two stage data flow",
			tree: interlingua.NewDataFlow([]*interlingua.Tree{
				interlingua.NewEntity("parse"),
				interlingua.NewEntity("render"),
			}),
			want: "Data flows from 'parse' to 'render'.",
		},
		{
			name: "discourse frame is transparent",
			tree: interlingua.NewDiscourseFrame(
				interlingua.NewStatement("Socrates", "is-a", "man"),
				interlingua.FirstPerson, interlingua.FocusIdentity),
			want: "The entity 'Socrates' is a 'man'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Linearize(tt.tree, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormalLinearizeDocument(t *testing.T) {
	g := NewFormalGrammar()

	doc := interlingua.NewDocument(
		interlingua.NewFreeform("A study of Socrates."),
		[]*interlingua.Tree{
			interlingua.NewSection("Biography", []*interlingua.Tree{
				interlingua.NewStatement("Socrates", "is-a", "philosopher"),
			}),
		},
		[]*interlingua.Tree{
			interlingua.NewGap(interlingua.NewEntity("virtue"), "What is virtue?"),
		},
	)

	got, err := g.Linearize(doc, nil)
	require.NoError(t, err)

	want := "A study of Socrates.\n\n" +
		"## Biography\n\nThe entity 'Socrates' is a 'philosopher'.\n\n" +
		"## Open Questions\n\nAn open question concerns 'virtue': What is virtue?"
	assert.Equal(t, want, got)
}

func TestFormalLinearizeNilTree(t *testing.T) {
	g := NewFormalGrammar()

	_, err := g.Linearize(nil, nil)
	require.Error(t, err)
	assert.True(t, interlingua.IsKind(err, interlingua.LinearizationFailed))
}

func TestFormalParseDelegatesToUniversalParser(t *testing.T) {
	g := NewFormalGrammar()

	tree, err := g.Parse("Socrates is a man", interlingua.CategoryStatement, nil)
	require.NoError(t, err)

	triple := tree.Unwrap()
	require.Equal(t, interlingua.KindTriple, triple.Kind)
	assert.Equal(t, "Socrates", triple.Subject.Unwrap().Label)
	assert.Equal(t, "is-a", triple.Predicate.Unwrap().Label)
	assert.Equal(t, "man", triple.Object.Unwrap().Label)
}

func TestFormalParseEnforcesExpectedCategory(t *testing.T) {
	g := NewFormalGrammar()

	_, err := g.Parse("Socrates is a man", interlingua.CategoryGap, nil)
	require.Error(t, err)
	assert.True(t, interlingua.IsKind(err, interlingua.TypeMismatch))

	tree, err := g.Parse("Where is Moscow?", interlingua.CategoryGap, nil)
	require.NoError(t, err)
	assert.Equal(t, interlingua.KindGap, tree.Unwrap().Kind)
}

func TestFormalSupportedCategories(t *testing.T) {
	g := NewFormalGrammar()
	assert.Contains(t, g.SupportedCategories(), interlingua.CategoryStatement)
	assert.Contains(t, g.SupportedCategories(), interlingua.CategoryDocument)
}
