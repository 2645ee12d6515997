package preprocess

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/lexicon"
)

func newTestProcessor() *Processor {
	return NewProcessor(nil, nil, nil)
}

func entityNames(out *Output) []string {
	var names []string
	for _, e := range out.Entities {
		names = append(names, e.Canonical)
	}
	return names
}

func TestDetectLanguageByVoidWords(t *testing.T) {
	p := newTestProcessor()

	cases := []struct {
		text string
		want lexicon.Language
	}{
		{"the dog lives in the house", lexicon.English},
		{"el perro vive en la casa", lexicon.Spanish},
		{"кошка сидит на столе в доме", lexicon.Russian},
	}
	for _, tc := range cases {
		lang, conf := p.detectLanguage(TextChunk{Text: tc.text})
		assert.Equal(t, tc.want, lang, "text %q", tc.text)
		assert.Greater(t, conf, 0.0, "text %q", tc.text)
	}
}

func TestDetectLanguageHintWins(t *testing.T) {
	p := newTestProcessor()

	lang, conf := p.detectLanguage(TextChunk{
		Text:         "the dog lives in the house",
		LanguageHint: "ru-RU",
	})
	assert.Equal(t, lexicon.Russian, lang)
	assert.Equal(t, 1.0, conf)
}

func TestDetectLanguageIgnoresUnusableHints(t *testing.T) {
	p := newTestProcessor()

	// Not a language tag at all.
	lang, _ := p.detectLanguage(TextChunk{
		Text:         "el perro vive en la casa",
		LanguageHint: "not a tag!!",
	})
	assert.Equal(t, lexicon.Spanish, lang)

	// Valid tag, unsupported language.
	lang, _ = p.detectLanguage(TextChunk{
		Text:         "el perro vive en la casa",
		LanguageHint: "ja-JP",
	})
	assert.Equal(t, lexicon.Spanish, lang)
}

func TestDetectLanguageEmptyTextDefaultsToEnglish(t *testing.T) {
	p := newTestProcessor()

	lang, conf := p.detectLanguage(TextChunk{Text: "   "})
	assert.Equal(t, lexicon.English, lang)
	assert.Equal(t, 0.0, conf)
}

func TestExtractEntitiesCapitalizedRuns(t *testing.T) {
	p := newTestProcessor()
	lex := lexicon.ForLanguage(lexicon.English)

	got := p.extractEntities("Albert Einstein visited New York with Marie Curie.", lex)

	var names []string
	for _, e := range got {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Albert Einstein", "New York", "Marie Curie"}, names)
}

func TestExtractEntitiesSkipsSentenceOpeners(t *testing.T) {
	p := newTestProcessor()
	lex := lexicon.ForLanguage(lexicon.English)

	got := p.extractEntities("The dog barked at Socrates.", lex)

	require.Len(t, got, 1)
	assert.Equal(t, "Socrates", got[0].Canonical)
}

func TestExtractEntitiesTrackingNumbers(t *testing.T) {
	p := newTestProcessor()
	lex := lexicon.ForLanguage(lexicon.English)

	got := p.extractEntities("Package 123456789012 shipped from Moscow.", lex)

	var names []string
	for _, e := range got {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "123456789012")
	assert.Contains(t, names, "Moscow")
}

func TestIsTrackingNumberBounds(t *testing.T) {
	assert.False(t, isTrackingNumber(strings.Repeat("1", TrackingMinDigits-1)))
	assert.True(t, isTrackingNumber(strings.Repeat("1", TrackingMinDigits)))
	assert.True(t, isTrackingNumber(strings.Repeat("1", TrackingMaxDigits)))
	assert.False(t, isTrackingNumber(strings.Repeat("1", TrackingMaxDigits+1)))
	assert.False(t, isTrackingNumber("12345678901a"))
}

func TestExtractEntitiesMergesCrossLingualMentions(t *testing.T) {
	p := newTestProcessor()
	lex := lexicon.ForLanguage(lexicon.English)

	got := p.extractEntities("Moscow grows. Москва shines.", lex)

	require.Len(t, got, 1)
	assert.Equal(t, "Moscow", got[0].Canonical)
	assert.Equal(t, []string{"Москва"}, got[0].Aliases)
}

func TestProcessDeclarativeSentence(t *testing.T) {
	p := newTestProcessor()

	out, err := p.Process(TextChunk{Text: "Socrates is a man."})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ChunkID)
	assert.Equal(t, lexicon.English, out.Language)

	require.Len(t, out.Claims, 1)
	claim := out.Claims[0]
	assert.Equal(t, "Socrates", claim.Subject)
	assert.Equal(t, "is-a", claim.Predicate)
	assert.Equal(t, "man", claim.Object)
	assert.Equal(t, ClaimDefinition, claim.Type)
	assert.Greater(t, claim.Confidence, 0.0)

	require.Len(t, out.Trees, 1)
	assert.Equal(t, interlingua.KindTriple, out.Trees[0].Unwrap().Kind)
}

func TestProcessKeepsProvidedChunkID(t *testing.T) {
	p := newTestProcessor()

	out, err := p.Process(TextChunk{ID: "chunk-7", Text: "Socrates is a man."})
	require.NoError(t, err)
	assert.Equal(t, "chunk-7", out.ChunkID)
}

func TestProcessSkipsUnmatchedSentences(t *testing.T) {
	p := newTestProcessor()

	out, err := p.Process(TextChunk{
		Text: "Blorp zzz qqq wibble. Socrates is a man. What is truth?",
	})
	require.NoError(t, err)

	require.Len(t, out.Claims, 1)
	assert.Equal(t, "Socrates", out.Claims[0].Subject)
}

func TestProcessCompoundSentence(t *testing.T) {
	p := newTestProcessor()

	out, err := p.Process(TextChunk{Text: "Dogs are mammals and cats are mammals."})
	require.NoError(t, err)

	require.Len(t, out.Trees, 1)
	assert.Equal(t, interlingua.KindConjunction, out.Trees[0].Unwrap().Kind)

	require.Len(t, out.Claims, 2)
	assert.Equal(t, "Dogs", out.Claims[0].Subject)
	assert.Equal(t, "cats", out.Claims[1].Subject)
	for _, claim := range out.Claims {
		assert.Equal(t, ClaimDefinition, claim.Type)
	}
}

func TestProcessEmptyChunk(t *testing.T) {
	p := newTestProcessor()

	out, err := p.Process(TextChunk{Text: ""})
	require.NoError(t, err)
	assert.Empty(t, out.Claims)
	assert.Empty(t, out.Entities)
	assert.Empty(t, out.Trees)
}

func TestProcessBatchPreservesOrder(t *testing.T) {
	p := newTestProcessor()

	var chunks []TextChunk
	for i := 0; i < 16; i++ {
		chunks = append(chunks, TextChunk{
			ID:   fmt.Sprintf("chunk-%02d", i),
			Text: "Socrates is a man.",
		})
	}

	outputs, err := p.ProcessBatch(context.Background(), chunks)
	require.NoError(t, err)
	require.Len(t, outputs, len(chunks))
	for i, out := range outputs {
		assert.Equal(t, fmt.Sprintf("chunk-%02d", i), out.ChunkID)
		assert.Len(t, out.Claims, 1)
	}
}

func TestProcessBatchHonorsCancellation(t *testing.T) {
	p := newTestProcessor()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ProcessBatch(ctx, []TextChunk{{Text: "Socrates is a man."}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassifyClaim(t *testing.T) {
	cases := []struct {
		predicate string
		want      ClaimType
	}{
		{"is-a", ClaimDefinition},
		{"means", ClaimDefinition},
		{"can-do", ClaimCapability},
		{"located-in", ClaimLocation},
		{"lives-in", ClaimLocation},
		{"works-at", ClaimAttribution},
		{"part-of", ClaimAttribution},
		{"belongs-to", ClaimAttribution},
		{"has", ClaimAttribution},
		{"causes", ClaimCausal},
		{"wants", ClaimAssertion},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyClaim(tc.predicate), "predicate %s", tc.predicate)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("One. Two! Three? Four;\nFive")
	assert.Equal(t, []string{"One.", "Two!", "Three?", "Four;", "Five"}, got)
}
