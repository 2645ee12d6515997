// Package preprocess is the batch ingestion front door: it takes raw
// text chunks, detects their language, extracts entity mentions and
// tracking numbers, and parses declarative sentences into claims and
// semantic trees. Sentences that match nothing are skipped, not
// errors; a chunk with no extractable structure still yields a valid
// output.
package preprocess

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/Toasterson/akh-medu-sub001/internal/entity"
	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/itemmem"
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/lexicon"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
	"github.com/Toasterson/akh-medu-sub001/internal/parser"
)

// TextChunk is one unit of input. ID and LanguageHint are optional; a
// missing ID is filled with a fresh UUID, and an unusable hint falls
// back to detection.
type TextChunk struct {
	ID           string
	Text         string
	LanguageHint string
}

// ClaimType is the coarse classification of an extracted claim,
// derived from its canonical predicate.
type ClaimType int

const (
	ClaimAssertion ClaimType = iota
	ClaimDefinition
	ClaimCapability
	ClaimLocation
	ClaimAttribution
	ClaimCausal
)

func (t ClaimType) String() string {
	switch t {
	case ClaimDefinition:
		return "definition"
	case ClaimCapability:
		return "capability"
	case ClaimLocation:
		return "location"
	case ClaimAttribution:
		return "attribution"
	case ClaimCausal:
		return "causal"
	default:
		return "assertion"
	}
}

// Claim is one subject-predicate-object statement extracted from a
// chunk, with canonicalized entity names.
type Claim struct {
	Subject    string
	Predicate  string
	Object     string
	Type       ClaimType
	Confidence float64
}

// Output is the result of preprocessing one chunk.
type Output struct {
	ChunkID            string
	Language           lexicon.Language
	LanguageConfidence float64
	Entities           []entity.Extracted
	Claims             []Claim
	Trees              []*interlingua.Tree
}

// Processor runs the ingestion pipeline. Symbols and Items are
// optional; without them parsed entities stay ungrounded.
type Processor struct {
	resolver *entity.Resolver
	symbols  knowledge.SymbolTable
	items    *itemmem.Index
	workers  int
}

// NewProcessor builds a processor. A nil resolver gets the built-in
// equivalence table.
func NewProcessor(resolver *entity.Resolver, symbols knowledge.SymbolTable, items *itemmem.Index) *Processor {
	if resolver == nil {
		resolver = entity.NewResolver()
	}
	return &Processor{
		resolver: resolver,
		symbols:  symbols,
		items:    items,
		workers:  4,
	}
}

// Process runs the full pipeline over one chunk.
func (p *Processor) Process(chunk TextChunk) (*Output, error) {
	out := &Output{ChunkID: chunk.ID}
	if out.ChunkID == "" {
		out.ChunkID = uuid.NewString()
	}

	out.Language, out.LanguageConfidence = p.detectLanguage(chunk)
	lex := lexicon.ForLanguage(out.Language)
	out.Entities = p.extractEntities(chunk.Text, lex)

	pctx := &parser.Context{Language: out.Language, Symbols: p.symbols, Items: p.items}
	for _, sentence := range splitSentences(chunk.Text) {
		result, err := parser.ParseProse(sentence, pctx)
		if err != nil || result.Kind != parser.ResultFacts {
			// Nothing extractable in this sentence.
			continue
		}
		for _, tree := range result.Facts {
			out.Trees = append(out.Trees, tree)
			out.Claims = p.appendClaims(out.Claims, tree)
		}
	}

	logging.Preprocess("chunk %s: lang=%s(%.2f) entities=%d claims=%d",
		out.ChunkID, out.Language, out.LanguageConfidence, len(out.Entities), len(out.Claims))
	return out, nil
}

// ProcessBatch preprocesses chunks concurrently, returning one output
// per chunk in input order.
func (p *Processor) ProcessBatch(ctx context.Context, chunks []TextChunk) ([]*Output, error) {
	outputs := make([]*Output, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := p.Process(chunk)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// detectLanguage scores each language by how many tokens it claims as
// void or question words. A usable hint short-circuits detection with
// full confidence; a scoreless or tied detection falls back to English
// with zero confidence.
func (p *Processor) detectLanguage(chunk TextChunk) (lexicon.Language, float64) {
	if chunk.LanguageHint != "" {
		if lang, ok := hintLanguage(chunk.LanguageHint); ok {
			return lang, 1.0
		}
		logging.PreprocessDebug("unusable language hint %q", chunk.LanguageHint)
	}

	tokens := lowerTokens(chunk.Text)
	if len(tokens) == 0 {
		return lexicon.English, 0
	}

	var best lexicon.Language
	var bestScore float64
	tie := false
	for _, lang := range lexicon.All() {
		lex := lexicon.ForLanguage(lang)
		hits := 0
		for _, tok := range tokens {
			if lex.IsVoid(tok) {
				hits++
				continue
			}
			if _, ok := lex.QuestionWordKind(tok); ok {
				hits++
			}
		}
		score := float64(hits) / float64(len(tokens))
		switch {
		case score > bestScore:
			best, bestScore, tie = lang, score, false
		case score == bestScore && score > 0:
			tie = true
		}
	}

	if bestScore == 0 || tie {
		return lexicon.English, 0
	}
	return best, bestScore
}

// hintLanguage validates a hint through the BCP 47 parser, so region
// variants like "en-US" or "ru-RU" map onto the supported bases.
func hintLanguage(hint string) (lexicon.Language, bool) {
	tag, err := language.Parse(hint)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return lexicon.ParseLanguage(base.String())
}
