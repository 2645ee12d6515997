// Package lexer turns prose into resolved tokens. Each token records
// where it came from in the normalized input and how it was matched
// against the symbol table: exactly, as part of a multi-word compound,
// approximately through item memory, or not at all.
package lexer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/Toasterson/akh-medu-sub001/internal/itemmem"
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/lexicon"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
	"github.com/Toasterson/akh-medu-sub001/internal/vsa"
)

// ResolutionKind says how a token was bound to a symbol.
type ResolutionKind int

const (
	Unresolved ResolutionKind = iota
	Exact
	Compound
	Fuzzy
)

func (k ResolutionKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Compound:
		return "compound"
	case Fuzzy:
		return "fuzzy"
	default:
		return "unresolved"
	}
}

// Resolution binds a token to a symbol. Similarity is set for fuzzy
// matches; WordCount is set for compounds.
type Resolution struct {
	Kind       ResolutionKind
	Symbol     knowledge.SymbolID
	Similarity float64
	WordCount  int
}

// Token is one unit of prose. Start and End are byte offsets into the
// NFC-normalized input; Text is the surface slice between them, Norm
// the lowercased lookup form. Void tokens (articles, fillers) are
// emitted but skipped by symbol resolution.
type Token struct {
	Text       string
	Norm       string
	Start      int
	End        int
	Void       bool
	Resolution Resolution
}

// Resolved reports whether the token is bound to a symbol.
func (t *Token) Resolved() bool { return t.Resolution.Kind != Unresolved }

// DefaultFuzzyThreshold is the minimum similarity for accepting an
// approximate match from item memory.
const DefaultFuzzyThreshold = 0.6

// minFuzzyRunes: single characters match half the alphabet, so fuzzy
// resolution requires at least two.
const minFuzzyRunes = 2

// compoundMaxWindow is the widest multi-word span tried during
// compound resolution.
const compoundMaxWindow = 4

// Lexer tokenizes prose against an optional symbol table and item
// memory. Both may be nil: without a table only spans and void flags
// are produced, without item memory the fuzzy pass is skipped.
type Lexer struct {
	lex            *lexicon.Lexicon
	table          knowledge.SymbolTable
	index          *itemmem.Index
	fuzzyThreshold float64
}

// NewLexer builds a lexer for one language.
func NewLexer(lex *lexicon.Lexicon, table knowledge.SymbolTable, index *itemmem.Index) *Lexer {
	return &Lexer{lex: lex, table: table, index: index, fuzzyThreshold: DefaultFuzzyThreshold}
}

// SetFuzzyThreshold overrides the approximate-match acceptance bar.
func (lx *Lexer) SetFuzzyThreshold(v float64) { lx.fuzzyThreshold = v }

// Tokenize runs the three resolution passes: split and strip, compound
// windows, then per-token exact/fuzzy lookup.
func (lx *Lexer) Tokenize(input string) []Token {
	tokens := lx.split(input)
	if lx.table != nil {
		tokens = lx.resolveCompounds(tokens)
	}
	lx.resolveSingles(tokens)
	logging.LexerDebug("tokenized %d tokens from %d bytes", len(tokens), len(input))
	return tokens
}

// split normalizes to NFC, cuts on whitespace, strips surrounding
// punctuation, and records byte spans into the normalized text.
func (lx *Lexer) split(input string) []Token {
	normalized := norm.NFC.String(input)
	var tokens []Token

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		raw := normalized[start:end]
		lead, trail := trimPunct(raw)
		if lead+trail >= len(raw) {
			start = -1
			return // pure punctuation
		}
		text := raw[lead : len(raw)-trail]
		normText := strings.ToLower(text)
		tokens = append(tokens, Token{
			Text:  text,
			Norm:  normText,
			Start: start + lead,
			End:   end - trail,
			Void:  lx.lex.IsVoid(normText),
		})
		start = -1
	}

	for i, r := range normalized {
		if unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(normalized))
	return tokens
}

// resolveCompounds slides windows from the widest down to two words,
// merging any span the symbol table knows as a single token. Greedy:
// wider matches win, and matched tokens never re-match.
func (lx *Lexer) resolveCompounds(tokens []Token) []Token {
	for window := compoundMaxWindow; window >= 2; window-- {
		for i := 0; i+window <= len(tokens); i++ {
			if anyResolved(tokens[i : i+window]) {
				continue
			}
			joined := joinNorms(tokens[i : i+window])
			sym, ok := lx.table.Lookup(joined)
			if !ok {
				continue
			}
			merged := Token{
				Text:  "", // set below from span boundaries
				Norm:  joined,
				Start: tokens[i].Start,
				End:   tokens[i+window-1].End,
				Resolution: Resolution{
					Kind:      Compound,
					Symbol:    sym,
					WordCount: window,
				},
			}
			merged.Text = surfaceJoin(tokens[i : i+window])
			tokens = append(tokens[:i], append([]Token{merged}, tokens[i+window:]...)...)
			logging.LexerDebug("compound %q resolved to symbol %d (%d words)", joined, sym, window)
		}
	}
	return tokens
}

// resolveSingles binds remaining non-void tokens: exact lookup first,
// then an item-memory search gated by threshold and token length.
func (lx *Lexer) resolveSingles(tokens []Token) {
	for i := range tokens {
		tok := &tokens[i]
		if tok.Resolved() || tok.Void {
			continue
		}
		if lx.table != nil {
			if sym, ok := lx.table.Lookup(tok.Norm); ok {
				tok.Resolution = Resolution{Kind: Exact, Symbol: sym}
				continue
			}
		}
		if lx.index == nil || len([]rune(tok.Norm)) < minFuzzyRunes {
			continue
		}
		query := EncodeToken(lx.index.Dims(), tok.Norm)
		matches, err := lx.index.Search(query, 1)
		if err != nil {
			logging.LexerWarn("fuzzy lookup for %q failed: %v", tok.Norm, err)
			continue
		}
		if len(matches) > 0 && matches[0].Similarity > lx.fuzzyThreshold {
			tok.Resolution = Resolution{
				Kind:       Fuzzy,
				Symbol:     matches[0].Symbol,
				Similarity: matches[0].Similarity,
			}
			logging.LexerDebug("fuzzy %q -> symbol %d (%.3f)", tok.Norm, matches[0].Symbol, matches[0].Similarity)
		}
	}
}

// FindRelationalPattern scans for the pattern's word sequence. The
// match must leave at least one token on each side: it starts at index
// 1 or later and ends before the final token. Returns the subject end
// (exclusive) and object start indexes.
func FindRelationalPattern(tokens []Token, pattern lexicon.Pattern) (subjectEnd, objectStart int, ok bool) {
	n := len(pattern.Words)
	if n == 0 || len(tokens) < n+2 {
		return 0, 0, false
	}
	for i := 1; i+n <= len(tokens)-1; i++ {
		match := true
		for j, w := range pattern.Words {
			if tokens[i+j].Norm != w {
				match = false
				break
			}
		}
		if match {
			return i, i + n, true
		}
	}
	return 0, 0, false
}

// EncodeToken folds a token into a hypervector as a bag of padded
// character trigrams. Tokens sharing most trigrams (typos, inflections)
// land close in hamming space, which is what the fuzzy pass relies on.
func EncodeToken(dims int, token string) vsa.Vector {
	padded := "^" + strings.ToLower(token) + "$"
	runes := []rune(padded)
	if len(runes) <= 3 {
		return vsa.HashLabel(dims, string(runes))
	}
	grams := make([]vsa.Vector, 0, len(runes)-2)
	for i := 0; i+3 <= len(runes); i++ {
		grams = append(grams, vsa.HashLabel(dims, string(runes[i:i+3])))
	}
	return vsa.Bundle(grams...)
}

// IndexLabel stores a label's trigram encoding under its symbol so the
// fuzzy pass can find it later. Call when interning new entities.
func IndexLabel(index *itemmem.Index, sym knowledge.SymbolID, label string) error {
	return index.Insert(sym, EncodeToken(index.Dims(), label))
}

// trimPunct returns how many bytes of leading and trailing punctuation
// to cut from a whitespace-delimited chunk. Interior punctuation, like
// the apostrophe in "qu'est-ce", survives.
func trimPunct(s string) (lead, trail int) {
	rest := s
	for rest != "" {
		r, size := decodeRune(rest)
		if !isStrippable(r) {
			break
		}
		lead += size
		rest = rest[size:]
	}
	for rest != "" {
		r, size := decodeLastRune(rest)
		if !isStrippable(r) {
			break
		}
		trail += size
		rest = rest[:len(rest)-size]
	}
	return lead, trail
}

func anyResolved(tokens []Token) bool {
	for i := range tokens {
		if tokens[i].Resolved() {
			return true
		}
	}
	return false
}

func joinNorms(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i := range tokens {
		parts[i] = tokens[i].Norm
	}
	return strings.Join(parts, " ")
}

func surfaceJoin(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i := range tokens {
		parts[i] = tokens[i].Text
	}
	return strings.Join(parts, " ")
}
