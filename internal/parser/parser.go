// Package parser turns prose into semantic trees through a priority
// cascade: imperatives first, then goal directives, questions, compound
// sentences, relational patterns, and finally a freeform fallback that
// keeps whatever partial structure was found.
package parser

import (
	"math"
	"strings"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/itemmem"
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/lexer"
	"github.com/Toasterson/akh-medu-sub001/internal/lexicon"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
)

const opParse = "parser.ParseProse"

// Context carries the resources a parse may consult. Symbols and Items
// are both optional; without them entities stay ungrounded and fuzzy
// token resolution is skipped.
type Context struct {
	Language lexicon.Language
	Symbols  knowledge.SymbolTable
	Items    *itemmem.Index
}

func (c *Context) language() lexicon.Language {
	if c == nil || c.Language == "" {
		return lexicon.English
	}
	return c.Language
}

// ResultKind discriminates what the cascade recognized.
type ResultKind int

const (
	ResultFreeform ResultKind = iota
	ResultFacts
	ResultQuery
	ResultCommand
	ResultGoal
)

func (k ResultKind) String() string {
	switch k {
	case ResultFacts:
		return "facts"
	case ResultQuery:
		return "query"
	case ResultCommand:
		return "command"
	case ResultGoal:
		return "goal"
	default:
		return "freeform"
	}
}

// QueryResult is a recognized question: the extracted subject, the full
// frame, and a gap tree representing what is being asked.
type QueryResult struct {
	Subject string
	Frame   lexicon.QuestionFrame
	Tree    *interlingua.Tree
}

// FreeformResult is the fallback: the raw text plus any clause-level
// parses that succeeded on the way down.
type FreeformResult struct {
	Text    string
	Partial []*interlingua.Tree
}

// ParseResult is the outcome of one ParseProse call. Exactly one of the
// variant fields matching Kind is set.
type ParseResult struct {
	Kind     ResultKind
	Facts    []*interlingua.Tree
	Query    *QueryResult
	Command  *lexicon.Command
	Goal     *lexicon.Goal
	Freeform *FreeformResult
}

// Pattern-source resolution qualities feeding the confidence mean.
const (
	groundedQuality   = 1.0
	ungroundedQuality = 0.8
	fallbackConf      = 0.7
)

// ParseProse runs the cascade over one input.
func ParseProse(input string, ctx *Context) (*ParseResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, interlingua.NewError(interlingua.Incomplete, opParse, "empty input")
	}
	lex := lexicon.ForLanguage(ctx.language())

	if cmd, ok := lex.MatchCommand(trimmed); ok {
		logging.ParserDebug("command %s matched: %q", cmd.Kind, trimmed)
		return &ParseResult{Kind: ResultCommand, Command: &cmd}, nil
	}
	if goal, ok := lex.MatchGoal(trimmed); ok {
		logging.ParserDebug("goal %q matched: %q", goal.Verb, trimmed)
		return &ParseResult{Kind: ResultGoal, Goal: &goal}, nil
	}
	if frame, ok := lex.ParseQuestionFrame(trimmed); ok {
		logging.ParserDebug("question frame %v subject=%q", frame.Kind, frame.Subject)
		return queryResult(trimmed, frame, ctx), nil
	}

	lx := lexer.NewLexer(lex, symbolsOf(ctx), itemsOf(ctx))
	tokens := lx.Tokenize(trimmed)

	clauses, disjunctive := splitClauses(tokens, lex)
	if len(clauses) >= 2 {
		var parsed []*interlingua.Tree
		for _, clause := range clauses {
			if tree, ok := parseFact(clause, lex); ok {
				parsed = append(parsed, tree)
			}
		}
		if len(parsed) >= 2 {
			conj := interlingua.NewConjunction(parsed, disjunctive)
			logging.Parser("compound sentence: %d clauses (disjunctive=%v)", len(parsed), disjunctive)
			return &ParseResult{Kind: ResultFacts, Facts: []*interlingua.Tree{conj}}, nil
		}
		logging.ParserWarn("compound split parsed %d/%d clauses, falling back", len(parsed), len(clauses))
		return freeform(trimmed, parsed), nil
	}

	if tree, ok := parseFact(tokens, lex); ok {
		return &ParseResult{Kind: ResultFacts, Facts: []*interlingua.Tree{tree}}, nil
	}

	logging.ParserDebug("no structure found, freeform: %q", trimmed)
	return freeform(trimmed, nil), nil
}

// ParseUniversal flattens a parse into one tree, for callers that only
// deal in trees (renderer round-trips, grammar Parse delegation).
func ParseUniversal(input string, ctx *Context) (*interlingua.Tree, error) {
	res, err := ParseProse(input, ctx)
	if err != nil {
		return nil, err
	}
	switch res.Kind {
	case ResultFacts:
		if len(res.Facts) == 1 {
			return res.Facts[0], nil
		}
		return interlingua.NewConjunction(res.Facts, false), nil
	case ResultQuery:
		return res.Query.Tree, nil
	case ResultCommand, ResultGoal:
		return interlingua.NewFreeform(strings.TrimSpace(input)), nil
	default:
		f := res.Freeform
		if len(f.Partial) >= 2 {
			return interlingua.NewConjunction(f.Partial, false), nil
		}
		if len(f.Partial) == 1 {
			return f.Partial[0], nil
		}
		return interlingua.NewFreeform(f.Text), nil
	}
}

func symbolsOf(ctx *Context) knowledge.SymbolTable {
	if ctx == nil {
		return nil
	}
	return ctx.Symbols
}

func itemsOf(ctx *Context) *itemmem.Index {
	if ctx == nil {
		return nil
	}
	return ctx.Items
}

func queryResult(input string, frame lexicon.QuestionFrame, ctx *Context) *ParseResult {
	var topic *interlingua.Tree
	if frame.Subject != "" {
		topic = interlingua.NewEntity(frame.Subject)
	} else {
		topic = interlingua.NewFreeform(input)
	}
	gap := interlingua.NewGap(topic, input)
	if tbl := symbolsOf(ctx); tbl != nil {
		gap = interlingua.Ground(gap, tbl)
	}
	return &ParseResult{
		Kind:  ResultQuery,
		Query: &QueryResult{Subject: frame.Subject, Frame: frame, Tree: gap},
	}
}

func freeform(text string, partial []*interlingua.Tree) *ParseResult {
	return &ParseResult{
		Kind:     ResultFreeform,
		Freeform: &FreeformResult{Text: text, Partial: partial},
	}
}

// splitClauses cuts the token stream at coordinating connectors. The
// connector tokens themselves are dropped; a single disjunction makes
// the whole group disjunctive.
func splitClauses(tokens []lexer.Token, lex *lexicon.Lexicon) ([][]lexer.Token, bool) {
	var clauses [][]lexer.Token
	disjunctive := false
	start := 0
	for i := range tokens {
		conj := lex.IsConjunction(tokens[i].Norm)
		disj := lex.IsDisjunction(tokens[i].Norm)
		if !conj && !disj {
			continue
		}
		if disj {
			disjunctive = true
		}
		if i > start {
			clauses = append(clauses, tokens[start:i])
		}
		start = i + 1
	}
	if start < len(tokens) {
		clauses = append(clauses, tokens[start:])
	}
	return clauses, disjunctive
}

// parseFact parses one clause into a confidence-wrapped triple. Named
// relational patterns are tried longest first; a clause of exactly
// three content tokens falls back to a bare subject-predicate-object
// reading.
func parseFact(tokens []lexer.Token, lex *lexicon.Lexicon) (*interlingua.Tree, bool) {
	for _, pattern := range lex.Patterns() {
		subjEnd, objStart, ok := lexer.FindRelationalPattern(tokens, pattern)
		if !ok {
			continue
		}
		subject, subjQ := entityFromSpan(tokens[:subjEnd])
		object, objQ := entityFromSpan(tokens[objStart:])
		triple := interlingua.NewTriple(subject, interlingua.NewRelation(pattern.Predicate), object)

		conf := geometricMean3(pattern.Confidence, subjQ, objQ)
		logging.ParserDebug("pattern %q matched, confidence %.3f", pattern.Predicate, conf)
		if conf == 1.0 {
			return triple, true
		}
		return interlingua.WithConfidence(triple, conf), true
	}

	content := contentTokens(tokens)
	if len(content) == 3 {
		triple := interlingua.NewTriple(
			entityFromToken(content[0]),
			interlingua.NewRelation(content[1].Norm),
			entityFromToken(content[2]),
		)
		logging.ParserDebug("three-token fallback: %q %q %q",
			content[0].Norm, content[1].Norm, content[2].Norm)
		return interlingua.WithConfidence(triple, fallbackConf), true
	}
	return nil, false
}

// entityFromSpan joins a token span into one entity node. The node
// inherits the first resolved symbol in the span; quality reflects
// whether any grounding was found.
func entityFromSpan(span []lexer.Token) (*interlingua.Tree, float64) {
	parts := make([]string, len(span))
	for i := range span {
		parts[i] = span[i].Text
	}
	label := strings.Join(parts, " ")
	for i := range span {
		if span[i].Resolved() {
			return interlingua.NewGroundedEntity(label, span[i].Resolution.Symbol), groundedQuality
		}
	}
	return interlingua.NewEntity(label), ungroundedQuality
}

func entityFromToken(tok lexer.Token) *interlingua.Tree {
	if tok.Resolved() {
		return interlingua.NewGroundedEntity(tok.Text, tok.Resolution.Symbol)
	}
	return interlingua.NewEntity(tok.Text)
}

func contentTokens(tokens []lexer.Token) []lexer.Token {
	var out []lexer.Token
	for _, tok := range tokens {
		if !tok.Void {
			out = append(out, tok)
		}
	}
	return out
}

// geometricMean3 is the three-way geometric mean used for pattern
// confidence. All-ones in means exactly 1.0 out, which callers use to
// skip the confidence wrapper.
func geometricMean3(a, b, c float64) float64 {
	if a == 1.0 && b == 1.0 && c == 1.0 {
		return 1.0
	}
	return math.Pow(a*b*c, 1.0/3.0)
}
