// Package grammar holds the pluggable renderers that turn semantic
// trees into prose and prose back into trees. Every renderer satisfies
// the same ConcreteGrammar contract; a Registry routes requests by
// name and owns the default style.
package grammar

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
	"github.com/Toasterson/akh-medu-sub001/internal/parser"
)

// ConcreteGrammar is one rendering style. Linearize walks a tree and
// produces surface text; Parse goes the other way. A grammar may reject
// categories it does not support with a LinearizationFailed error.
// Parse receives the category the caller expects back (CategoryAny to
// accept anything).
type ConcreteGrammar interface {
	Name() string
	Description() string
	Linearize(t *interlingua.Tree, ctx *parser.Context) (string, error)
	Parse(prose string, expected interlingua.Category, ctx *parser.Context) (*interlingua.Tree, error)
	SupportedCategories() []interlingua.Category
}

// Registry maps grammar names to renderers and designates one default.
// Safe for concurrent use; the grammar watcher registers and
// unregisters custom grammars at runtime.
type Registry struct {
	mu          sync.RWMutex
	grammars    map[string]ConcreteGrammar
	defaultName string
}

// NewRegistry builds a registry pre-populated with the built-in styles.
// Formal is the default.
func NewRegistry() *Registry {
	r := &Registry{grammars: make(map[string]ConcreteGrammar)}
	r.Register(NewFormalGrammar())
	r.Register(NewTerseGrammar())
	r.Register(NewNarrativeGrammar())
	r.Register(NewRustgenGrammar())
	r.defaultName = "formal"
	return r
}

// Register adds or replaces a grammar under its own name.
func (r *Registry) Register(g ConcreteGrammar) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grammars[g.Name()] = g
	logging.Grammar("registered grammar %q", g.Name())
}

// Unregister removes a grammar by name. The current default cannot be
// removed; the call reports whether a grammar was actually dropped.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if name == r.defaultName {
		logging.GrammarWarn("refusing to unregister default grammar %q", name)
		return false
	}
	if _, ok := r.grammars[name]; !ok {
		return false
	}
	delete(r.grammars, name)
	logging.Grammar("unregistered grammar %q", name)
	return true
}

// Get returns the grammar registered under name. The empty name routes
// to the default.
func (r *Registry) Get(name string) (ConcreteGrammar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name == "" {
		name = r.defaultName
	}
	g, ok := r.grammars[name]
	if !ok {
		return nil, interlingua.Errorf(interlingua.UnknownGrammar, "grammar.Get",
			"no grammar registered under %q", name)
	}
	return g, nil
}

// Default returns the current default grammar.
func (r *Registry) Default() ConcreteGrammar {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.grammars[r.defaultName]
}

// SetDefault switches the default style. The name must already be
// registered.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.grammars[name]; !ok {
		return interlingua.Errorf(interlingua.UnknownGrammar, "grammar.SetDefault",
			"no grammar registered under %q", name)
	}
	r.defaultName = name
	return nil
}

// Names lists registered grammar names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.grammars))
	for name := range r.grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Linearize renders a tree with the named grammar ("" for the default).
func (r *Registry) Linearize(name string, t *interlingua.Tree, ctx *parser.Context) (string, error) {
	g, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return g.Linearize(t, ctx)
}

// Parse interprets prose with the named grammar ("" for the default).
func (r *Registry) Parse(name, prose string, expected interlingua.Category, ctx *parser.Context) (*interlingua.Tree, error) {
	g, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return g.Parse(prose, expected, ctx)
}

// allCategories is what the natural-language styles report: every
// concrete category plus the wildcard.
func allCategories() []interlingua.Category {
	return []interlingua.Category{
		interlingua.CategoryEntity,
		interlingua.CategoryRelation,
		interlingua.CategoryStatement,
		interlingua.CategorySimilarity,
		interlingua.CategoryGap,
		interlingua.CategoryInference,
		interlingua.CategoryCodeFact,
		interlingua.CategoryCodeModule,
		interlingua.CategoryCodeSignature,
		interlingua.CategoryDataFlow,
		interlingua.CategoryConjunction,
		interlingua.CategorySection,
		interlingua.CategoryDocument,
		interlingua.CategoryConfidence,
		interlingua.CategoryProvenance,
		interlingua.CategoryFreeform,
		interlingua.CategoryDiscourseFrame,
	}
}

// predicatePhrases maps canonical predicates to natural English. The
// formal and narrative styles share these; terse keeps raw labels.
var predicatePhrases = map[string]string{
	"is-a":       "is a",
	"has":        "has",
	"can-do":     "can do",
	"located-in": "is located in",
	"lives-in":   "lives in",
	"part-of":    "is part of",
	"belongs-to": "belongs to",
	"works-at":   "works at",
	"known-as":   "is known as",
	"has-name":   "is named",
	"made-of":    "is made of",
	"means":      "means",
	"causes":     "causes",
	"knows":      "knows",
	"wants":      "wants",
	"controls":   "controls",
	"has-state":  "is in state",
	"refers-to":  "refers to",
}

// predicatePhrase renders a canonical predicate label as an English
// verb phrase, falling back to hyphen-to-space conversion.
func predicatePhrase(label string) string {
	if phrase, ok := predicatePhrases[label]; ok {
		return phrase
	}
	return strings.ReplaceAll(label, "-", " ")
}

// leafText extracts the surface label of a leaf argument, looking
// through modifier wrappers.
func leafText(t *interlingua.Tree) string {
	if t == nil {
		return ""
	}
	return t.Unwrap().Label
}

// capitalize upper-cases the first rune for sentence starts.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}

// formatScore renders confidence and similarity values uniformly.
func formatScore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// checkExpected enforces a caller's expected category on a parse
// result. Modifier wrappers are transparent to the check.
func checkExpected(op string, t *interlingua.Tree, expected interlingua.Category) (*interlingua.Tree, error) {
	if expected == interlingua.CategoryAny {
		return t, nil
	}
	if got := t.StructuralCategory(); got != expected {
		return nil, interlingua.NewTypeMismatch(op, "parse result", expected, got)
	}
	return t, nil
}

// universalParse is the shared Parse fallback: run the full prose
// parser and adapt the result to a single tree.
func universalParse(op, prose string, expected interlingua.Category, ctx *parser.Context) (*interlingua.Tree, error) {
	t, err := parser.ParseUniversal(prose, ctx)
	if err != nil {
		return nil, err
	}
	return checkExpected(op, t, expected)
}
