package knowledge

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/mangle/ast"
	"github.com/google/mangle/factstore"
)

// triplePred is the mangle predicate holding graph edges.
var triplePred = ast.PredicateSym{Symbol: "triple", Arity: 3}

// MemoryGraph is an in-process Graph backed by a mangle fact store.
// Labels are interned case-insensitively with the original casing
// preserved for display. Safe for concurrent use.
type MemoryGraph struct {
	mu      sync.RWMutex
	byLabel map[string]SymbolID // lowercased label -> id
	byID    map[SymbolID]string // id -> original label
	next    SymbolID
	store   factstore.FactStore
}

// NewMemoryGraph creates an empty graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		byLabel: make(map[string]SymbolID),
		byID:    make(map[SymbolID]string),
		next:    1,
		store:   factstore.NewSimpleInMemoryStore(),
	}
}

// Intern returns the id for a label, allocating one on first sight.
// Interning is case-insensitive; the first-seen casing is kept.
func (g *MemoryGraph) Intern(label string) SymbolID {
	key := strings.ToLower(label)

	g.mu.RLock()
	if id, ok := g.byLabel[key]; ok {
		g.mu.RUnlock()
		return id
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	if id, ok := g.byLabel[key]; ok {
		return id
	}
	id := g.next
	g.next++
	g.byLabel[key] = id
	g.byID[id] = label
	return id
}

// Lookup implements SymbolTable.
func (g *MemoryGraph) Lookup(label string) (SymbolID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.byLabel[strings.ToLower(label)]
	return id, ok
}

// Get implements SymbolTable.
func (g *MemoryGraph) Get(id SymbolID) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	label, ok := g.byID[id]
	return label, ok
}

// Assert interns the three labels and records the triple.
func (g *MemoryGraph) Assert(subject, predicate, object string) Triple {
	t := Triple{
		Subject:   g.Intern(subject),
		Predicate: g.Intern(predicate),
		Object:    g.Intern(object),
	}
	g.AssertTriple(t)
	return t
}

// AssertTriple records an edge between already-interned symbols.
func (g *MemoryGraph) AssertTriple(t Triple) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.store.Add(tripleAtom(t))
}

// TriplesFrom implements Graph.
func (g *MemoryGraph) TriplesFrom(id SymbolID) []Triple {
	return g.collect(func(t Triple) bool { return t.Subject == id })
}

// TriplesTo implements Graph.
func (g *MemoryGraph) TriplesTo(id SymbolID) []Triple {
	return g.collect(func(t Triple) bool { return t.Object == id })
}

// All returns every triple in the graph.
func (g *MemoryGraph) All() []Triple {
	return g.collect(func(Triple) bool { return true })
}

func (g *MemoryGraph) collect(keep func(Triple) bool) []Triple {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Triple
	g.store.GetFacts(ast.NewQuery(triplePred), func(a ast.Atom) error {
		t, err := atomToTriple(a)
		if err != nil {
			return nil // skip malformed atoms rather than fail the walk
		}
		if keep(t) {
			out = append(out, t)
		}
		return nil
	})
	return out
}

func tripleAtom(t Triple) ast.Atom {
	return ast.NewAtom("triple",
		ast.Number(int64(t.Subject)),
		ast.Number(int64(t.Predicate)),
		ast.Number(int64(t.Object)),
	)
}

func atomToTriple(a ast.Atom) (Triple, error) {
	if len(a.Args) != 3 {
		return Triple{}, fmt.Errorf("triple atom with %d args", len(a.Args))
	}
	ids := make([]SymbolID, 3)
	for i, term := range a.Args {
		c, ok := term.(ast.Constant)
		if !ok || c.Type != ast.NumberType {
			return Triple{}, fmt.Errorf("triple arg %d is not a number", i)
		}
		ids[i] = SymbolID(c.NumValue)
	}
	return Triple{Subject: ids[0], Predicate: ids[1], Object: ids[2]}, nil
}
