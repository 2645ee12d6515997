// Package knowledge defines the symbol and triple contracts the
// language core consumes. The core never owns a knowledge graph; it
// resolves labels, walks triples, and emits triples through these
// interfaces. MemoryGraph is the in-process reference implementation
// used by tests and the CLI.
package knowledge

// SymbolID identifies an interned symbol in a knowledge graph.
type SymbolID uint64

// DerivedBit marks identifiers derived by hashing fixed names (role
// symbols and similar infrastructure). Graph implementations must
// never allocate ids with this bit set.
const DerivedBit SymbolID = 1 << 63

// IsDerived reports whether id lives in the derived (hashed) half of
// the identifier space.
func (id SymbolID) IsDerived() bool { return id&DerivedBit != 0 }

// Triple is a subject-predicate-object edge between interned symbols.
type Triple struct {
	Subject   SymbolID
	Predicate SymbolID
	Object    SymbolID
}

// SymbolTable resolves between surface labels and symbol ids.
// Lookup is case-insensitive; Get returns the original-cased label.
type SymbolTable interface {
	// Lookup finds the id for a label, if interned.
	Lookup(label string) (SymbolID, bool)

	// Get returns the label for an id, if known.
	Get(id SymbolID) (string, bool)
}

// Graph is the triple-store surface the discourse layer walks.
type Graph interface {
	SymbolTable

	// TriplesFrom returns all triples with the given subject.
	TriplesFrom(id SymbolID) []Triple

	// TriplesTo returns all triples with the given object.
	TriplesTo(id SymbolID) []Triple
}
