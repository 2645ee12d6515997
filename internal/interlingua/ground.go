package interlingua

import (
	"strings"

	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
)

// Ground returns a deep copy of the tree in which every entity and
// relation leaf that lacks a symbol has been looked up in the symbol
// table. Leaves the table does not know stay ungrounded; leaves that
// already carry a symbol keep it. The receiver is never mutated.
func Ground(t *Tree, table knowledge.SymbolTable) *Tree {
	if t == nil {
		return nil
	}
	out := t.Clone()
	groundInPlace(out, table)
	return out
}

func groundInPlace(t *Tree, table knowledge.SymbolTable) {
	if t == nil {
		return
	}
	switch t.Kind {
	case KindEntity, KindRelation:
		if t.Symbol == 0 {
			if id, ok := table.Lookup(strings.ToLower(t.Label)); ok {
				t.Symbol = id
			}
		}
		return
	case KindFreeform:
		return
	}
	for _, c := range t.Children() {
		groundInPlace(c, table)
	}
}

// UnresolvedCount counts entity and relation leaves without a symbol.
func UnresolvedCount(t *Tree) int {
	n := 0
	walkLeaves(t, func(leaf *Tree) bool {
		if leaf.Symbol == 0 {
			n++
		}
		return true
	})
	return n
}

// FirstUnresolved returns the label of the first ungrounded entity or
// relation leaf in depth-first order.
func FirstUnresolved(t *Tree) (string, bool) {
	label := ""
	found := false
	walkLeaves(t, func(leaf *Tree) bool {
		if leaf.Symbol == 0 {
			label = leaf.Label
			found = true
			return false
		}
		return true
	})
	return label, found
}

// FullyGrounded reports whether every entity and relation leaf carries a
// symbol.
func FullyGrounded(t *Tree) bool {
	return UnresolvedCount(t) == 0
}

// walkLeaves visits entity and relation leaves depth-first until the
// visitor returns false.
func walkLeaves(t *Tree, visit func(*Tree) bool) bool {
	if t == nil {
		return true
	}
	switch t.Kind {
	case KindEntity, KindRelation:
		return visit(t)
	case KindFreeform:
		return true
	}
	for _, c := range t.Children() {
		if !walkLeaves(c, visit) {
			return false
		}
	}
	return true
}
