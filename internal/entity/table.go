package entity

import "strings"

// Entry is one equivalence class: a canonical English name plus the
// surface forms it absorbs across languages.
type Entry struct {
	Canonical string
	Aliases   []string
}

// EquivalenceTable answers "what is the canonical name for this
// form". Lookups are case-insensitive with an exact-case fallback for
// forms whose lowercase folding would collide.
type EquivalenceTable struct {
	folded map[string]string
	exact  map[string]string
}

// NewEquivalenceTable indexes entries for lookup. Both the canonical
// name and every alias become keys. Later entries win on collision.
func NewEquivalenceTable(entries []Entry) *EquivalenceTable {
	t := &EquivalenceTable{
		folded: make(map[string]string, len(entries)*4),
		exact:  make(map[string]string, len(entries)*4),
	}
	for _, entry := range entries {
		t.index(entry.Canonical, entry.Canonical)
		for _, alias := range entry.Aliases {
			t.index(alias, entry.Canonical)
		}
	}
	return t
}

func (t *EquivalenceTable) index(form, canonical string) {
	if form == "" {
		return
	}
	t.folded[strings.ToLower(form)] = canonical
	t.exact[form] = canonical
}

// Resolve returns the canonical name for a surface form, or false when
// the table does not know it. An exact-case hit wins over the folded
// lookup so forms that collide under lowercasing stay distinguishable.
func (t *EquivalenceTable) Resolve(surface string) (string, bool) {
	if canonical, ok := t.exact[surface]; ok {
		return canonical, true
	}
	if canonical, ok := t.folded[strings.ToLower(surface)]; ok {
		return canonical, true
	}
	return "", false
}

// Size reports how many distinct forms the table indexes.
func (t *EquivalenceTable) Size() int {
	return len(t.folded)
}

// DefaultTable returns the built-in cross-lingual table.
func DefaultTable() *EquivalenceTable {
	return defaultTable
}

var defaultTable = NewEquivalenceTable(defaultEntries)
