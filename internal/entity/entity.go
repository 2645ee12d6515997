// Package entity resolves surface forms to canonical entity names. A
// three-tier cascade checks caller-provided runtime aliases, then the
// static cross-lingual equivalence table, and finally passes the
// surface form through unchanged. The same package merges extracted
// entity records that resolve to one canonical name.
package entity

import (
	"strings"
	"sync"

	"github.com/Toasterson/akh-medu-sub001/internal/logging"
)

// Extracted is one entity mention pulled out of text.
type Extracted struct {
	// Name is the surface form as it appeared.
	Name string
	// Canonical is the resolved name, equal to Name when unresolved.
	Canonical string
	// Aliases are other surface forms seen for the same entity.
	Aliases []string
	// Confidence is the extractor's confidence in the mention.
	Confidence float64
}

// Resolver maps surface forms to canonical names. Runtime aliases take
// precedence over the static table; unknown forms pass through.
type Resolver struct {
	mu      sync.RWMutex
	aliases map[string]string
	table   *EquivalenceTable
}

// NewResolver builds a resolver over the built-in equivalence table.
func NewResolver() *Resolver {
	return NewResolverWithTable(DefaultTable())
}

// NewResolverWithTable builds a resolver over a caller-supplied table.
func NewResolverWithTable(table *EquivalenceTable) *Resolver {
	return &Resolver{
		aliases: make(map[string]string),
		table:   table,
	}
}

// AddAlias registers a runtime alias. Aliases are matched
// case-insensitively and shadow the static table.
func (r *Resolver) AddAlias(alias, canonical string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[strings.ToLower(alias)] = canonical
	logging.EntityDebug("alias %q -> %q", alias, canonical)
}

// Resolve canonicalizes one surface form. The boolean reports whether
// any tier matched; on false the surface form comes back unchanged.
func (r *Resolver) Resolve(surface string) (string, bool) {
	r.mu.RLock()
	canonical, ok := r.aliases[strings.ToLower(surface)]
	r.mu.RUnlock()
	if ok {
		return canonical, true
	}

	if r.table != nil {
		if canonical, ok := r.table.Resolve(surface); ok {
			return canonical, true
		}
	}

	return surface, false
}

// ResolveEntities canonicalizes and merges extracted mentions. Records
// sharing a canonical name (case-insensitive) collapse into one entry
// that unions the alias lists and keeps the maximum confidence.
// First-seen order is preserved.
func (r *Resolver) ResolveEntities(mentions []Extracted) []Extracted {
	merged := make([]Extracted, 0, len(mentions))
	index := make(map[string]int)

	for _, mention := range mentions {
		canonical := mention.Canonical
		if canonical == "" {
			canonical, _ = r.Resolve(mention.Name)
		}
		key := strings.ToLower(canonical)

		at, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, Extracted{
				Name:       mention.Name,
				Canonical:  canonical,
				Aliases:    appendAliases(nil, mention, canonical),
				Confidence: mention.Confidence,
			})
			continue
		}

		entry := &merged[at]
		entry.Aliases = appendAliases(entry.Aliases, mention, canonical)
		if mention.Confidence > entry.Confidence {
			entry.Confidence = mention.Confidence
		}
	}

	if len(merged) < len(mentions) {
		logging.Entity("merged %d mentions into %d entities", len(mentions), len(merged))
	}
	return merged
}

// appendAliases unions a mention's surface form and alias list into
// aliases, skipping the canonical name itself and duplicates while
// preserving order.
func appendAliases(aliases []string, mention Extracted, canonical string) []string {
	add := func(form string) {
		if form == "" || strings.EqualFold(form, canonical) {
			return
		}
		for _, existing := range aliases {
			if strings.EqualFold(existing, form) {
				return
			}
		}
		aliases = append(aliases, form)
	}
	add(mention.Name)
	for _, alias := range mention.Aliases {
		add(alias)
	}
	return aliases
}
