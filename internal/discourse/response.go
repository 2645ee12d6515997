package discourse

import (
	"sort"
	"strings"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
)

const opBuildResponse = "discourse.BuildResponse"

// focusPredicates is the allow-list of predicates each focus boosts.
// General and Time boost nothing; Time has no canonical predicate yet.
var focusPredicates = map[interlingua.Focus][]string{
	interlingua.FocusIdentity:     {"is-a", "known-as", "has-name"},
	interlingua.FocusDefinition:   {"is-a", "means"},
	interlingua.FocusMethod:       {"can-do", "made-of"},
	interlingua.FocusCause:        {"causes"},
	interlingua.FocusLocation:     {"located-in", "lives-in"},
	interlingua.FocusConfirmation: {"is-a", "has-state"},
	interlingua.FocusCapability:   {"can-do", "knows"},
}

// deprioritizedPredicates lose points everywhere. State facts only
// surface when a focus allow-list pulls them back up.
var deprioritizedPredicates = map[string]bool{
	"has-state": true,
}

// Predicate categories order a response: who something is before what
// it can do, roles and knowledge after that, state last.
const (
	categoryIdentity = iota
	categoryPower
	categoryRole
	categoryCapability
	categoryOther
	categoryState
)

var predicateCategories = map[string]int{
	"is-a":       categoryIdentity,
	"known-as":   categoryIdentity,
	"has-name":   categoryIdentity,
	"can-do":     categoryPower,
	"controls":   categoryPower,
	"works-at":   categoryRole,
	"part-of":    categoryRole,
	"belongs-to": categoryRole,
	"knows":      categoryCapability,
	"means":      categoryCapability,
	"has-state":  categoryState,
}

func predicateCategory(predicate string) int {
	if cat, ok := predicateCategories[predicate]; ok {
		return cat
	}
	return categoryOther
}

// scoredFact is one surviving candidate with its resolved labels.
type scoredFact struct {
	triple    knowledge.Triple
	subject   string
	predicate string
	object    string
	score     int
}

// BuildResponse selects, orders, and frames candidate triples as an
// answer tree. Candidates are deduplicated, stripped of infrastructure
// and metadata edges, scored against the context's focus, truncated to
// the subject's response-detail policy, and grouped by predicate
// category. When nothing survives, the response is an open-question
// gap about the subject.
func (r *Resolver) BuildResponse(ctx Context, candidates []knowledge.Triple) (*interlingua.Tree, error) {
	kept := r.selectFacts(ctx, candidates)

	limit := r.detailLimit(ctx)
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	// Group by category without disturbing relevance order inside a
	// category.
	sort.SliceStable(kept, func(i, j int) bool {
		return predicateCategory(kept[i].predicate) < predicateCategory(kept[j].predicate)
	})

	logging.Discourse("response subject=%q focus=%s kept=%d of %d",
		ctx.Subject, ctx.Focus, len(kept), len(candidates))

	if len(kept) == 0 {
		topic := ctx.Subject
		if topic == "" {
			topic = ctx.Original
		}
		if topic == "" {
			return nil, interlingua.NewError(interlingua.UnresolvedEntity, opBuildResponse,
				"no subject and no facts to answer with")
		}
		gap := interlingua.NewGap(interlingua.NewEntity(topic), "")
		return interlingua.NewDiscourseFrame(gap, ctx.PointOfView, ctx.Focus), nil
	}

	nodes := make([]*interlingua.Tree, len(kept))
	for i, fact := range kept {
		predicate := interlingua.NewRelation(fact.predicate)
		predicate.Symbol = fact.triple.Predicate
		nodes[i] = interlingua.NewTriple(
			interlingua.NewGroundedEntity(fact.subject, fact.triple.Subject),
			predicate,
			interlingua.NewGroundedEntity(fact.object, fact.triple.Object),
		)
	}

	inner := nodes[0]
	if len(nodes) > 1 {
		inner = interlingua.NewConjunction(nodes, false)
	}
	return interlingua.NewDiscourseFrame(inner, ctx.PointOfView, ctx.Focus), nil
}

// selectFacts deduplicates, filters, and scores candidates, returning
// survivors sorted by descending relevance.
func (r *Resolver) selectFacts(ctx Context, candidates []knowledge.Triple) []scoredFact {
	seen := make(map[knowledge.Triple]bool, len(candidates))
	kept := make([]scoredFact, 0, len(candidates))

	for _, triple := range candidates {
		if seen[triple] {
			continue
		}
		seen[triple] = true

		subject, ok := r.graph.Get(triple.Subject)
		if !ok {
			continue
		}
		predicate, ok := r.graph.Get(triple.Predicate)
		if !ok {
			continue
		}
		object, ok := r.graph.Get(triple.Object)
		if !ok {
			continue
		}
		if r.isInfrastructure(predicate) {
			continue
		}
		if isMetadata(subject) || isMetadata(predicate) || isMetadata(object) {
			continue
		}

		score := r.scorePredicate(predicate, ctx.Focus)
		if score < 0 {
			continue
		}
		kept = append(kept, scoredFact{
			triple:    triple,
			subject:   subject,
			predicate: predicate,
			object:    object,
			score:     score,
		})
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })
	return kept
}

func (r *Resolver) scorePredicate(predicate string, focus interlingua.Focus) int {
	score := r.cfg.BaseScore
	for _, allowed := range focusPredicates[focus] {
		if predicate == allowed {
			score += r.cfg.FocusBoost
			break
		}
	}
	if deprioritizedPredicates[predicate] {
		score -= r.cfg.DeprioritizedPenalty
	}
	if predicate == "is-a" {
		score += r.cfg.IsABoost
	}
	return score
}

// isInfrastructure reports predicates that wire the graph together
// rather than describe the world.
func (r *Resolver) isInfrastructure(predicate string) bool {
	return predicate == r.cfg.PronounPredicate ||
		predicate == r.cfg.DetailPredicate ||
		strings.HasPrefix(predicate, "akh:")
}

func isMetadata(label string) bool {
	return strings.HasPrefix(label, "meta:")
}

// detailLimit reads the subject's response-detail policy from the
// graph itself. Unknown or absent policies fall back to the configured
// default; full detail returns 0 (unbounded).
func (r *Resolver) detailLimit(ctx Context) int {
	if ctx.Resolved {
		for _, triple := range r.graph.TriplesFrom(ctx.Symbol) {
			predicate, ok := r.graph.Get(triple.Predicate)
			if !ok || predicate != r.cfg.DetailPredicate {
				continue
			}
			policy, ok := r.graph.Get(triple.Object)
			if !ok {
				continue
			}
			if limit, ok := r.limitFor(policy); ok {
				return limit
			}
		}
	}
	if limit, ok := r.limitFor(r.cfg.DefaultDetail); ok {
		return limit
	}
	return r.cfg.NormalLimit
}

func (r *Resolver) limitFor(policy string) (int, bool) {
	switch strings.ToLower(policy) {
	case "concise":
		return r.cfg.ConciseLimit, true
	case "full":
		return 0, true
	case "normal":
		return r.cfg.NormalLimit, true
	}
	return 0, false
}
