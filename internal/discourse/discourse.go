// Package discourse turns raw graph triples into a response tree that
// fits the conversation. It resolves pronoun chains, determines whose
// point of view the answer takes, classifies what a question is after,
// then scores, orders, and truncates candidate facts before wrapping
// them in a discourse frame for the renderers.
package discourse

import (
	"strings"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/lexicon"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
)

// Config carries the tuning knobs for response assembly. The score
// deltas and detail limits are empirically tuned values; they stay
// configurable rather than re-derived.
type Config struct {
	// FocusBoost is added when a predicate sits on the active focus
	// allow-list.
	FocusBoost int
	// DeprioritizedPenalty is subtracted from predicates in the
	// deprioritized set.
	DeprioritizedPenalty int
	// IsABoost is added to is-a triples regardless of focus.
	IsABoost int
	// BaseScore is every candidate's starting score.
	BaseScore int

	// SelfLabel is the reserved label for the system itself.
	SelfLabel string
	// PronounPredicate links a pronoun symbol to its referent.
	PronounPredicate string
	// DetailPredicate carries a subject's response-detail policy.
	DetailPredicate string

	// ConciseLimit and NormalLimit cap how many facts a response
	// carries under the concise and normal policies. Full detail is
	// unbounded.
	ConciseLimit int
	NormalLimit  int

	// DefaultDetail is the policy applied when the graph carries no
	// detail triple for the subject. One of "concise", "normal",
	// "full"; empty means normal.
	DefaultDetail string
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		FocusBoost:           10,
		DeprioritizedPenalty: 5,
		IsABoost:             5,
		BaseScore:            1,
		SelfLabel:            "self",
		PronounPredicate:     "refers-to",
		DetailPredicate:      "discourse:response-detail",
		ConciseLimit:         3,
		NormalLimit:          8,
	}
}

// Resolver assembles discourse-framed responses over a knowledge graph.
type Resolver struct {
	graph knowledge.Graph
	cfg   Config
}

// NewResolver builds a resolver with the default tuning.
func NewResolver(graph knowledge.Graph) *Resolver {
	return NewResolverWithConfig(graph, DefaultConfig())
}

// NewResolverWithConfig builds a resolver with explicit tuning. Zero
// string fields fall back to their defaults so partial configs stay
// usable.
func NewResolverWithConfig(graph knowledge.Graph, cfg Config) *Resolver {
	defaults := DefaultConfig()
	if cfg.SelfLabel == "" {
		cfg.SelfLabel = defaults.SelfLabel
	}
	if cfg.PronounPredicate == "" {
		cfg.PronounPredicate = defaults.PronounPredicate
	}
	if cfg.DetailPredicate == "" {
		cfg.DetailPredicate = defaults.DetailPredicate
	}
	if cfg.ConciseLimit == 0 {
		cfg.ConciseLimit = defaults.ConciseLimit
	}
	if cfg.NormalLimit == 0 {
		cfg.NormalLimit = defaults.NormalLimit
	}
	return &Resolver{graph: graph, cfg: cfg}
}

// Context describes one resolved conversational turn.
type Context struct {
	// Subject is the resolved subject label after any pronoun hop.
	Subject string
	// Symbol is Subject's id, valid only when Resolved is true.
	Symbol knowledge.SymbolID
	// Resolved reports whether the subject is known to the graph.
	Resolved bool
	// Original is the subject as the user phrased it.
	Original string
	// PronounResolved reports that a pronoun hop fired.
	PronounResolved bool

	PointOfView  interlingua.PointOfView
	Focus        interlingua.Focus
	QuestionWord string
}

// ResolveContext builds the discourse context for one user input.
// Questions are decomposed with the lexicon's frame rules; anything
// else is taken whole as the subject.
func (r *Resolver) ResolveContext(input string, lex *lexicon.Lexicon) Context {
	subject := strings.TrimSpace(input)
	kind := lexicon.QuestionNone
	questionWord := ""
	capability := false

	if lex != nil {
		if frame, ok := lex.ParseQuestionFrame(input); ok {
			if frame.Subject != "" {
				subject = frame.Subject
			}
			kind = frame.Kind
			questionWord = frame.QuestionWord
			capability = frame.Capability
		}
	}

	ctx := Context{Subject: subject, Original: subject, QuestionWord: questionWord}

	if sym, ok := r.graph.Lookup(subject); ok {
		ctx.Symbol = sym
		ctx.Resolved = true
		if target, label, hopped := r.pronounHop(sym); hopped {
			ctx.Symbol = target
			ctx.Subject = label
			ctx.PronounResolved = true
		}
	}

	ctx.PointOfView = r.pointOfView(ctx)
	ctx.Focus = classifyFocus(kind, capability)

	logging.DiscourseDebug("context subject=%q resolved=%v pov=%s focus=%s",
		ctx.Subject, ctx.Resolved, ctx.PointOfView, ctx.Focus)
	return ctx
}

// pronounHop follows at most one pronoun edge out of sym.
func (r *Resolver) pronounHop(sym knowledge.SymbolID) (knowledge.SymbolID, string, bool) {
	for _, t := range r.graph.TriplesFrom(sym) {
		pred, ok := r.graph.Get(t.Predicate)
		if !ok || pred != r.cfg.PronounPredicate {
			continue
		}
		label, ok := r.graph.Get(t.Object)
		if !ok {
			continue
		}
		return t.Object, label, true
	}
	return 0, "", false
}

func (r *Resolver) pointOfView(ctx Context) interlingua.PointOfView {
	switch {
	case strings.EqualFold(ctx.Subject, r.cfg.SelfLabel):
		return interlingua.FirstPerson
	case ctx.PronounResolved:
		return interlingua.SecondPerson
	default:
		return interlingua.ThirdPerson
	}
}

// classifyFocus maps a question kind to its focus category. A
// capability modal overrides whatever the question word suggested.
func classifyFocus(kind lexicon.QuestionKind, capability bool) interlingua.Focus {
	if capability {
		return interlingua.FocusCapability
	}
	switch kind {
	case lexicon.QuestionWho, lexicon.QuestionWhat:
		return interlingua.FocusIdentity
	case lexicon.QuestionHow:
		return interlingua.FocusMethod
	case lexicon.QuestionWhy:
		return interlingua.FocusCause
	case lexicon.QuestionWhere:
		return interlingua.FocusLocation
	case lexicon.QuestionWhen:
		return interlingua.FocusTime
	case lexicon.QuestionWhich:
		return interlingua.FocusDefinition
	case lexicon.QuestionYesNo:
		return interlingua.FocusConfirmation
	default:
		return interlingua.FocusGeneral
	}
}
