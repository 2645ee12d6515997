package grammar

import (
	"fmt"
	"strings"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/parser"
)

const opNarrativeLinearize = "grammar.Narrative.Linearize"

// narrativeTransitions cycle across the second and later statements of
// a sequence so repeated facts read as flowing prose.
var narrativeTransitions = []string{
	"Furthermore",
	"In addition",
	"Notably",
	"Moreover",
	"Beyond that",
}

// narrativeGapOpeners cycle across open questions. Each phrase reads
// naturally before "regarding <topic>".
var narrativeGapOpeners = []string{
	"One open question remains",
	"Much remains unknown",
	"Questions persist",
	"The record is silent",
}

// NarrativeGrammar renders trees as flowing prose. It keeps cycling
// counters for transition and gap-opener phrases, so consecutive calls
// continue the cycle rather than restarting it; callers that need
// reproducible output call ResetState first. Section boundaries reset
// the counters on their own.
type NarrativeGrammar struct {
	transitionCount int
	gapCount        int
}

// NewNarrativeGrammar returns a narrative style with fresh counters.
func NewNarrativeGrammar() *NarrativeGrammar {
	return &NarrativeGrammar{}
}

func (g *NarrativeGrammar) Name() string { return "narrative" }

func (g *NarrativeGrammar) Description() string {
	return "Flowing prose with cycling transitions and confidence adverbs"
}

func (g *NarrativeGrammar) SupportedCategories() []interlingua.Category {
	return allCategories()
}

// ResetState rewinds the transition and gap-opener cycles.
func (g *NarrativeGrammar) ResetState() {
	g.transitionCount = 0
	g.gapCount = 0
}

func (g *NarrativeGrammar) Linearize(t *interlingua.Tree, ctx *parser.Context) (string, error) {
	if t == nil {
		return "", interlingua.NewError(interlingua.LinearizationFailed, opNarrativeLinearize, "nil tree")
	}
	return g.node(t)
}

func (g *NarrativeGrammar) Parse(prose string, expected interlingua.Category, ctx *parser.Context) (*interlingua.Tree, error) {
	return universalParse("grammar.Narrative.Parse", prose, expected, ctx)
}

// nextTransition consumes one phrase from the transition cycle.
func (g *NarrativeGrammar) nextTransition() string {
	phrase := narrativeTransitions[g.transitionCount%len(narrativeTransitions)]
	g.transitionCount++
	return phrase
}

// nextGapOpener consumes one phrase from the gap-opener cycle.
func (g *NarrativeGrammar) nextGapOpener() string {
	phrase := narrativeGapOpeners[g.gapCount%len(narrativeGapOpeners)]
	g.gapCount++
	return phrase
}

func (g *NarrativeGrammar) node(t *interlingua.Tree) (string, error) {
	switch t.Kind {
	case interlingua.KindEntity, interlingua.KindFreeform:
		return t.Label, nil

	case interlingua.KindRelation:
		return predicatePhrase(t.Label), nil

	case interlingua.KindTriple:
		return capitalize(fmt.Sprintf("%s %s %s.",
			leafText(t.Subject), predicatePhrase(leafText(t.Predicate)), leafText(t.Object))), nil

	case interlingua.KindSimilarity:
		return capitalize(fmt.Sprintf("%s %s %s.",
			leafText(t.Entity), similarityPhrase(t.Score), leafText(t.Other))), nil

	case interlingua.KindGap:
		opener := g.nextGapOpener()
		if t.Question == "" {
			return fmt.Sprintf("%s regarding %s.", opener, leafText(t.Topic)), nil
		}
		return fmt.Sprintf("%s regarding %s: %s", opener, leafText(t.Topic), t.Question), nil

	case interlingua.KindInference:
		clauses := make([]string, 0, len(t.Premises))
		for _, p := range t.Premises {
			s, err := g.node(p)
			if err != nil {
				return "", err
			}
			clauses = append(clauses, "because "+strings.TrimSuffix(s, "."))
		}
		conclusion, err := g.node(t.Conclusion)
		if err != nil {
			return "", err
		}
		return capitalize(strings.Join(clauses, ", and ") + ", it follows that " +
			strings.TrimSuffix(conclusion, ".") + "."), nil

	case interlingua.KindCodeFact:
		subject := leafText(t.Subject)
		if t.Subject != nil && t.Subject.Unwrap().Kind == interlingua.KindCodeSignature {
			subject = t.Subject.Unwrap().Name
		}
		if t.Detail == nil {
			return fmt.Sprintf("As for %s, note its %s.", subject, t.Aspect), nil
		}
		return fmt.Sprintf("As for %s, its %s is %s.", subject, t.Aspect, leafText(t.Detail)), nil

	case interlingua.KindCodeSignature:
		sentence := fmt.Sprintf("There is a %s named %s.", codeKindWord(t.ItemKind), t.Name)
		if t.Doc != "" {
			sentence += " It is described as: " + t.Doc
		}
		return sentence, nil

	case interlingua.KindCodeModule:
		var b strings.Builder
		fmt.Fprintf(&b, "The module %s holds the following.", t.Name)
		if t.Doc != "" {
			b.WriteString(" " + t.Doc)
		}
		for _, item := range t.Items {
			s, err := g.node(item)
			if err != nil {
				return "", err
			}
			b.WriteString(" " + s)
		}
		return b.String(), nil

	case interlingua.KindDataFlow:
		return narrativeDataFlow(t)

	case interlingua.KindConjunction:
		return g.sequence(t.Items, t.Disjunctive)

	case interlingua.KindSection:
		// Counters restart so every section opens the same way.
		g.ResetState()
		body, err := g.sequence(t.Items, false)
		if err != nil {
			return "", err
		}
		if t.Heading == "" {
			return body, nil
		}
		return t.Heading + ". " + body, nil

	case interlingua.KindDocument:
		var parts []string
		if t.Overview != nil {
			s, err := g.node(t.Overview)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		for _, section := range t.Items {
			s, err := g.node(section)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		for _, gap := range t.Gaps {
			s, err := g.node(gap)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, "\n\n"), nil

	case interlingua.KindWithConfidence:
		inner, err := g.node(t.Inner)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(inner, ".") + ", " + confidenceAdverb(t.Confidence) + ".", nil

	case interlingua.KindWithProvenance:
		inner, err := g.node(t.Inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("According to %s, %s", t.Provenance, inner), nil

	case interlingua.KindDiscourseFrame:
		return g.node(t.Inner)

	default:
		return "", interlingua.Errorf(interlingua.LinearizationFailed, opNarrativeLinearize,
			"narrative grammar cannot linearize %q nodes", t.Kind)
	}
}

// sequence renders a run of statements, prefixing every statement after
// the first with the next transition phrase.
func (g *NarrativeGrammar) sequence(items []*interlingua.Tree, disjunctive bool) (string, error) {
	parts := make([]string, 0, len(items))
	for i, item := range items {
		s, err := g.node(item)
		if err != nil {
			return "", err
		}
		if i > 0 {
			if disjunctive {
				s = "Or perhaps: " + s
			} else {
				s = g.nextTransition() + ", " + s
			}
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), nil
}

// confidenceAdverb maps a confidence value to a qualifying phrase.
func confidenceAdverb(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return "with high confidence"
	case confidence >= 0.75:
		return "with reasonable confidence"
	case confidence >= 0.6:
		return "with moderate confidence"
	case confidence >= 0.4:
		return "tentatively"
	default:
		return "speculatively"
	}
}

// similarityPhrase maps a similarity score to a descriptive strength.
func similarityPhrase(score float64) string {
	switch {
	case score >= 0.9:
		return "strongly resembles"
	case score >= 0.7:
		return "resembles"
	case score >= 0.5:
		return "is somewhat like"
	default:
		return "is faintly reminiscent of"
	}
}

// codeKindWord expands a code item kind into a narrative noun.
func codeKindWord(kind interlingua.CodeItemKind) string {
	switch kind {
	case interlingua.ItemFn:
		return "function"
	case interlingua.ItemStruct:
		return "struct"
	case interlingua.ItemEnum:
		return "enum"
	case interlingua.ItemTrait:
		return "trait"
	case interlingua.ItemImpl:
		return "implementation block"
	case interlingua.ItemMod:
		return "module"
	case interlingua.ItemConst:
		return "constant"
	case interlingua.ItemType:
		return "type alias"
	default:
		return "declaration"
	}
}

// narrativeDataFlow reads a pipeline aloud stage by stage.
func narrativeDataFlow(t *interlingua.Tree) (string, error) {
	stages := make([]string, 0, len(t.Items))
	for _, stage := range t.Items {
		stages = append(stages, leafText(stage))
	}
	switch len(stages) {
	case 0:
		return "", interlingua.NewError(interlingua.LinearizationFailed, opNarrativeLinearize,
			"data flow has no stages")
	case 1:
		return fmt.Sprintf("Data passes through %s.", stages[0]), nil
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "Data starts at %s", stages[0])
		for _, mid := range stages[1 : len(stages)-1] {
			fmt.Fprintf(&b, ", moves to %s", mid)
		}
		fmt.Fprintf(&b, ", and ends at %s.", stages[len(stages)-1])
		return b.String(), nil
	}
}
