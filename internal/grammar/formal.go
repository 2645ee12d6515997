package grammar

import (
	"fmt"
	"strings"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/parser"
)

const opFormalLinearize = "grammar.Formal.Linearize"

// FormalGrammar renders trees in an academic register: quoted entity
// names, full sentences, bracketed confidence and provenance
// annotations, Markdown section headings.
type FormalGrammar struct{}

// NewFormalGrammar returns the formal style. It is stateless.
func NewFormalGrammar() *FormalGrammar {
	return &FormalGrammar{}
}

func (g *FormalGrammar) Name() string { return "formal" }

func (g *FormalGrammar) Description() string {
	return "Academic register with quoted entities and bracketed annotations"
}

func (g *FormalGrammar) SupportedCategories() []interlingua.Category {
	return allCategories()
}

func (g *FormalGrammar) Linearize(t *interlingua.Tree, ctx *parser.Context) (string, error) {
	if t == nil {
		return "", interlingua.NewError(interlingua.LinearizationFailed, opFormalLinearize, "nil tree")
	}
	return g.node(t)
}

func (g *FormalGrammar) Parse(prose string, expected interlingua.Category, ctx *parser.Context) (*interlingua.Tree, error) {
	return universalParse("grammar.Formal.Parse", prose, expected, ctx)
}

func (g *FormalGrammar) node(t *interlingua.Tree) (string, error) {
	switch t.Kind {
	case interlingua.KindEntity, interlingua.KindFreeform:
		return t.Label, nil

	case interlingua.KindRelation:
		return predicatePhrase(t.Label), nil

	case interlingua.KindTriple:
		return fmt.Sprintf("The entity '%s' %s '%s'.",
			leafText(t.Subject), predicatePhrase(leafText(t.Predicate)), leafText(t.Object)), nil

	case interlingua.KindSimilarity:
		return fmt.Sprintf("The entity '%s' resembles '%s' with similarity %s.",
			leafText(t.Entity), leafText(t.Other), formatScore(t.Score)), nil

	case interlingua.KindGap:
		if t.Question == "" {
			return fmt.Sprintf("An open question concerns '%s'.", leafText(t.Topic)), nil
		}
		return fmt.Sprintf("An open question concerns '%s': %s", leafText(t.Topic), t.Question), nil

	case interlingua.KindInference:
		premises := make([]string, 0, len(t.Premises))
		for _, p := range t.Premises {
			s, err := g.node(p)
			if err != nil {
				return "", err
			}
			premises = append(premises, s)
		}
		conclusion, err := g.node(t.Conclusion)
		if err != nil {
			return "", err
		}
		return strings.Join(premises, " ") + " Therefore: " + conclusion, nil

	case interlingua.KindCodeFact:
		subject := leafText(t.Subject)
		if t.Subject != nil && t.Subject.Unwrap().Kind == interlingua.KindCodeSignature {
			subject = t.Subject.Unwrap().Name
		}
		if t.Detail == nil {
			return fmt.Sprintf("Regarding '%s': %s.", subject, t.Aspect), nil
		}
		return fmt.Sprintf("Regarding '%s', its %s is '%s'.", subject, t.Aspect, leafText(t.Detail)), nil

	case interlingua.KindCodeSignature:
		kind := string(t.ItemKind)
		if kind == "" {
			kind = "item"
		}
		if t.Doc == "" {
			return fmt.Sprintf("The %s '%s' is declared.", kind, t.Name), nil
		}
		return fmt.Sprintf("The %s '%s' is declared: %s", kind, t.Name, t.Doc), nil

	case interlingua.KindCodeModule:
		var b strings.Builder
		fmt.Fprintf(&b, "## Module %s\n", t.Name)
		if t.Doc != "" {
			b.WriteString("\n" + t.Doc + "\n")
		}
		for _, item := range t.Items {
			s, err := g.node(item)
			if err != nil {
				return "", err
			}
			b.WriteString("\n" + s)
		}
		return b.String(), nil

	case interlingua.KindDataFlow:
		return formalDataFlow(t)

	case interlingua.KindConjunction:
		parts := make([]string, 0, len(t.Items))
		for _, item := range t.Items {
			s, err := g.node(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		if t.Disjunctive {
			return strings.Join(parts, " Alternatively: "), nil
		}
		return strings.Join(parts, " "), nil

	case interlingua.KindSection:
		var b strings.Builder
		fmt.Fprintf(&b, "## %s\n", t.Heading)
		for _, item := range t.Items {
			s, err := g.node(item)
			if err != nil {
				return "", err
			}
			b.WriteString("\n" + s)
		}
		return b.String(), nil

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
		if len(t.Gaps) > 0 {
			var b strings.Builder
			b.WriteString("## Open Questions\n")
			for _, gap := range t.Gaps {
				s, err := g.node(gap)
				if err != nil {
					return "", err
				}
				b.WriteString("\n" + s)
			}
			parts = append(parts, b.String())
		}
		return strings.Join(parts, "\n\n"), nil

	case interlingua.KindWithConfidence:
		inner, err := g.node(t.Inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s [confidence: %s]", inner, formatScore(t.Confidence)), nil

	case interlingua.KindWithProvenance:
		inner, err := g.node(t.Inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s [source: %s]", inner, t.Provenance), nil

	case interlingua.KindDiscourseFrame:
		return g.node(t.Inner)

	default:
		return "", interlingua.Errorf(interlingua.LinearizationFailed, opFormalLinearize,
			"formal grammar cannot linearize %q nodes", t.Kind)
	}
}

// formalDataFlow spells out a pipeline as one sentence.
func formalDataFlow(t *interlingua.Tree) (string, error) {
	stages := make([]string, 0, len(t.Items))
	for _, stage := range t.Items {
		stages = append(stages, leafText(stage))
	}
	switch len(stages) {
	case 0:
		return "", interlingua.NewError(interlingua.LinearizationFailed, opFormalLinearize,
			"data flow has no stages")
	case 1:
		return fmt.Sprintf("Data flows through '%s'.", stages[0]), nil
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "Data flows from '%s'", stages[0])
		for _, mid := range stages[1 : len(stages)-1] {
			fmt.Fprintf(&b, " through '%s'", mid)
		}
		fmt.Fprintf(&b, " to '%s'.", stages[len(stages)-1])
		return b.String(), nil
	}
}
