package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
	"github.com/Toasterson/akh-medu-sub001/internal/parser"
)

const (
	opTerseLinearize = "grammar.Terse.Linearize"
	opTerseParse     = "grammar.Terse.Parse"
)

// TerseGrammar renders trees in compact arrow notation: one line per
// statement, canonical predicate labels, bracketed confidence,
// parenthesized provenance. Its parser understands the same notation.
type TerseGrammar struct{}

// NewTerseGrammar returns the terse style. It is stateless.
func NewTerseGrammar() *TerseGrammar {
	return &TerseGrammar{}
}

func (g *TerseGrammar) Name() string { return "terse" }

func (g *TerseGrammar) Description() string {
	return "Compact arrow notation with bracketed confidence"
}

func (g *TerseGrammar) SupportedCategories() []interlingua.Category {
	return allCategories()
}

func (g *TerseGrammar) Linearize(t *interlingua.Tree, ctx *parser.Context) (string, error) {
	if t == nil {
		return "", interlingua.NewError(interlingua.LinearizationFailed, opTerseLinearize, "nil tree")
	}
	return g.node(t)
}

// Parse first tries the style's own arrow notation ("a → is-a → b",
// ASCII "->" accepted, optional trailing "[0.95]"), then falls back to
// the universal prose parser.
func (g *TerseGrammar) Parse(prose string, expected interlingua.Category, ctx *parser.Context) (*interlingua.Tree, error) {
	if t, ok := parseArrowNotation(prose, ctx); ok {
		logging.GrammarDebug("terse parse: arrow notation matched")
		return checkExpected(opTerseParse, t, expected)
	}
	return universalParse(opTerseParse, prose, expected, ctx)
}

func (g *TerseGrammar) node(t *interlingua.Tree) (string, error) {
	switch t.Kind {
	case interlingua.KindEntity, interlingua.KindFreeform, interlingua.KindRelation:
		return t.Label, nil

	case interlingua.KindTriple:
		return fmt.Sprintf("%s → %s → %s",
			leafText(t.Subject), leafText(t.Predicate), leafText(t.Object)), nil

	case interlingua.KindSimilarity:
		return fmt.Sprintf("%s ~ %s [%s]",
			leafText(t.Entity), leafText(t.Other), formatScore(t.Score)), nil

	case interlingua.KindGap:
		if t.Question == "" {
			return "? " + leafText(t.Topic), nil
		}
		return fmt.Sprintf("? %s: %s", leafText(t.Topic), t.Question), nil

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
		return strings.Join(premises, " + ") + " => " + conclusion, nil

	case interlingua.KindCodeFact:
		subject := leafText(t.Subject)
		if t.Subject != nil && t.Subject.Unwrap().Kind == interlingua.KindCodeSignature {
			subject = t.Subject.Unwrap().Name
		}
		if t.Detail == nil {
			return fmt.Sprintf("%s.%s", subject, t.Aspect), nil
		}
		return fmt.Sprintf("%s.%s = %s", subject, t.Aspect, leafText(t.Detail)), nil

	case interlingua.KindCodeSignature:
		return fmt.Sprintf("%s:%s", t.ItemKind, t.Name), nil

	case interlingua.KindCodeModule:
		items := make([]string, 0, len(t.Items))
		for _, item := range t.Items {
			s, err := g.node(item)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return fmt.Sprintf("mod:%s { %s }", t.Name, strings.Join(items, "; ")), nil

	case interlingua.KindDataFlow:
		stages := make([]string, 0, len(t.Items))
		for _, stage := range t.Items {
			stages = append(stages, leafText(stage))
		}
		return strings.Join(stages, " >> "), nil

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
			return strings.Join(parts, " | "), nil
		}
		return strings.Join(parts, "; "), nil

	case interlingua.KindSection:
		var b strings.Builder
		b.WriteString(t.Heading + ":")
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
		for _, gap := range t.Gaps {
			s, err := g.node(gap)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, "\n"), nil

	case interlingua.KindWithConfidence:
		inner, err := g.node(t.Inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s [%s]", inner, formatScore(t.Confidence)), nil

	case interlingua.KindWithProvenance:
		inner, err := g.node(t.Inner)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s (%s)", inner, t.Provenance), nil

	case interlingua.KindDiscourseFrame:
		return g.node(t.Inner)

	default:
		return "", interlingua.Errorf(interlingua.LinearizationFailed, opTerseLinearize,
			"terse grammar cannot linearize %q nodes", t.Kind)
	}
}

// parseArrowNotation recognizes "subject → predicate → object" with an
// optional trailing bracketed confidence. Reports false when the input
// is not in arrow form.
func parseArrowNotation(prose string, ctx *parser.Context) (*interlingua.Tree, bool) {
	text := strings.TrimSpace(prose)
	confidence := -1.0

	if strings.HasSuffix(text, "]") {
		if open := strings.LastIndex(text, "["); open >= 0 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(text[open+1:len(text)-1]), 64); err == nil && v >= 0 && v <= 1 {
				confidence = v
				text = strings.TrimSpace(text[:open])
			}
		}
	}

	parts := splitArrows(text)
	if len(parts) != 3 {
		return nil, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, false
		}
	}

	t := interlingua.NewStatement(parts[0], parts[1], parts[2])
	if ctx != nil && ctx.Symbols != nil {
		t = interlingua.Ground(t, ctx.Symbols)
	}
	if confidence >= 0 && confidence != 1.0 {
		t = interlingua.WithConfidence(t, confidence)
	}
	return t, true
}

// splitArrows cuts on Unicode → first, then ASCII ->. Mixed notation in
// one line is not recognized.
func splitArrows(text string) []string {
	if strings.Contains(text, "→") {
		return strings.Split(text, "→")
	}
	if strings.Contains(text, "->") {
		return strings.Split(text, "->")
	}
	return nil
}
