package grammar

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
	"github.com/Toasterson/akh-medu-sub001/internal/parser"
)

const (
	opLoadCustom      = "grammar.LoadCustomGrammar"
	opCustomLinearize = "grammar.Custom.Linearize"
)

// CustomGrammar is a user-defined rendering style loaded from a small
// TOML subset. A [grammar] section names the style; a [linearization]
// section maps node-kind names to template strings with {field}
// placeholders. Kinds without a template fall back to a fixed default
// phrasing.
//
// Recognized placeholders: {subject} {predicate} {object} {label}
// {text} {confidence} {entity} {other} {score} {heading}.
type CustomGrammar struct {
	name        string
	description string
	templates   map[string]string
}

// defaultTemplates back any node kind the grammar file leaves out.
var defaultTemplates = map[string]string{
	string(interlingua.KindEntity):         "{label}",
	string(interlingua.KindRelation):       "{label}",
	string(interlingua.KindFreeform):       "{label}",
	string(interlingua.KindTriple):         "{subject} {predicate} {object}.",
	string(interlingua.KindSimilarity):     "{entity} is similar to {other} ({score}).",
	string(interlingua.KindGap):            "Open question about {entity}: {text}",
	string(interlingua.KindInference):      "{text}",
	string(interlingua.KindCodeFact):       "{subject}: {text}",
	string(interlingua.KindCodeSignature):  "{label}",
	string(interlingua.KindCodeModule):     "{label}: {text}",
	string(interlingua.KindDataFlow):       "{text}",
	string(interlingua.KindConjunction):    "{text}",
	string(interlingua.KindSection):        "{heading}: {text}",
	string(interlingua.KindDocument):       "{text}",
	string(interlingua.KindWithConfidence): "{text} [{confidence}]",
	string(interlingua.KindWithProvenance): "{text} ({label})",
	string(interlingua.KindDiscourseFrame): "{text}",
}

// LoadCustomGrammar reads a grammar definition file.
func LoadCustomGrammar(path string) (*CustomGrammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, interlingua.Wrap(interlingua.InvalidCustomGrammar, opLoadCustom,
			fmt.Sprintf("reading %s", path), err)
	}
	g, err := ParseCustomGrammar(string(data))
	if err != nil {
		return nil, err
	}
	logging.Grammar("loaded custom grammar %q from %s", g.name, path)
	return g, nil
}

// ParseCustomGrammar parses a grammar definition from source text.
// The [grammar] section must provide a non-empty name. Unknown sections
// and keys are tolerated; malformed lines are not.
func ParseCustomGrammar(src string) (*CustomGrammar, error) {
	g := &CustomGrammar{templates: make(map[string]string)}
	section := ""
	lineNo := 0

	scanner := bufio.NewScanner(strings.NewReader(src))
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") || len(line) < 3 {
				return nil, interlingua.Errorf(interlingua.InvalidCustomGrammar, opLoadCustom,
					"line %d: unterminated section header %q", lineNo, line)
			}
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			return nil, interlingua.Errorf(interlingua.InvalidCustomGrammar, opLoadCustom,
				"line %d: expected key = value, got %q", lineNo, line)
		}
		key := strings.TrimSpace(line[:eq])
		if key == "" {
			return nil, interlingua.Errorf(interlingua.InvalidCustomGrammar, opLoadCustom,
				"line %d: empty key", lineNo)
		}
		value, err := unquoteValue(strings.TrimSpace(line[eq+1:]))
		if err != nil {
			return nil, interlingua.Errorf(interlingua.InvalidCustomGrammar, opLoadCustom,
				"line %d: %v", lineNo, err)
		}

		switch section {
		case "grammar":
			switch key {
			case "name":
				g.name = value
			case "description":
				g.description = value
			}
		case "linearization":
			g.templates[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, interlingua.Wrap(interlingua.InvalidCustomGrammar, opLoadCustom, "scanning source", err)
	}

	if g.name == "" {
		return nil, interlingua.NewError(interlingua.InvalidCustomGrammar, opLoadCustom,
			"grammar name is required ([grammar] section, name key)")
	}
	return g, nil
}

// unquoteValue strips one level of double quotes, honoring escapes.
// Bare values pass through unchanged.
func unquoteValue(v string) (string, error) {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		unquoted, err := strconv.Unquote(v)
		if err != nil {
			return "", fmt.Errorf("bad quoted value %s: %w", v, err)
		}
		return unquoted, nil
	}
	return v, nil
}

func (g *CustomGrammar) Name() string { return g.name }

func (g *CustomGrammar) Description() string {
	if g.description == "" {
		return "User-defined grammar"
	}
	return g.description
}

func (g *CustomGrammar) SupportedCategories() []interlingua.Category {
	return allCategories()
}

func (g *CustomGrammar) Linearize(t *interlingua.Tree, ctx *parser.Context) (string, error) {
	if t == nil {
		return "", interlingua.NewError(interlingua.LinearizationFailed, opCustomLinearize, "nil tree")
	}
	return g.node(t)
}

func (g *CustomGrammar) Parse(prose string, expected interlingua.Category, ctx *parser.Context) (*interlingua.Tree, error) {
	return universalParse("grammar.Custom.Parse", prose, expected, ctx)
}

// node renders one tree node through its template. Child text is
// computed first, then substituted into the placeholders.
func (g *CustomGrammar) node(t *interlingua.Tree) (string, error) {
	fields := map[string]string{}

	switch t.Kind {
	case interlingua.KindEntity, interlingua.KindRelation, interlingua.KindFreeform:
		fields["label"] = t.Label
		fields["text"] = t.Label

	case interlingua.KindTriple:
		fields["subject"] = leafText(t.Subject)
		fields["predicate"] = leafText(t.Predicate)
		fields["object"] = leafText(t.Object)

	case interlingua.KindSimilarity:
		fields["entity"] = leafText(t.Entity)
		fields["other"] = leafText(t.Other)
		fields["score"] = formatScore(t.Score)

	case interlingua.KindGap:
		fields["entity"] = leafText(t.Topic)
		fields["label"] = leafText(t.Topic)
		fields["text"] = t.Question

	case interlingua.KindInference:
		parts := make([]string, 0, len(t.Premises)+1)
		for _, p := range t.Premises {
			s, err := g.node(p)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		conclusion, err := g.node(t.Conclusion)
		if err != nil {
			return "", err
		}
		fields["text"] = strings.Join(parts, " ") + " Therefore: " + conclusion

	case interlingua.KindCodeFact:
		subject := leafText(t.Subject)
		if t.Subject != nil && t.Subject.Unwrap().Kind == interlingua.KindCodeSignature {
			subject = t.Subject.Unwrap().Name
		}
		fields["subject"] = subject
		detail := t.Aspect
		if t.Detail != nil {
			detail += " " + leafText(t.Detail)
		}
		fields["text"] = detail

	case interlingua.KindCodeSignature:
		fields["label"] = fmt.Sprintf("%s %s", t.ItemKind, t.Name)
		fields["text"] = t.Doc

	case interlingua.KindCodeModule:
		fields["label"] = t.Name
		joined, err := g.joinItems(t.Items, " ")
		if err != nil {
			return "", err
		}
		fields["text"] = joined

	case interlingua.KindDataFlow:
		stages := make([]string, 0, len(t.Items))
		for _, stage := range t.Items {
			stages = append(stages, leafText(stage))
		}
		fields["text"] = strings.Join(stages, " -> ")

	case interlingua.KindConjunction:
		joined, err := g.joinItems(t.Items, " ")
		if err != nil {
			return "", err
		}
		fields["text"] = joined

	case interlingua.KindSection:
		fields["heading"] = t.Heading
		joined, err := g.joinItems(t.Items, " ")
		if err != nil {
			return "", err
		}
		fields["text"] = joined

	case interlingua.KindDocument:
		var parts []string
		if t.Overview != nil {
			s, err := g.node(t.Overview)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		for _, child := range t.Items {
			s, err := g.node(child)
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
		fields["text"] = strings.Join(parts, "\n")

	case interlingua.KindWithConfidence:
		inner, err := g.node(t.Inner)
		if err != nil {
			return "", err
		}
		fields["text"] = inner
		fields["confidence"] = formatScore(t.Confidence)

	case interlingua.KindWithProvenance:
		inner, err := g.node(t.Inner)
		if err != nil {
			return "", err
		}
		fields["text"] = inner
		fields["label"] = t.Provenance

	case interlingua.KindDiscourseFrame:
		return g.node(t.Inner)

	default:
		return "", interlingua.Errorf(interlingua.LinearizationFailed, opCustomLinearize,
			"custom grammar %q cannot linearize %q nodes", g.name, t.Kind)
	}

	fields["confidence"] = orDefault(fields["confidence"], formatScore(t.EffectiveConfidence()))
	return expandTemplate(g.template(t.Kind), fields), nil
}

// template picks the user template for a kind, or the built-in default.
func (g *CustomGrammar) template(kind interlingua.NodeKind) string {
	if tmpl, ok := g.templates[string(kind)]; ok {
		return tmpl
	}
	return defaultTemplates[string(kind)]
}

func (g *CustomGrammar) joinItems(items []*interlingua.Tree, sep string) (string, error) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		s, err := g.node(item)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}

// expandTemplate substitutes {field} placeholders. Unknown placeholders
// are left in place so template mistakes stay visible in output.
func expandTemplate(tmpl string, fields map[string]string) string {
	out := tmpl
	for key, value := range fields {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
