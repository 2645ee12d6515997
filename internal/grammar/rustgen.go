package grammar

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
	"github.com/Toasterson/akh-medu-sub001/internal/parser"
)

const (
	opRustgenLinearize = "grammar.Rustgen.Linearize"
	opRustgenParse     = "grammar.Rustgen.Parse"
)

// RustgenGrammar linearizes code trees into compilable Rust source and
// parses Rust source back into code trees through a real language
// parser. It is the one style whose surface form is not natural
// language; non-code categories are rejected.
type RustgenGrammar struct{}

// NewRustgenGrammar returns the Rust code-generation style.
func NewRustgenGrammar() *RustgenGrammar {
	return &RustgenGrammar{}
}

func (g *RustgenGrammar) Name() string { return "rustgen" }

func (g *RustgenGrammar) Description() string {
	return "Rust source generation and extraction for code trees"
}

func (g *RustgenGrammar) SupportedCategories() []interlingua.Category {
	return []interlingua.Category{
		interlingua.CategoryCodeModule,
		interlingua.CategoryCodeSignature,
		interlingua.CategoryCodeFact,
		interlingua.CategoryDataFlow,
	}
}

func (g *RustgenGrammar) Linearize(t *interlingua.Tree, ctx *parser.Context) (string, error) {
	if t == nil {
		return "", interlingua.NewError(interlingua.LinearizationFailed, opRustgenLinearize, "nil tree")
	}
	node := t.Unwrap()
	switch node.Kind {
	case interlingua.KindCodeSignature, interlingua.KindCodeFact:
		return renderRustItem(node, 0)
	case interlingua.KindCodeModule:
		return renderRustModule(node, 0)
	case interlingua.KindDataFlow:
		return renderRustPipeline(node)
	default:
		return "", interlingua.Errorf(interlingua.LinearizationFailed, opRustgenLinearize,
			"rustgen only linearizes code trees, got %q", node.Kind)
	}
}

// Parse runs real Rust source through tree-sitter and lifts the
// declarations back into code trees. A single declaration comes back as
// one CodeSignature (or CodeModule for mod blocks); multiple top-level
// declarations are wrapped in a synthetic "crate" module.
func (g *RustgenGrammar) Parse(source string, expected interlingua.Category, ctx *parser.Context) (*interlingua.Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(rust.GetLanguage())

	tree, err := p.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil {
		return nil, interlingua.Wrap(interlingua.ParseFailed, opRustgenParse, "rust source", err)
	}
	defer tree.Close()

	x := &rustExtractor{content: []byte(source)}
	items := x.items(tree.RootNode())
	logging.GrammarDebug("rustgen parse: %d declarations extracted", len(items))
	if len(items) == 0 {
		return nil, interlingua.NewError(interlingua.ParseFailed, opRustgenParse,
			"no rust declarations found")
	}

	result := items[0]
	if len(items) > 1 {
		result = interlingua.NewCodeModule("crate", "", items)
	}
	return checkExpected(opRustgenParse, result, expected)
}

// ===== LINEARIZATION =====

// renderRustItem emits one declaration at the given indentation depth.
func renderRustItem(t *interlingua.Tree, depth int) (string, error) {
	ind := strings.Repeat("    ", depth)
	var b strings.Builder

	if t.Kind == interlingua.KindCodeFact {
		return renderRustFact(t, ind)
	}

	for _, line := range docLines(t.Doc) {
		b.WriteString(ind + "/// " + line + "\n")
	}
	if len(t.Derives) > 0 {
		b.WriteString(ind + "#[derive(" + strings.Join(t.Derives, ", ") + ")]\n")
	}

	switch t.ItemKind {
	case interlingua.ItemFn:
		ret := ""
		if t.Returns != "" {
			ret = " -> " + t.Returns
		}
		fmt.Fprintf(&b, "%spub fn %s(%s)%s {\n", ind, t.Name, strings.Join(t.Params, ", "), ret)
		b.WriteString(ind + "    todo!()\n")
		b.WriteString(ind + "}")

	case interlingua.ItemStruct:
		if len(t.Params) == 0 {
			fmt.Fprintf(&b, "%spub struct %s;", ind, t.Name)
			break
		}
		fmt.Fprintf(&b, "%spub struct %s {\n", ind, t.Name)
		for _, field := range t.Params {
			b.WriteString(ind + "    " + field + ",\n")
		}
		b.WriteString(ind + "}")

	case interlingua.ItemEnum:
		if len(t.Params) == 0 {
			fmt.Fprintf(&b, "%spub enum %s {}", ind, t.Name)
			break
		}
		fmt.Fprintf(&b, "%spub enum %s {\n", ind, t.Name)
		for _, variant := range t.Params {
			b.WriteString(ind + "    " + variant + ",\n")
		}
		b.WriteString(ind + "}")

	case interlingua.ItemTrait:
		if len(t.Params) == 0 {
			fmt.Fprintf(&b, "%spub trait %s {}", ind, t.Name)
			break
		}
		fmt.Fprintf(&b, "%spub trait %s {\n", ind, t.Name)
		for _, method := range t.Params {
			b.WriteString(ind + "    " + method + ";\n")
		}
		b.WriteString(ind + "}")

	case interlingua.ItemImpl:
		fmt.Fprintf(&b, "%simpl %s {}", ind, t.Name)

	case interlingua.ItemMod:
		fmt.Fprintf(&b, "%spub mod %s {}", ind, t.Name)

	case interlingua.ItemConst:
		typ := t.Returns
		if typ == "" {
			typ = "usize"
		}
		fmt.Fprintf(&b, "%spub const %s: %s = 0;", ind, t.Name, typ)

	case interlingua.ItemType:
		target := t.Returns
		if target == "" {
			target = "()"
		}
		fmt.Fprintf(&b, "%spub type %s = %s;", ind, t.Name, target)

	default:
		return "", interlingua.Errorf(interlingua.LinearizationFailed, opRustgenLinearize,
			"unknown code item kind %q", t.ItemKind)
	}

	return b.String(), nil
}

// renderRustModule emits a mod block with its items indented inside.
func renderRustModule(t *interlingua.Tree, depth int) (string, error) {
	ind := strings.Repeat("    ", depth)
	var b strings.Builder

	for _, line := range docLines(t.Doc) {
		b.WriteString(ind + "/// " + line + "\n")
	}
	if len(t.Items) == 0 {
		fmt.Fprintf(&b, "%spub mod %s {}", ind, t.Name)
		return b.String(), nil
	}

	fmt.Fprintf(&b, "%spub mod %s {\n", ind, t.Name)
	for i, item := range t.Items {
		var rendered string
		var err error
		if item.Unwrap().Kind == interlingua.KindCodeModule {
			rendered, err = renderRustModule(item.Unwrap(), depth+1)
		} else {
			rendered, err = renderRustItem(item.Unwrap(), depth+1)
		}
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rendered + "\n")
	}
	b.WriteString(ind + "}")
	return b.String(), nil
}

// renderRustFact emits a code fact as a comment line.
func renderRustFact(t *interlingua.Tree, ind string) (string, error) {
	subject := leafText(t.Subject)
	if t.Subject != nil && t.Subject.Unwrap().Kind == interlingua.KindCodeSignature {
		subject = t.Subject.Unwrap().Name
	}
	if t.Detail == nil {
		return fmt.Sprintf("%s// %s: %s", ind, subject, t.Aspect), nil
	}
	return fmt.Sprintf("%s// %s %s: %s", ind, subject, t.Aspect, leafText(t.Detail)), nil
}

// renderRustPipeline emits a data flow as a pipeline comment chain.
func renderRustPipeline(t *interlingua.Tree) (string, error) {
	if len(t.Items) == 0 {
		return "", interlingua.NewError(interlingua.LinearizationFailed, opRustgenLinearize,
			"data flow has no stages")
	}
	stages := make([]string, 0, len(t.Items))
	for _, stage := range t.Items {
		stages = append(stages, leafText(stage))
	}
	return "// pipeline: " + strings.Join(stages, " -> "), nil
}

func docLines(doc string) []string {
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}

// ===== EXTRACTION =====

// rustExtractor walks a tree-sitter AST and lifts declarations into
// code trees. Doc comments and derive attributes accumulate until the
// next declaration consumes them.
type rustExtractor struct {
	content []byte
}

func (x *rustExtractor) text(n *sitter.Node) string {
	return string(x.content[n.StartByte():n.EndByte()])
}

func (x *rustExtractor) items(node *sitter.Node) []*interlingua.Tree {
	var items []*interlingua.Tree
	var pendingDoc []string
	var pendingDerives []string

	take := func() (string, []string) {
		doc := strings.Join(pendingDoc, "\n")
		derives := pendingDerives
		pendingDoc, pendingDerives = nil, nil
		return doc, derives
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		switch child.Type() {
		case "line_comment":
			text := x.text(child)
			if strings.HasPrefix(text, "///") {
				pendingDoc = append(pendingDoc, strings.TrimSpace(strings.TrimPrefix(text, "///")))
			}

		case "attribute_item":
			pendingDerives = append(pendingDerives, parseDerives(x.text(child))...)

		case "function_item":
			doc, _ := take()
			if sig := x.functionItem(child, doc); sig != nil {
				items = append(items, sig)
			}

		case "struct_item":
			doc, derives := take()
			if sig := x.structItem(child, doc, derives); sig != nil {
				items = append(items, sig)
			}

		case "enum_item":
			doc, derives := take()
			if sig := x.enumItem(child, doc, derives); sig != nil {
				items = append(items, sig)
			}

		case "trait_item":
			doc, _ := take()
			if sig := x.traitItem(child, doc); sig != nil {
				items = append(items, sig)
			}

		case "impl_item":
			take()
			if sig := x.implItem(child); sig != nil {
				items = append(items, sig)
			}

		case "mod_item":
			doc, _ := take()
			if mod := x.modItem(child, doc); mod != nil {
				items = append(items, mod)
			}

		case "const_item", "static_item":
			doc, _ := take()
			if sig := x.namedItem(child, interlingua.ItemConst, doc); sig != nil {
				items = append(items, sig)
			}

		case "type_item":
			doc, _ := take()
			if sig := x.namedItem(child, interlingua.ItemType, doc); sig != nil {
				items = append(items, sig)
			}

		default:
			take()
		}
	}
	return items
}

func (x *rustExtractor) functionItem(node *sitter.Node, doc string) *interlingua.Tree {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	sig := interlingua.NewCodeSignature(interlingua.ItemFn, x.text(nameNode))
	sig.Doc = doc

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			p := params.NamedChild(i)
			if p.Type() == "parameter" || p.Type() == "self_parameter" {
				sig.Params = append(sig.Params, x.text(p))
			}
		}
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		sig.Returns = x.text(ret)
	}
	return sig
}

func (x *rustExtractor) structItem(node *sitter.Node, doc string, derives []string) *interlingua.Tree {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	sig := interlingua.NewCodeSignature(interlingua.ItemStruct, x.text(nameNode))
	sig.Doc = doc
	sig.Derives = derives

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			field := body.NamedChild(i)
			if field.Type() == "field_declaration" {
				sig.Params = append(sig.Params, strings.TrimPrefix(x.text(field), "pub "))
			}
		}
	}
	return sig
}

func (x *rustExtractor) enumItem(node *sitter.Node, doc string, derives []string) *interlingua.Tree {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	sig := interlingua.NewCodeSignature(interlingua.ItemEnum, x.text(nameNode))
	sig.Doc = doc
	sig.Derives = derives

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			variant := body.NamedChild(i)
			if variant.Type() != "enum_variant" {
				continue
			}
			if name := variant.ChildByFieldName("name"); name != nil {
				sig.Params = append(sig.Params, x.text(name))
			}
		}
	}
	return sig
}

func (x *rustExtractor) traitItem(node *sitter.Node, doc string) *interlingua.Tree {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	sig := interlingua.NewCodeSignature(interlingua.ItemTrait, x.text(nameNode))
	sig.Doc = doc

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			member := body.NamedChild(i)
			switch member.Type() {
			case "function_signature_item":
				sig.Params = append(sig.Params, strings.TrimSuffix(strings.TrimSpace(x.text(member)), ";"))
			case "function_item":
				// Default method: keep the signature up to its body.
				text := x.text(member)
				if brace := strings.Index(text, "{"); brace > 0 {
					sig.Params = append(sig.Params, strings.TrimSpace(text[:brace]))
				}
			}
		}
	}
	return sig
}

func (x *rustExtractor) implItem(node *sitter.Node) *interlingua.Tree {
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}
	name := x.text(typeNode)
	if idx := strings.Index(name, "<"); idx > 0 {
		name = name[:idx]
	}
	return interlingua.NewCodeSignature(interlingua.ItemImpl, name)
}

func (x *rustExtractor) modItem(node *sitter.Node, doc string) *interlingua.Tree {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	var inner []*interlingua.Tree
	if body := node.ChildByFieldName("body"); body != nil {
		inner = x.items(body)
	}
	return interlingua.NewCodeModule(x.text(nameNode), doc, inner)
}

func (x *rustExtractor) namedItem(node *sitter.Node, kind interlingua.CodeItemKind, doc string) *interlingua.Tree {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	sig := interlingua.NewCodeSignature(kind, x.text(nameNode))
	sig.Doc = doc
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		sig.Returns = x.text(typeNode)
	}
	return sig
}

// parseDerives extracts macro names from "#[derive(A, B)]" attributes.
func parseDerives(attr string) []string {
	start := strings.Index(attr, "derive(")
	if start < 0 {
		return nil
	}
	rest := attr[start+len("derive("):]
	end := strings.Index(rest, ")")
	if end < 0 {
		return nil
	}
	var derives []string
	for _, part := range strings.Split(rest[:end], ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			derives = append(derives, trimmed)
		}
	}
	return derives
}
