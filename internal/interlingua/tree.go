package interlingua

import (
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
)

// Tree is one node of a semantic tree. Kind selects which field group is
// meaningful; unused fields stay zero so trees serialize compactly.
//
// Leaves (Entity, Relation, Freeform) carry a Label and an optional
// Symbol once grounded. Composites reference child trees. Modifier nodes
// (WithConfidence, WithProvenance, DiscourseFrame) wrap exactly one Inner
// child and are transparent to category checks.
type Tree struct {
	Kind NodeKind `json:"kind"`

	// Leaves. Label is the surface form for entities, the canonical
	// predicate for relations, and the raw text for freeform nodes.
	// Symbol is zero until the node is grounded.
	Label  string             `json:"label,omitempty"`
	Symbol knowledge.SymbolID `json:"symbol,omitempty"`

	// Triple.
	Subject   *Tree `json:"subject,omitempty"`
	Predicate *Tree `json:"predicate,omitempty"`
	Object    *Tree `json:"object,omitempty"`

	// Similarity.
	Entity *Tree   `json:"entity,omitempty"`
	Other  *Tree   `json:"other,omitempty"`
	Score  float64 `json:"score,omitempty"`

	// Gap.
	Topic    *Tree  `json:"topic,omitempty"`
	Question string `json:"question,omitempty"`

	// Inference.
	Premises   []*Tree `json:"premises,omitempty"`
	Conclusion *Tree   `json:"conclusion,omitempty"`

	// Code nodes. Name/Doc are shared by signatures and modules; the
	// remaining fields describe one signature. Aspect/Detail belong to
	// code facts about Subject.
	Name     string       `json:"name,omitempty"`
	ItemKind CodeItemKind `json:"item_kind,omitempty"`
	Doc      string       `json:"doc,omitempty"`
	Params   []string     `json:"params,omitempty"`
	Returns  string       `json:"returns,omitempty"`
	Derives  []string     `json:"derives,omitempty"`
	Aspect   string       `json:"aspect,omitempty"`
	Detail   *Tree        `json:"detail,omitempty"`

	// Structural nodes. Items holds conjunction members, data flow
	// stages, section children, module items, and document sections.
	Items       []*Tree `json:"items,omitempty"`
	Disjunctive bool    `json:"disjunctive,omitempty"`
	Heading     string  `json:"heading,omitempty"`
	Overview    *Tree   `json:"overview,omitempty"`
	Gaps        []*Tree `json:"gaps,omitempty"`

	// Modifiers.
	Inner       *Tree       `json:"inner,omitempty"`
	Confidence  float64     `json:"confidence,omitempty"`
	Provenance  string      `json:"provenance,omitempty"`
	PointOfView PointOfView `json:"pov,omitempty"`
	Focus       Focus       `json:"focus,omitempty"`
}

// ===== CONSTRUCTORS =====

// NewEntity builds an ungrounded entity leaf.
func NewEntity(label string) *Tree {
	return &Tree{Kind: KindEntity, Label: label}
}

// NewGroundedEntity builds an entity leaf already bound to a symbol.
func NewGroundedEntity(label string, sym knowledge.SymbolID) *Tree {
	return &Tree{Kind: KindEntity, Label: label, Symbol: sym}
}

// NewRelation builds a relation leaf from a canonical predicate label.
func NewRelation(predicate string) *Tree {
	return &Tree{Kind: KindRelation, Label: predicate}
}

// NewFreeform wraps text that could not be parsed into structure.
func NewFreeform(text string) *Tree {
	return &Tree{Kind: KindFreeform, Label: text}
}

// NewTriple builds a subject-predicate-object statement.
func NewTriple(subject, predicate, object *Tree) *Tree {
	return &Tree{Kind: KindTriple, Subject: subject, Predicate: predicate, Object: object}
}

// NewStatement is shorthand for a triple over fresh leaves.
func NewStatement(subject, predicate, object string) *Tree {
	return NewTriple(NewEntity(subject), NewRelation(predicate), NewEntity(object))
}

// NewSimilarity asserts that entity resembles other with the given score.
func NewSimilarity(entity, other *Tree, score float64) *Tree {
	return &Tree{Kind: KindSimilarity, Entity: entity, Other: other, Score: score}
}

// NewGap records an open question about a topic.
func NewGap(topic *Tree, question string) *Tree {
	return &Tree{Kind: KindGap, Topic: topic, Question: question}
}

// NewInference links premises to a conclusion.
func NewInference(premises []*Tree, conclusion *Tree) *Tree {
	return &Tree{Kind: KindInference, Premises: premises, Conclusion: conclusion}
}

// NewCodeFact states one aspect of a code subject.
func NewCodeFact(subject *Tree, aspect string, detail *Tree) *Tree {
	return &Tree{Kind: KindCodeFact, Subject: subject, Aspect: aspect, Detail: detail}
}

// NewCodeSignature describes a single code declaration.
func NewCodeSignature(kind CodeItemKind, name string) *Tree {
	return &Tree{Kind: KindCodeSignature, ItemKind: kind, Name: name}
}

// NewCodeModule groups signatures under a module name.
func NewCodeModule(name, doc string, items []*Tree) *Tree {
	return &Tree{Kind: KindCodeModule, Name: name, Doc: doc, Items: items}
}

// NewDataFlow orders stages through which data moves.
func NewDataFlow(stages []*Tree) *Tree {
	return &Tree{Kind: KindDataFlow, Items: stages}
}

// NewConjunction groups statements; disjunctive marks an or-group.
func NewConjunction(items []*Tree, disjunctive bool) *Tree {
	return &Tree{Kind: KindConjunction, Items: items, Disjunctive: disjunctive}
}

// NewSection groups children under a heading.
func NewSection(heading string, items []*Tree) *Tree {
	return &Tree{Kind: KindSection, Heading: heading, Items: items}
}

// NewDocument assembles an overview, ordered sections, and open gaps.
func NewDocument(overview *Tree, sections, gaps []*Tree) *Tree {
	return &Tree{Kind: KindDocument, Overview: overview, Items: sections, Gaps: gaps}
}

// WithConfidence wraps inner with a confidence annotation.
func WithConfidence(inner *Tree, confidence float64) *Tree {
	return &Tree{Kind: KindWithConfidence, Inner: inner, Confidence: confidence}
}

// WithProvenance wraps inner with a source tag.
func WithProvenance(inner *Tree, source string) *Tree {
	return &Tree{Kind: KindWithProvenance, Inner: inner, Provenance: source}
}

// NewDiscourseFrame wraps an answer with its conversational stance.
func NewDiscourseFrame(inner *Tree, pov PointOfView, focus Focus) *Tree {
	return &Tree{Kind: KindDiscourseFrame, Inner: inner, PointOfView: pov, Focus: focus}
}

// ===== INSPECTION =====

var kindCategories = map[NodeKind]Category{
	KindEntity:         CategoryEntity,
	KindRelation:       CategoryRelation,
	KindFreeform:       CategoryFreeform,
	KindTriple:         CategoryStatement,
	KindSimilarity:     CategorySimilarity,
	KindGap:            CategoryGap,
	KindInference:      CategoryInference,
	KindCodeFact:       CategoryCodeFact,
	KindCodeModule:     CategoryCodeModule,
	KindCodeSignature:  CategoryCodeSignature,
	KindDataFlow:       CategoryDataFlow,
	KindConjunction:    CategoryConjunction,
	KindSection:        CategorySection,
	KindDocument:       CategoryDocument,
	KindWithConfidence: CategoryConfidence,
	KindWithProvenance: CategoryProvenance,
	KindDiscourseFrame: CategoryDiscourseFrame,
}

// Category reports the node's own category.
func (t *Tree) Category() Category {
	if c, ok := kindCategories[t.Kind]; ok {
		return c
	}
	return CategoryAny
}

// IsModifier reports whether the node is a transparent wrapper.
func (t *Tree) IsModifier() bool {
	switch t.Kind {
	case KindWithConfidence, KindWithProvenance, KindDiscourseFrame:
		return true
	}
	return false
}

// Unwrap peels modifier wrappers and returns the first structural node.
func (t *Tree) Unwrap() *Tree {
	n := t
	for n != nil && n.IsModifier() {
		n = n.Inner
	}
	return n
}

// StructuralCategory is the category after unwrapping modifiers, which is
// what argument type checks and grammar routing operate on.
func (t *Tree) StructuralCategory() Category {
	n := t.Unwrap()
	if n == nil {
		return CategoryAny
	}
	return n.Category()
}

// EffectiveConfidence walks modifier wrappers and returns the innermost
// confidence annotation, defaulting to 1.
func (t *Tree) EffectiveConfidence() float64 {
	conf := 1.0
	for n := t; n != nil && n.IsModifier(); n = n.Inner {
		if n.Kind == KindWithConfidence {
			conf = n.Confidence
		}
	}
	return conf
}

// Children returns every direct child in deterministic order. Useful for
// generic walks; kind-specific code should touch fields directly.
func (t *Tree) Children() []*Tree {
	var out []*Tree
	add := func(n *Tree) {
		if n != nil {
			out = append(out, n)
		}
	}
	add(t.Subject)
	add(t.Predicate)
	add(t.Object)
	add(t.Entity)
	add(t.Other)
	add(t.Topic)
	for _, p := range t.Premises {
		add(p)
	}
	add(t.Conclusion)
	add(t.Detail)
	add(t.Overview)
	for _, it := range t.Items {
		add(it)
	}
	for _, g := range t.Gaps {
		add(g)
	}
	add(t.Inner)
	return out
}

// Clone deep-copies the tree. Slices are copied so mutations of the clone
// never reach the original.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	dup := *t
	dup.Subject = t.Subject.Clone()
	dup.Predicate = t.Predicate.Clone()
	dup.Object = t.Object.Clone()
	dup.Entity = t.Entity.Clone()
	dup.Other = t.Other.Clone()
	dup.Topic = t.Topic.Clone()
	dup.Conclusion = t.Conclusion.Clone()
	dup.Detail = t.Detail.Clone()
	dup.Overview = t.Overview.Clone()
	dup.Inner = t.Inner.Clone()
	dup.Premises = cloneSlice(t.Premises)
	dup.Items = cloneSlice(t.Items)
	dup.Gaps = cloneSlice(t.Gaps)
	if t.Params != nil {
		dup.Params = append([]string(nil), t.Params...)
	}
	if t.Derives != nil {
		dup.Derives = append([]string(nil), t.Derives...)
	}
	return &dup
}

func cloneSlice(in []*Tree) []*Tree {
	if in == nil {
		return nil
	}
	out := make([]*Tree, len(in))
	for i, n := range in {
		out[i] = n.Clone()
	}
	return out
}
