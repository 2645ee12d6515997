// Package interlingua defines the language-neutral semantic tree that
// sits between prose and the knowledge graph, the category system that
// types its nodes, the typed error taxonomy shared by every layer, and
// the hypervector encoding that grounds trees in item memory.
package interlingua

// Category is the semantic type of a tree node. Grammars declare which
// categories they can linearize; validation checks argument categories.
type Category int

const (
	CategoryAny Category = iota // wildcard for grammar contracts
	CategoryEntity
	CategoryRelation
	CategoryStatement
	CategorySimilarity
	CategoryGap
	CategoryInference
	CategoryCodeFact
	CategoryCodeModule
	CategoryCodeSignature
	CategoryDataFlow
	CategoryConjunction
	CategorySection
	CategoryDocument
	CategoryConfidence
	CategoryProvenance
	CategoryFreeform
	CategoryDiscourseFrame
)

var categoryNames = map[Category]string{
	CategoryAny:            "any",
	CategoryEntity:         "entity",
	CategoryRelation:       "relation",
	CategoryStatement:      "statement",
	CategorySimilarity:     "similarity",
	CategoryGap:            "gap",
	CategoryInference:      "inference",
	CategoryCodeFact:       "code-fact",
	CategoryCodeModule:     "code-module",
	CategoryCodeSignature:  "code-signature",
	CategoryDataFlow:       "data-flow",
	CategoryConjunction:    "conjunction",
	CategorySection:        "section",
	CategoryDocument:       "document",
	CategoryConfidence:     "confidence",
	CategoryProvenance:     "provenance",
	CategoryFreeform:       "freeform",
	CategoryDiscourseFrame: "discourse-frame",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// NodeKind discriminates the concrete node variants.
type NodeKind string

const (
	KindEntity   NodeKind = "entity"
	KindRelation NodeKind = "relation"
	KindFreeform NodeKind = "freeform"

	KindTriple        NodeKind = "triple"
	KindSimilarity    NodeKind = "similarity"
	KindGap           NodeKind = "gap"
	KindInference     NodeKind = "inference"
	KindCodeFact      NodeKind = "code-fact"
	KindCodeModule    NodeKind = "code-module"
	KindCodeSignature NodeKind = "code-signature"
	KindDataFlow      NodeKind = "data-flow"

	KindConjunction NodeKind = "conjunction"
	KindSection     NodeKind = "section"
	KindDocument    NodeKind = "document"

	KindWithConfidence NodeKind = "with-confidence"
	KindWithProvenance NodeKind = "with-provenance"
	KindDiscourseFrame NodeKind = "discourse-frame"
)

// CodeItemKind names a code declaration variant in code trees.
type CodeItemKind string

const (
	ItemFn     CodeItemKind = "fn"
	ItemStruct CodeItemKind = "struct"
	ItemEnum   CodeItemKind = "enum"
	ItemTrait  CodeItemKind = "trait"
	ItemImpl   CodeItemKind = "impl"
	ItemMod    CodeItemKind = "mod"
	ItemConst  CodeItemKind = "const"
	ItemType   CodeItemKind = "type"
)

// PointOfView records whose perspective a discourse answer takes.
type PointOfView int

const (
	ThirdPerson PointOfView = iota
	FirstPerson             // the question is about the system itself
	SecondPerson            // the question is about the asker's addressee
)

func (p PointOfView) String() string {
	switch p {
	case FirstPerson:
		return "first-person"
	case SecondPerson:
		return "second-person"
	default:
		return "third-person"
	}
}

// Focus is the aspect a question is asking about, derived from its
// interrogative.
type Focus int

const (
	FocusGeneral Focus = iota
	FocusIdentity
	FocusMethod
	FocusCause
	FocusLocation
	FocusTime
	FocusDefinition
	FocusConfirmation
	FocusCapability
)

func (f Focus) String() string {
	switch f {
	case FocusIdentity:
		return "identity"
	case FocusMethod:
		return "method"
	case FocusCause:
		return "cause"
	case FocusLocation:
		return "location"
	case FocusTime:
		return "time"
	case FocusDefinition:
		return "definition"
	case FocusConfirmation:
		return "confirmation"
	case FocusCapability:
		return "capability"
	default:
		return "general"
	}
}
