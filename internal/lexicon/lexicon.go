// Package lexicon holds the static language tables the parser and
// discourse layers consult: void words, relational surface patterns,
// question words, auxiliaries, goal verbs, and command names for the
// five supported languages. Tables are built once at init and are
// immutable afterwards, so lookups need no locking.
package lexicon

import (
	"sort"
	"strings"
)

// Language is a supported language code.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
	Russian Language = "ru"
)

// All returns the supported languages in a fixed order.
func All() []Language {
	return []Language{English, Spanish, French, German, Russian}
}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Spanish:
		return Spanish, true
	case French:
		return French, true
	case German:
		return German, true
	case Russian:
		return Russian, true
	}
	return "", false
}

// QuestionKind classifies the interrogative that opened a question.
type QuestionKind int

const (
	QuestionNone QuestionKind = iota
	QuestionWho
	QuestionWhat
	QuestionHow
	QuestionWhy
	QuestionWhere
	QuestionWhen
	QuestionWhich
	QuestionYesNo
)

func (k QuestionKind) String() string {
	switch k {
	case QuestionWho:
		return "who"
	case QuestionWhat:
		return "what"
	case QuestionHow:
		return "how"
	case QuestionWhy:
		return "why"
	case QuestionWhere:
		return "where"
	case QuestionWhen:
		return "when"
	case QuestionWhich:
		return "which"
	case QuestionYesNo:
		return "yes-no"
	default:
		return "none"
	}
}

// Pattern is a relational surface form: the literal token sequence
// that signals a canonical predicate, with the base confidence the
// parser starts from when the pattern matches.
type Pattern struct {
	Words      []string
	Predicate  string
	Confidence float64
}

// Lexicon bundles all tables for one language.
type Lexicon struct {
	Language Language

	voidWords        map[string]bool
	articles         map[string]bool
	auxiliaries      map[string]bool
	trailingAux      map[string]bool
	capabilityModals map[string]bool
	questionWords    map[string]QuestionKind
	questionPhrases  map[string]QuestionKind // two-token interrogatives, space-joined
	conjunctions     map[string]bool         // "and" words that split compounds
	disjunctions     map[string]bool         // "or" words that split compounds
	commands         map[string]CommandKind
	goalVerbs        map[string]bool
	goalConnectors   map[string]bool

	patterns []Pattern // sorted longest-first
}

var lexicons = map[Language]*Lexicon{}

func init() {
	register(buildEnglish())
	register(buildSpanish())
	register(buildFrench())
	register(buildGerman())
	register(buildRussian())
}

func register(l *Lexicon) {
	// Longest patterns first so "is part of" wins over "is".
	// Stable sort keeps the literal declaration order within a length.
	sort.SliceStable(l.patterns, func(i, j int) bool {
		return len(l.patterns[i].Words) > len(l.patterns[j].Words)
	})
	lexicons[l.Language] = l
}

// ForLanguage returns the lexicon for a language. English is the
// fallback for unknown codes.
func ForLanguage(lang Language) *Lexicon {
	if l, ok := lexicons[lang]; ok {
		return l
	}
	return lexicons[English]
}

// IsVoid reports whether a lowercased token carries no content.
func (l *Lexicon) IsVoid(word string) bool { return l.voidWords[word] }

// IsArticle reports whether a lowercased token is an article.
func (l *Lexicon) IsArticle(word string) bool { return l.articles[word] }

// IsAuxiliary reports whether a lowercased token is an auxiliary verb.
func (l *Lexicon) IsAuxiliary(word string) bool { return l.auxiliaries[word] }

// IsTrailingAuxiliary reports whether a token may be stripped from the
// end of a question ("what can you do" -> "you").
func (l *Lexicon) IsTrailingAuxiliary(word string) bool { return l.trailingAux[word] }

// IsCapabilityModal reports whether a token asks about ability.
func (l *Lexicon) IsCapabilityModal(word string) bool { return l.capabilityModals[word] }

// IsConjunction reports whether a token joins clauses additively.
func (l *Lexicon) IsConjunction(word string) bool { return l.conjunctions[word] }

// IsDisjunction reports whether a token joins clauses alternatively.
func (l *Lexicon) IsDisjunction(word string) bool { return l.disjunctions[word] }

// QuestionWordKind classifies a single lowercased token.
func (l *Lexicon) QuestionWordKind(word string) (QuestionKind, bool) {
	k, ok := l.questionWords[word]
	return k, ok
}

// Patterns returns the relational patterns, longest-first.
// The returned slice is shared; callers must not mutate it.
func (l *Lexicon) Patterns() []Pattern { return l.patterns }
