package preprocess

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Toasterson/akh-medu-sub001/internal/entity"
	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/lexicon"
)

// Tracking-number bounds. Carrier numbers run 12 to 22 digits; the
// exact bounds are tuned values, kept as constants rather than
// re-derived.
const (
	TrackingMinDigits = 12
	TrackingMaxDigits = 22
)

const (
	capitalizedConfidence = 0.8
	trackingConfidence    = 0.95
)

const edgePunct = ".,;:!?¿¡\"'()[]{}«»“”‘’…"

// extractEntities finds capitalized runs and tracking numbers, then
// canonicalizes and merges them through the entity resolver. A lone
// capitalized void word is a sentence opener, not an entity.
func (p *Processor) extractEntities(text string, lex *lexicon.Lexicon) []entity.Extracted {
	var raw []entity.Extracted
	var run []string

	flush := func() {
		if len(run) == 0 {
			return
		}
		if len(run) > 1 || !lex.IsVoid(strings.ToLower(run[0])) {
			raw = append(raw, entity.Extracted{
				Name:       strings.Join(run, " "),
				Confidence: capitalizedConfidence,
			})
		}
		run = run[:0]
	}

	for _, field := range strings.Fields(text) {
		word := strings.Trim(field, edgePunct)
		if word == "" {
			flush()
			continue
		}

		if isTrackingNumber(word) {
			flush()
			raw = append(raw, entity.Extracted{Name: word, Confidence: trackingConfidence})
			continue
		}

		first, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(first) {
			flush()
			continue
		}
		run = append(run, word)
		// Clause punctuation after the word ends the run.
		if rest := field[strings.Index(field, word)+len(word):]; strings.ContainsAny(rest, edgePunct) {
			flush()
		}
	}
	flush()

	return p.resolver.ResolveEntities(raw)
}

func isTrackingNumber(word string) bool {
	if len(word) < TrackingMinDigits || len(word) > TrackingMaxDigits {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// appendClaims flattens a fact tree into claims, one per triple.
// Conjunction members are recursed; anything else is left alone.
func (p *Processor) appendClaims(claims []Claim, tree *interlingua.Tree) []Claim {
	confidence := tree.EffectiveConfidence()
	node := tree.Unwrap()
	switch node.Kind {
	case interlingua.KindConjunction:
		for _, item := range node.Items {
			claims = p.appendClaims(claims, item)
		}
	case interlingua.KindTriple:
		predicate := node.Predicate.Unwrap().Label
		claims = append(claims, Claim{
			Subject:    p.canonical(node.Subject.Unwrap().Label),
			Predicate:  predicate,
			Object:     p.canonical(node.Object.Unwrap().Label),
			Type:       classifyClaim(predicate),
			Confidence: confidence,
		})
	}
	return claims
}

func (p *Processor) canonical(label string) string {
	resolved, _ := p.resolver.Resolve(label)
	return resolved
}

// classifyClaim maps a canonical predicate to its claim type.
func classifyClaim(predicate string) ClaimType {
	switch predicate {
	case "is-a", "means":
		return ClaimDefinition
	case "can-do":
		return ClaimCapability
	case "located-in", "lives-in":
		return ClaimLocation
	case "works-at", "part-of", "belongs-to", "has":
		return ClaimAttribution
	case "causes":
		return ClaimCausal
	default:
		return ClaimAssertion
	}
}

// splitSentences cuts text at clause-final punctuation. The terminator
// stays attached so question detection still sees its mark.
func splitSentences(text string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}
	for _, r := range text {
		b.WriteRune(r)
		switch r {
		case '.', '!', '?', ';', '\n':
			flush()
		}
	}
	flush()
	return out
}

// lowerTokens is the light tokenization language detection runs on.
func lowerTokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, edgePunct)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
