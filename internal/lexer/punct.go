package lexer

import "unicode/utf8"

// strippable holds the punctuation cut from token edges: ASCII, the
// Arabic marks, fullwidth CJK, Spanish inverted marks, and smart
// quotes.
var strippable = make(map[rune]bool)

func init() {
	const marks = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
		"؟،؛" + // ؟ ، ؛
		"。、，！？：；「」『』" + // 。、，！？：；「」『』
		"¡¿" + // ¡ ¿
		"“”‘’«»" // “ ” ‘ ’ « »
	for _, r := range marks {
		strippable[r] = true
	}
}

func isStrippable(r rune) bool { return strippable[r] }

func decodeRune(s string) (rune, int) { return utf8.DecodeRuneInString(s) }

func decodeLastRune(s string) (rune, int) { return utf8.DecodeLastRuneInString(s) }
