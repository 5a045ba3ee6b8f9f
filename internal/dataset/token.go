package dataset

import "strings"

// punctuation peeled from word edges into their own tokens. Hyphens are
// never peeled ("denial-of-service" stays one token) and internal
// periods survive ("2.4.1").
const edgePunct = `.,!?;:()[]"'`

// Tokenize splits a sentence into tokens: whitespace-delimited words
// with leading and trailing punctuation separated into standalone
// tokens. "network." becomes ["network", "."], keeping aspect terms
// matchable at sentence boundaries.
func Tokenize(sentence string) []string {
	fields := strings.Fields(sentence)
	tokens := make([]string, 0, len(fields))

	for _, field := range fields {
		var leading []string
		for len(field) > 0 && strings.ContainsRune(edgePunct, rune(field[0])) {
			leading = append(leading, string(field[0]))
			field = field[1:]
		}

		var trailing []string
		for len(field) > 0 && strings.ContainsRune(edgePunct, rune(field[len(field)-1])) {
			trailing = append([]string{string(field[len(field)-1])}, trailing...)
			field = field[:len(field)-1]
		}

		tokens = append(tokens, leading...)
		if field != "" {
			tokens = append(tokens, field)
		}
		tokens = append(tokens, trailing...)
	}

	return tokens
}
