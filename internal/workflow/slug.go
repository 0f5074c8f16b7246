package workflow

import "strings"

const slugSeparatorConstant = "-"

// Slug joins whitespace separated words with single hyphens. Hyphen runs collapse
// and the result never starts or ends with a hyphen.
func Slug(words []string) string {
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		for _, field := range strings.Fields(word) {
			for _, fragment := range strings.Split(field, slugSeparatorConstant) {
				if len(fragment) > 0 {
					tokens = append(tokens, fragment)
				}
			}
		}
	}
	return strings.Join(tokens, slugSeparatorConstant)
}
