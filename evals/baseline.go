package evals

import (
	"fmt"
	"strings"
	"unicode"
)

// ToolDoc is the text a selector sees for one tool.
type ToolDoc struct {
	Name        string
	Description string
}

// KeywordSelector is a baseline ToolSelector that picks the tool whose name
// and description share the most words with the input. It never extracts
// arguments. Ties go to the earlier tool.
type KeywordSelector struct {
	docs  []ToolDoc
	terms []map[string]bool
}

// NewKeywordSelector indexes docs in order.
func NewKeywordSelector(docs []ToolDoc) *KeywordSelector {
	k := &KeywordSelector{docs: docs, terms: make([]map[string]bool, len(docs))}
	for i, d := range docs {
		set := make(map[string]bool)
		for _, w := range tokenize(strings.ReplaceAll(d.Name, "_", " ") + " " + d.Description) {
			set[w] = true
		}
		k.terms[i] = set
	}
	return k
}

// SelectTool implements ToolSelector.
func (k *KeywordSelector) SelectTool(input string) (string, map[string]any, error) {
	words := tokenize(input)
	best, bestScore := -1, 0
	for i, set := range k.terms {
		score := 0
		for _, w := range words {
			if set[w] {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return "", nil, fmt.Errorf("no tool matches %q", input)
	}
	return k.docs[best].Name, map[string]any{}, nil
}

var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "by": true, "for": true,
	"from": true, "get": true, "in": true, "is": true, "it": true, "me": true,
	"my": true, "of": true, "on": true, "or": true, "show": true, "the": true,
	"this": true, "to": true, "what": true, "with": true,
}

// tokenize lowercases s and splits it into words, dropping stop words and
// a trailing plural "s".
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if stopWords[f] {
			continue
		}
		if len(f) > 3 && strings.HasSuffix(f, "s") {
			f = strings.TrimSuffix(f, "s")
		}
		out = append(out, f)
	}
	return out
}
