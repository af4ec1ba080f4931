// Package skills holds the controlled skill vocabulary and the matching rules
// built on top of it: normalization, extraction, role detection, and gap analysis.
package skills

import (
	"sort"
	"strings"
)

// vocabulary is the fixed list of recognized skill terms. Detection is
// substring-based, so short terms can match inside unrelated words; that
// behavior is part of the compatibility contract and must not be tightened.
var vocabulary = []string{
	"python", "java", "sql", "mysql", "database",
	"machine learning", "deep learning", "nlp", "data science", "ai",
	"data structures", "algorithms",
	"html", "css", "javascript", "react", "node",
	"flask", "django", "apis", "rest",
	"git",
}

// synonyms maps surface forms to canonical skill names.
var synonyms = map[string]string{
	"js":            "javascript",
	"html5":         "html",
	"css3":          "css",
	"ml":            "machine learning",
	"deep learning": "machine learning",
	"nlp":           "machine learning",
	"data science":  "machine learning",
	"ai":            "machine learning",
	"java script":   "javascript",
	"react.js":      "react",
	"nodejs":        "node",
	"node.js":       "node",
	"postgres":      "sql",
	"postgresql":    "sql",
	"nosql":         "database",
	"mongodb":       "database",
	"frontend":      "html",
	"backend":       "python",
	"rest":          "apis",
	"api":           "apis",
	"expressjs":     "javascript",
	"express.js":    "javascript",
}

// Normalize canonicalizes a raw token against the synonym table. Unknown
// tokens pass through lowercased and trimmed. Idempotent.
func Normalize(token string) string {
	lowered := strings.ToLower(token)
	if canonical, ok := synonyms[lowered]; ok {
		return strings.TrimSpace(canonical)
	}
	return strings.TrimSpace(lowered)
}

// Extract scans text for vocabulary terms and returns the normalized skills
// found, deduplicated and sorted.
func Extract(text string) []string {
	lowered := strings.ToLower(text)
	found := make(map[string]struct{})
	for _, term := range vocabulary {
		if strings.Contains(lowered, term) {
			found[Normalize(term)] = struct{}{}
		}
	}
	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
