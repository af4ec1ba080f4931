// Package similarity provides a small TF-IDF cosine measure. It is a
// secondary, informational signal reported alongside the factor scores; it
// never feeds the weighted total.
package similarity

import (
	"math"
	"strings"
	"unicode"
)

// stopWords is a minimal English stop list applied before vectorizing.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "in": {}, "is": {}, "it": {},
	"of": {}, "on": {}, "or": {}, "that": {}, "the": {}, "to": {}, "with": {},
}

// Cosine computes TF-IDF cosine similarity between two texts, scaled to
// [0,100] and rounded to two decimals. Either side tokenizing to nothing
// yields 0.
func Cosine(a, b string) float64 {
	docA := termCounts(tokenize(a))
	docB := termCounts(tokenize(b))
	if len(docA) == 0 || len(docB) == 0 {
		return 0
	}

	vocab := make(map[string]struct{}, len(docA)+len(docB))
	for term := range docA {
		vocab[term] = struct{}{}
	}
	for term := range docB {
		vocab[term] = struct{}{}
	}

	// Smoothed idf over the two-document corpus, sklearn-style:
	// ln((1+n)/(1+df)) + 1 with n=2.
	idf := func(term string) float64 {
		df := 0
		if _, ok := docA[term]; ok {
			df++
		}
		if _, ok := docB[term]; ok {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	var dot, normA, normB float64
	for term := range vocab {
		weight := idf(term)
		wa := float64(docA[term]) * weight
		wb := float64(docB[term]) * weight
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB)) * 100
	return math.Round(score*100) / 100
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, ok := stopWords[field]; ok {
			continue
		}
		out = append(out, field)
	}
	return out
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}
