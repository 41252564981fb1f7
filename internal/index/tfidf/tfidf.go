// Package tfidf implements the ephemeral term-weighted vector space used
// for retrieval.
//
// The vector space is rebuilt from scratch on every search call over the
// corpus formed by all stored chunk texts plus the query itself, so the
// query receives a vector comparable with the chunks'. This trades
// index-maintenance complexity for correctness simplicity at personal
// knowledge-base corpus sizes; no state survives between calls.
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Vectorizer scores chunk texts against a query in a shared TF-IDF space.
type Vectorizer struct {
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// NewVectorizer creates a vectorizer with unicode-letter tokenization and
// English stopword filtering.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    defaultStopwords(),
	}
}

// Score builds the vector space over corpus+query and returns, for every
// corpus entry, its cosine similarity against the query vector. Weights
// are non-negative and vectors L2-normalized, so scores lie in [0,1].
//
// An empty corpus yields an empty score slice. A query whose terms are
// all absent from the corpus vocabulary yields all-zero scores.
func (v *Vectorizer) Score(corpus []string, query string) []float64 {
	if len(corpus) == 0 {
		return nil
	}

	docs := make([][]string, 0, len(corpus)+1)
	for _, text := range corpus {
		docs = append(docs, v.tokenize(text))
	}
	docs = append(docs, v.tokenize(query))

	vocab, idf := v.fit(docs)

	queryVec := v.vector(docs[len(docs)-1], vocab, idf)

	scores := make([]float64, len(corpus))
	for i := range corpus {
		scores[i] = clamp01(dot(v.vector(docs[i], vocab, idf), queryVec))
	}
	return scores
}

// fit builds the sorted vocabulary and smoothed IDF values over the
// tokenized documents. Sorting keeps the term order, and therefore the
// scores, deterministic across calls.
func (v *Vectorizer) fit(docs [][]string) (map[string]int, []float64) {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		vocab[term] = i
		// Smoothed IDF keeps weights strictly positive so a term
		// present in every document still contributes.
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return vocab, idf
}

// vector computes the L2-normalized TF-IDF vector for one tokenized text.
func (v *Vectorizer) vector(tokens []string, vocab map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(idf))

	tf := make(map[int]int, len(tokens))
	total := 0
	for _, tok := range tokens {
		if idx, ok := vocab[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}

	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * idf[idx]
	}

	norm := 0.0
	for _, w := range vec {
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func (v *Vectorizer) tokenize(text string) []string {
	raw := v.tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := v.stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// dot assumes equal-length vectors.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"for", "to", "of", "in", "on", "at", "by", "with", "as",
		"is", "are", "was", "were", "be", "been", "being", "it",
		"this", "that", "these", "those", "from", "up", "down",
		"over", "under", "again", "further", "than", "so", "such",
		"into", "about", "between", "through", "during", "before",
		"after", "above", "below", "out", "off", "own", "same",
		"too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
