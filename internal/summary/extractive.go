package summary

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"

	"resume-extractor/internal/extract"
	"resume-extractor/internal/logger"
)

// ExtractKeySentences returns the numSentences highest-scoring
// sentences of text, re-ordered by their position in the document so
// the summary reads in narrative order.
//
// Sentences are scored by summing the normalized frequencies of their
// words: a frequency table is built over alphabetic, non-stopword
// tokens and divided by the maximum count, so every entry lies in
// (0,1]. Ties are broken by original sentence index.
func ExtractKeySentences(text string, numSentences int) string {
	if numSentences <= 0 || strings.TrimSpace(text) == "" {
		return ""
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	frequencies := wordFrequencies(text)
	if len(frequencies) == 0 {
		// No alphabetic tokens at all; nothing can be scored.
		return ""
	}

	type scored struct {
		index int
		score float64
	}
	var candidates []scored
	for i, sent := range sentences {
		score := 0.0
		hit := false
		for _, word := range alphabeticTokens(strings.ToLower(sent)) {
			if f, ok := frequencies[word]; ok {
				score += f
				hit = true
			}
		}
		if hit {
			candidates = append(candidates, scored{index: i, score: score})
		}
	}

	// Highest score first; equal scores keep document order.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})
	if len(candidates) > numSentences {
		candidates = candidates[:numSentences]
	}
	sort.Slice(candidates, func(a, b int) bool {
		return candidates[a].index < candidates[b].index
	})

	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = sentences[c.index]
	}
	return strings.Join(parts, "\n")
}

// wordFrequencies counts alphabetic non-stopword tokens and
// normalizes every count by the maximum.
func wordFrequencies(text string) map[string]float64 {
	counts := make(map[string]int)
	maxCount := 0
	for _, word := range alphabeticTokens(strings.ToLower(text)) {
		if extract.IsStopword(word) {
			continue
		}
		counts[word]++
		if counts[word] > maxCount {
			maxCount = counts[word]
		}
	}
	if maxCount == 0 {
		return nil
	}

	frequencies := make(map[string]float64, len(counts))
	for word, count := range counts {
		frequencies[word] = float64(count) / float64(maxCount)
	}
	return frequencies
}

// splitSentences segments text with prose; if segmentation fails the
// whole text is treated as one sentence.
func splitSentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		logger.Warn().Err(err).Msg("summary: sentence segmentation failed")
		return []string{strings.TrimSpace(text)}
	}

	var sentences []string
	for _, s := range doc.Sentences() {
		if t := strings.TrimSpace(s.Text); t != "" {
			sentences = append(sentences, t)
		}
	}
	return sentences
}

// alphabeticTokens splits on non-letters, so every token is purely
// alphabetic.
func alphabeticTokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
