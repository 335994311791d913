// Package summary produces a short natural-language profile for a
// parsed resume: a generated one when a text-generation service is
// configured and reachable, otherwise a deterministic extractive one.
package summary

import (
	"context"
	"fmt"
	"strings"

	"resume-extractor/internal/extract"
	"resume-extractor/internal/llm"
	"resume-extractor/internal/logger"
)

const maxPromptExperience = 500

type Summarizer struct {
	llm          *llm.Service
	numSentences int
}

func NewSummarizer(service *llm.Service, numSentences int) *Summarizer {
	if numSentences <= 0 {
		numSentences = 3
	}
	return &Summarizer{llm: service, numSentences: numSentences}
}

// Summarize returns a profile summary for the record. The generative
// path is opportunistic: any failure is logged as a fallback event
// and the extractive summary is returned instead. Summarize never
// returns an error.
func (s *Summarizer) Summarize(ctx context.Context, record extract.Record) string {
	if s.llm.Enabled() {
		generated, err := s.llm.Generate(ctx, s.buildPrompt(record))
		if err == nil && strings.TrimSpace(generated) != "" {
			return "Professional Summary:\n- " + strings.TrimSpace(generated)
		}
		logger.Warn().Err(err).Msg("generative summary failed, using extractive fallback")
	}
	return s.Extractive(record)
}

// Extractive composes the deterministic fallback: name, leading
// skills, and the key sentences of the resume body.
func (s *Summarizer) Extractive(record extract.Record) string {
	var parts []string

	if record.Name != "" {
		parts = append(parts, fmt.Sprintf("%s is a professional with experience in", record.Name))
	}
	if len(record.Skills) > 0 {
		parts = append(parts, fmt.Sprintf("key skills including %s", strings.Join(topSkills(record.Skills, 5), ", ")))
	}
	if record.RawText != "" {
		for _, sentence := range strings.Split(ExtractKeySentences(record.RawText, s.numSentences), "\n") {
			sentence = strings.TrimSpace(strings.ReplaceAll(sentence, "•", ""))
			if sentence != "" {
				parts = append(parts, sentence)
			}
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

func (s *Summarizer) buildPrompt(record extract.Record) string {
	experience := record.RawText
	if len(experience) > maxPromptExperience {
		experience = experience[:maxPromptExperience]
	}
	return fmt.Sprintf(`Write a professional summary for %s:

Skills: %s
Experience: %s

Summary (in 3-4 sentences):`,
		record.Name, strings.Join(topSkills(record.Skills, 5), ", "), experience)
}

func topSkills(skills []string, n int) []string {
	if len(skills) > n {
		return skills[:n]
	}
	return skills
}
