package extract

import (
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"

	"resume-extractor/internal/logger"
)

// SkillSet is a deduplicated, lowercase-normalized collection of skill
// terms. Iteration order is first-encounter order; Sorted gives a
// stable view for display and tests.
type SkillSet struct {
	items []string
	seen  map[string]struct{}
}

func NewSkillSet(skills ...string) *SkillSet {
	s := &SkillSet{seen: make(map[string]struct{})}
	for _, skill := range skills {
		s.Add(skill)
	}
	return s
}

// Add normalizes and inserts a skill. Symbolic names ("c++", "c#")
// pass through lowercasing unchanged, so no special casing beyond
// ToLower is needed.
func (s *SkillSet) Add(skill string) {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" {
		return
	}
	if _, ok := s.seen[skill]; ok {
		return
	}
	s.seen[skill] = struct{}{}
	s.items = append(s.items, skill)
}

func (s *SkillSet) Contains(skill string) bool {
	_, ok := s.seen[strings.ToLower(skill)]
	return ok
}

func (s *SkillSet) Len() int { return len(s.items) }

// List returns skills in first-encounter order.
func (s *SkillSet) List() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns skills in lexicographic order.
func (s *SkillSet) Sorted() []string {
	out := s.List()
	sort.Strings(out)
	return out
}

// SkillExtractor recognizes skill terms in raw resume text.
type SkillExtractor struct {
	vocabulary []string
}

func NewSkillExtractor() *SkillExtractor {
	return &SkillExtractor{vocabulary: skillVocabulary}
}

// Extract returns the set of recognized skills in text.
//
// Single-word vocabulary entries are matched against lowercased
// tokens; multi-word entries are found by substring containment since
// tokenization splits them. A second pass harvests NOUN/PROPN tokens
// that survive the stopword and exclusion filters, so skills outside
// the vocabulary still have a path in.
func (e *SkillExtractor) Extract(text string) *SkillSet {
	skills := NewSkillSet()
	if strings.TrimSpace(text) == "" {
		return skills
	}

	lowered := strings.ToLower(text)
	tokens := tokenize(text)
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}

	for _, term := range e.vocabulary {
		if IsStopword(term) {
			continue
		}
		if strings.Contains(term, " ") {
			if strings.Contains(lowered, term) {
				skills.Add(term)
			}
			continue
		}
		if _, ok := tokenSet[term]; ok {
			skills.Add(term)
		}
	}

	e.harvestNouns(text, skills)
	return skills
}

// harvestNouns POS-tags the text and adds noun tokens that pass the
// exclusion filters. Tagging failures are logged and ignored; the
// vocabulary matches above are the contractual floor.
func (e *SkillExtractor) harvestNouns(text string, skills *SkillSet) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		logger.Warn().Err(err).Msg("skill extraction: POS tagging failed, keeping vocabulary matches only")
		return
	}

	for _, tok := range doc.Tokens() {
		if !strings.HasPrefix(tok.Tag, "NN") {
			continue
		}
		candidate := strings.ToLower(tok.Text)
		if len(candidate) < 3 || isDigits(candidate) {
			continue
		}
		if IsStopword(candidate) || isExcludedNoun(candidate) {
			continue
		}
		skills.Add(candidate)
	}
}
