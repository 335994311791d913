package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillSet(t *testing.T) {
	s := NewSkillSet("Go", "go", "  SQL  ", "")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("GO"))
	assert.True(t, s.Contains("sql"))
	assert.False(t, s.Contains("rust"))
	assert.Equal(t, []string{"go", "sql"}, s.List())
	assert.Equal(t, []string{"go", "sql"}, s.Sorted())
}

func TestExtractVocabularySkills(t *testing.T) {
	e := NewSkillExtractor()
	skills := e.Extract("Experienced in Python, Docker and machine learning pipelines.")
	assert.True(t, skills.Contains("python"))
	assert.True(t, skills.Contains("docker"))
	assert.True(t, skills.Contains("machine learning"))
}

func TestExtractSymbolicLanguages(t *testing.T) {
	e := NewSkillExtractor()
	skills := e.Extract("Proficient in C++ and C# development")
	assert.True(t, skills.Contains("c++"))
	assert.True(t, skills.Contains("c#"))
}

func TestExtractTokenBoundaries(t *testing.T) {
	e := NewSkillExtractor()
	// "javascript" must not also produce "java".
	skills := e.Extract("Senior JavaScript engineer")
	assert.True(t, skills.Contains("javascript"))
	assert.False(t, skills.Contains("java"))
}

func TestExtractDeduplicates(t *testing.T) {
	e := NewSkillExtractor()
	skills := e.Extract("Python python PYTHON")
	count := 0
	for _, s := range skills.List() {
		if s == "python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractEmptyText(t *testing.T) {
	e := NewSkillExtractor()
	assert.Zero(t, e.Extract("").Len())
	assert.Zero(t, e.Extract("   \n\t  ").Len())
}

func TestExtractIdempotent(t *testing.T) {
	e := NewSkillExtractor()
	text := "Backend developer with Go, PostgreSQL and Kubernetes experience."
	first := e.Extract(text).Sorted()
	second := e.Extract(text).Sorted()
	assert.Equal(t, first, second)
}

func TestExtractFiltersNoise(t *testing.T) {
	e := NewSkillExtractor()
	skills := e.Extract("I was responsible for the development of various things in 2019.")
	assert.False(t, skills.Contains("responsible"))
	assert.False(t, skills.Contains("the"))
	assert.False(t, skills.Contains("2019"))
}
