package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-extractor/internal/extract"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "results.json"))
	require.NoError(t, err)
	return s
}

func saveResult(t *testing.T, s *Store, name, filename, category string, skills ...string) string {
	t.Helper()
	record := extract.Record{
		Name:   name,
		Email:  "someone@example.com",
		Skills: skills,
	}
	id, err := s.Save(record, filename, "summary", NewCategory(category))
	require.NoError(t, err)
	return id
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore(t)

	id := saveResult(t, s, "Jane Doe", "jane.pdf", "Web Developer", "html", "css")
	require.NotEmpty(t, id)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "jane.pdf", got.Filename)
	assert.Equal(t, "Jane Doe", got.Data.Name)
	assert.True(t, got.Category.Equals("Web Developer"))
	assert.Empty(t, got.Remarks)
	assert.WithinDuration(t, time.Now(), got.Timestamp, time.Minute)
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	id := saveResult(t, s, "Jane Doe", "jane.pdf", "Web Developer")

	reopened, err := NewStore(path)
	require.NoError(t, err)
	got, err := reopened.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "jane.pdf", got.Filename)
}

func TestUpdateCategoryOnlyGrows(t *testing.T) {
	s := newTestStore(t)
	id := saveResult(t, s, "Jane Doe", "jane.pdf", "Web Developer")

	require.NoError(t, s.UpdateCategory(id, "Backend Developer"))
	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Web Developer", "Backend Developer"}, got.Category.Labels())

	// Merging an existing label is a no-op, never a removal.
	require.NoError(t, s.UpdateCategory(id, "Web Developer"))
	got, err = s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Web Developer", "Backend Developer"}, got.Category.Labels())
}

func TestUpdatesOnMissingID(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.UpdateCategory("nope", "X"), ErrNotFound)
	assert.ErrorIs(t, s.UpdateRemarks("nope", "note"), ErrNotFound)
	assert.ErrorIs(t, s.UpdateSummary("nope", "text"), ErrNotFound)
}

func TestUpdateRemarksAndSummary(t *testing.T) {
	s := newTestStore(t)
	id := saveResult(t, s, "Jane Doe", "jane.pdf", "Web Developer")

	require.NoError(t, s.UpdateRemarks(id, "strong candidate"))
	require.NoError(t, s.UpdateSummary(id, "new summary"))

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "strong candidate", got.Remarks)
	assert.Equal(t, "new summary", got.Summary)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	id := saveResult(t, s, "Jane Doe", "jane.pdf", "Web Developer")
	other := saveResult(t, s, "John Roe", "john.pdf", "Backend Developer")

	require.NoError(t, s.Delete(id))
	_, err := s.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)

	// The other record survives.
	_, err = s.Get(other)
	assert.NoError(t, err)

	assert.ErrorIs(t, s.Delete(id), ErrNotFound)
}

func TestSearchQuery(t *testing.T) {
	s := newTestStore(t)
	saveResult(t, s, "Jane Doe", "jane.pdf", "Web Developer", "html", "css")
	saveResult(t, s, "John Roe", "john.pdf", "Backend Developer", "go", "postgresql")

	results, err := s.Search("JANE", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Doe", results[0].Data.Name)

	// Skills are searchable too.
	results, err = s.Search("postgresql", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "John Roe", results[0].Data.Name)

	results, err = s.Search("nobody", "")
	require.NoError(t, err)
	assert.Empty(t, results)

	// Empty query matches everything.
	results, err = s.Search("", "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchCategoryFilterIsExact(t *testing.T) {
	s := newTestStore(t)
	saveResult(t, s, "Jane Doe", "jane.pdf", "Web Developer")
	multi := saveResult(t, s, "John Roe", "john.pdf", "Web Developer")
	require.NoError(t, s.UpdateCategory(multi, "Backend Developer"))

	// The multi-label record is not matched by either of its labels.
	results, err := s.Search("", "Web Developer")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Doe", results[0].Data.Name)

	results, err = s.Search("", "Backend Developer")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSortResults(t *testing.T) {
	results := []StoredResult{
		{Filename: "b.pdf", Timestamp: time.Now().Add(-time.Hour),
			Data: extract.Record{Name: "Bob", Skills: []string{"go"}}},
		{Filename: "a.pdf", Timestamp: time.Now(),
			Data: extract.Record{Name: "Alice", Skills: []string{"go", "sql", "aws"}}},
		{Filename: "c.pdf", Timestamp: time.Now().Add(-2 * time.Hour),
			Data: extract.Record{Name: "Carol", Skills: []string{"go", "sql"}}},
	}

	SortResults(results, SortByName, false)
	assert.Equal(t, "Alice", results[0].Data.Name)
	assert.Equal(t, "Carol", results[2].Data.Name)

	SortResults(results, SortByName, true)
	assert.Equal(t, "Carol", results[0].Data.Name)

	SortResults(results, SortBySkills, false)
	assert.Equal(t, "Alice", results[0].Data.Name)
	assert.Equal(t, "Bob", results[2].Data.Name)

	// Default key is newest first.
	SortResults(results, "", false)
	assert.Equal(t, "Alice", results[0].Data.Name)
	assert.Equal(t, "Carol", results[2].Data.Name)

	SortResults(results, SortByDate, true)
	assert.Equal(t, "Carol", results[0].Data.Name)
}
