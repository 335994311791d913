// Package storage persists resume parsing results as a single JSON
// array document. Every operation reads the whole collection, mutates
// it in memory and writes it back; this is a deliberate single-user
// design, see DESIGN.md.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-extractor/internal/extract"
	"resume-extractor/internal/logger"
)

// ErrNotFound is returned when no stored result has the requested id.
var ErrNotFound = errors.New("storage: result not found")

// Store is a JSON-file-backed collection of StoredResult records.
type Store struct {
	path string
}

// NewStore opens the store at path, creating an empty collection if
// the file does not exist.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.persist([]StoredResult{}); err != nil {
			return nil, fmt.Errorf("initialize store: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat store: %w", err)
	}
	return s, nil
}

// Save appends a new result and returns its generated id. The id is
// collision-checked against existing records, the timestamp is set
// once here, and remarks start empty.
func (s *Store) Save(record extract.Record, filename, summary string, category Category) (string, error) {
	results, err := s.load()
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	for s.idExists(results, id) {
		id = uuid.NewString()
	}

	results = append(results, StoredResult{
		ID:        id,
		Filename:  filename,
		Timestamp: time.Now(),
		Data:      record,
		Category:  category,
		Summary:   summary,
		Remarks:   "",
	})

	if err := s.persist(results); err != nil {
		return "", err
	}
	return id, nil
}

// All returns every stored result.
func (s *Store) All() ([]StoredResult, error) {
	return s.load()
}

// Get returns the result with the given id or ErrNotFound.
func (s *Store) Get(id string) (StoredResult, error) {
	results, err := s.load()
	if err != nil {
		return StoredResult{}, err
	}
	for _, r := range results {
		if r.ID == id {
			return r, nil
		}
	}
	return StoredResult{}, ErrNotFound
}

// UpdateCategory merges a label into the record's category: a single
// category differing from the label is promoted to a list, a list
// gains the label only if absent. Existing labels are never removed.
func (s *Store) UpdateCategory(id, label string) error {
	return s.update(id, func(r *StoredResult) {
		r.Category.Merge(label)
	})
}

// UpdateRemarks overwrites the remarks of the record with the given id.
func (s *Store) UpdateRemarks(id, remarks string) error {
	return s.update(id, func(r *StoredResult) {
		r.Remarks = remarks
	})
}

// UpdateSummary overwrites the summary of the record with the given id.
func (s *Store) UpdateSummary(id, summary string) error {
	return s.update(id, func(r *StoredResult) {
		r.Summary = summary
	})
}

// Delete removes the record with the given id.
func (s *Store) Delete(id string) error {
	results, err := s.load()
	if err != nil {
		return err
	}
	kept := results[:0]
	found := false
	for _, r := range results {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrNotFound
	}
	return s.persist(kept)
}

// Search filters the collection. A non-empty categoryFilter keeps
// only records whose category exactly equals the filter — a record
// whose category is a multi-label list is NOT matched by one of its
// labels; this mirrors the reference behavior and is flagged in
// DESIGN.md. A non-empty query is matched case-insensitively as a
// substring of filename, name, email, phone and the joined skills.
func (s *Store) Search(query, categoryFilter string) ([]StoredResult, error) {
	results, err := s.load()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	matches := make([]StoredResult, 0, len(results))
	for _, r := range results {
		if categoryFilter != "" && !r.Category.Equals(categoryFilter) {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(fmt.Sprintf("%s %s %s %s %s",
				r.Filename, r.Data.Name, r.Data.Email, r.Data.Phone,
				strings.Join(r.Data.Skills, " ")))
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		matches = append(matches, r)
	}
	return matches, nil
}

// Sort keys accepted by SortResults.
const (
	SortByDate     = "date"
	SortByName     = "name"
	SortByFilename = "filename"
	SortBySkills   = "skills"
)

// SortResults orders results in place: date newest-first, skills
// count highest-first, name and filename ascending. reverse flips
// whichever order the key defines.
func SortResults(results []StoredResult, by string, reverse bool) {
	var less func(a, b StoredResult) bool
	switch by {
	case SortByName:
		less = func(a, b StoredResult) bool { return a.Data.Name < b.Data.Name }
	case SortByFilename:
		less = func(a, b StoredResult) bool { return a.Filename < b.Filename }
	case SortBySkills:
		less = func(a, b StoredResult) bool { return len(a.Data.Skills) > len(b.Data.Skills) }
	case SortByDate:
		fallthrough
	default:
		less = func(a, b StoredResult) bool { return a.Timestamp.After(b.Timestamp) }
	}
	sort.SliceStable(results, func(i, j int) bool {
		if reverse {
			return less(results[j], results[i])
		}
		return less(results[i], results[j])
	})
}

func (s *Store) update(id string, mutate func(*StoredResult)) error {
	results, err := s.load()
	if err != nil {
		return err
	}
	for i := range results {
		if results[i].ID == id {
			mutate(&results[i])
			return s.persist(results)
		}
	}
	return ErrNotFound
}

func (s *Store) idExists(results []StoredResult, id string) bool {
	for _, r := range results {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) load() ([]StoredResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		logger.Error().Err(err).Str("path", s.path).Msg("store read failed")
		return nil, fmt.Errorf("read store: %w", err)
	}
	var results []StoredResult
	if err := json.Unmarshal(data, &results); err != nil {
		logger.Error().Err(err).Str("path", s.path).Msg("store is not valid JSON")
		return nil, fmt.Errorf("decode store: %w", err)
	}
	return results, nil
}

// persist writes the full collection through a temp file and rename,
// so an interrupted write cannot truncate the store.
func (s *Store) persist(results []StoredResult) error {
	data, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".results-*.json")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
