package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"resume-extractor/internal/extract"
)

// Category is the job-category assignment of a stored result. It is
// either a single label or a list of labels; the persisted form is a
// JSON string or a JSON array accordingly, matching the store format.
// Categories only ever grow: Merge adds labels, nothing removes them.
type Category struct {
	labels []string
}

func NewCategory(labels ...string) Category {
	c := Category{}
	for _, l := range labels {
		c.Merge(l)
	}
	return c
}

// Labels returns the assigned labels in assignment order.
func (c Category) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// IsMultiple reports whether more than one label is assigned.
func (c Category) IsMultiple() bool { return len(c.labels) > 1 }

// Equals reports whether the category is exactly the single given
// label. A multi-label category never equals a single label; the
// search filter depends on this exact-match behavior.
func (c Category) Equals(label string) bool {
	return len(c.labels) == 1 && c.labels[0] == label
}

// Merge adds a label unless already present, promoting a single
// category to a list when a second distinct label arrives. It reports
// whether the category changed.
func (c *Category) Merge(label string) bool {
	if label == "" {
		return false
	}
	for _, l := range c.labels {
		if l == label {
			return false
		}
	}
	c.labels = append(c.labels, label)
	return true
}

func (c Category) String() string {
	if len(c.labels) == 0 {
		return ""
	}
	if len(c.labels) == 1 {
		return c.labels[0]
	}
	out := c.labels[0]
	for _, l := range c.labels[1:] {
		out += ", " + l
	}
	return out
}

// MarshalJSON writes a bare string for single categories and an array
// for multiple, the two shapes the store format allows.
func (c Category) MarshalJSON() ([]byte, error) {
	switch len(c.labels) {
	case 0:
		return json.Marshal("")
	case 1:
		return json.Marshal(c.labels[0])
	default:
		return json.Marshal(c.labels)
	}
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		c.labels = nil
		if single != "" {
			c.labels = []string{single}
		}
		return nil
	}
	var multiple []string
	if err := json.Unmarshal(data, &multiple); err == nil {
		c.labels = multiple
		return nil
	}
	return fmt.Errorf("category must be a string or an array of strings")
}

// StoredResult is the persisted wrapper around one resume's
// extraction output plus the metadata added afterwards. ID and
// Timestamp are set once at save time and never change; Category,
// Summary and Remarks are mutable.
type StoredResult struct {
	ID        string         `json:"id"`
	Filename  string         `json:"filename"`
	Timestamp time.Time      `json:"timestamp"`
	Data      extract.Record `json:"data"`
	Category  Category       `json:"category"`
	Summary   string         `json:"summary"`
	Remarks   string         `json:"remarks"`
}
