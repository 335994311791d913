// Package classify scores a resume's skill set against a fixed table
// of role profiles and picks the best-matching job categories.
package classify

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Uncategorized is returned when no role profile scores above zero.
const Uncategorized = "Uncategorized"

//go:embed roles.yaml
var rolesYAML []byte

// RoleProfile defines one job category: the skills that qualify a
// resume for it and the weight its matches carry.
type RoleProfile struct {
	Name     string   `yaml:"name"`
	Required []string `yaml:"required"`
	Optional []string `yaml:"optional"`
	Weight   int      `yaml:"weight"`
}

// Result is the classification outcome: a single label, several tied
// labels, or the Uncategorized sentinel.
type Result struct {
	Labels []string       `json:"labels"`
	Scores map[string]int `json:"scores,omitempty"`
}

// Single reports whether exactly one label was produced.
func (r Result) Single() bool { return len(r.Labels) == 1 }

// Classifier holds the loaded role table.
type Classifier struct {
	roles []RoleProfile
}

// New loads the embedded role table. The table is data, not control
// flow, so it can be extended without touching the scorer.
func New() (*Classifier, error) {
	var roles []RoleProfile
	if err := yaml.Unmarshal(rolesYAML, &roles); err != nil {
		return nil, fmt.Errorf("parse role table: %w", err)
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("role table is empty")
	}
	return &Classifier{roles: roles}, nil
}

// Roles returns the role names in table order.
func (c *Classifier) Roles() []string {
	names := make([]string, len(c.roles))
	for i, r := range c.roles {
		names[i] = r.Name
	}
	return names
}

// Score computes the score of one role against a lowercased skill
// set: weight*2 when any required skill is present, plus weight per
// optional skill present.
func (c *Classifier) Score(role RoleProfile, skills map[string]struct{}) int {
	score := 0
	for _, req := range role.Required {
		if _, ok := skills[req]; ok {
			score += role.Weight * 2
			break
		}
	}
	for _, opt := range role.Optional {
		if _, ok := skills[opt]; ok {
			score += role.Weight
		}
	}
	return score
}

// Classify scores every role and returns all roles tied at the
// maximum score. A maximum of zero means nothing matched; returning
// every role "tied at zero" would be meaningless, so that case yields
// the single Uncategorized label.
func (c *Classifier) Classify(skills []string) Result {
	skillSet := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		skillSet[strings.ToLower(s)] = struct{}{}
	}

	scores := make(map[string]int, len(c.roles))
	maxScore := 0
	for _, role := range c.roles {
		score := c.Score(role, skillSet)
		scores[role.Name] = score
		if score > maxScore {
			maxScore = score
		}
	}

	if maxScore == 0 {
		return Result{Labels: []string{Uncategorized}, Scores: scores}
	}

	var labels []string
	for _, role := range c.roles {
		if scores[role.Name] == maxScore {
			labels = append(labels, role.Name)
		}
	}
	return Result{Labels: labels, Scores: scores}
}

// Description renders a role's required and optional skill lists for
// display. Unknown roles (including Uncategorized) render empty.
func (c *Classifier) Description(name string) string {
	for _, role := range c.roles {
		if role.Name == name {
			return fmt.Sprintf("Required: %s\nOptional: %s",
				strings.Join(role.Required, ", "),
				strings.Join(role.Optional, ", "))
		}
	}
	return ""
}
