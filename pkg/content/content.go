// Package content holds the portfolio text: name, headline phrases, section
// bodies, skills and contact cards.
package content

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
)

//go:embed default.yaml
var defaultYAML []byte

// Content is the whole portfolio document.
type Content struct {
	Name     string    `yaml:"name"`
	Tagline  string    `yaml:"tagline"`
	Resume   string    `yaml:"resume"`
	Phrases  []string  `yaml:"phrases"`
	Sections []Section `yaml:"sections"`
	Skills   []Skill   `yaml:"skills"`
	Contacts []Contact `yaml:"contacts"`
}

// Section is the markdown body of one page section.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Skill is one skill bar. Level is a percentage.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Group string `yaml:"group"`
}

// Contact is a copyable contact card.
type Contact struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Default returns the built-in portfolio content.
func Default() *Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return c
}

// Section returns the section with id.
func (c *Content) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Titles maps section ids to their display titles.
func (c *Content) Titles() map[string]string {
	out := make(map[string]string, len(c.Sections))
	for _, s := range c.Sections {
		if s.Title != "" {
			out[s.ID] = s.Title
		}
	}
	return out
}

// SkillLevels returns the skill percentages in display order.
func (c *Content) SkillLevels() []int {
	out := make([]int, len(c.Skills))
	for i, s := range c.Skills {
		out[i] = s.Level
	}
	return out
}

// Headings returns the section titles, used for the placeholder resume page.
func (c *Content) Headings() []string {
	var out []string
	for _, s := range c.Sections {
		switch s.ID {
		case "about", "skills", "projects", "experience":
			out = append(out, s.Title)
		}
	}
	return out
}

// normalize fills gaps and clamps values so the UI never sees a broken
// document.
func (c *Content) normalize() {
	c.Name = strings.TrimSpace(c.Name)
	phrases := c.Phrases[:0]
	for _, p := range c.Phrases {
		if p = strings.TrimSpace(p); p != "" {
			phrases = append(phrases, p)
		}
	}
	c.Phrases = phrases

	seen := make(map[string]bool, len(c.Sections))
	sections := c.Sections[:0]
	for _, s := range c.Sections {
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" || seen[s.ID] {
			slog.Warn("content: skipping section", "id", s.ID, "reason", "empty or duplicate id")
			continue
		}
		seen[s.ID] = true
		sections = append(sections, s)
	}
	c.Sections = sections

	for i := range c.Skills {
		if c.Skills[i].Level < 0 {
			c.Skills[i].Level = 0
		}
		if c.Skills[i].Level > 100 {
			c.Skills[i].Level = 100
		}
	}

	contacts := c.Contacts[:0]
	for _, ct := range c.Contacts {
		if strings.TrimSpace(ct.Value) == "" {
			continue
		}
		if ct.Label == "" {
			ct.Label = ct.Kind
		}
		contacts = append(contacts, ct)
	}
	c.Contacts = contacts
}
