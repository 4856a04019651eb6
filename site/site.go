// Package site defines the page content model: navigation, sections,
// and the copy around the contact form. Content is data, loaded from a
// YAML document rather than baked into the UI.
package site

import "fmt"

// NavItem links a menu entry to a section anchor.
type NavItem struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Section is one block of the page.
type Section struct {
	ID      string   `yaml:"id"`
	Heading string   `yaml:"heading"`
	Body    []string `yaml:"body"`
}

// Contact holds the labels around the contact form.
type Contact struct {
	Heading      string `yaml:"heading"`
	Intro        string `yaml:"intro"`
	SubmitLabel  string `yaml:"submit_label"`
	PendingLabel string `yaml:"pending_label"`
}

// Site is the whole page definition.
type Site struct {
	Title    string    `yaml:"title"`
	Tagline  string    `yaml:"tagline"`
	Nav      []NavItem `yaml:"nav"`
	Sections []Section `yaml:"sections"`
	Contact  Contact   `yaml:"contact"`
}

// ContactSectionID is the section the contact form is attached to.
const ContactSectionID = "contact"

// Validate checks the page definition for holes that would leave the
// UI with dangling anchors.
func (s *Site) Validate() error {
	if len(s.Sections) == 0 {
		return fmt.Errorf("page has no sections")
	}

	seen := make(map[string]bool, len(s.Sections))
	for _, sec := range s.Sections {
		if sec.ID == "" {
			return fmt.Errorf("section %q has no id", sec.Heading)
		}
		if seen[sec.ID] {
			return fmt.Errorf("duplicate section id %q", sec.ID)
		}
		seen[sec.ID] = true
	}

	for _, item := range s.Nav {
		if !seen[item.Target] {
			return fmt.Errorf("nav item %q targets unknown section %q", item.Label, item.Target)
		}
	}

	return nil
}

// SectionIndex returns the position of a section id, or -1.
func (s *Site) SectionIndex(id string) int {
	for i, sec := range s.Sections {
		if sec.ID == id {
			return i
		}
	}
	return -1
}
