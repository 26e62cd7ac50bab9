// Package contacts holds the sectioned contact list shown by rolodex.
package contacts

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrEmptyTitle is returned for a section without a title.
	ErrEmptyTitle = errors.New("section title is empty")
	// ErrEmptyName is returned for a contact without a name.
	ErrEmptyName = errors.New("contact name is empty")
)

// Item is one contact.
type Item struct {
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

// PhotoHost returns the host the photo is served from, or "" when the item
// has no usable photo URL.
func (i Item) PhotoHost() string {
	if i.Photo == "" {
		return ""
	}
	u, err := url.Parse(i.Photo)
	if err != nil {
		return ""
	}
	return u.Host
}

// Section is a titled group of contacts. Its position in the list is its
// ordinal, shared by the list and the rail.
type Section struct {
	Title string `json:"title"`
	Data  []Item `json:"data"`
}

// Source provides the sections to display.
type Source interface {
	Sections() ([]Section, error)
}

// Validate checks that every section has a title and every contact a name.
func Validate(sections []Section) error {
	for i, s := range sections {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("section %d: %w", i, ErrEmptyTitle)
		}
		for j, item := range s.Data {
			if strings.TrimSpace(item.Name) == "" {
				return fmt.Errorf("section %q item %d: %w", s.Title, j, ErrEmptyName)
			}
		}
	}
	return nil
}

// Count returns the number of contacts across all sections.
func Count(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Data)
	}
	return n
}

// Titles returns the section titles in order.
func Titles(sections []Section) []string {
	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	return titles
}

// Static is a Source over a fixed list.
type Static []Section

// Sections implements Source.
func (s Static) Sections() ([]Section, error) {
	return s, nil
}
