package contacts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// entry accepts both shapes of the JSON input: a section ({title, data}) or
// a bare contact ({name, photo}).
type entry struct {
	Title string `json:"title"`
	Data  []Item `json:"data"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Decode reads contacts from JSON. The input is either an array of sections
// or a flat array of contacts, which is grouped by initial.
func Decode(r io.Reader) ([]Section, error) {
	var entries []entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}

	sectioned := false
	for _, e := range entries {
		if e.Title != "" || e.Data != nil {
			sectioned = true
			break
		}
	}

	var sections []Section
	if sectioned {
		sections = make([]Section, len(entries))
		for i, e := range entries {
			sections[i] = Section{Title: e.Title, Data: e.Data}
		}
	} else {
		items := make([]Item, len(entries))
		for i, e := range entries {
			items[i] = Item{Name: e.Name, Photo: e.Photo}
		}
		sections = GroupByInitial(items)
	}

	if err := Validate(sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// LoadFile decodes contacts from a JSON file.
func LoadFile(path string) ([]Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
