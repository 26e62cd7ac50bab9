package contacts

import (
	"sort"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// OtherTitle is the section for names that do not start with a letter.
const OtherTitle = "#"

// Initial returns the section title a name files under: its first grapheme
// cluster upper-cased, or OtherTitle when that is not a letter.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return OtherTitle
	}
	gr := uniseg.NewGraphemes(name)
	if !gr.Next() {
		return OtherTitle
	}
	runes := gr.Runes()
	if len(runes) == 0 || !unicode.IsLetter(runes[0]) {
		return OtherTitle
	}
	return strings.ToUpper(gr.Str())
}

// GroupByInitial builds sections from a flat list of contacts. Sections are
// ordered by title with OtherTitle last; contacts keep a case-insensitive
// name order within their section. Blank names are skipped.
func GroupByInitial(items []Item) []Section {
	byTitle := make(map[string][]Item)
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		title := Initial(item.Name)
		byTitle[title] = append(byTitle[title], item)
	}

	titles := make([]string, 0, len(byTitle))
	for title := range byTitle {
		titles = append(titles, title)
	}
	sort.Slice(titles, func(i, j int) bool {
		if titles[i] == OtherTitle || titles[j] == OtherTitle {
			return titles[j] == OtherTitle && titles[i] != OtherTitle
		}
		return titles[i] < titles[j]
	})

	sections := make([]Section, len(titles))
	for i, title := range titles {
		data := byTitle[title]
		sort.SliceStable(data, func(a, b int) bool {
			return strings.ToLower(data[a].Name) < strings.ToLower(data[b].Name)
		})
		sections[i] = Section{Title: title, Data: data}
	}
	return sections
}
