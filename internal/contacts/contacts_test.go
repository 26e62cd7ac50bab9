package contacts

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitial(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "alice", "A"},
		{"already upper", "Bob", "B"},
		{"leading space", "  carol", "C"},
		{"accented", "élodie", "É"},
		{"combining mark", "e\u0301mile", "E\u0301"},
		{"digit", "42 Club", OtherTitle},
		{"emoji", "🎸 band", OtherTitle},
		{"empty", "", OtherTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initial(tt.in); got != tt.want {
				t.Errorf("Initial(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupByInitial(t *testing.T) {
	items := []Item{
		{Name: "bob"},
		{Name: "Alice"},
		{Name: "007 Agent"},
		{Name: "  "},
		{Name: "aaron"},
		{Name: "Beth"},
	}

	got := GroupByInitial(items)

	wantTitles := []string{"A", "B", OtherTitle}
	if titles := Titles(got); strings.Join(titles, ",") != strings.Join(wantTitles, ",") {
		t.Fatalf("titles = %v, want %v", titles, wantTitles)
	}
	if got[0].Data[0].Name != "aaron" || got[0].Data[1].Name != "Alice" {
		t.Errorf("section A = %v, want aaron before Alice", got[0].Data)
	}
	if got[1].Data[0].Name != "Beth" || got[1].Data[1].Name != "bob" {
		t.Errorf("section B = %v, want Beth before bob", got[1].Data)
	}
	if Count(got) != 5 {
		t.Errorf("Count() = %d, want 5 (blank name skipped)", Count(got))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
		wantErr  error
	}{
		{"valid", []Section{{Title: "A", Data: []Item{{Name: "Ann"}}}}, nil},
		{"empty section is fine", []Section{{Title: "A"}}, nil},
		{"blank title", []Section{{Title: " ", Data: []Item{{Name: "Ann"}}}}, ErrEmptyTitle},
		{"blank name", []Section{{Title: "A", Data: []Item{{Name: ""}}}}, ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sections)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecode_Sections(t *testing.T) {
	in := `[
		{"title": "A", "data": [{"name": "Ann", "photo": "https://img.example.com/a.png"}]},
		{"title": "B", "data": []}
	]`

	got, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Data[0].PhotoHost() != "img.example.com" {
		t.Errorf("PhotoHost() = %q", got[0].Data[0].PhotoHost())
	}
	if got[1].Title != "B" || len(got[1].Data) != 0 {
		t.Errorf("section B = %+v", got[1])
	}
}

func TestDecode_FlatList(t *testing.T) {
	in := `[{"name": "zed"}, {"name": "Amy"}, {"name": "adam"}]`

	got, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if titles := strings.Join(Titles(got), ""); titles != "AZ" {
		t.Errorf("titles = %q, want %q", titles, "AZ")
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"missing title", `[{"data": [{"name": "Ann"}]}]`, ErrEmptyTitle},
		{"missing name", `[{"title": "A", "data": [{"photo": "x"}]}]`, ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Decode(strings.NewReader(`{"not": "an array"}`)); err == nil {
		t.Error("Decode() of an object should fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	if err := os.WriteFile(path, []byte(`[{"name": "Kim"}]`), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "K" {
		t.Errorf("LoadFile() = %+v", got)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want ErrNotExist", err)
	}
}

func TestSample(t *testing.T) {
	sections := Sample()
	if len(sections) != 26 {
		t.Fatalf("len(Sample()) = %d, want 26", len(sections))
	}
	for i, s := range sections {
		if len(s.Data) == 0 {
			t.Errorf("section %d (%s) is empty", i, s.Title)
		}
	}

	var src Source = Static(sections)
	got, err := src.Sections()
	if err != nil || len(got) != 26 {
		t.Errorf("Static.Sections() = %d, %v", len(got), err)
	}
}

func TestPhotoHost(t *testing.T) {
	tests := []struct {
		photo string
		want  string
	}{
		{"", ""},
		{"https://i.pravatar.cc/150?img=3", "i.pravatar.cc"},
		{"not a url", ""},
		{"://bad", ""},
	}
	for _, tt := range tests {
		if got := (Item{Name: "x", Photo: tt.photo}).PhotoHost(); got != tt.want {
			t.Errorf("PhotoHost(%q) = %q, want %q", tt.photo, got, tt.want)
		}
	}
}
