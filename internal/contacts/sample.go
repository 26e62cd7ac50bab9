package contacts

import (
	"bytes"
	_ "embed"
)

//go:embed sample.json
var sampleJSON []byte

// Sample returns the built-in contact list used when nothing else is
// configured.
func Sample() []Section {
	sections, err := Decode(bytes.NewReader(sampleJSON))
	if err != nil {
		panic("contacts: invalid sample data: " + err.Error())
	}
	return sections
}
