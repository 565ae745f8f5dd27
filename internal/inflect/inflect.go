// Package inflect reduces a spoken noun phrase to the two forms the
// catalogue lookups use: an oblique (dative) form and the base nominative.
package inflect

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/tvremote/internal/parser"
)

type Forms struct {
	Oblique string
	Base    string
}

var ErrUnknown = errors.New("no inflection for phrase")

type Inflector interface {
	Inflect(phrase string) (Forms, error)
}

// Entry describes one lemma: its base and oblique forms and any other
// forms a listener may use for it.
type Entry struct {
	Base    string   `yaml:"base"`
	Oblique string   `yaml:"oblique"`
	Forms   []string `yaml:"forms"`
}

// Table is an Inflector backed by a fixed list of entries. It is read-only
// after NewTable.
type Table struct {
	byForm map[string]Forms
}

func NewTable(entries []Entry) (*Table, error) {
	t := &Table{byForm: make(map[string]Forms)}
	for _, e := range entries {
		base := parser.Normalise(e.Base)
		if base == "" {
			return nil, fmt.Errorf("inflection entry without base: %+v", e)
		}
		f := Forms{Oblique: parser.Normalise(e.Oblique), Base: base}
		if f.Oblique == "" {
			f.Oblique = base
		}
		t.byForm[base] = f
		t.byForm[f.Oblique] = f
		for _, form := range e.Forms {
			if n := parser.Normalise(form); n != "" {
				t.byForm[n] = f
			}
		}
	}
	return t, nil
}

func (t *Table) Inflect(phrase string) (Forms, error) {
	if f, ok := t.byForm[parser.Normalise(phrase)]; ok {
		return f, nil
	}
	return Forms{}, fmt.Errorf("%w: %q", ErrUnknown, phrase)
}

// Len reports how many distinct phrases the table knows.
func (t *Table) Len() int { return len(t.byForm) }

// Decode reads YAML entries.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode inflections: %w", err)
	}
	return entries, nil
}

//go:embed forms.yaml
var defaultForms []byte

// DefaultEntries returns the built-in inflection entries.
func DefaultEntries() []Entry {
	entries, err := Decode(bytes.NewReader(defaultForms))
	if err != nil {
		panic(err)
	}
	return entries
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the shared table built from the embedded entries.
func Default() *Table {
	return defaultTable()
}

// Reduce inflects phrase with inf. When inflection fails both forms are the
// phrase itself.
func Reduce(inf Inflector, phrase string) Forms {
	raw := parser.Normalise(phrase)
	if inf == nil {
		return Forms{Oblique: raw, Base: raw}
	}
	f, err := inf.Inflect(phrase)
	if err != nil {
		return Forms{Oblique: raw, Base: raw}
	}
	if f.Oblique == "" {
		f.Oblique = raw
	}
	if f.Base == "" {
		f.Base = raw
	}
	return f
}
