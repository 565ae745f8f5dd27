// Package channel maps spoken channel names to the numeric ids the set-top
// box tunes to.
package channel

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/tvremote/internal/numeral"
	"github.com/appengine-ltd/tvremote/internal/parser"
)

type Entry struct {
	Name    string   `yaml:"name"`
	ID      int64    `yaml:"id"`
	Aliases []string `yaml:"aliases"`
}

type phrase struct {
	tokens []string
	text   string
	entry  int
}

// Directory is immutable once built and safe for concurrent use.
type Directory struct {
	entries []Entry
	phrases []phrase
}

// NewDirectory indexes entries by their name and aliases. Later entries
// override earlier ones that claim the same phrase.
func NewDirectory(entries []Entry) (*Directory, error) {
	d := &Directory{entries: make([]Entry, 0, len(entries))}
	byText := make(map[string]int)
	for _, e := range entries {
		if e.ID <= 0 {
			return nil, fmt.Errorf("channel %q: id must be positive, got %d", e.Name, e.ID)
		}
		idx := len(d.entries)
		d.entries = append(d.entries, Entry{Name: e.Name, ID: e.ID, Aliases: slices.Clone(e.Aliases)})
		for _, a := range append([]string{e.Name}, e.Aliases...) {
			toks := Canonical(a)
			if len(toks) == 0 {
				continue
			}
			text := strings.Join(toks, " ")
			if at, ok := byText[text]; ok {
				d.phrases[at].entry = idx
				continue
			}
			byText[text] = len(d.phrases)
			d.phrases = append(d.phrases, phrase{tokens: toks, text: text, entry: idx})
		}
	}
	if len(d.phrases) == 0 {
		return nil, errors.New("channel directory is empty")
	}
	slices.SortStableFunc(d.phrases, func(a, b phrase) int {
		return len(b.tokens) - len(a.tokens)
	})
	return d, nil
}

// Entries returns the directory entries in declaration order.
func (d *Directory) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		out[i] = Entry{Name: e.Name, ID: e.ID, Aliases: slices.Clone(e.Aliases)}
	}
	return out
}

// Canonical normalises a channel phrase into tokens, spelling number words
// as digits so "stöð tvö" and "stöð 2" compare equal.
func Canonical(s string) []string {
	toks := parser.Tokenise(parser.Normalise(s))
	for i, tok := range toks {
		if v, ok := numeral.Word(tok); ok {
			toks[i] = strconv.Itoa(v)
		}
	}
	return toks
}

// Match finds the longest directory phrase that prefixes tokens. It returns
// the number of tokens consumed.
func (d *Directory) Match(tokens []string) (Entry, int, bool) {
	canon := Canonical(strings.Join(tokens, " "))
	for _, p := range d.phrases {
		if len(p.tokens) > len(canon) {
			continue
		}
		if slices.Equal(canon[:len(p.tokens)], p.tokens) {
			return d.entries[p.entry], len(p.tokens), true
		}
	}
	return Entry{}, 0, false
}

// Lookup requires the whole phrase to name a channel.
func (d *Directory) Lookup(tokens []string) (Entry, bool) {
	e, n, ok := d.Match(tokens)
	if !ok || n != len(Canonical(strings.Join(tokens, " "))) {
		return Entry{}, false
	}
	return e, true
}

// Suggest returns the channel whose name or alias is closest to the phrase
// by edit distance, if any is close enough.
func (d *Directory) Suggest(tokens []string) (Entry, bool) {
	text := strings.Join(Canonical(strings.Join(tokens, " ")), " ")
	if len(text) < 2 {
		return Entry{}, false
	}
	best, bestDist := -1, 0
	for _, p := range d.phrases {
		dist := levenshtein.ComputeDistance(text, p.text)
		if dist == 0 || dist > levenshteinLimit(len([]rune(p.text))) {
			continue
		}
		if best < 0 || dist < bestDist || (dist == bestDist && p.entry < best) {
			best, bestDist = p.entry, dist
		}
	}
	if best < 0 {
		return Entry{}, false
	}
	return d.entries[best], true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
