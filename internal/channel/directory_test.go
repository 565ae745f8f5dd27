package channel

import (
	"errors"
	"strings"
	"testing"
)

func TestStrictResolvesKnownChannels(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "stöð 2 sport 2", want: "22759656"},
		{in: "stöð tvö sport tvö", want: "22759656"},
		{in: "stöð 2 sport", want: "22759619"},
		{in: "stöð 2 sport 1", want: "22759619"},
		{in: "stöð 2", want: "22759599"},
		{in: "studdu 2 bíó", want: "22759610"},
		{in: "rúv", want: "22759586"},
		{in: "RÚV 2", want: "46888903"},
		{in: "einn", want: "22759586"},
		{in: "sjónvarp símans", want: "22759594"},
		{in: "hringbraut", want: "40043140"},
		{in: "síminn sport 3", want: "46890006"},
		{in: "stöð 2 e sport", want: "46890013"},
		{in: "ómega", want: "22759667"},
	}
	s := Strict{Directory: Default()}
	for _, tc := range tests {
		got, err := s.Resolve(strings.Fields(tc.in))
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Resolve(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestStrictRejectsPartialMatches(t *testing.T) {
	s := Strict{Directory: Default()}
	_, err := s.Resolve(strings.Fields("stöð 2 sport 7"))
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	var unknown *UnknownError
	if !errors.As(err, &unknown) || unknown.Phrase != "stöð 2 sport 7" {
		t.Fatalf("unexpected error detail: %#v", err)
	}
	if unknown.Suggestion == "" {
		t.Fatalf("expected a suggestion for a near miss")
	}
}

func TestLenientPassesUnknownPhrasesThrough(t *testing.T) {
	l := Lenient{Directory: Default()}
	got, err := l.Resolve(strings.Fields("Rás Eitt"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "rás eitt" {
		t.Fatalf("Resolve=%q want=%q", got, "rás eitt")
	}
	got, err = l.Resolve(strings.Fields("hringbraut"))
	if err != nil || got != "40043140" {
		t.Fatalf("Resolve(hringbraut)=%q,%v want=40043140", got, err)
	}
}

func TestMatchIsLongestFirst(t *testing.T) {
	d := Default()
	e, n, ok := d.Match(strings.Fields("stöð 2 sport 2 núna"))
	if !ok || n != 4 || e.ID != 22759656 {
		t.Fatalf("Match=%+v,%d,%v", e, n, ok)
	}
}

func TestSuggestFindsTypos(t *testing.T) {
	e, ok := Default().Suggest([]string{"hringbrut"})
	if !ok || e.Name != "Hringbraut" {
		t.Fatalf("Suggest(hringbrut)=%+v,%v", e, ok)
	}
	if _, ok := Default().Suggest([]string{"veðrið", "á", "morgun"}); ok {
		t.Fatalf("did not expect a suggestion for an unrelated phrase")
	}
}

func TestNewDirectoryValidates(t *testing.T) {
	if _, err := NewDirectory(nil); err == nil {
		t.Fatalf("expected error for empty directory")
	}
	if _, err := NewDirectory([]Entry{{Name: "X", ID: 0}}); err == nil {
		t.Fatalf("expected error for zero id")
	}
}

func TestLaterEntriesOverrideAliases(t *testing.T) {
	entries := append(DefaultEntries(), Entry{Name: "Hringbraut HD", ID: 99, Aliases: []string{"hringbraut"}})
	d, err := NewDirectory(entries)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := d.Lookup([]string{"hringbraut"})
	if !ok || e.ID != 99 {
		t.Fatalf("Lookup=%+v,%v want id 99", e, ok)
	}
}

func TestLenientEmptyPhraseError(t *testing.T) {
	_, err := Lenient{Directory: Default()}.Resolve(nil)
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if err.Error() != "empty channel phrase" {
		t.Fatalf("error=%q", err.Error())
	}
}
