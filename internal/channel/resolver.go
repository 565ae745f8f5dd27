package channel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/tvremote/internal/parser"
)

var ErrUnknown = errors.New("unknown channel")

// UnknownError reports a channel phrase the directory could not resolve.
type UnknownError struct {
	Phrase     string
	Suggestion string
}

func (e *UnknownError) Error() string {
	if strings.TrimSpace(e.Phrase) == "" {
		return "empty channel phrase"
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown channel %q (closest: %s)", e.Phrase, e.Suggestion)
	}
	return fmt.Sprintf("unknown channel %q", e.Phrase)
}

func (e *UnknownError) Unwrap() error { return ErrUnknown }

// Resolver turns the words of a channel phrase into the CHANNEL argument.
type Resolver interface {
	Resolve(tokens []string) (string, error)
}

// Strict accepts only phrases that fully name a directory channel and
// answers with the numeric id.
type Strict struct {
	Directory *Directory
}

func (s Strict) Resolve(tokens []string) (string, error) {
	if e, ok := s.Directory.Lookup(tokens); ok {
		return strconv.FormatInt(e.ID, 10), nil
	}
	unknown := &UnknownError{Phrase: strings.Join(tokens, " ")}
	if e, ok := s.Directory.Suggest(tokens); ok {
		unknown.Suggestion = e.Name
	}
	return "", unknown
}

// Lenient answers with the numeric id when the phrase names a channel and
// otherwise passes the phrase through lower-cased.
type Lenient struct {
	Directory *Directory
}

func (l Lenient) Resolve(tokens []string) (string, error) {
	if e, ok := l.Directory.Lookup(tokens); ok {
		return strconv.FormatInt(e.ID, 10), nil
	}
	text := strings.TrimSpace(parser.Lower(strings.Join(tokens, " ")))
	if text == "" {
		return "", &UnknownError{Phrase: strings.Join(tokens, " ")}
	}
	return text, nil
}
