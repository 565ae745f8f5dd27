package command

import (
	"fmt"
	"strings"
)

// Separator joins the kind token and its arguments on the wire.
const Separator = ";"

// Encode renders c as KIND(;ARG)*.
func Encode(c Command) string {
	if len(c.args) == 0 {
		return c.kind.String()
	}
	return c.kind.String() + Separator + strings.Join(c.args, Separator)
}

// Decode parses the wire form produced by Encode.
func Decode(s string) (Command, error) {
	parts := strings.Split(s, Separator)
	kind, ok := ParseKind(parts[0])
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownKind, parts[0])
	}
	return New(kind, parts[1:]...)
}

// Payload is the structured form of a command for callers that do not want
// to parse the wire string.
type Payload struct {
	Kind string   `json:"kind"`
	Args []string `json:"args"`
}

func (c Command) Payload() Payload {
	args := c.Args()
	if args == nil {
		args = []string{}
	}
	return Payload{Kind: c.kind.String(), Args: args}
}

// FromPayload validates p and returns the command it describes.
func FromPayload(p Payload) (Command, error) {
	kind, ok := ParseKind(p.Kind)
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind)
	}
	return New(kind, p.Args...)
}
