// Package command holds the closed vocabulary of set-top-box commands and
// their wire encoding.
package command

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

type Kind int

const (
	Button Kind = iota
	ChannelSelect
	VolumeRel
	VolumeAbs
	Mute
	Search
	TimeTravel
	StartOver
)

var kindTokens = map[Kind]string{
	Button:        "REMOTE",
	ChannelSelect: "CHANNEL",
	VolumeRel:     "VOLUME_REL",
	VolumeAbs:     "VOLUME_ABS",
	Mute:          "MUTE",
	Search:        "SEARCH",
	TimeTravel:    "TIMETRAVEL",
	StartOver:     "STARTOVER",
}

// Kinds lists the vocabulary in declaration order.
func Kinds() []Kind {
	return []Kind{Button, ChannelSelect, VolumeRel, VolumeAbs, Mute, Search, TimeTravel, StartOver}
}

// String returns the wire token of k.
func (k Kind) String() string {
	if tok, ok := kindTokens[k]; ok {
		return tok
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a wire token back to its Kind.
func ParseKind(tok string) (Kind, bool) {
	for k, t := range kindTokens {
		if t == tok {
			return k, true
		}
	}
	return 0, false
}

// Argument markers that follow a button name.
const (
	MarkerRepeat  = "MUL"
	MarkerSeconds = "SECONDS"
)

// Day tags accepted by TimeTravel.
const (
	Today              = "today"
	Yesterday          = "yesterday"
	DayBeforeYesterday = "daybeforeyesterday"
)

var days = []string{Today, Yesterday, DayBeforeYesterday}

var buttons = []string{
	"TV", "VOD", "MENU", "BACKSPACE", "SEARCH",
	"UP", "DOWN", "LEFT", "RIGHT", "OK", "BACK", "INFO", "YELLOW",
	"REWIND", "PLAY", "FORWARD", "STOP", "PAUSE",
	"PROGRAM_UP", "PROGRAM_DOWN", "RELOAD", "QUIT", "FAVORITE", "OPTIONS", "LANGUAGE",
}

// Buttons lists the remote-control button names.
func Buttons() []string {
	return slices.Clone(buttons)
}

// IsButton reports whether name is a known remote button.
func IsButton(name string) bool {
	return slices.Contains(buttons, name)
}

var (
	ErrUnknownKind     = errors.New("unknown command kind")
	ErrArity           = errors.New("wrong number of arguments")
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	unsignedRE = regexp.MustCompile(`^\d+$`)
	signedRE   = regexp.MustCompile(`^[+-]\d+$`)
)

// Command is a resolved, validated command. The zero value is not valid;
// build one with New.
type Command struct {
	kind Kind
	args []string
}

// New validates args against the shape declared for kind.
func New(kind Kind, args ...string) (Command, error) {
	if _, ok := kindTokens[kind]; !ok {
		return Command{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	for _, a := range args {
		if strings.Contains(a, Separator) {
			return Command{}, fmt.Errorf("%w: %s argument %q contains %q", ErrInvalidArgument, kind, a, Separator)
		}
	}
	if err := validate(kind, args); err != nil {
		return Command{}, err
	}
	if len(args) == 0 {
		return Command{kind: kind}, nil
	}
	return Command{kind: kind, args: slices.Clone(args)}, nil
}

func (c Command) Kind() Kind { return c.kind }

// Args returns a copy of the argument list.
func (c Command) Args() []string { return slices.Clone(c.args) }

func (c Command) String() string { return Encode(c) }

func validate(kind Kind, args []string) error {
	arity := func(allowed ...int) error {
		if slices.Contains(allowed, len(args)) {
			return nil
		}
		return fmt.Errorf("%w: %s takes %v, got %d", ErrArity, kind, allowed, len(args))
	}
	invalid := func(format string, a ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, kind, fmt.Sprintf(format, a...))
	}

	switch kind {
	case Button:
		if err := arity(1, 3); err != nil {
			return err
		}
		if !IsButton(args[0]) {
			return invalid("unknown button %q", args[0])
		}
		if len(args) == 3 {
			if args[1] != MarkerRepeat && args[1] != MarkerSeconds {
				return invalid("unknown marker %q", args[1])
			}
			if !unsignedRE.MatchString(args[2]) {
				return invalid("count %q is not a decimal integer", args[2])
			}
		}
	case ChannelSelect:
		if err := arity(1); err != nil {
			return err
		}
		if strings.TrimSpace(args[0]) == "" {
			return invalid("empty channel")
		}
	case VolumeRel:
		if err := arity(1); err != nil {
			return err
		}
		if !signedRE.MatchString(args[0]) {
			return invalid("delta %q must be a signed integer", args[0])
		}
	case VolumeAbs:
		if err := arity(1); err != nil {
			return err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || !unsignedRE.MatchString(args[0]) || n > 100 {
			return invalid("level %q outside 0-100", args[0])
		}
	case Mute, StartOver:
		return arity(0)
	case Search:
		if err := arity(1, 2); err != nil {
			return err
		}
		for _, a := range args {
			if strings.TrimSpace(a) == "" {
				return invalid("empty search term")
			}
		}
	case TimeTravel:
		if err := arity(2); err != nil {
			return err
		}
		if strings.TrimSpace(args[0]) == "" {
			return invalid("empty program")
		}
		if !slices.Contains(days, args[1]) {
			return invalid("unknown day %q", args[1])
		}
	}
	return nil
}
