package resolve

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/appengine-ltd/tvremote/internal/channel"
	"github.com/appengine-ltd/tvremote/internal/command"
	"github.com/appengine-ltd/tvremote/internal/inflect"
	"github.com/appengine-ltd/tvremote/internal/numeral"
	"github.com/appengine-ltd/tvremote/internal/report"
)

// ErrFamilyConflict means two nodes of one tree claimed different command
// families. It points at a grammar defect, not at the utterance.
var ErrFamilyConflict = errors.New("command family set twice")

type channelMode int

const (
	channelStrict channelMode = iota
	channelLenient
)

// Builder is the partial command collected while one parse tree is
// walked. A Builder belongs to a single resolution and is never reused.
type Builder struct {
	kind    command.Kind
	hasKind bool

	button     string
	repeatable bool
	negative   bool
	percent    bool

	level      []numeral.Fragment
	hasLevel   bool
	repeat     []numeral.Fragment
	repeatWord int
	hasRepeat  bool
	seconds    []numeral.Fragment
	hasSeconds bool

	channel     []string
	channelMode channelMode
	hasChannel  bool

	search  string
	program string
	day     string
}

func NewBuilder() *Builder {
	return &Builder{}
}

// SetKind fixes the command family. Setting the same family again is
// harmless; a different one is an error.
func (b *Builder) SetKind(k command.Kind) error {
	if b.hasKind && b.kind != k {
		return fmt.Errorf("%w: %s then %s", ErrFamilyConflict, b.kind, k)
	}
	b.kind, b.hasKind = k, true
	return nil
}

// Kind reports the family, if one was set.
func (b *Builder) Kind() (command.Kind, bool) {
	return b.kind, b.hasKind
}

func (b *Builder) setButton(name string, repeatable bool) {
	b.button = name
	b.repeatable = b.repeatable || repeatable
}

func (b *Builder) setLevel(frags []numeral.Fragment, percent bool) {
	b.level, b.hasLevel = frags, true
	b.percent = b.percent || percent
}

func (b *Builder) setRepeat(frags []numeral.Fragment, word int) {
	b.repeat, b.repeatWord, b.hasRepeat = frags, word, true
}

func (b *Builder) setSeconds(frags []numeral.Fragment) {
	b.seconds, b.hasSeconds = frags, true
}

func (b *Builder) setChannel(tokens []string, mode channelMode) {
	b.channel, b.channelMode, b.hasChannel = tokens, mode, true
}

// deps are the read-only tables a Builder needs to finish.
type deps struct {
	directory *channel.Directory
	inflector inflect.Inflector
}

// Build finalises the command. Missing required parts are reported as not
// understood.
func (b *Builder) Build(d deps) (command.Command, error) {
	if !b.hasKind {
		return command.Command{}, report.NotUnderstoodf("no command family")
	}
	switch b.kind {
	case command.VolumeAbs:
		return b.buildVolumeAbs()
	case command.VolumeRel:
		return b.buildVolumeRel()
	case command.Mute:
		return command.New(command.Mute)
	case command.Button:
		return b.buildButton()
	case command.ChannelSelect:
		return b.buildChannel(d)
	case command.Search:
		return b.buildSearch(d)
	case command.TimeTravel:
		return b.buildTimeTravel(d)
	case command.StartOver:
		return command.New(command.StartOver)
	default:
		return command.Command{}, fmt.Errorf("no builder for %s", b.kind)
	}
}

func (b *Builder) buildVolumeAbs() (command.Command, error) {
	if !b.hasLevel || len(b.level) == 0 {
		return command.Command{}, report.NotUnderstoodf("volume level without a number")
	}
	mode := numeral.Absolute
	if b.percent {
		mode = numeral.Percent
	}
	r := numeral.Resolve(b.level, mode, false)
	return command.New(command.VolumeAbs, strconv.Itoa(r.Value))
}

func (b *Builder) buildVolumeRel() (command.Command, error) {
	var frags []numeral.Fragment
	if b.hasLevel {
		frags = b.level
	}
	r := numeral.Resolve(frags, numeral.Relative, b.negative)
	return command.New(command.VolumeRel, fmt.Sprintf("%+d", r.Value))
}

func (b *Builder) buildButton() (command.Command, error) {
	if b.button == "" {
		return command.Command{}, report.NotUnderstoodf("remote command without a button")
	}
	args := []string{b.button}
	switch {
	case b.repeatable && b.hasRepeat:
		count := b.repeatWord
		if count == 0 {
			r := numeral.Resolve(b.repeat, numeral.Absolute, false)
			count = r.Value
			if r.Status != numeral.Parsed || count < 1 {
				count = 1
			}
		}
		args = append(args, command.MarkerRepeat, strconv.Itoa(count))
	case b.hasSeconds:
		r := numeral.Resolve(b.seconds, numeral.Absolute, false)
		if r.Status == numeral.Parsed && r.Value > 0 {
			args = append(args, command.MarkerSeconds, strconv.Itoa(r.Value))
		}
	}
	return command.New(command.Button, args...)
}

func (b *Builder) buildChannel(d deps) (command.Command, error) {
	if !b.hasChannel || len(b.channel) == 0 {
		return command.Command{}, report.NotUnderstoodf("channel command without a channel")
	}
	if d.directory == nil {
		return command.Command{}, errors.New("channel directory not configured")
	}
	var r channel.Resolver = channel.Strict{Directory: d.directory}
	if b.channelMode == channelLenient {
		r = channel.Lenient{Directory: d.directory}
	}
	id, err := r.Resolve(b.channel)
	if err != nil {
		var unknown *channel.UnknownError
		if errors.As(err, &unknown) {
			return command.Command{}, &report.Error{Reason: "channel", Hint: unknown.Suggestion, Cause: err}
		}
		return command.Command{}, fmt.Errorf("resolve channel: %w", err)
	}
	return command.New(command.ChannelSelect, id)
}

func (b *Builder) buildSearch(d deps) (command.Command, error) {
	if b.search == "" {
		return command.Command{}, report.NotUnderstoodf("search without a term")
	}
	f := inflect.Reduce(d.inflector, b.search)
	if f.Oblique == f.Base {
		return command.New(command.Search, f.Base)
	}
	return command.New(command.Search, f.Oblique, f.Base)
}

func (b *Builder) buildTimeTravel(d deps) (command.Command, error) {
	if b.program == "" {
		return command.Command{}, report.NotUnderstoodf("time travel without a program")
	}
	day := b.day
	if day == "" {
		day = command.Today
	}
	f := inflect.Reduce(d.inflector, b.program)
	return command.New(command.TimeTravel, f.Base, day)
}
