// Package resolve turns parse candidates into one finished command: it
// picks the best candidate, runs the node actions over its tree and
// finalises the partial command.
package resolve

import (
	"fmt"

	"github.com/appengine-ltd/tvremote/internal/channel"
	"github.com/appengine-ltd/tvremote/internal/command"
	"github.com/appengine-ltd/tvremote/internal/inflect"
	"github.com/appengine-ltd/tvremote/internal/parser"
	"github.com/appengine-ltd/tvremote/internal/report"
)

// Assembler is safe for concurrent use; every call works on its own
// Builder and only reads the shared tables.
type Assembler struct {
	actions    Actions
	priorities Priorities
	deps       deps
}

type Option func(*Assembler)

func WithActions(a Actions) Option {
	return func(as *Assembler) { as.actions = a }
}

func WithPriorities(p Priorities) Option {
	return func(as *Assembler) { as.priorities = p }
}

func WithDirectory(d *channel.Directory) Option {
	return func(as *Assembler) { as.deps.directory = d }
}

func WithInflector(i inflect.Inflector) Option {
	return func(as *Assembler) { as.deps.inflector = i }
}

func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		actions:    DefaultActions(),
		priorities: DefaultPriorities(),
		deps: deps{
			directory: channel.Default(),
			inflector: inflect.Default(),
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble selects one candidate and builds its command.
func (a *Assembler) Assemble(candidates []parser.Candidate) (command.Command, Selection, error) {
	sel, ok := a.priorities.Select(candidates)
	if !ok {
		return command.Command{}, Selection{}, report.NotUnderstoodf("no alternative matched")
	}
	c, err := a.Build(sel.Candidate.Root)
	if err != nil {
		return command.Command{}, sel, fmt.Errorf("%s: %w", sel.Candidate.Alternative, err)
	}
	return c, sel, nil
}

// Build walks root with a fresh Builder and finalises the command.
func (a *Assembler) Build(root *parser.Node) (command.Command, error) {
	if root == nil {
		return command.Command{}, report.NotUnderstoodf("empty parse tree")
	}
	b := NewBuilder()
	err := parser.Walk(root, func(n *parser.Node) error {
		if act, ok := a.actions[n.Name]; ok {
			return act(b, n)
		}
		return nil
	})
	if err != nil {
		return command.Command{}, err
	}
	return b.Build(a.deps)
}
