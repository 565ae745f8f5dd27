package resolve

import (
	"fmt"

	"github.com/appengine-ltd/tvremote/internal/command"
	"github.com/appengine-ltd/tvremote/internal/numeral"
	"github.com/appengine-ltd/tvremote/internal/parser"
)

// Action is the semantic action run when the walk reaches a node. Children
// have already been visited.
type Action func(b *Builder, n *parser.Node) error

// Actions maps node names to their action. Nodes without an entry are
// structural and contribute nothing by themselves.
type Actions map[string]Action

func family(k command.Kind) Action {
	return func(b *Builder, _ *parser.Node) error { return b.SetKind(k) }
}

// DefaultActions covers every node name of parser.DefaultRegistry.
func DefaultActions() Actions {
	return Actions{
		parser.NodeVolumeSet:     family(command.VolumeAbs),
		parser.NodeVolumeStep:    family(command.VolumeRel),
		parser.NodeMute:          family(command.Mute),
		parser.NodeRemote:        family(command.Button),
		parser.NodeChannelSelect: family(command.ChannelSelect),
		parser.NodeChannelChange: family(command.ChannelSelect),
		parser.NodeSearch:        family(command.Search),
		parser.NodeTimeTravel:    family(command.TimeTravel),
		parser.NodeStartOver:     family(command.StartOver),

		parser.NodeVolumeUp: func(b *Builder, _ *parser.Node) error {
			b.negative = false
			return nil
		},
		parser.NodeVolumeDown: func(b *Builder, _ *parser.Node) error {
			b.negative = true
			return nil
		},
		parser.NodeVolumeLevel: volumeLevel,
		parser.NodeRepeat:      repeat,
		parser.NodeSeconds: func(b *Builder, n *parser.Node) error {
			b.setSeconds(numeralOf(n))
			return nil
		},
		parser.NodeDirection: func(b *Builder, n *parser.Node) error {
			return pressButton(b, n, true)
		},
		parser.NodeSpool: func(b *Builder, n *parser.Node) error {
			return pressButton(b, n, false)
		},
		parser.NodeButton: func(b *Builder, n *parser.Node) error {
			return pressButton(b, n, false)
		},
		parser.NodeDay: func(b *Builder, n *parser.Node) error {
			b.day = n.Tag
			return nil
		},
		parser.NodeChannelName: func(b *Builder, n *parser.Node) error {
			b.setChannel(n.Tokens, channelStrict)
			return nil
		},
		parser.NodeChannelText: func(b *Builder, n *parser.Node) error {
			b.setChannel(n.Tokens, channelLenient)
			return nil
		},
		parser.NodeSearchTerm: func(b *Builder, n *parser.Node) error {
			b.search = n.Text()
			return nil
		},
		parser.NodeProgram: func(b *Builder, n *parser.Node) error {
			b.program = n.Text()
			return nil
		},
	}
}

func pressButton(b *Builder, n *parser.Node, repeatable bool) error {
	if !command.IsButton(n.Tag) {
		return fmt.Errorf("node %s carries unknown button %q", n.Name, n.Tag)
	}
	b.setButton(n.Tag, repeatable)
	return nil
}

// numeralOf returns the fragments of n's numeral child, or nil.
func numeralOf(n *parser.Node) []numeral.Fragment {
	if c := n.Child(parser.NodeNumeral); c != nil {
		return numeral.Fragments(c.Tokens)
	}
	return nil
}

func volumeLevel(b *Builder, n *parser.Node) error {
	frags := numeralOf(n)
	percent := n.Child(parser.NodePercentUnit) != nil
	for _, f := range frags {
		if f.Kind() == numeral.PercentLiteral {
			percent = true
		}
	}
	b.setLevel(frags, percent)
	return nil
}

// repeat reads either a spoken count ("þrisvar") or a numeral followed by
// "sinnum".
func repeat(b *Builder, n *parser.Node) error {
	if frags := numeralOf(n); frags != nil {
		b.setRepeat(frags, 0)
		return nil
	}
	if v, ok := numeral.Multiplicative(n.Text()); ok {
		b.setRepeat(nil, v)
		return nil
	}
	b.setRepeat(nil, 0)
	return nil
}
