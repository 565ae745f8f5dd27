package parser

import "strings"

// Node is one named constituent of a parse tree. Terminals are not kept as
// nodes; a node records the tokens it covers.
type Node struct {
	Name     string
	Tag      string
	Tokens   []string
	Children []*Node
}

func (n *Node) Text() string {
	return strings.Join(n.Tokens, " ")
}

// Child returns the first direct child called name.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Candidate is one complete parse of an utterance by a grammar alternative.
// Score is supplied by the parser; higher is better.
type Candidate struct {
	Alternative string
	Score       int
	Root        *Node
}

// Alternative is a top-level grammar production that can match a whole
// utterance.
type Alternative struct {
	ID   string
	Rule *Rule
}

// Node names produced by the default grammar.
const (
	NodeVolumeSet     = "VolumeSet"
	NodeVolumeStep    = "VolumeStep"
	NodeMute          = "Mute"
	NodeRemote        = "Remote"
	NodeChannelSelect = "ChannelSelect"
	NodeChannelChange = "ChannelChange"
	NodeSearch        = "Search"
	NodeTimeTravel    = "TimeTravel"
	NodeStartOver     = "StartOver"

	NodeVolumeUp    = "VolumeUp"
	NodeVolumeDown  = "VolumeDown"
	NodeVolumeLevel = "VolumeLevel"
	NodePercentUnit = "PercentUnit"
	NodeButton      = "Button"
	NodeDirection   = "Direction"
	NodeSpool       = "Spool"
	NodeRepeat      = "Repeat"
	NodeSeconds     = "Seconds"
	NodeNumeral     = "Numeral"
	NodeChannelName = "ChannelName"
	NodeChannelText = "ChannelText"
	NodeSearchTerm  = "SearchTerm"
	NodeProgram     = "Program"
	NodeDay         = "Day"
)
