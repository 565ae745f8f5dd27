package parser

import (
	"slices"
	"strings"

	"github.com/appengine-ltd/tvremote/internal/numeral"
)

// Symbol is one element of a grammar rule. match calls k for every way the
// symbol can consume tokens starting at pos, in order of preference, and
// stops as soon as k returns true.
type Symbol interface {
	match(tokens []string, pos int, k cont) bool
}

type cont func(end int, nodes []*Node) bool

// Rule is a named symbol; every match produces a Node.
type Rule struct {
	Name string
	Tag  string
	Body Symbol
}

// R builds a rule whose body is the sequence of syms.
func R(name string, syms ...Symbol) *Rule {
	return &Rule{Name: name, Body: Seq(syms...)}
}

// T builds a rule carrying a semantic tag, such as the button it presses.
func T(name, tag string, syms ...Symbol) *Rule {
	return &Rule{Name: name, Tag: tag, Body: Seq(syms...)}
}

func (r *Rule) match(tokens []string, pos int, k cont) bool {
	return r.Body.match(tokens, pos, func(end int, children []*Node) bool {
		n := &Node{
			Name:     r.Name,
			Tag:      r.Tag,
			Tokens:   slices.Clone(tokens[pos:end]),
			Children: children,
		}
		return k(end, []*Node{n})
	})
}

type words [][]string

// W matches any one of the given phrases. A phrase may span several words.
func W(phrases ...string) Symbol {
	w := make(words, 0, len(phrases))
	for _, p := range phrases {
		if toks := Tokenise(Normalise(p)); len(toks) > 0 {
			w = append(w, toks)
		}
	}
	return w
}

func (w words) match(tokens []string, pos int, k cont) bool {
	for _, phrase := range w {
		end := pos + len(phrase)
		if end > len(tokens) || !slices.Equal(tokens[pos:end], phrase) {
			continue
		}
		if k(end, nil) {
			return true
		}
	}
	return false
}

type seq []Symbol

// Seq matches syms one after another.
func Seq(syms ...Symbol) Symbol {
	if len(syms) == 1 {
		return syms[0]
	}
	return seq(syms)
}

func (s seq) match(tokens []string, pos int, k cont) bool {
	return s.from(0, tokens, pos, nil, k)
}

func (s seq) from(i int, tokens []string, pos int, acc []*Node, k cont) bool {
	if i == len(s) {
		return k(pos, acc)
	}
	return s[i].match(tokens, pos, func(end int, nodes []*Node) bool {
		next := append(slices.Clip(acc), nodes...)
		return s.from(i+1, tokens, end, next, k)
	})
}

type alt []Symbol

// Or matches the first of syms that leads to a complete parse.
func Or(syms ...Symbol) Symbol {
	return alt(syms)
}

func (a alt) match(tokens []string, pos int, k cont) bool {
	for _, s := range a {
		if s.match(tokens, pos, k) {
			return true
		}
	}
	return false
}

type optional struct{ sym Symbol }

// Opt matches sym or nothing, preferring sym.
func Opt(sym Symbol) Symbol {
	return optional{sym: sym}
}

func (o optional) match(tokens []string, pos int, k cont) bool {
	if o.sym.match(tokens, pos, k) {
		return true
	}
	return k(pos, nil)
}

type numeralSlot struct{}

// Num matches a spoken number of one or two fragments, optionally joined by
// "og" ("fimmtíu og einn"). The match is a Numeral node.
func Num() Symbol {
	return numeralSlot{}
}

func (numeralSlot) match(tokens []string, pos int, k cont) bool {
	if pos >= len(tokens) || !numeral.IsToken(tokens[pos]) {
		return false
	}
	ends := make([]int, 0, 3)
	if pos+2 < len(tokens) && tokens[pos+1] == "og" && numeral.IsToken(tokens[pos+2]) {
		ends = append(ends, pos+3)
	}
	if pos+1 < len(tokens) && numeral.IsToken(tokens[pos+1]) {
		ends = append(ends, pos+2)
	}
	ends = append(ends, pos+1)
	for _, end := range ends {
		n := &Node{Name: NodeNumeral, Tokens: slices.Clone(tokens[pos:end])}
		if k(end, []*Node{n}) {
			return true
		}
	}
	return false
}

type textSlot struct{}

// Text matches one or more arbitrary words, shortest first, so that a
// following symbol gets the chance to claim the tail of the utterance.
func Text() Symbol {
	return textSlot{}
}

func (textSlot) match(tokens []string, pos int, k cont) bool {
	for end := pos + 1; end <= len(tokens); end++ {
		if k(end, nil) {
			return true
		}
	}
	return false
}

// Match parses tokens as a whole with rule and returns the first complete
// parse, or nil.
func Match(rule *Rule, tokens []string) *Node {
	if len(tokens) == 0 {
		return nil
	}
	var root *Node
	rule.match(tokens, 0, func(end int, nodes []*Node) bool {
		if end != len(tokens) || len(nodes) != 1 {
			return false
		}
		root = nodes[0]
		return true
	})
	return root
}

// Walk visits n's subtree bottom-up: children left to right, then the node.
func Walk(n *Node, fn func(*Node) error) error {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if err := Walk(c, fn); err != nil {
			return err
		}
	}
	return fn(n)
}

// String renders the tree in bracket notation for logs and tests.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteString("(")
	b.WriteString(n.Name)
	if n.Tag != "" {
		b.WriteString(":" + n.Tag)
	}
	if len(n.Children) == 0 {
		b.WriteString(" " + n.Text())
	}
	for _, c := range n.Children {
		b.WriteString(" ")
		c.write(b)
	}
	b.WriteString(")")
}
