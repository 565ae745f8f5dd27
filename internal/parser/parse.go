// Package parser turns an utterance into candidate parse trees, one per
// grammar alternative that matches the whole utterance.
package parser

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

// NewWithRegistry builds a parser over a custom grammar.
func NewWithRegistry(r *Registry) *Parser {
	return &Parser{registry: r}
}

// Parse returns every alternative that covers the whole utterance, in
// registration order. Each candidate carries a fresh tree.
func (p *Parser) Parse(raw string) []Candidate {
	tokens := Tokenise(Normalise(raw))
	if len(tokens) == 0 {
		return nil
	}
	var out []Candidate
	for _, alt := range p.registry.alternatives {
		root := Match(alt.Rule, tokens)
		if root == nil {
			continue
		}
		out = append(out, Candidate{
			Alternative: alt.ID,
			Score:       0,
			Root:        root,
		})
	}
	return out
}

// Tokens returns the normalised tokens of raw, as Parse sees them.
func (p *Parser) Tokens(raw string) []string {
	return Tokenise(Normalise(raw))
}
