package resolve

import (
	"maps"

	"github.com/appengine-ltd/tvremote/internal/parser"
)

// Priorities holds the bonus added to a candidate's parser score, keyed by
// alternative id. Alternatives not listed get 0.
type Priorities map[string]int

// DefaultPriorities makes short navigation phrases ("næsta stöð") win over
// a free-text channel change, "byrja upp á nýtt" start the programme over
// instead of reloading, and "spila áfram" resume playback instead of
// looking for a programme called "áfram".
func DefaultPriorities() Priorities {
	return Priorities{
		parser.AltRemoteProgram: 720,
		parser.AltStartOver:     100,
		parser.AltRemotePlay:    50,
	}
}

func (p Priorities) Of(id string) int {
	return p[id]
}

// With returns a copy of p with overrides applied.
func (p Priorities) With(overrides map[string]int) Priorities {
	out := maps.Clone(p)
	if out == nil {
		out = Priorities{}
	}
	maps.Copy(out, overrides)
	return out
}

// Selection is the candidate that won disambiguation.
type Selection struct {
	Candidate parser.Candidate
	Priority  int
}

func (s Selection) Total() int {
	return s.Candidate.Score + s.Priority
}

// Select picks the candidate with the highest score plus priority. Ties go
// to the earlier candidate.
func (p Priorities) Select(candidates []parser.Candidate) (Selection, bool) {
	var best Selection
	found := false
	for _, c := range candidates {
		s := Selection{Candidate: c, Priority: p.Of(c.Alternative)}
		if !found || s.Total() > best.Total() {
			best, found = s, true
		}
	}
	return best, found
}
