// Package query is the per-utterance boundary: it parses, assembles and
// reports, and guarantees exactly one outcome for every call.
package query

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/appengine-ltd/tvremote/internal/command"
	"github.com/appengine-ltd/tvremote/internal/parser"
	"github.com/appengine-ltd/tvremote/internal/report"
	"github.com/appengine-ltd/tvremote/internal/resolve"
)

// Engine holds only read-only collaborators and may be shared between
// goroutines.
type Engine struct {
	parser    *parser.Parser
	assembler *resolve.Assembler
	logger    *zap.Logger
}

type Option func(*Engine)

func WithParser(p *parser.Parser) Option {
	return func(e *Engine) { e.parser = p }
}

func WithAssembler(a *resolve.Assembler) Option {
	return func(e *Engine) { e.assembler = a }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		parser:    parser.New(),
		assembler: resolve.NewAssembler(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process resolves one utterance.
func (e *Engine) Process(utterance string) report.Outcome {
	id := uuid.NewString()
	log := e.logger.With(zap.String("request_id", id))
	log.Debug("processing utterance", zap.String("utterance", utterance))

	var tokens []string
	out := report.Guard(func() (command.Command, error) {
		tokens = e.parser.Tokens(utterance)
		candidates := e.parser.Parse(utterance)
		return e.assemble(log, candidates)
	})
	if out.Status == report.NotUnderstood && out.Hint == "" {
		if hint, ok := resolve.Hint(tokens); ok {
			out.Hint = hint
		}
	}
	e.logOutcome(log, out)
	return out
}

// ProcessCandidates resolves candidates produced by an external parser.
func (e *Engine) ProcessCandidates(candidates []parser.Candidate) report.Outcome {
	log := e.logger.With(zap.String("request_id", uuid.NewString()))
	out := report.Guard(func() (command.Command, error) {
		return e.assemble(log, candidates)
	})
	e.logOutcome(log, out)
	return out
}

func (e *Engine) assemble(log *zap.Logger, candidates []parser.Candidate) (command.Command, error) {
	log.Debug("candidates", zap.Int("count", len(candidates)))
	c, sel, err := e.assembler.Assemble(candidates)
	if sel.Candidate.Root != nil {
		log.Debug("selected alternative",
			zap.String("alternative", sel.Candidate.Alternative),
			zap.Int("score", sel.Candidate.Score),
			zap.Int("priority", sel.Priority),
			zap.Stringer("tree", sel.Candidate.Root),
		)
	}
	return c, err
}

func (e *Engine) logOutcome(log *zap.Logger, out report.Outcome) {
	switch out.Status {
	case report.Success:
		log.Info("command resolved", zap.String("command", out.Command))
	case report.NotUnderstood:
		log.Info("query not understood", zap.String("detail", out.Detail))
	default:
		log.Error("resolution failed", zap.String("code", out.Code()))
	}
}
