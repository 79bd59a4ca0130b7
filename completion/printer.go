// Copyright © 2026 The clang-complete authors

package completion

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultMaxCompletions is the default number of counted lines after which
// a Printer stops.
const DefaultMaxCompletions = 1000

const tracerName = "github.com/luthersystems/clang-complete/completion"

// Printer writes candidates to a sink in the completion protocol.
type Printer struct {
	max    int
	logger *zap.Logger
	tracer trace.Tracer
}

// Option configures a Printer.
type Option func(*Printer)

// WithMaxCompletions sets the soft cap on counted lines.
func WithMaxCompletions(n int) Option {
	return func(p *Printer) { p.max = n }
}

// WithLogger sets the logger used for per-pass summaries.
func WithLogger(l *zap.Logger) Option {
	return func(p *Printer) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Printer) {
		if tp != nil {
			p.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewPrinter returns a Printer with DefaultMaxCompletions and a no-op logger
// unless opts say otherwise.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{
		max:    DefaultMaxCompletions,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.tracer == nil {
		p.tracer = otel.GetTracerProvider().Tracer(tracerName)
	}
	return p
}

// MaxCompletions returns the configured cap.
func (p *Printer) MaxCompletions() int { return p.max }

// Print writes one line per matching candidate, in input order, and returns
// the number of counted lines. Lines without a body are written but not
// counted. The cap is checked after each counted line, so iteration stops
// once the count exceeds it and the result may be one above the cap.
func (p *Printer) Print(ctx context.Context, w io.Writer, candidates []Candidate, prefix string) (int, error) {
	_, span := p.tracer.Start(ctx, "completion.Print")
	defer span.End()

	var (
		n          int
		bare       int
		noTyped    int
		mismatched int
	)
	for _, c := range candidates {
		head := FindHeadMatch(c, prefix)
		switch head.Result {
		case NoTypedTextChunk:
			noTyped++
			continue
		case PrefixMismatch:
			mismatched++
			continue
		}
		emitted, err := WriteCandidateLine(w, c, head)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return n, err
		}
		if !emitted {
			bare++
			continue
		}
		n++
		if n > p.max {
			break
		}
	}

	span.SetAttributes(
		attribute.String("completion.prefix", prefix),
		attribute.Int("completion.candidates", len(candidates)),
		attribute.Int("completion.emitted", n),
	)
	p.logger.Debug("printed completions",
		zap.String("prefix", prefix),
		zap.Int("candidates", len(candidates)),
		zap.Int("emitted", n),
		zap.Int("bare", bare),
		zap.Int("no_typed_text", noTyped),
		zap.Int("prefix_mismatch", mismatched),
	)
	return n, nil
}

// Print writes candidates with a default Printer capped at max.
func Print(w io.Writer, candidates []Candidate, prefix string, max int) (int, error) {
	return NewPrinter(WithMaxCompletions(max)).Print(context.Background(), w, candidates, prefix)
}
