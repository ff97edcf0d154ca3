// Package oracle adapts generative text models into a domain.Oracle: an
// ordered chain of models, each asked in turn until one answers with text
// that contains parseable JSON.
package oracle

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"smart_travel/internal/adapters/observability"
)

var ErrEmpty = errors.New("oracle: empty response")

// Model is a single text-completion backend.
type Model interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

type Chain struct {
	models  []Model
	timeout time.Duration
}

// NewChain keeps the given order. timeout bounds each model call; zero means
// only the caller's context applies.
func NewChain(timeout time.Duration, models ...Model) *Chain {
	return &Chain{models: models, timeout: timeout}
}

func (c *Chain) Len() int { return len(c.models) }

// Complete returns the first JSON value any model produced, or nil.
func (c *Chain) Complete(ctx context.Context, prompt string) any {
	for _, m := range c.models {
		if ctx.Err() != nil {
			return nil
		}
		v, err := c.try(ctx, m, prompt)
		if err == nil {
			observability.ObserveOracle(m.Name(), "ok")
			return v
		}
		outcome := "error"
		if errors.Is(err, errNoJSON) {
			outcome = "unparseable"
		}
		observability.ObserveOracle(m.Name(), outcome)
		log.Warn().Err(err).Str("model", m.Name()).Msg("oracle model failed")
	}
	if len(c.models) > 0 {
		log.Warn().Int("models", len(c.models)).Msg("all oracle models failed")
	}
	return nil
}

var errNoJSON = errors.New("oracle: no JSON in response")

func (c *Chain) try(ctx context.Context, m Model, prompt string) (any, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	text, err := m.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrEmpty
	}
	v, ok := ExtractJSON(text)
	if !ok {
		return nil, errNoJSON
	}
	return v, nil
}
