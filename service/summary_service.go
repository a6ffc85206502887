package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"earnings/customerrors"
	"earnings/model"

	"github.com/rs/zerolog/log"
)

const DefaultSummaryTimeout = 20 * time.Second

type SummaryService interface {
	// Generate always returns non-empty text.
	Generate(ctx context.Context, quote model.Quote, earnings model.EarningsSnapshot) string
}

type SummaryServiceImpl struct {
	generator TextGenerator
	timeout   time.Duration
}

// NewSummaryService accepts a nil generator, in which case every summary is
// produced by the local template.
func NewSummaryService(generator TextGenerator, timeout time.Duration) *SummaryServiceImpl {
	if timeout <= 0 {
		timeout = DefaultSummaryTimeout
	}
	return &SummaryServiceImpl{generator: generator, timeout: timeout}
}

func (s *SummaryServiceImpl) Generate(ctx context.Context, quote model.Quote, earnings model.EarningsSnapshot) string {
	facts := newSummaryFacts(quote, earnings)
	return withFallback(
		func() (string, error) { return s.generate(ctx, facts) },
		func() string { return templateSummary(facts) },
	)
}

func (s *SummaryServiceImpl) generate(ctx context.Context, facts summaryFacts) (string, error) {
	if s.generator == nil {
		return "", customerrors.ErrNoTextGenerator
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(ctx, analystSystemPrompt, buildPrompt(facts))
	if err != nil {
		return "", err
	}
	log.Debug().Str("provider", s.generator.Name()).Str("symbol", facts.Symbol).Msg("summary generated")
	return text, nil
}

// withFallback returns primary's text, or fallback's when primary errors or
// yields nothing. It never fails.
func withFallback(primary func() (string, error), fallback func() string) string {
	text, err := primary()
	if err == nil {
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
		err = customerrors.ErrEmptyCompletion
	}

	if errors.Is(err, customerrors.ErrNoTextGenerator) {
		log.Debug().Msg("no text generator configured, using template summary")
	} else {
		log.Warn().Err(err).Msg("summary generation degraded, using template summary")
	}
	return fallback()
}
