// Package service implements the insight aggregator
package service

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"mailsift/internal/core/insight"
	"mailsift/internal/core/ruleset"
	"mailsift/internal/platform/logger"
	str "mailsift/internal/platform/strings"
	"mailsift/internal/services/insights/domain"
)

// Config for the insights service
type Config struct {
	MaxBodyRunes int // per-message cap, 0 = insight.DefaultMaxBodyRunes
	Workers      int // concurrent message classification, 0 = 1
}

// Service implements domain.AnalyzerPort
type Service struct {
	Cls *insight.Classifier
	Cfg Config
	Log logger.Logger
}

// New constructs the aggregator over a compiled rule pack
func New(pack *ruleset.Pack, cfg Config) *Service {
	if pack == nil {
		panic("insights.Service requires a non nil rule pack")
	}
	if cfg.MaxBodyRunes <= 0 {
		cfg.MaxBodyRunes = insight.DefaultMaxBodyRunes
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Service{
		Cls: insight.New(pack),
		Cfg: cfg,
		Log: *logger.Named("insights"),
	}
}

type perMessage struct {
	todos     []string
	deadlines []string
	mentions  []string
	skipped   bool
	truncated bool
}

// Analyze guards, segments, and classifies every message in the batch.
// Messages are classified independently (concurrently when Workers > 1) but
// results are concatenated by input index, so output order is deterministic
func (s *Service) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	max := in.MaxBodyRunes
	if max <= 0 {
		max = s.Cfg.MaxBodyRunes
	}
	workers := in.Workers
	if workers <= 0 {
		workers = s.Cfg.Workers
	}
	name := strings.TrimSpace(in.Name)

	out := make([]perMessage, len(in.Messages))
	sem := make(chan struct{}, workers)
	wg := sync.WaitGroup{}

	for i := range in.Messages {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			out[i] = s.classify(in.Messages[i], max, name)
		}(i)
	}
	wg.Wait()

	rep := domain.Report{Messages: len(in.Messages)}
	for i := range out {
		m := in.Messages[i]
		rep.Todos = appendMatches(rep.Todos, m, out[i].todos)
		rep.Deadlines = appendMatches(rep.Deadlines, m, out[i].deadlines)
		rep.Mentions = appendMatches(rep.Mentions, m, out[i].mentions)
		if out[i].skipped {
			rep.Skipped++
		}
		if out[i].truncated {
			rep.Truncated++
		}
	}
	return rep, nil
}

func (s *Service) classify(m domain.MessageInput, max int, name string) perMessage {
	if strings.TrimSpace(m.Body) == "" {
		s.Log.Debug().Str("ref", m.Ref).Msg("skipping message with empty body")
		return perMessage{skipped: true}
	}

	// segment once, share the slice across all three classifiers
	sentences, truncated := insight.Extract(m.Body, max)
	if truncated {
		s.Log.Warn().
			Str("ref", m.Ref).
			Str("subject", str.ClipEllipsis(m.Subject, 30)).
			Int("original_runes", utf8.RuneCountInString(m.Body)).
			Int("kept_runes", max).
			Msg("message body truncated before analysis")
	}
	r := perMessage{truncated: truncated}
	r.todos = s.Cls.Todos(sentences)
	r.deadlines = s.Cls.Deadlines(sentences)
	if name != "" {
		r.mentions = s.Cls.Mentions(sentences, name)
	}
	return r
}

func appendMatches(dst []domain.Match, m domain.MessageInput, sentences []string) []domain.Match {
	for _, s := range sentences {
		dst = append(dst, domain.Match{Ref: m.Ref, Subject: m.Subject, Sentence: s})
	}
	return dst
}
