// Package job runs one lookup-encode-save pipeline per requested word.
package job

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/autoanki/internal/anki"
	"github.com/f3rmion/autoanki/internal/entry"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

// ErrEmptyWord is returned for a word that is blank after normalization.
var ErrEmptyWord = errors.New("empty word")

// Lookuper fetches and extracts the dictionary entry for a word.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (entry.Entry, error)
}

// Saver submits an encoded note.
type Saver interface {
	Save(ctx context.Context, payload string) error
}

// Outcome is the result of one word's pipeline.
type Outcome struct {
	Index int // Position in the requested word list
	Word  string
	Err   error
}

// OK reports whether the note was saved.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Observer is called once per finished job, from the job's goroutine. It must
// be safe for concurrent use.
type Observer func(Outcome)

// Runner runs word jobs. Jobs share only the Lookuper and Saver, which must
// be safe for concurrent use.
type Runner struct {
	lookup   Lookuper
	save     Saver
	observer Observer
	log      *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver streams outcomes to fn as jobs finish.
func WithObserver(fn Observer) Option {
	return func(r *Runner) {
		r.observer = fn
	}
}

// NewRunner creates a Runner.
func NewRunner(lookup Lookuper, save Saver, logger *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		lookup: lookup,
		save:   save,
		log:    logger.With(zap.String("component", "job")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NormalizeWord trims w, collapses inner whitespace and lowercases it.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.Join(strings.Fields(w), " "))
}

// Run starts one goroutine per word, with no limit, and waits for all of them.
// Duplicates are processed independently. Outcomes are returned in input
// order; a failing or panicking job never affects the others.
func (r *Runner) Run(ctx context.Context, words []string) []Outcome {
	outcomes := make([]Outcome, len(words))

	var wg conc.WaitGroup
	for i, word := range words {
		wg.Go(func() {
			outcomes[i] = r.runOne(ctx, i, word)
			if r.observer != nil {
				r.observer(outcomes[i])
			}
		})
	}
	wg.Wait()

	return outcomes
}

func (r *Runner) runOne(ctx context.Context, i int, word string) Outcome {
	out := Outcome{Index: i, Word: word}
	if w := NormalizeWord(word); w != "" {
		out.Word = w
	}

	var pc panics.Catcher
	pc.Try(func() {
		out.Err = r.Process(ctx, word)
	})
	if rec := pc.Recovered(); rec != nil {
		out.Err = fmt.Errorf("job panicked: %w", rec.AsError())
	}

	if out.Err != nil {
		r.log.Warn("word failed", zap.String("word", out.Word), zap.Error(out.Err))
	} else {
		r.log.Debug("word saved", zap.String("word", out.Word))
	}
	return out
}

// Process runs the pipeline for a single word: lookup, encode, save.
func (r *Runner) Process(ctx context.Context, word string) error {
	word = NormalizeWord(word)
	if word == "" {
		return ErrEmptyWord
	}

	e, err := r.lookup.Lookup(ctx, word)
	if err != nil {
		return fmt.Errorf("looking up %q: %w", word, err)
	}

	payload, err := anki.Encode(e)
	if err != nil {
		return err
	}

	if err := r.save.Save(ctx, payload); err != nil {
		return fmt.Errorf("saving %q: %w", word, err)
	}

	return nil
}
