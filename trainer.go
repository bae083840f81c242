package plltrainer

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/pll_trainer/internal/learning"
	"github.com/SeamusWaldron/pll_trainer/internal/notation"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// Drill is a case the user repeats until it is solved correctly and fast
// enough several times in a row.
type Drill struct {
	Case    pll.Case         `json:"case"`
	Driller learning.Driller `json:"driller"`
}

// Snapshot is the complete state of a Trainer.
type Snapshot struct {
	Learning learning.State `json:"learning"`
	Stats    stats.Stats    `json:"stats"`
	Drill    *Drill         `json:"drill,omitempty"`
}

// AttemptReport tells the caller what one attempt meant.
type AttemptReport struct {
	ID             string                  `json:"id"`
	Attempt        stats.Attempt           `json:"attempt"`
	Classification learning.Classification `json:"classification"`
	TargetTimeMs   float64                 `json:"target_time_ms"`

	// Drill in progress after the attempt, nil if none
	Drill *Drill `json:"drill,omitempty"`

	// Set when this attempt completed the drill
	DrillFinished bool `json:"drill_finished"`
}

// Trainer records attempts, tracks what the user has seen and keeps the
// statistics. It is not safe for concurrent use.
type Trainer struct {
	opts     *options
	logger   *zap.Logger
	learning learning.State
	stats    stats.Stats
	drill    *Drill
}

// New creates a trainer for a user who has seen nothing yet.
func New(opts ...Option) (*Trainer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := o.target.Validate(); err != nil {
		return nil, err
	}
	if o.worstCases < 1 {
		return nil, fmt.Errorf("plltrainer: worst cases must be at least 1, got %d", o.worstCases)
	}

	return &Trainer{
		opts:     o,
		logger:   o.logger,
		learning: learning.NewState(),
		stats:    stats.New(),
	}, nil
}

// PickAlgorithm sets the algorithm the user solves p with. It must parse and
// must solve p; the AUFs lining it up with the reference algorithm are
// returned.
func (t *Trainer) PickAlgorithm(p pll.PLL, algorithm string) (pll.AlgorithmAUFs, error) {
	alg, err := notation.Parse(algorithm)
	if err != nil {
		return pll.AlgorithmAUFs{}, err
	}

	next, err := t.learning.PickAlgorithm(p, alg)
	if err != nil {
		return pll.AlgorithmAUFs{}, err
	}
	t.learning = next

	m := next.AlgorithmAUFs[p]
	t.logger.Debug("Algorithm picked",
		zap.String("pll", p.Letters()),
		zap.String("algorithm", alg.String()),
		zap.Stringer("pre", m.Pre),
		zap.Stringer("post", m.Post))

	return m, nil
}

// Algorithm returns the picked algorithm for p.
func (t *Trainer) Algorithm(p pll.PLL) (types.Algorithm, pll.AlgorithmAUFs, error) {
	if !t.learning.HasPickedAlgorithm(p) {
		return types.Algorithm{}, pll.AlgorithmAUFs{}, fmt.Errorf("%w: %s", ErrAlgorithmNotPicked, p)
	}

	alg, err := notation.Parse(t.learning.Algorithms[p])
	if err != nil {
		return types.Algorithm{}, pll.AlgorithmAUFs{}, fmt.Errorf("failed to parse stored algorithm for %s: %w", p, err)
	}

	return alg, t.learning.AlgorithmAUFs[p], nil
}

// TargetTimeMs returns how fast the user aims to solve c with the picked
// algorithm.
func (t *Trainer) TargetTimeMs(c pll.Case) (float64, error) {
	turns, err := t.turns(c)
	if err != nil {
		return 0, err
	}
	return t.opts.target.TargetTimeMs(turns), nil
}

func (t *Trainer) turns(c pll.Case) (int, error) {
	if !validCase(c) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCase, c)
	}

	alg, m, err := t.Algorithm(c.PLL)
	if err != nil {
		return 0, err
	}

	return stats.TurnCount(alg, pll.ResolveCase(c, m)), nil
}

func validCase(c pll.Case) bool {
	validAUF := func(a pll.AUF) bool { return a >= pll.None && a <= pll.UPrime }
	return c.PLL.Valid() && validAUF(c.PreAUF) && validAUF(c.PostAUF)
}

// Attempt records one timed attempt at c and reports whether it was a new
// case, whether it needs drilling, and how any drill in progress moved on.
func (t *Trainer) Attempt(c pll.Case, timeMs int64, outcome stats.Outcome) (AttemptReport, error) {
	if timeMs < 0 {
		return AttemptReport{}, fmt.Errorf("%w: %d", ErrInvalidTime, timeMs)
	}

	turns, err := t.turns(c)
	if err != nil {
		return AttemptReport{}, err
	}

	attempt := stats.Attempt{
		Case:    c,
		TimeMs:  timeMs,
		Turns:   turns,
		Outcome: outcome,
	}
	target := t.opts.target.TargetTimeMs(turns)
	class := learning.Classify(attempt, t.learning, t.opts.target)

	t.learning = learning.Apply(attempt, t.learning)
	t.stats = stats.Record(t.stats, attempt)

	report := AttemptReport{
		ID:             uuid.New().String(),
		Attempt:        attempt,
		Classification: class,
		TargetTimeMs:   target,
	}

	switch {
	case t.drill != nil && pll.Equivalent(t.drill.Case, c):
		fast := float64(timeMs) <= target
		t.drill.Driller = t.drill.Driller.Record(outcome == stats.Correct, fast)
		if t.drill.Driller.Done() {
			t.drill = nil
			report.DrillFinished = true
		}
	case class.NeedsDrill:
		t.drill = &Drill{Case: c.Canonical(), Driller: learning.NewDriller()}
	}

	if t.drill != nil {
		d := *t.drill
		report.Drill = &d
	}

	t.logger.Debug("Attempt recorded",
		zap.String("id", report.ID),
		zap.Stringer("case", c),
		zap.Int64("time_ms", timeMs),
		zap.Int("turns", turns),
		zap.Stringer("outcome", outcome),
		zap.Bool("new_case", class.IsNewCase),
		zap.Bool("needs_drill", class.NeedsDrill))

	return report, nil
}

// NextCase returns the case to practice next: the drilled case while a
// drill is in progress, otherwise the next case in the learning order. It
// returns false once every case has been seen and no drill is running.
func (t *Trainer) NextCase() (pll.Case, bool) {
	if t.drill != nil {
		return t.drill.Case, true
	}
	return learning.NextCaseToLearn(t.learning)
}

// Summary returns the per case and global statistics.
func (t *Trainer) Summary() stats.Summary {
	return stats.Summarize(t.stats)
}

// WorstCases returns the configured number of worst cases.
func (t *Trainer) WorstCases() []stats.CaseSummary {
	return stats.WorstCases(t.Summary(), t.opts.worstCases)
}

// Snapshot returns a copy of the trainer's state.
func (t *Trainer) Snapshot() Snapshot {
	s := Snapshot{
		Learning: t.learning,
		Stats:    t.stats,
	}
	if t.drill != nil {
		d := *t.drill
		s.Drill = &d
	}
	return s
}

// Restore replaces the trainer's state with a snapshot. Every stored
// algorithm must still parse.
func (t *Trainer) Restore(s Snapshot) error {
	for _, p := range pll.All {
		text := s.Learning.Algorithms[p]
		if text == "" {
			continue
		}
		if _, err := notation.Parse(text); err != nil {
			return fmt.Errorf("%w: algorithm for %s: %v", ErrInvalidSnapshot, p, err)
		}
	}
	if s.Drill != nil && !validCase(s.Drill.Case) {
		return fmt.Errorf("%w: drill case %v", ErrInvalidSnapshot, s.Drill.Case)
	}

	t.learning = s.Learning
	t.stats = s.Stats
	t.drill = nil
	if s.Drill != nil {
		d := *s.Drill
		t.drill = &d
	}

	t.logger.Debug("State restored", zap.Int("cases_tried", t.stats.TriedCount()))
	return nil
}
