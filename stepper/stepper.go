package stepper

import (
	"fmt"
	"log"
	"os"

	"github.com/tue-alga/compacting-squares/grid"
	"github.com/tue-alga/compacting-squares/move"
	"github.com/tue-alga/compacting-squares/topology"
)

// Logger is the small injected interface the stepper logs through
// (spec.md §9 "Globals for tracing" — replaced by a passed-in logger).
type Logger interface {
	Printf(format string, args ...any)
}

// Phase is the pull-based move generator interface satisfied by
// *gather.Phase and *compact.Phase.
type Phase interface {
	Next(w *grid.World) (move.Move, bool, error)
}

// Record is one entry of the algorithm transcript of spec.md §6: the step
// number, the move's source and target cell, and the mover's classification
// after the step. In RunInteractive that is the classification from the
// step's own re-mark; in RunBatch no re-mark runs between moves, so it is
// the classification as last marked before the phase started.
type Record struct {
	Step  int
	Src   grid.Cell
	Dst   grid.Cell
	Class grid.Classification
}

// Option configures a Stepper.
type Option func(*Stepper)

// WithLogger overrides the default stderr logger.
func WithLogger(l Logger) Option {
	return func(s *Stepper) { s.logger = l }
}

// Stepper drives a Phase (Gather or Compact) over a *grid.World, per
// spec.md §4.7.
type Stepper struct {
	world      *grid.World
	logger     Logger
	transcript []Record
	current    *move.Move
}

// New returns a Stepper bound to w.
func New(w *grid.World, opts ...Option) *Stepper {
	s := &Stepper{
		world:  w,
		logger: log.New(os.Stderr, "stepper: ", 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Current returns the move most recently committed (for UI interpolation),
// or ok=false if no move has been committed yet.
func (s *Stepper) Current() (move.Move, bool) {
	if s.current == nil {
		return move.Move{}, false
	}

	return *s.current, true
}

// Transcript returns every committed step's record, in commit order.
func (s *Stepper) Transcript() []Record {
	return s.transcript
}

// RunInteractive drains p, committing each move with MoveMarked (topology
// is re-classified after every single move) — the mode spec.md §4.7 names
// for interactive use, where the UI needs up-to-date classification between
// moves.
func (s *Stepper) RunInteractive(p Phase) error {
	return s.run(p, true)
}

// RunBatch drains p, committing each move with the unmarked World.Move and
// re-classifying only once the phase is fully drained — spec.md §4.7's
// batch mode, "where intermediate classification is unnecessary".
func (s *Stepper) RunBatch(p Phase) error {
	if err := s.run(p, false); err != nil {
		return err
	}
	_, err := topology.MarkComponents(s.world)

	return err
}

func (s *Stepper) run(p Phase, marked bool) error {
	for {
		m, ok, err := p.Next(s.world)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if !move.IsValid(s.world, m) {
			s.logger.Printf("invalid move %s at step %d", m, len(s.transcript))

			return fmt.Errorf("stepper: %w: %s", ErrInvalidMove, m)
		}

		ref, ok := s.world.At(m.Src)
		if !ok {
			return fmt.Errorf("stepper: %w: %s", ErrInvalidMove, m)
		}

		if marked {
			if err := topology.MoveMarked(s.world, m.Src, m.Dst()); err != nil {
				return fmt.Errorf("stepper: %w", err)
			}
		} else {
			if err := s.world.Move(m.Src, m.Dst()); err != nil {
				return fmt.Errorf("stepper: %w", err)
			}
		}

		mv := m
		s.current = &mv

		class := grid.None
		if cube, err := s.world.Cube(ref); err == nil {
			class = cube.Class
		}
		s.transcript = append(s.transcript, Record{
			Step:  len(s.transcript),
			Src:   m.Src,
			Dst:   m.Dst(),
			Class: class,
		})
		s.logger.Printf("step %d: %s", len(s.transcript)-1, m)
	}
}
