package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/log"

	"github.com/appengine-ltd/homespring/internal/config"
	"github.com/appengine-ltd/homespring/internal/parser"
	"github.com/appengine-ltd/homespring/internal/river"
)

// Runner parses programs and drives them through a fixed schedule of ticks.
type Runner struct {
	Schedule []river.Tick
	Steps    int
	Out      io.Writer
	Log      log.Logger

	parser *parser.Parser
}

// Stats summarises a run.
type Stats struct {
	Steps int
	Ticks int
}

func NewRunner(cfg config.Config, out io.Writer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ticks, err := cfg.Ticks()
	if err != nil {
		return nil, err
	}
	return &Runner{
		Schedule: ticks,
		Steps:    cfg.Steps,
		Out:      out,
		Log:      log.Root(),
		parser:   parser.New(),
	}, nil
}

// Load parses src so that caught salmon are written to the runner's output.
func (rn *Runner) Load(src string) (*river.Program, error) {
	rn.parser.SetLogger(rn.Log)
	return rn.parser.Parse(src, river.WithOutput(rn.Out), river.WithLogger(rn.Log))
}

// Run executes the schedule Steps times. The empty program prints the null
// program message instead. Cancellation is checked between ticks.
func (rn *Runner) Run(ctx context.Context, prog *river.Program) (Stats, error) {
	var stats Stats
	r, ok := prog.River()
	if !ok {
		_, err := fmt.Fprintln(rn.Out, river.NullProgramMessage)
		return stats, err
	}
	for step := 1; step <= rn.Steps; step++ {
		for _, t := range rn.Schedule {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			if err := r.Tick(t); err != nil {
				return stats, fmt.Errorf("step %d: %w", step, err)
			}
			stats.Ticks++
		}
		stats.Steps++
		rn.Log.Debug("Step complete", "step", step, "ticks", stats.Ticks)
	}
	return stats, nil
}
