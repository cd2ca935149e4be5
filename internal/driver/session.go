package driver

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/log"

	"github.com/appengine-ltd/homespring/internal/parser"
	"github.com/appengine-ltd/homespring/internal/river"
)

var (
	ErrNoProgram      = errors.New("no program loaded")
	ErrUnknownCommand = errors.New("unknown command")
)

// Session is an interactive stepper over one program. Each Exec runs one
// command line and returns what the program printed plus any report.
type Session struct {
	Schedule []river.Tick

	parser *parser.Parser
	log    log.Logger
	prog   *river.Program
	caught bytes.Buffer
	ticks  int
}

// Result is the outcome of one command.
type Result struct {
	// Caught holds the names of salmon caught while the command ran.
	Caught string
	// Report is command output meant for the user, such as a tree dump.
	Report string
	Ticks  int
	Quit   bool
}

func NewSession(schedule []river.Tick, logger log.Logger) *Session {
	p := parser.New()
	p.SetLogger(logger)
	return &Session{Schedule: schedule, parser: p, log: logger}
}

// Load replaces the current program.
func (s *Session) Load(src string) error {
	prog, err := s.parser.Parse(src, river.WithOutput(&s.caught), river.WithLogger(s.log))
	if err != nil {
		return err
	}
	s.prog = prog
	s.ticks = 0
	s.caught.Reset()
	return nil
}

// Commands lists the command words Exec understands, tick names included.
func Commands() []string {
	out := []string{"load", "step", "tree", "find", "check", "help", "quit"}
	for _, t := range river.Ticks() {
		out = append(out, t.String())
	}
	return out
}

const helpText = `load <program>   replace the program
step [n]         run the schedule n times (default 1)
<tick> ...       run the named ticks, e.g. "snow fishdown"
tree             show every node
find <name>      show the path to a node
check            list names that are not instructions
quit             leave`

func (s *Session) Exec(line string) (Result, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}, nil
	}
	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(word) {
	case "quit", "exit", ":q":
		return Result{Quit: true}, nil
	case "help", "?":
		return Result{Report: helpText}, nil
	case "load":
		if err := s.Load(rest); err != nil {
			return Result{}, err
		}
		return Result{Report: s.describe()}, nil
	}

	r, err := s.river()
	if err != nil {
		return Result{}, err
	}
	switch strings.ToLower(word) {
	case "tree":
		var b strings.Builder
		Dump(&b, r)
		return Result{Report: strings.TrimRight(b.String(), "\n")}, nil
	case "find":
		return Result{Report: s.find(r, rest)}, nil
	case "check":
		var b strings.Builder
		n, err := Check(&b, r, s.parser.Vocabulary())
		if err != nil {
			return Result{}, err
		}
		if n == 0 {
			return Result{Report: "every node is an instruction"}, nil
		}
		return Result{Report: strings.TrimRight(b.String(), "\n")}, nil
	case "step":
		n := 1
		if rest != "" {
			if n, err = strconv.Atoi(rest); err != nil || n < 1 {
				return Result{}, fmt.Errorf("step count must be a positive number, got %q", rest)
			}
		}
		var ticks []river.Tick
		for i := 0; i < n; i++ {
			ticks = append(ticks, s.Schedule...)
		}
		return s.run(r, ticks)
	}

	var ticks []river.Tick
	for _, name := range strings.Fields(line) {
		t, err := river.ParseTick(name)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
		}
		ticks = append(ticks, t)
	}
	return s.run(r, ticks)
}

func (s *Session) river() (*river.River, error) {
	if s.prog == nil {
		return nil, ErrNoProgram
	}
	r, ok := s.prog.River()
	if !ok {
		return nil, fmt.Errorf("%w: the empty program has no river", ErrNoProgram)
	}
	return r, nil
}

func (s *Session) run(r *river.River, ticks []river.Tick) (Result, error) {
	s.caught.Reset()
	res := Result{}
	for _, t := range ticks {
		if err := r.Tick(t); err != nil {
			res.Caught = s.caught.String()
			return res, err
		}
		res.Ticks++
		s.ticks++
	}
	res.Caught = s.caught.String()
	return res, nil
}

func (s *Session) describe() string {
	r, ok := s.prog.River()
	if !ok {
		return river.NullProgramMessage
	}
	return fmt.Sprintf("loaded %d nodes, root %q", r.Len(), r.Root().Name)
}

func (s *Session) find(r *river.River, name string) string {
	id := r.FindNode(name)
	if id == river.NoNode {
		return fmt.Sprintf("no node named %q", name)
	}
	path := r.Path(id)
	parts := make([]string, 0, len(path))
	for _, p := range path {
		parts = append(parts, r.Node(p).Name)
	}
	return fmt.Sprintf("node %d: %s", id, strings.Join(parts, " > "))
}

// Ticks is the number of ticks run since the program was loaded.
func (s *Session) Ticks() int {
	return s.ticks
}
