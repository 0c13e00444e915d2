package prop

import "log/slog"

// Status is the satisfiability status of a formula.
type Status byte

const (
	// Indet means the formula was not decided yet.
	Indet = Status(iota)
	// Sat means the formula has at least one satisfying assignment.
	Sat
	// Unsat means no assignment satisfies the formula.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// A Verdict is the outcome of deciding a formula.
// When the Status is Sat, Model is a total assignment over the formula's
// variables that makes it true; otherwise Model is nil.
type Verdict struct {
	Status Status
	Model  map[string]bool
}

// A signedFormula asserts that a formula holds (truth) or does not hold
// (!truth) on a branch.
type signedFormula struct {
	f     Formula
	truth bool
}

func (sf signedFormula) String() string {
	if sf.truth {
		return "T " + sf.f.String()
	}
	return "F " + sf.f.String()
}

// A branch is one root-to-frontier path of the tableau: the set of signed
// formulas asserted along it, the queue of entries not yet expanded, and the
// variable literals collected so far. A branch closes the moment some formula
// is asserted with both polarities; once closed it is never reopened.
type branch struct {
	asserted map[signedFormula]bool
	pending  []signedFormula // unexpanded compound formulas, oldest first
	lits     []signedFormula // variable literals in insertion order
	closed   bool
}

func newBranch(sf signedFormula) *branch {
	b := &branch{asserted: make(map[signedFormula]bool)}
	b.add(sf)
	return b
}

// add records sf on the branch, checking for a contradiction incrementally.
// Entries already present are not requeued: a branch is a set.
func (b *branch) add(sf signedFormula) {
	if b.asserted[sf] {
		return
	}
	b.asserted[sf] = true
	if b.asserted[signedFormula{f: sf.f, truth: !sf.truth}] {
		b.closed = true
		return
	}
	if _, ok := sf.f.(variable); ok {
		b.lits = append(b.lits, sf)
	} else {
		b.pending = append(b.pending, sf)
	}
}

// clone deep-copies the branch. Splitting copies, never aliases: sibling
// branches share no mutable state.
func (b *branch) clone() *branch {
	c := &branch{
		asserted: make(map[signedFormula]bool, len(b.asserted)),
		pending:  append([]signedFormula(nil), b.pending...),
		lits:     append([]signedFormula(nil), b.lits...),
		closed:   b.closed,
	}
	for sf := range b.asserted {
		c.asserted[sf] = true
	}
	return c
}

// expand applies the tableau rule for sf to the branch. Linear rules extend
// the branch in place and return nil; splitting rules extend the branch with
// the left child's additions and return a copy carrying the right child's.
func (b *branch) expand(sf signedFormula) *branch {
	switch f := sf.f.(type) {
	case not:
		b.add(signedFormula{f: f.f, truth: !sf.truth})
	case and:
		if sf.truth {
			b.add(signedFormula{f: f.left, truth: true})
			b.add(signedFormula{f: f.right, truth: true})
		} else {
			return b.split(
				[]signedFormula{{f: f.left, truth: false}},
				[]signedFormula{{f: f.right, truth: false}},
			)
		}
	case or:
		if sf.truth {
			return b.split(
				[]signedFormula{{f: f.left, truth: true}},
				[]signedFormula{{f: f.right, truth: true}},
			)
		}
		b.add(signedFormula{f: f.left, truth: false})
		b.add(signedFormula{f: f.right, truth: false})
	case implies:
		if sf.truth {
			return b.split(
				[]signedFormula{{f: f.left, truth: false}},
				[]signedFormula{{f: f.right, truth: true}},
			)
		}
		b.add(signedFormula{f: f.left, truth: true})
		b.add(signedFormula{f: f.right, truth: false})
	case iff:
		if sf.truth {
			return b.split(
				[]signedFormula{{f: f.left, truth: true}, {f: f.right, truth: true}},
				[]signedFormula{{f: f.left, truth: false}, {f: f.right, truth: false}},
			)
		}
		return b.split(
			[]signedFormula{{f: f.left, truth: true}, {f: f.right, truth: false}},
			[]signedFormula{{f: f.left, truth: false}, {f: f.right, truth: true}},
		)
	default:
		panic("invalid formula type")
	}
	return nil
}

func (b *branch) split(left, right []signedFormula) *branch {
	rb := b.clone()
	for _, sf := range left {
		b.add(sf)
	}
	for _, sf := range right {
		rb.add(sf)
	}
	return rb
}

// model reads the literal assignments off an open terminal branch.
// Variables of f the branch never constrained default to false, so the
// returned assignment is total.
func (b *branch) model(f Formula) map[string]bool {
	m := make(map[string]bool)
	for _, name := range Vars(f) {
		m[name] = false
	}
	for _, sf := range b.lits {
		m[sf.f.(variable).name] = sf.truth
	}
	return m
}

// A Solver decides the satisfiability of a single formula.
type Solver struct {
	// Verbose makes the solver trace each rule application through slog
	// at debug level.
	Verbose bool

	f      Formula
	status Status
	model  map[string]bool
}

// New returns a solver for the given formula.
func New(f Formula) *Solver {
	return &Solver{f: f}
}

// Solve builds the tableau for the formula and returns Sat or Unsat.
// The decision is total: any finite formula terminates, since every rule
// replaces a signed formula by strictly smaller operands. Calling Solve again
// returns the same status without recomputing.
//
// Branches are explored leftmost first and each branch expands its
// oldest pending formula first, so the verdict and the model found are
// reproducible for a given formula.
func (s *Solver) Solve() Status {
	if s.status != Indet {
		return s.status
	}
	stack := []*branch{newBranch(signedFormula{f: s.f, truth: true})}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.closed {
			continue
		}
		if len(b.pending) == 0 {
			// Fully expanded with no contradiction: the branch stays open and
			// its literals are a satisfying assignment.
			s.status = Sat
			s.model = b.model(s.f)
			return s.status
		}
		sf := b.pending[0]
		b.pending = b.pending[1:]
		if s.Verbose {
			slog.Debug("expanding", "formula", sf.String(), "branches", len(stack)+1)
		}
		if right := b.expand(sf); right != nil {
			stack = append(stack, right, b)
		} else {
			stack = append(stack, b)
		}
	}
	s.status = Unsat
	return s.status
}

// Model returns a copy of the satisfying assignment found by Solve.
// It returns nil if the formula was not solved yet or is unsatisfiable.
func (s *Solver) Model() map[string]bool {
	if s.status != Sat {
		return nil
	}
	m := make(map[string]bool, len(s.model))
	for name, binding := range s.model {
		m[name] = binding
	}
	return m
}

// Decide decides the satisfiability of the given formula.
func Decide(f Formula) Verdict {
	s := New(f)
	if s.Solve() == Sat {
		return Verdict{Status: Sat, Model: s.Model()}
	}
	return Verdict{Status: Unsat}
}

// Solve solves the given formula.
// The function returns a model associating each variable name with its
// binding, or nil if the formula was not satisfiable.
func Solve(f Formula) map[string]bool {
	s := New(f)
	if s.Solve() != Sat {
		return nil
	}
	return s.Model()
}

// Valid reports whether f holds under every assignment.
// This is decided by refutation: f is valid iff its negation is
// unsatisfiable.
func Valid(f Formula) bool {
	return Decide(Not(f)).Status == Unsat
}
