package prop

import "sort"

// A Formula is a well-formed propositional formula.
// The set of variants is closed: a formula is either a variable, a negation,
// or one of the four binary connectives. All variants are comparable value
// types, so two formulas are == iff they are structurally equal, and formulas
// can be used as map keys.
type Formula interface {
	// String returns the canonical concrete syntax of the formula: binary
	// connectives fully parenthesized with ^, |, -> and <->, negation as a
	// leading -. Parsing the result yields back a structurally equal formula.
	String() string
	// Eval evaluates the formula under the given assignment.
	// Variables missing from the model are taken as false.
	Eval(model map[string]bool) bool

	collectVars(set map[string]struct{})
}

// Var generates a named variable in a formula.
func Var(name string) Formula {
	return variable{name: name}
}

type variable struct {
	name string
}

func (v variable) String() string { return v.name }

func (v variable) Eval(model map[string]bool) bool { return model[v.name] }

func (v variable) collectVars(set map[string]struct{}) { set[v.name] = struct{}{} }

// Not negates the given subformula.
func Not(f Formula) Formula {
	return not{f: f}
}

type not struct {
	f Formula
}

func (n not) String() string { return "-" + n.f.String() }

func (n not) Eval(model map[string]bool) bool { return !n.f.Eval(model) }

func (n not) collectVars(set map[string]struct{}) { n.f.collectVars(set) }

// And generates the conjunction of two subformulas.
func And(f1, f2 Formula) Formula {
	return and{left: f1, right: f2}
}

type and struct {
	left, right Formula
}

func (a and) String() string { return "(" + a.left.String() + "^" + a.right.String() + ")" }

func (a and) Eval(model map[string]bool) bool { return a.left.Eval(model) && a.right.Eval(model) }

func (a and) collectVars(set map[string]struct{}) {
	a.left.collectVars(set)
	a.right.collectVars(set)
}

// Or generates the disjunction of two subformulas.
func Or(f1, f2 Formula) Formula {
	return or{left: f1, right: f2}
}

type or struct {
	left, right Formula
}

func (o or) String() string { return "(" + o.left.String() + "|" + o.right.String() + ")" }

func (o or) Eval(model map[string]bool) bool { return o.left.Eval(model) || o.right.Eval(model) }

func (o or) collectVars(set map[string]struct{}) {
	o.left.collectVars(set)
	o.right.collectVars(set)
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return implies{left: f1, right: f2}
}

type implies struct {
	left, right Formula
}

func (i implies) String() string { return "(" + i.left.String() + "->" + i.right.String() + ")" }

func (i implies) Eval(model map[string]bool) bool { return !i.left.Eval(model) || i.right.Eval(model) }

func (i implies) collectVars(set map[string]struct{}) {
	i.left.collectVars(set)
	i.right.collectVars(set)
}

// Iff indicates a subformula is equivalent to another one.
func Iff(f1, f2 Formula) Formula {
	return iff{left: f1, right: f2}
}

type iff struct {
	left, right Formula
}

func (i iff) String() string { return "(" + i.left.String() + "<->" + i.right.String() + ")" }

func (i iff) Eval(model map[string]bool) bool { return i.left.Eval(model) == i.right.Eval(model) }

func (i iff) collectVars(set map[string]struct{}) {
	i.left.collectVars(set)
	i.right.collectVars(set)
}

// Vars returns the names of all variables appearing in f, sorted.
func Vars(f Formula) []string {
	set := make(map[string]struct{})
	f.collectVars(set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
