// Package prop decides the satisfiability of propositional formulas with the
// method of analytic tableaux.
//
// A formula is built from named variables and the connectives Not, And, Or,
// Implies and Iff, either programmatically:
//
//	f := prop.And(prop.Var("a"), prop.Not(prop.Var("b")))
//
// or by parsing the fully parenthesized concrete syntax:
//
//	f, err := prop.ParseString("(a^-b)")
//
// Binary connectives are written ^ (and), | (or), -> (implies) and <->
// (iff), and always require surrounding parentheses. Negation is written -
// and takes no parentheses. The alternative spellings ~, &, => and <=> are
// accepted on input.
//
// Deciding a formula builds a refutation tree: the formula is assumed true,
// and signed subformulas are expanded rule by rule into branches until each
// branch either closes on a direct contradiction or survives fully expanded.
// If some branch survives, its literals form a satisfying assignment:
//
//	if model := prop.Solve(f); model == nil {
//		fmt.Println("UNSATISFIABLE")
//	} else {
//		fmt.Println("SATISFIABLE", model)
//	}
//
// The tableau method explores assignments rather than converting to clausal
// form, so no CNF translation and no auxiliary variables are involved. The
// number of branches can grow exponentially with formula size, as with any
// complete decision procedure for SAT; branches are pruned the instant they
// close to keep the practical blowup down.
package prop
