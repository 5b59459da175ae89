// Package factor implements discrete factors: dense tables that map an
// assignment of discrete variables to a real number, plus the algebra that
// exact inference over Bayesian networks is built from.
//
// A Factor pairs a Scope (an ordered list of distinct variables) with a
// row-major float64 tensor whose axis i has the domain size of scope[i].
// Factors are immutable; Multiply, SumOut and Normalize each allocate a new
// Factor and never modify their operands, so factors can be shared across
// goroutines without locking.
//
// # Axis Ordering
//
// Multiply places the left operand's variables first, in their order,
// followed by the right operand's new variables in theirs. Products are
// therefore commutative and associative only up to axis permutation; use
// Factor.Reorder or Factor.Equivalent to compare them.
//
// Normalize treats the trailing k axes as the node's own variables. Callers
// building conditional distributions put the child variable(s) last.
package factor
