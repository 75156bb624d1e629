// Package whileprog implements an interpreter for WHILE programs.
//
// A WHILE program is a Block of statements over natural-number variables:
//
//	x := 0          Assign zero
//	x := y          Assign a copy
//	x := y + 1      Assign an incremented copy
//	if a < b { ... } else { ... }
//	for n { ... }   Repeat the body n times, n read once on entry
//	while a < b { ... }
//
// All blocks share one flat variable namespace. A variable must be assigned
// before it is read; reading an unbound variable is an ErrUndefinedVariable
// error which aborts the run.
//
// The while statement makes the language Turing-complete, so Run may never
// return. Hosts that need to bound a run use RunContext, or an Interpreter
// with a Check hook.
package whileprog
