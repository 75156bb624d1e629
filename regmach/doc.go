// Package regmach implements an unbounded register machine.
//
// The machine has an unbounded vector of natural-number registers and a
// program counter (PC) indexing a flat list of instructions. There are two
// instructions: increment-and-jump, and decrement-or-jump-if-zero. There is no
// halt instruction; the machine halts when the PC addresses no instruction.
//
// Registers are zero-extended on demand. Reading or writing register r grows
// the register vector through index r before the access completes, so every
// register index is valid and execution never fails.
//
// By convention register 0 holds the output of a computation.
package regmach
