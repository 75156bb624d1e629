package whileprog

import (
	"fmt"
	"strings"
)

// AssignKind selects the right hand side of an assignment.
type AssignKind int

const (
	ASSIGN_ZERO      = AssignKind(0) // x := 0
	ASSIGN_COPY      = AssignKind(1) // x := y
	ASSIGN_INCREMENT = AssignKind(2) // x := y + 1
)

func (kind AssignKind) String() string {
	switch kind {
	case ASSIGN_ZERO:
		return "zero"
	case ASSIGN_COPY:
		return "copy"
	case ASSIGN_INCREMENT:
		return "increment"
	}
	return fmt.Sprintf("AssignKind(%d)", int(kind))
}

// Statement is one of *Assign, *If, *RepeatFor or *While.
type Statement interface {
	fmt.Stringer
	write(text *strings.Builder, depth int)
}

// Assign sets Target from Source according to Kind.
// Source is unused for ASSIGN_ZERO.
type Assign struct {
	Target string
	Kind   AssignKind
	Source string
}

// If runs Then when A < B, and Else otherwise.
type If struct {
	A, B string
	Then *Block
	Else *Block
}

// RepeatFor runs Body as many times as the value of Bound on entry.
type RepeatFor struct {
	Bound string
	Body  *Block
}

// While runs Body for as long as A < B, testing before every iteration.
type While struct {
	A, B string
	Body *Block
}

// AssignZero creates `target := 0`.
func AssignZero(target string) *Assign {
	return &Assign{Target: target, Kind: ASSIGN_ZERO}
}

// AssignCopy creates `target := source`.
func AssignCopy(target, source string) *Assign {
	return &Assign{Target: target, Kind: ASSIGN_COPY, Source: source}
}

// AssignIncrement creates `target := source + 1`.
func AssignIncrement(target, source string) *Assign {
	return &Assign{Target: target, Kind: ASSIGN_INCREMENT, Source: source}
}

// NewIf creates `if a < b { then } else { otherwise }`.
func NewIf(a, b string, then, otherwise *Block) *If {
	return &If{A: a, B: b, Then: then, Else: otherwise}
}

// NewRepeatFor creates `for bound { body }`.
func NewRepeatFor(bound string, body *Block) *RepeatFor {
	return &RepeatFor{Bound: bound, Body: body}
}

// NewWhile creates `while a < b { body }`.
func NewWhile(a, b string, body *Block) *While {
	return &While{A: a, B: b, Body: body}
}

func indent(text *strings.Builder, depth int) {
	for range depth {
		text.WriteString("  ")
	}
}

func (stmt *Assign) write(text *strings.Builder, depth int) {
	indent(text, depth)
	switch stmt.Kind {
	case ASSIGN_ZERO:
		fmt.Fprintf(text, "%v := 0\n", stmt.Target)
	case ASSIGN_COPY:
		fmt.Fprintf(text, "%v := %v\n", stmt.Target, stmt.Source)
	case ASSIGN_INCREMENT:
		fmt.Fprintf(text, "%v := %v + 1\n", stmt.Target, stmt.Source)
	default:
		fmt.Fprintf(text, "%v := <%v>\n", stmt.Target, stmt.Kind)
	}
}

func (stmt *If) write(text *strings.Builder, depth int) {
	indent(text, depth)
	fmt.Fprintf(text, "if %v < %v {\n", stmt.A, stmt.B)
	stmt.Then.write(text, depth+1)
	indent(text, depth)
	if stmt.Else.Len() == 0 {
		text.WriteString("}\n")
		return
	}
	text.WriteString("} else {\n")
	stmt.Else.write(text, depth+1)
	indent(text, depth)
	text.WriteString("}\n")
}

func (stmt *RepeatFor) write(text *strings.Builder, depth int) {
	indent(text, depth)
	fmt.Fprintf(text, "for %v {\n", stmt.Bound)
	stmt.Body.write(text, depth+1)
	indent(text, depth)
	text.WriteString("}\n")
}

func (stmt *While) write(text *strings.Builder, depth int) {
	indent(text, depth)
	fmt.Fprintf(text, "while %v < %v {\n", stmt.A, stmt.B)
	stmt.Body.write(text, depth+1)
	indent(text, depth)
	text.WriteString("}\n")
}

func statementString(stmt Statement) string {
	var text strings.Builder
	stmt.write(&text, 0)
	return text.String()
}

func (stmt *Assign) String() string    { return statementString(stmt) }
func (stmt *If) String() string        { return statementString(stmt) }
func (stmt *RepeatFor) String() string { return statementString(stmt) }
func (stmt *While) String() string     { return statementString(stmt) }
