package whileprog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatement_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		stmt Statement
		text string
	}){
		{AssignZero("x"), "x := 0\n"},
		{AssignCopy("x", "y"), "x := y\n"},
		{AssignIncrement("x", "y"), "x := y + 1\n"},
		{&Assign{Target: "x", Kind: AssignKind(5)}, "x := <AssignKind(5)>\n"},
		{NewRepeatFor("n", nil), "for n {\n}\n"},
		{NewWhile("a", "b", NewBlock(AssignZero("a"))), "while a < b {\n  a := 0\n}\n"},
		{NewIf("a", "b", NewBlock(AssignZero("c")), nil), "if a < b {\n  c := 0\n}\n"},
		{NewIf("a", "b", nil, NewBlock(AssignZero("c"))), "if a < b {\n} else {\n  c := 0\n}\n"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.stmt.String())
	}
}

func TestBlock_String(t *testing.T) {
	assert := assert.New(t)

	program := NewBlock(
		NewWhile("y", "x", NewBlock(
			AssignIncrement("y", "y"),
			NewRepeatFor("x", NewBlock(
				AssignIncrement("x", "x"),
				AssignIncrement("y", "y"),
			)),
		)),
	)

	assert.Equal(
		"while y < x {\n"+
			"  y := y + 1\n"+
			"  for x {\n"+
			"    x := x + 1\n"+
			"    y := y + 1\n"+
			"  }\n"+
			"}\n", program.String())

	var empty *Block
	assert.Equal("", empty.String())
	assert.Equal(0, empty.Len())
	assert.Equal(1, program.Len())
}

func TestNewBlock_Copies(t *testing.T) {
	assert := assert.New(t)

	list := []Statement{AssignZero("x")}
	block := NewBlock(list...)
	list[0] = AssignZero("y")

	assert.Equal("x := 0\n", block.String())
}

func TestAssignKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("zero", ASSIGN_ZERO.String())
	assert.Equal("copy", ASSIGN_COPY.String())
	assert.Equal("increment", ASSIGN_INCREMENT.String())
}
