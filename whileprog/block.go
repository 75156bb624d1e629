package whileprog

import (
	"slices"
	"strings"
)

// Block is an ordered sequence of statements. A nil *Block is empty.
//
// Blocks are not modified by execution and may be shared by concurrent runs
// over distinct States.
type Block struct {
	Statements []Statement
}

// NewBlock creates a block from statements, in order.
func NewBlock(statements ...Statement) *Block {
	return &Block{Statements: slices.Clone(statements)}
}

// Len returns the number of statements in the block.
func (block *Block) Len() int {
	if block == nil {
		return 0
	}
	return len(block.Statements)
}

func (block *Block) write(text *strings.Builder, depth int) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		stmt.write(text, depth)
	}
}

// String returns the program text of the block.
func (block *Block) String() string {
	var text strings.Builder
	block.write(&text, 0)
	return text.String()
}
