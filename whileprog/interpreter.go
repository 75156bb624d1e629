package whileprog

import (
	"context"
)

// Interpreter executes WHILE programs.
//
// The zero value is ready to use.
type Interpreter struct {
	// Check, if set, is called before every statement and again before each
	// further iteration of a loop. A non-nil error aborts the run and is
	// returned unchanged.
	Check func(stmt Statement, state *State) error

	Steps int // Statements executed.
}

// Run executes the statements of block in order.
func Run(block *Block, state *State) error {
	return (&Interpreter{}).Run(block, state)
}

// Execute executes a single statement.
func Execute(state *State, stmt Statement) error {
	return (&Interpreter{}).Execute(state, stmt)
}

// RunContext is Run, stopping with ctx.Err() once ctx is done.
func RunContext(ctx context.Context, block *Block, state *State) error {
	in := &Interpreter{
		Check: func(Statement, *State) error { return ctx.Err() },
	}
	return in.Run(block, state)
}

func (in *Interpreter) check(stmt Statement, state *State) (err error) {
	if in.Check != nil {
		err = in.Check(stmt, state)
	}
	return
}

// Run executes the statements of block in order, stopping at the first error.
func (in *Interpreter) Run(block *Block, state *State) (err error) {
	if block == nil {
		return
	}

	for _, stmt := range block.Statements {
		err = in.Execute(state, stmt)
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single statement, including any nested blocks.
func (in *Interpreter) Execute(state *State, stmt Statement) (err error) {
	err = in.check(stmt, state)
	if err != nil {
		return
	}

	in.Steps++

	switch stmt := stmt.(type) {
	case *Assign:
		err = in.assign(state, stmt)
	case *If:
		var less bool
		less, err = state.less(stmt.A, stmt.B)
		if err != nil {
			return
		}
		if less {
			err = in.Run(stmt.Then, state)
		} else {
			err = in.Run(stmt.Else, state)
		}
	case *RepeatFor:
		// The count is captured once; the body may change Bound freely.
		var count uint64
		count, err = state.Get(stmt.Bound)
		if err != nil {
			return
		}
		for n := range count {
			if n > 0 {
				err = in.check(stmt, state)
				if err != nil {
					return
				}
			}
			err = in.Run(stmt.Body, state)
			if err != nil {
				return
			}
		}
	case *While:
		for first := true; ; first = false {
			if !first {
				err = in.check(stmt, state)
				if err != nil {
					return
				}
			}
			var less bool
			less, err = state.less(stmt.A, stmt.B)
			if err != nil || !less {
				return
			}
			err = in.Run(stmt.Body, state)
			if err != nil {
				return
			}
		}
	default:
		err = ErrStatementInvalid
	}

	return
}

func (in *Interpreter) assign(state *State, stmt *Assign) (err error) {
	var value uint64

	switch stmt.Kind {
	case ASSIGN_ZERO:
		value = 0
	case ASSIGN_COPY:
		value, err = state.Get(stmt.Source)
	case ASSIGN_INCREMENT:
		value, err = state.Get(stmt.Source)
		value++
	default:
		err = ErrAssignInvalid
	}
	if err != nil {
		return
	}

	state.Set(stmt.Target, value)

	return
}
