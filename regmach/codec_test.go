package regmach

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProgram() *Program {
	return NewProgram(
		MakeIncrement(2, 1),
		MakeDecrement(2, 2, 3),
		MakeIncrement(0, 1),
	)
}

func TestCodec_ProgramJSON(t *testing.T) {
	assert := assert.New(t)

	data, err := Marshal(FORMAT_JSON, sampleProgram())
	require.NoError(t, err)

	assert.JSONEq(`{"instructions": [
		{"Increment": {"register": 2, "next": 1}},
		{"Decrement": {"register": 2, "next": 2, "next_if_zero": 3}},
		{"Increment": {"register": 0, "next": 1}}
	]}`, string(data))
}

func TestCodec_StateJSON(t *testing.T) {
	assert := assert.New(t)

	state := NewState(5, 3)
	state.Pc = 2
	state.Ticks = 17

	data, err := Marshal(FORMAT_JSON, state)
	require.NoError(t, err)

	assert.JSONEq(`{"current_instruction": 2, "registers": [5, 3], "halted": false}`, string(data))
}

func TestCodec_ProgramYAML(t *testing.T) {
	assert := assert.New(t)

	data, err := Marshal(FORMAT_YAML, sampleProgram())
	require.NoError(t, err)

	assert.YAMLEq(`
instructions:
  - Increment: {register: 2, next: 1}
  - Decrement: {register: 2, next: 2, next_if_zero: 3}
  - Increment: {register: 0, next: 1}
`, string(data))
}

func TestCodec_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, format := range []Format{FORMAT_JSON, FORMAT_YAML, FORMAT_CBOR} {
		prog := sampleProgram()
		data, err := Marshal(format, prog)
		require.NoError(t, err, format.String())

		decoded, err := DecodeProgram(format, data)
		require.NoError(t, err, format.String())
		assert.Equal(prog.Instructions, decoded.Instructions, format.String())

		state := NewState(5, 3, 0, 11)
		state.Pc = 3
		state.Halted = true

		data, err = Marshal(format, state)
		require.NoError(t, err, format.String())

		decodedState, err := DecodeState(format, data)
		require.NoError(t, err, format.String())
		assert.Equal(state.Pc, decodedState.Pc, format.String())
		assert.Equal(state.Registers, decodedState.Registers, format.String())
		assert.Equal(state.Halted, decodedState.Halted, format.String())
	}
}

func TestCodec_DecodedProgramComputes(t *testing.T) {
	assert := assert.New(t)

	prog, err := DecodeProgram(FORMAT_YAML, []byte(`
instructions:
  - Increment: {register: 2, next: 1}
  - Decrement: {register: 2, next: 2, next_if_zero: 3}
  - Increment: {register: 0, next: 1}
`))
	require.NoError(t, err)

	state, err := DecodeState(FORMAT_JSON, []byte(`{"current_instruction": 0, "registers": [5, 3], "halted": false}`))
	require.NoError(t, err)

	assert.Equal(uint64(6), state.Compute(prog))
}

func TestCodec_CBORCanonical(t *testing.T) {
	assert := assert.New(t)

	a, err := Marshal(FORMAT_CBOR, sampleProgram())
	require.NoError(t, err)
	b, err := Marshal(FORMAT_CBOR, sampleProgram())
	require.NoError(t, err)

	assert.Equal(a, b)
}

func TestCodec_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		format Format
		data   string
		err    error
	}){
		{"json_no_variant", FORMAT_JSON, `{"instructions": [{}]}`, ErrInstructionVariant},
		{"json_two_variants", FORMAT_JSON, `{"instructions": [{"Increment": {"register": 0, "next": 1}, "Decrement": {"register": 0, "next": 1, "next_if_zero": 2}}]}`, ErrInstructionVariant},
		{"yaml_no_variant", FORMAT_YAML, "instructions:\n  - {}\n", ErrInstructionVariant},
		{"yaml_empty", FORMAT_YAML, "", ErrDocumentEmpty},
		{"json_empty", FORMAT_JSON, "", ErrDocumentEmpty},
	}

	for _, entry := range table {
		_, err := DecodeProgram(entry.format, []byte(entry.data))
		assert.ErrorIs(err, entry.err, entry.name)
	}

	_, err := DecodeProgram(FORMAT_JSON, []byte(`{"instructions": [], "extra": 1}`))
	assert.Error(err)

	_, err = Marshal(FORMAT_JSON, NewProgram(Instruction{Op: Opcode(9)}))
	assert.ErrorIs(err, ErrInstructionOpcode)

	_, err = Marshal(Format(9), sampleProgram())
	var unknown ErrFormatUnknown
	assert.ErrorAs(err, &unknown)
}

func TestCodec_UnknownFields(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		format Format
		data   string
	}){
		{"json_field", FORMAT_JSON, `{"instructions": [{"Increment": {"register": 1, "nxt": 2}}]}`},
		{"json_variant", FORMAT_JSON, `{"instructions": [{"Inc": {"register": 1, "next": 2}}]}`},
		{"yaml_field", FORMAT_YAML, "instructions:\n  - Increment: {register: 1, nxt: 2}\n"},
		{"yaml_variant", FORMAT_YAML, "instructions:\n  - Inc: {register: 1, next: 2}\n"},
		{"yaml_top", FORMAT_YAML, "instructions: []\nbogus: 1\n"},
	}

	for _, entry := range table {
		prog, err := DecodeProgram(entry.format, []byte(entry.data))
		assert.Error(err, entry.name)
		assert.Nil(prog, entry.name)
	}

	encode := func(v any) []byte {
		data, err := cbor.Marshal(v)
		require.NoError(t, err)
		return data
	}

	increment := func(fields map[string]any) map[string]any {
		return map[string]any{
			"instructions": []any{map[string]any{"Increment": fields}},
		}
	}

	// Same shape with correct keys decodes.
	prog, err := DecodeProgram(FORMAT_CBOR, encode(increment(map[string]any{"register": 1, "next": 2})))
	require.NoError(t, err)
	assert.Equal(NewProgram(MakeIncrement(1, 2)), prog)

	prog, err = DecodeProgram(FORMAT_CBOR, encode(increment(map[string]any{"register": 1, "nxt": 2})))
	assert.Error(err)
	assert.Nil(prog)

	doc := increment(map[string]any{"register": 1, "next": 2})
	doc["bogus"] = 1
	_, err = DecodeProgram(FORMAT_CBOR, encode(doc))
	var unknown *cbor.UnknownFieldError
	assert.ErrorAs(err, &unknown)

	_, err = DecodeState(FORMAT_CBOR, encode(map[string]any{"registers": []uint64{1}, "ticks": 3}))
	assert.ErrorAs(err, &unknown)
}

func TestFormatOf(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		path   string
		format Format
		ok     bool
	}){
		{"prog.json", FORMAT_JSON, true},
		{"dir/prog.YAML", FORMAT_YAML, true},
		{"prog.yml", FORMAT_YAML, true},
		{"state.cbor", FORMAT_CBOR, true},
		{"prog.txt", 0, false},
		{"prog", 0, false},
	}

	for _, entry := range table {
		format, err := FormatOf(entry.path)
		if entry.ok {
			assert.NoError(err, entry.path)
			assert.Equal(entry.format, format, entry.path)
		} else {
			assert.Error(err, entry.path)
		}
	}

	format, err := ParseFormat("cbor")
	assert.NoError(err)
	assert.Equal(FORMAT_CBOR, format)
}
