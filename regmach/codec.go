package regmach

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format is an interchange encoding for programs and states.
type Format int

const (
	FORMAT_JSON = Format(0) // json
	FORMAT_YAML = Format(1) // yaml
	FORMAT_CBOR = Format(2) // cbor
)

func (format Format) String() string {
	switch format {
	case FORMAT_JSON:
		return "json"
	case FORMAT_YAML:
		return "yaml"
	case FORMAT_CBOR:
		return "cbor"
	}
	return fmt.Sprintf("Format(%d)", int(format))
}

var formatExt = map[string]Format{
	".json": FORMAT_JSON,
	".yaml": FORMAT_YAML,
	".yml":  FORMAT_YAML,
	".cbor": FORMAT_CBOR,
}

// FormatOf selects the format from a file name extension.
func FormatOf(path string) (format Format, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := formatExt[ext]
	if !ok {
		err = ErrFormatUnknown(ext)
	}
	return
}

// ParseFormat parses a format name.
func ParseFormat(name string) (format Format, err error) {
	return FormatOf("." + name)
}

// Canonical CBOR so that identical programs encode to identical bytes.
var cborEncMode cbor.EncMode

// Unknown map keys are rejected, as in the JSON and YAML decoders.
var cborDecMode cbor.DecMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("regmach: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em

	dm, err := cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("regmach: failed to create CBOR dec mode: %v", err))
	}
	cborDecMode = dm
}

type incrementRecord struct {
	Register uint `json:"register" yaml:"register" cbor:"register"`
	Next     uint `json:"next" yaml:"next" cbor:"next"`
}

type decrementRecord struct {
	Register   uint `json:"register" yaml:"register" cbor:"register"`
	Next       uint `json:"next" yaml:"next" cbor:"next"`
	NextIfZero uint `json:"next_if_zero" yaml:"next_if_zero" cbor:"next_if_zero"`
}

// instructionRecord is the externally tagged interchange form of an
// Instruction. Exactly one field is set.
type instructionRecord struct {
	Increment *incrementRecord `json:"Increment,omitempty" yaml:"Increment,omitempty" cbor:"Increment,omitempty"`
	Decrement *decrementRecord `json:"Decrement,omitempty" yaml:"Decrement,omitempty" cbor:"Decrement,omitempty"`
}

func (ins Instruction) record() (rec instructionRecord, err error) {
	switch ins.Op {
	case OP_INC:
		rec.Increment = &incrementRecord{Register: ins.Register, Next: ins.Next}
	case OP_DEC:
		rec.Decrement = &decrementRecord{Register: ins.Register, Next: ins.Next, NextIfZero: ins.NextIfZero}
	default:
		err = ErrInstructionOpcode
	}
	return
}

func (ins *Instruction) setRecord(rec *instructionRecord) (err error) {
	switch {
	case rec.Increment != nil && rec.Decrement == nil:
		*ins = MakeIncrement(rec.Increment.Register, rec.Increment.Next)
	case rec.Decrement != nil && rec.Increment == nil:
		*ins = MakeDecrement(rec.Decrement.Register, rec.Decrement.Next, rec.Decrement.NextIfZero)
	default:
		err = ErrInstructionVariant
	}
	return
}

func (ins Instruction) MarshalJSON() ([]byte, error) {
	rec, err := ins.record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

func (ins *Instruction) UnmarshalJSON(data []byte) (err error) {
	var rec instructionRecord
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&rec)
	if err != nil {
		return
	}
	return ins.setRecord(&rec)
}

func (ins Instruction) MarshalYAML() (any, error) {
	return ins.record()
}

// UnmarshalYAML decodes the record strictly. node.Decode does not inherit
// KnownFields from the document decoder, so the node is re-read through one.
func (ins *Instruction) UnmarshalYAML(node *yaml.Node) (err error) {
	data, err := yaml.Marshal(node)
	if err != nil {
		return
	}

	var rec instructionRecord
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(&rec)
	if err != nil {
		return
	}
	return ins.setRecord(&rec)
}

func (ins Instruction) MarshalCBOR() ([]byte, error) {
	rec, err := ins.record()
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(rec)
}

func (ins *Instruction) UnmarshalCBOR(data []byte) (err error) {
	var rec instructionRecord
	err = cborDecMode.Unmarshal(data, &rec)
	if err != nil {
		return
	}
	return ins.setRecord(&rec)
}

// Marshal encodes a *Program or *State.
func Marshal(format Format, v any) (data []byte, err error) {
	switch format {
	case FORMAT_JSON:
		data, err = json.MarshalIndent(v, "", "  ")
	case FORMAT_YAML:
		data, err = yaml.Marshal(v)
	case FORMAT_CBOR:
		data, err = cborEncMode.Marshal(v)
	default:
		err = ErrFormatUnknown(format.String())
	}
	if err != nil {
		err = fmt.Errorf("regmach: marshal %v: %w", format, err)
	}
	return
}

// Unmarshal decodes a *Program or *State.
func Unmarshal(format Format, data []byte, v any) (err error) {
	switch format {
	case FORMAT_JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	case FORMAT_YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(v)
	case FORMAT_CBOR:
		err = cborDecMode.Unmarshal(data, v)
	default:
		err = ErrFormatUnknown(format.String())
	}
	if errors.Is(err, io.EOF) {
		err = ErrDocumentEmpty
	}
	if err != nil {
		err = fmt.Errorf("regmach: unmarshal %v: %w", format, err)
	}
	return
}

// DecodeProgram decodes a program.
func DecodeProgram(format Format, data []byte) (prog *Program, err error) {
	prog = &Program{}
	err = Unmarshal(format, data, prog)
	if err != nil {
		prog = nil
	}
	return
}

// DecodeState decodes a machine state.
func DecodeState(format Format, data []byte) (state *State, err error) {
	state = &State{}
	err = Unmarshal(format, data, state)
	if err != nil {
		state = nil
	}
	return
}
