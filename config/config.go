// Package config loads run files for the computability driver.
//
// A run file is TOML. Initial register and variable values, and defines,
// are integer expressions evaluated at load time:
//
//	verbose = false
//	max_steps = 1000000
//
//	[defines]
//	N = "3"
//
//	[[register]]
//	sample = "multiply"
//	registers = ["0", "N", "N + 1"]
//
//	[[while]]
//	sample = "nested-for"
//	[while.variables]
//	x = "N"
//	y = "0"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/RGates94/proof-and-computation/internal"
	"github.com/RGates94/proof-and-computation/regmach"
	"github.com/RGates94/proof-and-computation/samples"
	"github.com/RGates94/proof-and-computation/whileprog"
)

// Config is a driver run file.
type Config struct {
	Verbose  bool              `toml:"verbose"`
	MaxSteps int               `toml:"max_steps"` // 0 is unbounded.
	Defines  map[string]string `toml:"defines"`
	Register []RegisterRun     `toml:"register"`
	While    []WhileRun        `toml:"while"`

	// Dir is the directory relative paths are resolved against (set at load time).
	Dir string `toml:"-"`
}

// RegisterRun is one register machine run.
type RegisterRun struct {
	Sample    string   `toml:"sample"`    // Sample name, or
	Program   string   `toml:"program"`   // program interchange file.
	State     string   `toml:"state"`     // Optional state interchange file.
	Registers []string `toml:"registers"` // Optional initial register expressions.
}

// WhileRun is one WHILE program run.
type WhileRun struct {
	Sample    string            `toml:"sample"`
	Variables map[string]string `toml:"variables"` // Optional initial variable expressions.
}

// Default returns the built-in run list: every sample with its default input.
func Default() *Config {
	cfg := &Config{Dir: "."}

	for _, name := range samples.RegisterNames() {
		cfg.Register = append(cfg.Register, RegisterRun{Sample: name})
	}
	for _, name := range samples.WhileNames() {
		cfg.While = append(cfg.While, WhileRun{Sample: name})
	}

	return cfg
}

// Parse decodes a run file.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: %w: %v", ErrKeyUnknown, undecoded[0])
	}

	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.MaxSteps < 0 {
		cfg.MaxSteps = 0
	}

	return &cfg, nil
}

// Load reads and decodes the run file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	cfg.Dir = filepath.Dir(path)

	return cfg, nil
}

// Constants evaluates the defines. A define may refer to other defines.
func (cfg *Config) Constants() (constants map[string]uint64, err error) {
	constants = map[string]uint64{}

	pending := internal.SortedKeys(cfg.Defines)
	for len(pending) > 0 {
		var remaining []string
		var last error
		for _, name := range pending {
			value, eval_err := Evaluate(cfg.Defines[name], constants)
			if eval_err != nil {
				remaining = append(remaining, name)
				last = &ErrValue{Name: name, Err: eval_err}
				continue
			}
			constants[name] = value
		}
		if len(remaining) == len(pending) {
			err = errors.Join(ErrDefineCycle, last)
			constants = nil
			return
		}
		pending = remaining
	}

	return
}

func (cfg *Config) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Dir, name)
}

func readFile(path string) (format regmach.Format, data []byte, err error) {
	format, err = regmach.FormatOf(path)
	if err != nil {
		return
	}
	data, err = os.ReadFile(path)
	return
}

// ResolveRegister builds the program and initial state for a run.
//
// The initial state is the state file if given, otherwise the register
// expressions, otherwise the sample's default registers.
func (cfg *Config) ResolveRegister(run RegisterRun) (name string, prog *regmach.Program, state *regmach.State, err error) {
	if (run.Sample == "") == (run.Program == "") {
		err = ErrRunSource
		return
	}
	if run.State != "" && len(run.Registers) > 0 {
		err = ErrStateRegisters
		return
	}

	constants, err := cfg.Constants()
	if err != nil {
		return
	}

	var registers []uint64
	if run.Sample != "" {
		var sample samples.RegisterSample
		sample, err = samples.Register(run.Sample)
		if err != nil {
			return
		}
		name = sample.Name
		prog = sample.Program
		registers = sample.Registers
	} else {
		name = run.Program
		var format regmach.Format
		var data []byte
		format, data, err = readFile(cfg.path(run.Program))
		if err != nil {
			return
		}
		prog, err = regmach.DecodeProgram(format, data)
		if err != nil {
			return
		}
	}

	switch {
	case run.State != "":
		var format regmach.Format
		var data []byte
		format, data, err = readFile(cfg.path(run.State))
		if err != nil {
			return
		}
		state, err = regmach.DecodeState(format, data)
		return
	case len(run.Registers) > 0:
		registers, err = EvaluateAll(run.Registers, constants)
		if err != nil {
			return
		}
	}

	state = regmach.NewState(registers...)
	return
}

// ResolveWhile builds the program and initial variables for a run.
// Variable expressions are merged over the sample's default variables.
func (cfg *Config) ResolveWhile(run WhileRun) (name string, block *whileprog.Block, state *whileprog.State, err error) {
	if run.Sample == "" {
		err = ErrRunSource
		return
	}

	constants, err := cfg.Constants()
	if err != nil {
		return
	}

	sample, err := samples.While(run.Sample)
	if err != nil {
		return
	}

	values, err := EvaluateMap(run.Variables, constants)
	if err != nil {
		return
	}

	state = whileprog.StateOf(sample.Variables)
	for variable, value := range values {
		state.Set(variable, value)
	}

	return sample.Name, sample.Program, state, nil
}
