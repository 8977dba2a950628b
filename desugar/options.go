package desugar

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Form selects the surface syntax of the lowered output. The two forms are
// observably equivalent: same decorator invocation order, same arguments,
// same installed descriptors.
type Form int

const (
	// FormClassBased keeps class syntax and appends the composition
	// statements after the declaration.
	FormClassBased Form = iota
	// FormConstructorFunction lowers the declaration itself to an explicit
	// constructor function with define-property member installs.
	FormConstructorFunction
)

func (f Form) String() string {
	if f == FormConstructorFunction {
		return "constructorFunction"
	}
	return "classBased"
}

// ParseForm parses the configuration spelling of a Form.
func ParseForm(s string) (Form, error) {
	switch s {
	case "classBased":
		return FormClassBased, nil
	case "constructorFunction":
		return FormConstructorFunction, nil
	}
	return 0, fmt.Errorf("desugar: unknown emit form %q", s)
}

// Options configures one desugaring pass.
type Options struct {
	Form Form
	// Temp is the base name of the descriptor-carrying temporary; derived
	// names are used when it would collide with an identifier in scope.
	Temp string
	// Logger receives per-declaration debug records. Nil discards.
	Logger *slog.Logger
}

func (o *Options) norm() *Options {
	out := &Options{}
	if o != nil {
		*out = *o
	}
	if out.Temp == "" {
		out.Temp = "_temp"
	}
	if out.Logger == nil {
		out.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return out
}

// LoadOptions reads Options from a YAML file:
//
//	form: classBased | constructorFunction
//	temp: _temp
func LoadOptions(path string) (*Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw struct {
		Form string `yaml:"form"`
		Temp string `yaml:"temp"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("desugar: %s: %w", path, err)
	}
	opts := &Options{Temp: raw.Temp}
	if raw.Form != "" {
		if opts.Form, err = ParseForm(raw.Form); err != nil {
			return nil, err
		}
	}
	return opts, nil
}
