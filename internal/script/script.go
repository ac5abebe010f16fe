// Package script describes demonstration scripts: ordered capability
// invocations, optionally expected to fail, that can be loaded from YAML.
package script

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Expectation names the outcome a step is expected to have.
type Expectation string

const (
	ExpectSuccess           Expectation = ""
	ExpectUnknownCapability Expectation = "unknown_capability"
	ExpectUnknownVariant    Expectation = "unknown_variant"
	ExpectFailure           Expectation = "failure"
)

// Script is an ordered list of steps.
type Script struct {
	Name  string `json:"name" yaml:"name" jsonschema:"description=Human readable script name"`
	Steps []Step `json:"steps" yaml:"steps" jsonschema:"required,minItems=1"`
}

// Step invokes one variant of one capability.
type Step struct {
	Title      string      `json:"title,omitempty" yaml:"title,omitempty" jsonschema:"description=Optional label shown in reports"`
	Capability string      `json:"capability" yaml:"capability" jsonschema:"required,minLength=1"`
	Variant    string      `json:"variant" yaml:"variant" jsonschema:"required,minLength=1"`
	Args       []string    `json:"args,omitempty" yaml:"args,omitempty"`
	Expect     Expectation `json:"expect,omitempty" yaml:"expect,omitempty" jsonschema:"enum=unknown_capability,enum=unknown_variant,enum=failure"`
}

// Label returns the title or capability/variant.
func (s Step) Label() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Capability + "/" + s.Variant
}

// Validate checks the script structure.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		if step.Capability == "" {
			return fmt.Errorf("step %d: capability is required", i+1)
		}
		if step.Variant == "" {
			return fmt.Errorf("step %d: variant is required", i+1)
		}
		switch step.Expect {
		case ExpectSuccess, ExpectUnknownCapability, ExpectUnknownVariant, ExpectFailure:
		default:
			return fmt.Errorf("step %d: unknown expectation %q", i+1, step.Expect)
		}
	}
	return nil
}

// Load reads and validates a YAML script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Schema returns the JSON Schema of the script file format.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.ExpandedStruct = true

	s := r.Reflect(&Script{})
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generated schema: %w", err)
	}
	return b, nil
}

// Default is the built-in walk through the five principles.
func Default() *Script {
	return &Script{
		Name: "solid",
		Steps: []Step{
			{Title: "SRP: washing", Capability: "wash", Variant: "washer"},
			{Title: "SRP: drying", Capability: "dry", Variant: "dryer"},
			{Title: "OCP: music", Capability: "playMusic", Variant: "car"},
			{Title: "OCP: video through an attached player", Capability: "playVideo", Variant: "car-advanced"},
			{Title: "OCP: plain car has no video", Capability: "playVideo", Variant: "car", Expect: ExpectUnknownVariant},
			{Title: "LSP: generic animal", Capability: "move", Variant: "walk"},
			{Title: "LSP: fish substitutes for animal", Capability: "move", Variant: "swim"},
			{Title: "LSP: penguin moves", Capability: "move", Variant: "penguin"},
			{Title: "LSP: fly is not a kind of move", Capability: "move", Variant: "fly", Expect: ExpectUnknownVariant},
			{Title: "LSP: penguin never claims to fly", Capability: "fly", Variant: "penguin", Expect: ExpectUnknownVariant},
			{Title: "ISP: slicing", Capability: "slice", Variant: "knife"},
			{Title: "ISP: blending", Capability: "blend", Variant: "blender"},
			{Title: "DIP: house on the grid", Capability: "turnOnLights", Variant: "grid"},
		},
	}
}
