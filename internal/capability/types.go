package capability

import (
	"context"
	"time"

	"capdemo/internal/output"
)

// Variant is one concrete behavior fulfilling a capability.
// All variants of a capability share this call signature.
type Variant interface {
	// ID identifies the variant within its capability.
	ID() string

	// Invoke performs the behavior, emitting its output to out.
	Invoke(ctx context.Context, out output.Sink, args ...string) error
}

// InvokeFunc is the signature shared by every capability operation.
type InvokeFunc func(ctx context.Context, out output.Sink, args ...string) error

type funcVariant struct {
	id string
	fn InvokeFunc
}

// NewVariant adapts fn into a Variant named id.
func NewVariant(id string, fn InvokeFunc) Variant {
	return &funcVariant{id: id, fn: fn}
}

func (v *funcVariant) ID() string { return v.id }

func (v *funcVariant) Invoke(ctx context.Context, out output.Sink, args ...string) error {
	return v.fn(ctx, out, args...)
}

// Definition describes a capability. Parameters are documentation only.
type Definition struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Registration is the record kept for a registered (capability, variant) pair.
type Registration struct {
	ID           string    `json:"id" yaml:"id"`
	Capability   string    `json:"capability" yaml:"capability"`
	VariantID    string    `json:"variant" yaml:"variant"`
	RegisteredAt time.Time `json:"registeredAt" yaml:"registeredAt"`

	variant Variant
}

// Variant returns the registered variant.
func (r Registration) Variant() Variant {
	return r.variant
}

// Summary is a read-only view of one capability and its variants.
type Summary struct {
	Definition `yaml:",inline"`
	Variants   []string `json:"variants" yaml:"variants"`
}

// InvocationEvent is reported to OnInvoke observers after every Invoke.
type InvocationEvent struct {
	Capability string
	VariantID  string
	Args       []string
	Duration   time.Duration
	Err        error
}
