package capability

import (
	"context"

	"capdemo/internal/output"
)

// Consumer depends on a capability abstraction rather than a concrete type.
// It holds one variant supplied at construction and delegates to it; it does
// not own the variant's lifecycle.
type Consumer struct {
	variant Variant
	out     output.Sink
}

// NewConsumer creates a consumer delegating to variant and emitting to out.
// A nil out discards output.
func NewConsumer(variant Variant, out output.Sink) *Consumer {
	if out == nil {
		out = output.Discard
	}
	return &Consumer{variant: variant, out: out}
}

// Variant returns the held variant.
func (c *Consumer) Variant() Variant {
	return c.variant
}

// PerformAction invokes the held variant. A variant failure is returned unchanged.
func (c *Consumer) PerformAction(ctx context.Context, args ...string) error {
	if c.variant == nil {
		return ValidationError{Field: "variant", Message: "consumer has no variant"}
	}
	return c.variant.Invoke(ctx, c.out, args...)
}
