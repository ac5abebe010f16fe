// Package capability provides a registry of named capabilities and the
// substitutable variants that fulfill them.
//
// # Core Concepts
//
// Capability: a named operation with a fixed call signature, such as
// "supplyPower" or "move". Its signature is the Variant interface, so every
// variant of every capability is callable the same way.
//
// Variant: one concrete behavior fulfilling a capability, identified by an
// ID unique within that capability ("grid", "generator").
//
// Consumer: an entity holding exactly one variant that was handed to it at
// construction. It delegates to the variant and never builds one itself.
//
// Registry: maps capability names to their variants and invokes them
// against an output sink.
//
// # Usage
//
// Register variants:
//
//	reg := capability.NewRegistry(output.NewWriterSink(os.Stdout))
//	reg.Register("supplyPower", capability.NewVariant("grid",
//	    func(ctx context.Context, out output.Sink, args ...string) error {
//	        return out.Emit("Supplying power from PLN")
//	    }))
//
// Invoke by name:
//
//	err := reg.Invoke(ctx, "supplyPower", "grid")
//
// Or inject a variant into a consumer:
//
//	v, _ := reg.Lookup("supplyPower", "grid")
//	house := capability.NewConsumer(v, sink)
//	err := house.PerformAction(ctx)
//
// Lookup failures are reported as *UnknownCapabilityError or
// *UnknownVariantError; registering the same variant ID twice under one
// capability yields *DuplicateVariantError. Errors returned by a variant
// are passed through unchanged.
package capability
