package capability

import (
	"context"
	"sort"
	"sync"
	"time"

	"capdemo/internal/output"
	"capdemo/pkg/logging"

	"github.com/google/uuid"
)

// entry holds one capability and its variants in registration order.
type entry struct {
	def      Definition
	order    []string
	variants map[string]Registration
}

// Registry manages registered capabilities and their variants
type Registry struct {
	mu           sync.RWMutex
	capabilities map[string]*entry
	sink         output.Sink

	// Callbacks
	onRegister []func(reg Registration)
	onInvoke   []func(ev InvocationEvent)
}

// NewRegistry creates a new capability registry that invokes variants against sink.
// A nil sink discards output.
func NewRegistry(sink output.Sink) *Registry {
	if sink == nil {
		sink = output.Discard
	}
	return &Registry{
		capabilities: make(map[string]*entry),
		sink:         sink,
	}
}

// Sink returns the sink variants are invoked against.
func (r *Registry) Sink() output.Sink {
	return r.sink
}

// Define attaches a description and parameter names to a capability,
// creating the capability if it does not exist yet.
func (r *Registry) Define(def Definition) error {
	if def.Name == "" {
		return ValidationError{Field: "name", Message: "capability name is required"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entryLocked(def.Name)
	e.def = def
	logging.Debug("Registry", "Defined capability %s", def.Name)
	return nil
}

// Register adds variant under capabilityName. Registering a variant ID that
// already exists for the capability fails with *DuplicateVariantError;
// the existing registration is kept.
func (r *Registry) Register(capabilityName string, variant Variant) error {
	if capabilityName == "" {
		return ValidationError{Field: "capability", Message: "capability name is required"}
	}
	if variant == nil {
		return ValidationError{Field: "variant", Message: "variant is required"}
	}
	if variant.ID() == "" {
		return ValidationError{Field: "variant", Message: "variant ID is required"}
	}

	r.mu.Lock()

	e := r.entryLocked(capabilityName)
	if _, exists := e.variants[variant.ID()]; exists {
		r.mu.Unlock()
		return &DuplicateVariantError{Capability: capabilityName, VariantID: variant.ID()}
	}

	reg := Registration{
		ID:           uuid.New().String(),
		Capability:   capabilityName,
		VariantID:    variant.ID(),
		RegisteredAt: time.Now(),
		variant:      variant,
	}
	e.variants[variant.ID()] = reg
	e.order = append(e.order, variant.ID())

	callbacks := make([]func(Registration), len(r.onRegister))
	copy(callbacks, r.onRegister)
	r.mu.Unlock()

	for _, callback := range callbacks {
		callback(reg)
	}

	return nil
}

// Lookup returns the variant registered as variantID under capabilityName.
func (r *Registry) Lookup(capabilityName, variantID string) (Variant, error) {
	reg, err := r.Registration(capabilityName, variantID)
	if err != nil {
		return nil, err
	}
	return reg.variant, nil
}

// Registration returns the registration record for a (capability, variant) pair.
func (r *Registry) Registration(capabilityName, variantID string) (Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.capabilities[capabilityName]
	if !exists {
		return Registration{}, &UnknownCapabilityError{Capability: capabilityName}
	}
	reg, exists := e.variants[variantID]
	if !exists {
		return Registration{}, &UnknownVariantError{Capability: capabilityName, VariantID: variantID}
	}
	return reg, nil
}

// Invoke looks up a variant and invokes it against the registry sink.
// Errors returned by the variant are passed through unchanged.
func (r *Registry) Invoke(ctx context.Context, capabilityName, variantID string, args ...string) error {
	return r.InvokeTo(ctx, r.sink, capabilityName, variantID, args...)
}

// InvokeTo is Invoke with an explicit sink, used to capture the output of a single call.
func (r *Registry) InvokeTo(ctx context.Context, out output.Sink, capabilityName, variantID string, args ...string) error {
	variant, err := r.Lookup(capabilityName, variantID)
	if err != nil {
		return err
	}
	if out == nil {
		out = output.Discard
	}

	start := time.Now()
	err = variant.Invoke(ctx, out, args...)
	ev := InvocationEvent{
		Capability: capabilityName,
		VariantID:  variantID,
		Args:       args,
		Duration:   time.Since(start),
		Err:        err,
	}

	r.mu.RLock()
	callbacks := make([]func(InvocationEvent), len(r.onInvoke))
	copy(callbacks, r.onInvoke)
	r.mu.RUnlock()

	for _, callback := range callbacks {
		callback(ev)
	}

	return err
}

// Has reports whether capabilityName is known.
func (r *Registry) Has(capabilityName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.capabilities[capabilityName]
	return exists
}

// Variants returns the variant IDs of capabilityName in registration order.
func (r *Registry) Variants(capabilityName string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.capabilities[capabilityName]
	if !exists {
		return nil, &UnknownCapabilityError{Capability: capabilityName}
	}
	result := make([]string, len(e.order))
	copy(result, e.order)
	return result, nil
}

// Capabilities returns a summary of every capability sorted by name.
func (r *Registry) Capabilities() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Summary, 0, len(r.capabilities))
	for _, e := range r.capabilities {
		variants := make([]string, len(e.order))
		copy(variants, e.order)
		result = append(result, Summary{Definition: e.def, Variants: variants})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// OnRegister adds a callback for variant registration
func (r *Registry) OnRegister(callback func(reg Registration)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onRegister = append(r.onRegister, callback)
}

// OnInvoke adds a callback run after every Invoke that reached a variant
func (r *Registry) OnInvoke(callback func(ev InvocationEvent)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onInvoke = append(r.onInvoke, callback)
}

// entryLocked returns the entry for name, creating it. r.mu must be held for writing.
func (r *Registry) entryLocked(name string) *entry {
	e, exists := r.capabilities[name]
	if !exists {
		e = &entry{
			def:      Definition{Name: name},
			variants: make(map[string]Registration),
		}
		r.capabilities[name] = e
	}
	return e
}
