package capability

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrUnknownCapability = errors.New("unknown capability")
	ErrUnknownVariant    = errors.New("unknown variant")
	ErrDuplicateVariant  = errors.New("duplicate variant")
)

// UnknownCapabilityError is returned when no capability has the given name.
type UnknownCapabilityError struct {
	Capability string
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("unknown capability %q", e.Capability)
}

func (e *UnknownCapabilityError) Is(target error) bool {
	return target == ErrUnknownCapability
}

// UnknownVariantError is returned when the capability exists but has no variant with the given ID.
type UnknownVariantError struct {
	Capability string
	VariantID  string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q for capability %q", e.VariantID, e.Capability)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// DuplicateVariantError is returned when a variant ID is registered twice under one capability.
type DuplicateVariantError struct {
	Capability string
	VariantID  string
}

func (e *DuplicateVariantError) Error() string {
	return fmt.Sprintf("variant %q already registered for capability %q", e.VariantID, e.Capability)
}

func (e *DuplicateVariantError) Is(target error) bool {
	return target == ErrDuplicateVariant
}

// IsUnknownCapability reports whether err is or wraps an UnknownCapabilityError.
func IsUnknownCapability(err error) bool {
	return errors.Is(err, ErrUnknownCapability)
}

// IsUnknownVariant reports whether err is or wraps an UnknownVariantError.
func IsUnknownVariant(err error) bool {
	return errors.Is(err, ErrUnknownVariant)
}

// IsDuplicateVariant reports whether err is or wraps a DuplicateVariantError.
func IsDuplicateVariant(err error) bool {
	return errors.Is(err, ErrDuplicateVariant)
}

// ValidationError represents a rejected registration argument.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
}
