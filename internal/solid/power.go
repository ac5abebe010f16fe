package solid

import "capdemo/internal/output"

// PowerSource is the abstraction House depends on.
type PowerSource interface {
	SupplyPower(out output.Sink) error
}

// PLNElectricity is grid power from PLN.
type PLNElectricity struct{}

func (PLNElectricity) SupplyPower(out output.Sink) error {
	return out.Emit("Supplying power from PLN")
}

// GeneratorElectricity is power from a local generator.
type GeneratorElectricity struct{}

func (GeneratorElectricity) SupplyPower(out output.Sink) error {
	return out.Emit("Supplying power from Generator")
}

// House receives its PowerSource from the caller and never constructs one.
type House struct {
	source PowerSource
}

// NewHouse creates a house powered by source.
func NewHouse(source PowerSource) *House {
	return &House{source: source}
}

// TurnOnLights draws power from the injected source.
func (h *House) TurnOnLights(out output.Sink) error {
	return h.source.SupplyPower(out)
}
