package solid

import (
	"context"
	"fmt"

	"capdemo/internal/capability"
	"capdemo/internal/output"
)

// Capability names registered by RegisterAll.
const (
	CapWash         = "wash"
	CapDry          = "dry"
	CapPlayMusic    = "playMusic"
	CapPlayVideo    = "playVideo"
	CapMove         = "move"
	CapFly          = "fly"
	CapSlice        = "slice"
	CapMix          = "mix"
	CapBlend        = "blend"
	CapSupplyPower  = "supplyPower"
	CapTurnOnLights = "turnOnLights"
)

// Principle names a SOLID principle; used to group definitions.
type Principle string

const (
	SingleResponsibility Principle = "single-responsibility"
	OpenClosed           Principle = "open-closed"
	LiskovSubstitution   Principle = "liskov-substitution"
	InterfaceSegregation Principle = "interface-segregation"
	DependencyInversion  Principle = "dependency-inversion"
)

type catalogEntry struct {
	principle Principle
	def       capability.Definition
	variants  []capability.Variant
}

// variant adapts a sink-emitting method into a capability variant that
// honors context cancellation.
func variant(id string, fn func(out output.Sink, args []string) error) capability.Variant {
	return capability.NewVariant(id, func(ctx context.Context, out output.Sink, args ...string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(out, args)
	})
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func catalog() []catalogEntry {
	car := NewEntertainmentSystem(Radio{})
	advancedCar := NewEntertainmentSystem(Radio{}, WithVideo(Screen{}))
	processor := FoodProcessor{}

	return []catalogEntry{
		{
			principle: SingleResponsibility,
			def:       capability.Definition{Name: CapWash, Description: "Wash laundry", Parameters: []string{"item"}},
			variants: []capability.Variant{
				variant("washer", func(out output.Sink, args []string) error { return Washer{}.Wash(out, firstArg(args)) }),
			},
		},
		{
			principle: SingleResponsibility,
			def:       capability.Definition{Name: CapDry, Description: "Dry laundry", Parameters: []string{"item"}},
			variants: []capability.Variant{
				variant("dryer", func(out output.Sink, args []string) error { return Dryer{}.Dry(out, firstArg(args)) }),
			},
		},
		{
			principle: OpenClosed,
			def:       capability.Definition{Name: CapPlayMusic, Description: "Play music in the car"},
			variants: []capability.Variant{
				variant("car", func(out output.Sink, _ []string) error { return car.PlayMusic(out) }),
				variant("car-advanced", func(out output.Sink, _ []string) error { return advancedCar.PlayMusic(out) }),
			},
		},
		{
			principle: OpenClosed,
			def:       capability.Definition{Name: CapPlayVideo, Description: "Play video in the car"},
			variants: []capability.Variant{
				variant("car-advanced", func(out output.Sink, _ []string) error { return advancedCar.PlayVideo(out) }),
			},
		},
		{
			principle: LiskovSubstitution,
			def:       capability.Definition{Name: CapMove, Description: "Move an animal"},
			variants: []capability.Variant{
				variant("walk", func(out output.Sink, _ []string) error { return Animal{}.Move(out) }),
				variant("swim", func(out output.Sink, _ []string) error { return Fish{}.Move(out) }),
				variant("penguin", func(out output.Sink, _ []string) error { return Penguin{}.Move(out) }),
				variant("bird", func(out output.Sink, _ []string) error { return Bird{}.Move(out) }),
			},
		},
		{
			principle: LiskovSubstitution,
			def:       capability.Definition{Name: CapFly, Description: "Fly, for animals that can"},
			variants: []capability.Variant{
				variant("bird", func(out output.Sink, _ []string) error { return Bird{}.Fly(out) }),
			},
		},
		{
			principle: InterfaceSegregation,
			def:       capability.Definition{Name: CapSlice, Description: "Slice food"},
			variants: []capability.Variant{
				variant("knife", func(out output.Sink, _ []string) error { return Knife{}.Slice(out) }),
				variant("processor", func(out output.Sink, _ []string) error { return processor.Slice(out) }),
			},
		},
		{
			principle: InterfaceSegregation,
			def:       capability.Definition{Name: CapMix, Description: "Mix food"},
			variants: []capability.Variant{
				variant("processor", func(out output.Sink, _ []string) error { return processor.Mix(out) }),
			},
		},
		{
			principle: InterfaceSegregation,
			def:       capability.Definition{Name: CapBlend, Description: "Blend food"},
			variants: []capability.Variant{
				variant("blender", func(out output.Sink, _ []string) error { return JuiceBlender{}.Blend(out) }),
				variant("processor", func(out output.Sink, _ []string) error { return processor.Blend(out) }),
			},
		},
		{
			principle: DependencyInversion,
			def:       capability.Definition{Name: CapSupplyPower, Description: "Supply electricity"},
			variants: []capability.Variant{
				variant("grid", func(out output.Sink, _ []string) error { return PLNElectricity{}.SupplyPower(out) }),
				variant("generator", func(out output.Sink, _ []string) error { return GeneratorElectricity{}.SupplyPower(out) }),
			},
		},
		{
			principle: DependencyInversion,
			def:       capability.Definition{Name: CapTurnOnLights, Description: "Turn on the lights of a house wired to an injected power source"},
			variants: []capability.Variant{
				variant("grid", func(out output.Sink, _ []string) error { return NewHouse(PLNElectricity{}).TurnOnLights(out) }),
				variant("generator", func(out output.Sink, _ []string) error { return NewHouse(GeneratorElectricity{}).TurnOnLights(out) }),
			},
		},
	}
}

// RegisterAll defines every demo capability in reg and registers its variants.
func RegisterAll(reg *capability.Registry) error {
	for _, e := range catalog() {
		if err := reg.Define(e.def); err != nil {
			return fmt.Errorf("failed to define %s: %w", e.def.Name, err)
		}
		for _, v := range e.variants {
			if err := reg.Register(e.def.Name, v); err != nil {
				return fmt.Errorf("failed to register %s/%s: %w", e.def.Name, v.ID(), err)
			}
		}
	}
	return nil
}

// Principles maps each capability name to the principle it illustrates.
func Principles() map[string]Principle {
	result := make(map[string]Principle)
	for _, e := range catalog() {
		result[e.def.Name] = e.principle
	}
	return result
}
