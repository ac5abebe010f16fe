package solid

import "capdemo/internal/output"

type Slicer interface {
	Slice(out output.Sink) error
}

type Mixer interface {
	Mix(out output.Sink) error
}

type Blender interface {
	Blend(out output.Sink) error
}

// JuiceBlender only blends, so it only implements Blender.
type JuiceBlender struct{}

func (JuiceBlender) Blend(out output.Sink) error { return out.Emit("Blending") }

// Knife only slices.
type Knife struct{}

func (Knife) Slice(out output.Sink) error { return out.Emit("Slicing") }

// FoodProcessor genuinely does all three.
type FoodProcessor struct{}

func (FoodProcessor) Slice(out output.Sink) error { return out.Emit("Slicing") }

func (FoodProcessor) Mix(out output.Sink) error { return out.Emit("Mixing") }

func (FoodProcessor) Blend(out output.Sink) error { return out.Emit("Blending") }
