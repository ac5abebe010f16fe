package solid

import "capdemo/internal/output"

// Mover is implemented by every animal. Flying is a separate capability so
// that no Mover has to fail at something it cannot do.
type Mover interface {
	Move(out output.Sink) error
}

// Flyer is implemented only by animals that fly.
type Flyer interface {
	Fly(out output.Sink) error
}

// Animal is the generic Mover.
type Animal struct{}

func (Animal) Move(out output.Sink) error { return out.Emit("Moving") }

// Fish swims.
type Fish struct{}

func (Fish) Move(out output.Sink) error { return out.Emit("Swimming") }

// Penguin moves but does not fly: it implements Mover and nothing else.
type Penguin struct{}

func (Penguin) Move(out output.Sink) error { return out.Emit("Waddling") }

// Bird moves and flies.
type Bird struct{}

func (Bird) Move(out output.Sink) error { return out.Emit("Hopping") }

func (Bird) Fly(out output.Sink) error { return out.Emit("Flying") }
