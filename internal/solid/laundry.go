package solid

import "capdemo/internal/output"

const defaultLaundry = "clothes"

// Washer only washes. Drying lives in Dryer.
type Washer struct{}

// Wash emits "Washing <item>".
func (Washer) Wash(out output.Sink, item string) error {
	return out.Emit("Washing " + laundryItem(item))
}

// Dryer only dries.
type Dryer struct{}

// Dry emits "Drying <item>".
func (Dryer) Dry(out output.Sink, item string) error {
	return out.Emit("Drying " + laundryItem(item))
}

func laundryItem(item string) string {
	if item == "" {
		return defaultLaundry
	}
	return item
}
