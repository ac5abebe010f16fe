package solid

import (
	"testing"

	"capdemo/internal/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouse_UsesInjectedSource(t *testing.T) {
	sources := map[string]PowerSource{
		"Supplying power from PLN":       PLNElectricity{},
		"Supplying power from Generator": GeneratorElectricity{},
	}

	for want, source := range sources {
		rec := output.NewRecorder()
		require.NoError(t, NewHouse(source).TurnOnLights(rec))
		assert.Equal(t, []string{want}, rec.Lines())
	}
}

func TestEntertainmentSystem_Composition(t *testing.T) {
	rec := output.NewRecorder()

	basic := NewEntertainmentSystem(Radio{})
	assert.False(t, basic.HasVideo())
	require.NoError(t, basic.PlayMusic(rec))
	assert.ErrorIs(t, basic.PlayVideo(rec), ErrNoVideoPlayer)

	advanced := NewEntertainmentSystem(Radio{}, WithVideo(Screen{}))
	assert.True(t, advanced.HasVideo())
	require.NoError(t, advanced.PlayVideo(rec))

	assert.Equal(t, []string{"Playing music", "Playing video"}, rec.Lines())
}

func TestMovers_AreSubstitutable(t *testing.T) {
	movers := []Mover{Animal{}, Fish{}, Penguin{}, Bird{}}
	rec := output.NewRecorder()

	for _, m := range movers {
		require.NoError(t, m.Move(rec))
	}
	assert.Equal(t, []string{"Moving", "Swimming", "Waddling", "Hopping"}, rec.Lines())

	var _ Flyer = Bird{}
	_, penguinFlies := interface{}(Penguin{}).(Flyer)
	assert.False(t, penguinFlies)
}

func TestKitchen_NarrowInterfaces(t *testing.T) {
	_, blenderSlices := interface{}(JuiceBlender{}).(Slicer)
	_, blenderMixes := interface{}(JuiceBlender{}).(Mixer)
	assert.False(t, blenderSlices)
	assert.False(t, blenderMixes)

	var p interface{} = FoodProcessor{}
	_, slices := p.(Slicer)
	_, mixes := p.(Mixer)
	_, blends := p.(Blender)
	assert.True(t, slices && mixes && blends)
}

func TestLaundry_SeparateResponsibilities(t *testing.T) {
	rec := output.NewRecorder()
	require.NoError(t, Washer{}.Wash(rec, ""))
	require.NoError(t, Dryer{}.Dry(rec, "sheets"))
	assert.Equal(t, []string{"Washing clothes", "Drying sheets"}, rec.Lines())
}
