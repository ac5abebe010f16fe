package capability

import (
	"context"
	"errors"
	"sync"
	"testing"

	"capdemo/internal/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emitVariant(id, line string) Variant {
	return NewVariant(id, func(ctx context.Context, out output.Sink, args ...string) error {
		return out.Emit(line)
	})
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("Register and Invoke", func(t *testing.T) {
		rec := output.NewRecorder()
		reg := NewRegistry(rec)

		require.NoError(t, reg.Register("supplyPower", emitVariant("grid", "Supplying power from PLN")))
		require.NoError(t, reg.Register("supplyPower", emitVariant("generator", "Supplying power from Generator")))

		require.NoError(t, reg.Invoke(ctx, "supplyPower", "grid"))
		assert.Equal(t, []string{"Supplying power from PLN"}, rec.Lines())

		rec.Reset()
		require.NoError(t, reg.Invoke(ctx, "supplyPower", "generator"))
		assert.Equal(t, []string{"Supplying power from Generator"}, rec.Lines())
	})

	t.Run("Register duplicate", func(t *testing.T) {
		rec := output.NewRecorder()
		reg := NewRegistry(rec)

		require.NoError(t, reg.Register("move", emitVariant("swim", "Swimming")))

		err := reg.Register("move", emitVariant("swim", "Diving"))
		require.Error(t, err)
		assert.True(t, IsDuplicateVariant(err))

		var dup *DuplicateVariantError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "move", dup.Capability)
		assert.Equal(t, "swim", dup.VariantID)

		// The original registration is kept.
		require.NoError(t, reg.Invoke(ctx, "move", "swim"))
		assert.Equal(t, []string{"Swimming"}, rec.Lines())
	})

	t.Run("Same variant ID under different capabilities", func(t *testing.T) {
		reg := NewRegistry(nil)

		require.NoError(t, reg.Register("wash", emitVariant("default", "Washing clothes")))
		assert.NoError(t, reg.Register("dry", emitVariant("default", "Drying clothes")))
	})

	t.Run("Unknown capability", func(t *testing.T) {
		reg := NewRegistry(nil)

		err := reg.Invoke(ctx, "teleport", "beam")
		require.Error(t, err)
		assert.True(t, IsUnknownCapability(err))
		assert.False(t, IsUnknownVariant(err))
		assert.EqualError(t, err, `unknown capability "teleport"`)
	})

	t.Run("Unknown variant", func(t *testing.T) {
		rec := output.NewRecorder()
		reg := NewRegistry(rec)
		require.NoError(t, reg.Register("move", emitVariant("swim", "Swimming")))

		err := reg.Invoke(ctx, "move", "fly")
		require.Error(t, err)
		assert.True(t, IsUnknownVariant(err))
		assert.False(t, IsUnknownCapability(err))
		assert.Empty(t, rec.Lines())
	})

	t.Run("Variant failure passes through", func(t *testing.T) {
		boom := errors.New("penguins cannot fly")
		reg := NewRegistry(nil)
		require.NoError(t, reg.Register("fly", NewVariant("penguin", func(ctx context.Context, out output.Sink, args ...string) error {
			return boom
		})))

		err := reg.Invoke(ctx, "fly", "penguin")
		assert.Same(t, boom, err)
	})

	t.Run("Arguments reach the variant", func(t *testing.T) {
		var got []string
		reg := NewRegistry(nil)
		require.NoError(t, reg.Register("wash", NewVariant("washer", func(ctx context.Context, out output.Sink, args ...string) error {
			got = args
			return nil
		})))

		require.NoError(t, reg.Invoke(ctx, "wash", "washer", "shirts", "towels"))
		assert.Equal(t, []string{"shirts", "towels"}, got)
	})

	t.Run("Validation", func(t *testing.T) {
		reg := NewRegistry(nil)

		var verr ValidationError
		assert.ErrorAs(t, reg.Register("", emitVariant("a", "x")), &verr)
		assert.ErrorAs(t, reg.Register("cap", nil), &verr)
		assert.ErrorAs(t, reg.Register("cap", emitVariant("", "x")), &verr)
		assert.ErrorAs(t, reg.Define(Definition{}), &verr)
	})
}

func TestRegistry_InvokeTo(t *testing.T) {
	base := output.NewRecorder()
	reg := NewRegistry(base)
	require.NoError(t, reg.Register("blend", emitVariant("blender", "Blending")))

	captured := output.NewRecorder()
	require.NoError(t, reg.InvokeTo(context.Background(), captured, "blend", "blender"))

	assert.Equal(t, []string{"Blending"}, captured.Lines())
	assert.Empty(t, base.Lines())
}

func TestRegistry_Listing(t *testing.T) {
	reg := NewRegistry(nil)

	require.NoError(t, reg.Define(Definition{Name: "supplyPower", Description: "Provide electricity", Parameters: []string{}}))
	require.NoError(t, reg.Register("supplyPower", emitVariant("grid", "")))
	require.NoError(t, reg.Register("supplyPower", emitVariant("generator", "")))
	require.NoError(t, reg.Register("move", emitVariant("walk", "")))

	assert.True(t, reg.Has("move"))
	assert.False(t, reg.Has("fly"))

	variants, err := reg.Variants("supplyPower")
	require.NoError(t, err)
	assert.Equal(t, []string{"grid", "generator"}, variants)

	_, err = reg.Variants("fly")
	assert.True(t, IsUnknownCapability(err))

	summaries := reg.Capabilities()
	require.Len(t, summaries, 2)
	assert.Equal(t, "move", summaries[0].Name)
	assert.Equal(t, "supplyPower", summaries[1].Name)
	assert.Equal(t, "Provide electricity", summaries[1].Description)
	assert.Equal(t, []string{"grid", "generator"}, summaries[1].Variants)
}

func TestRegistry_Callbacks(t *testing.T) {
	reg := NewRegistry(nil)

	var registered []Registration
	var invoked []InvocationEvent
	reg.OnRegister(func(r Registration) { registered = append(registered, r) })
	reg.OnInvoke(func(ev InvocationEvent) { invoked = append(invoked, ev) })

	require.NoError(t, reg.Register("mix", emitVariant("processor", "Mixing")))
	require.Len(t, registered, 1)
	assert.NotEmpty(t, registered[0].ID)
	assert.Equal(t, "mix", registered[0].Capability)
	assert.Equal(t, "processor", registered[0].VariantID)
	assert.False(t, registered[0].RegisteredAt.IsZero())
	assert.NotNil(t, registered[0].Variant())

	require.NoError(t, reg.Invoke(context.Background(), "mix", "processor", "dough"))
	require.Len(t, invoked, 1)
	assert.Equal(t, []string{"dough"}, invoked[0].Args)
	assert.NoError(t, invoked[0].Err)

	// Lookup failures never reach a variant and are not reported.
	_ = reg.Invoke(context.Background(), "mix", "spoon")
	assert.Len(t, invoked, 1)
}

func TestRegistry_Registration(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.Register("slice", emitVariant("processor", "Slicing")))
	require.NoError(t, reg.Register("slice", emitVariant("knife", "Slicing")))

	a, err := reg.Registration("slice", "processor")
	require.NoError(t, err)
	b, err := reg.Registration("slice", "knife")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry(output.NewRecorder())
	require.NoError(t, reg.Register("move", emitVariant("walk", "Moving")))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, reg.Invoke(context.Background(), "move", "walk"))
			_ = reg.Capabilities()
		}()
	}
	wg.Wait()
}
