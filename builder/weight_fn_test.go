package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/stretchr/testify/require"
)

func TestConstantWeightFn(t *testing.T) {
	fn := builder.ConstantWeightFn(7)
	require.Equal(t, int64(7), fn(nil))
	require.Equal(t, int64(7), fn(rand.New(rand.NewSource(1))))
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
}

func TestUniformWeightFn(t *testing.T) {
	fn := builder.UniformWeightFn(3, 5)
	require.Equal(t, int64(3), fn(nil), "nil rng falls back to min")

	rng := rand.New(rand.NewSource(7))
	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		w := fn(rng)
		require.GreaterOrEqual(t, w, int64(3))
		require.LessOrEqual(t, w, int64(5))
		seen[w] = true
	}
	require.Len(t, seen, 3, "all values in [3,5] should be drawn")

	require.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(rng))

	full := builder.UniformWeightFn(0, math.MaxInt64)
	require.NotPanics(t, func() {
		for i := 0; i < 100; i++ {
			require.GreaterOrEqual(t, full(rng), int64(0))
		}
	})
	top := builder.UniformWeightFn(1, math.MaxInt64)
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, top(rng), int64(1))
	}
	require.Panics(t, func() { builder.UniformWeightFn(-1, 2) })
	require.Panics(t, func() { builder.UniformWeightFn(5, 2) })
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
}
