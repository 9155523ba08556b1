package analyzer

import (
	"testing"

	"complexity-analyzer/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepSizes(t *testing.T) {
	cases := []struct {
		n, steps int
		want     []int
	}{
		{100, 5, []int{20, 40, 60, 80, 100}},
		{10, 3, []int{3, 6, 10}},
		{7, 2, []int{3, 7}},
		{50, 1, []int{50}},
		{0, 3, []int{0, 0, 0}},
		{2, 5, []int{0, 0, 1, 1, 2}},
	}
	for _, c := range cases {
		got, err := StepSizes(c.n, c.steps)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "n=%d steps=%d", c.n, c.steps)
	}
}

func TestStepSizes_Properties(t *testing.T) {
	for n := 1; n <= 120; n++ {
		for steps := 1; steps <= 40; steps++ {
			sizes, err := StepSizes(n, steps)
			require.NoError(t, err)
			require.Len(t, sizes, steps)

			for i := 1; i < len(sizes); i++ {
				require.LessOrEqual(t, sizes[i-1], sizes[i], "n=%d steps=%d i=%d", n, steps, i)
			}
			for i, s := range sizes {
				require.Equal(t, (i+1)*n/steps, s, "n=%d steps=%d i=%d", n, steps, i)
			}
			last := sizes[len(sizes)-1]
			require.LessOrEqual(t, last, n)
			if n%steps == 0 {
				require.Equal(t, n, last)
			}
		}
	}
}

func TestStepSizes_LargeNoOverflow(t *testing.T) {
	n := int(^uint(0)>>1) - 1
	sizes, err := StepSizes(n, 4)
	require.NoError(t, err)
	assert.Equal(t, n, sizes[3])
	for i := 1; i < len(sizes); i++ {
		assert.Less(t, sizes[i-1], sizes[i])
	}
}

func TestStepSizes_InvalidArgument(t *testing.T) {
	_, err := StepSizes(100, 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = StepSizes(100, -1)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = StepSizes(-5, 2)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
