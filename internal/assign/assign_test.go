package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func total(cost [][]float64, assignment []int) float64 {
	var sum float64
	for i, j := range assignment {
		sum += cost[i][j]
	}
	return sum
}

func TestMinimize(t *testing.T) {
	tests := []struct {
		name string
		cost [][]float64
		want []int
		sum  float64
	}{
		{
			name: "Identity",
			cost: [][]float64{
				{0, 1, 1},
				{1, 0, 1},
				{1, 1, 0},
			},
			want: []int{0, 1, 2},
			sum:  0,
		},
		{
			name: "Swap",
			cost: [][]float64{
				{2, 1},
				{1, 2},
			},
			want: []int{1, 0},
			sum:  2,
		},
		{
			name: "ThreeByThree",
			cost: [][]float64{
				{4, 1, 3},
				{2, 0, 5},
				{3, 2, 2},
			},
			want: []int{1, 0, 2},
			sum:  5,
		},
		{
			name: "SingleCell",
			cost: [][]float64{{7}},
			want: []int{0},
			sum:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Minimize(tt.cost)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.sum, total(tt.cost, got), 1e-12)
		})
	}
}

func TestMinimizeEmpty(t *testing.T) {
	assert.Nil(t, Minimize(nil))
}

func TestMaximize(t *testing.T) {
	gain := [][]float64{
		{3, 0, 0},
		{0, 0, 4},
		{0, 5, 0},
	}

	got := Maximize(gain)
	assert.Equal(t, []int{0, 2, 1}, got)
	assert.InDelta(t, 12.0, total(gain, got), 1e-12)
}
