package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		n     int
		want  [][]int
	}{
		{
			name:  "even split",
			items: []int{1, 2, 3, 4},
			n:     2,
			want:  [][]int{{1, 2}, {3, 4}},
		},
		{
			name:  "uneven tail",
			items: []int{1, 2, 3, 4, 5},
			n:     2,
			want:  [][]int{{1, 2}, {3, 4}, {5}},
		},
		{
			name:  "chunk larger than input",
			items: []int{1, 2},
			n:     100,
			want:  [][]int{{1, 2}},
		},
		{
			name:  "empty input",
			items: nil,
			n:     10,
			want:  [][]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Chunk(tt.items, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChunk_RejectsNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Chunk([]int{1}, n)
		assert.Error(t, err)
	}
}
