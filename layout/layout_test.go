package layout_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"pkg.world.dev/world-engine/ecs/layout"
)

func TestPadToAlign(t *testing.T) {
	cases := []struct {
		name string
		in   layout.Layout
		want layout.Layout
	}{
		{"already aligned", layout.Layout{Size: 8, Align: 8}, layout.Layout{Size: 8, Align: 8}},
		{"needs padding", layout.Layout{Size: 12, Align: 8}, layout.Layout{Size: 16, Align: 8}},
		{"zero size", layout.Layout{Size: 0, Align: 4}, layout.Layout{Size: 0, Align: 4}},
		{"zero align", layout.Layout{Size: 5, Align: 0}, layout.Layout{Size: 5, Align: 0}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.DeepEqual(t, tt.in.PadToAlign(), tt.want)
		})
	}
}

func TestRepeat(t *testing.T) {
	l := layout.Layout{Size: 12, Align: 8}
	got := l.Repeat(3)
	assert.Equal(t, got.Size, uintptr(48))
}

func TestOf(t *testing.T) {
	type pair struct {
		A int64
		B int32
	}
	l := layout.Of[pair]()
	assert.Equal(t, l.Size, uintptr(16))
	assert.Equal(t, l.Align, uintptr(8))

	type zst struct{}
	z := layout.Of[zst]()
	assert.Assert(t, z.IsZeroSized())
}
