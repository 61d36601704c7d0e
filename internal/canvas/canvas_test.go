package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform_ToCanvas(t *testing.T) {
	tr := New(300, 300)

	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{name: "top left", x: -1, y: 1, wantX: 0, wantY: 0},
		{name: "bottom right", x: 1, y: -1, wantX: 300, wantY: 300},
		{name: "origin", x: 0, y: 0, wantX: 150, wantY: 150},
		{name: "upper half", x: 0, y: 0.5, wantX: 150, wantY: 75},
		{name: "right edge", x: 1, y: 0, wantX: 300, wantY: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := tr.ToCanvas(tt.x, tt.y)
			assert.InDelta(t, tt.wantX, cx, 1e-9)
			assert.InDelta(t, tt.wantY, cy, 1e-9)
		})
	}
}

func TestTransform_CenterAndRadius(t *testing.T) {
	tr := New(400, 200)

	cx, cy := tr.Center()
	assert.Equal(t, 200.0, cx)
	assert.Equal(t, 100.0, cy)

	rx, ry := tr.Radius()
	assert.Equal(t, 200.0, rx)
	assert.Equal(t, 100.0, ry)
}

func TestCell(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantCol int
		wantRow int
	}{
		{name: "top left", x: -1, y: 1, wantCol: 0, wantRow: 0},
		{name: "bottom right clamps", x: 1, y: -1, wantCol: 39, wantRow: 19},
		{name: "origin", x: 0, y: 0, wantCol: 20, wantRow: 10},
		{name: "left middle", x: -1, y: 0, wantCol: 0, wantRow: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := Cell(tt.x, tt.y, 40, 20)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantRow, row)
		})
	}
}
