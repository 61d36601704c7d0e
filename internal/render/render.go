// Package render draws simulation runs onto a raster canvas.
//
// The default picture is a white square with the inscribed circle outlined
// in blue, points inside the circle in green and points outside in red.
package render

import (
	"fmt"
	"image"
	"io"
	"iter"

	"github.com/gogpu/gg"

	"github.com/leapstack-labs/mcpi/internal/canvas"
	"github.com/leapstack-labs/mcpi/pkg/estimator"
)

// Options controls the size and colors of the rendered canvas.
type Options struct {
	Width        int
	Height       int
	PointRadius  float64
	CircleWidth  float64
	InsideColor  string
	OutsideColor string
	CircleColor  string
	Background   string
}

// DefaultOptions returns a 300x300 canvas with 1px points.
func DefaultOptions() Options {
	return Options{
		Width:        300,
		Height:       300,
		PointRadius:  1,
		CircleWidth:  2,
		InsideColor:  "#00ff00",
		OutsideColor: "#ff0000",
		CircleColor:  "#0000ff",
		Background:   "#ffffff",
	}
}

// Renderer draws points onto a canvas. It holds only display state.
type Renderer struct {
	opts      Options
	transform canvas.Transform
	dc        *gg.Context
	drawn     int
}

// New creates a Renderer with a cleared canvas.
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	r := &Renderer{
		opts:      opts,
		transform: canvas.New(float64(opts.Width), float64(opts.Height)),
		dc:        gg.NewContext(opts.Width, opts.Height),
	}
	if err := r.Reset(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset clears every point and redraws the inscribed circle.
func (r *Renderer) Reset() error {
	r.dc.ClearWithColor(gg.Hex(r.opts.Background))
	r.drawn = 0

	cx, cy := r.transform.Center()
	rx, ry := r.transform.Radius()
	// inset by half the stroke so the outline stays on the canvas
	inset := r.opts.CircleWidth / 2

	r.dc.SetHexColor(r.opts.CircleColor)
	r.dc.SetLineWidth(r.opts.CircleWidth)
	r.dc.DrawEllipse(cx, cy, rx-inset, ry-inset)
	if err := r.dc.Stroke(); err != nil {
		return fmt.Errorf("failed to draw circle: %w", err)
	}
	return nil
}

// DrawPoint draws a single classified point.
func (r *Renderer) DrawPoint(p estimator.Point) error {
	color := r.opts.OutsideColor
	if p.Inside {
		color = r.opts.InsideColor
	}

	cx, cy := r.transform.ToCanvas(p.X, p.Y)
	r.dc.SetHexColor(color)
	r.dc.DrawPoint(cx, cy, r.opts.PointRadius)
	if err := r.dc.Fill(); err != nil {
		return fmt.Errorf("failed to draw point (%g, %g): %w", p.X, p.Y, err)
	}
	r.drawn++
	return nil
}

// Draw pulls every point from seq and draws it as it arrives.
func (r *Renderer) Draw(seq iter.Seq[estimator.Point]) error {
	for p := range seq {
		if err := r.DrawPoint(p); err != nil {
			return err
		}
	}
	return nil
}

// Drawn returns the number of points drawn since the last Reset.
func (r *Renderer) Drawn() int { return r.drawn }

// Image returns the current canvas.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save canvas to %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}
