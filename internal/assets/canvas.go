package assets

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// pt is a polygon vertex in pixel coordinates.
type pt struct {
	x, y float64
}

// canvas wraps a gg drawing context and latches the first raster error,
// so frame code reads as a straight sequence of paint calls and checks
// the error once at save time (same contract as bufio.Writer).
type canvas struct {
	dc  *gg.Context
	err error
}

func newCanvas(w, h int, bg gg.RGBA) *canvas {
	dc := gg.NewContext(w, h)
	if bg.A > 0 {
		dc.ClearWithColor(bg)
	}
	return &canvas{dc: dc}
}

func (c *canvas) fill(col gg.RGBA) {
	if c.err != nil {
		return
	}
	c.dc.SetColor(col.Color())
	c.err = c.dc.Fill()
}

func (c *canvas) stroke(col gg.RGBA, width float64) {
	if c.err != nil {
		return
	}
	c.dc.SetColor(col.Color())
	c.dc.SetLineWidth(width)
	c.err = c.dc.Stroke()
}

// save writes the frame and reports any raster error latched earlier.
func (c *canvas) save(path string) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.SavePNG(path)
}

func (c *canvas) fillRect(x0, y0, x1, y1 float64, col gg.RGBA) {
	c.dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	c.fill(col)
}

func (c *canvas) strokeRect(x0, y0, x1, y1, width float64, col gg.RGBA) {
	c.dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	c.stroke(col, width)
}

func (c *canvas) fillRoundedRect(x0, y0, x1, y1, r float64, col gg.RGBA) {
	c.dc.DrawRoundedRectangle(x0, y0, x1-x0, y1-y0, r)
	c.fill(col)
}

func (c *canvas) strokeRoundedRect(x0, y0, x1, y1, r, width float64, col gg.RGBA) {
	c.dc.DrawRoundedRectangle(x0, y0, x1-x0, y1-y0, r)
	c.stroke(col, width)
}

// strokeEllipse outlines the ellipse inscribed in the pixel bounds
// (x0,y0)-(x1,y1).
func (c *canvas) strokeEllipse(x0, y0, x1, y1, width float64, col gg.RGBA) {
	c.dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	c.stroke(col, width)
}

func (c *canvas) fillEllipse(x0, y0, x1, y1 float64, col gg.RGBA) {
	c.dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	c.fill(col)
}

// arc strokes a circular arc about (cx,cy). Angles are in degrees,
// 0 at three o'clock, increasing clockwise on screen.
func (c *canvas) arc(cx, cy, r, startDeg, sweepDeg, width float64, col gg.RGBA) {
	a1 := radians(startDeg)
	c.dc.DrawArc(cx, cy, r, a1, a1+radians(sweepDeg))
	c.stroke(col, width)
}

func (c *canvas) line(x1, y1, x2, y2, width float64, col gg.RGBA) {
	c.dc.DrawLine(x1, y1, x2, y2)
	c.stroke(col, width)
}

func (c *canvas) pathPolygon(pts []pt) {
	c.dc.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.x, p.y)
	}
	c.dc.ClosePath()
}

func (c *canvas) fillPolygon(pts []pt, col gg.RGBA) {
	c.pathPolygon(pts)
	c.fill(col)
}

func (c *canvas) strokePolygon(pts []pt, width float64, col gg.RGBA) {
	c.pathPolygon(pts)
	c.stroke(col, width)
}

// text draws s with its top-left corner at (x, top).
func (c *canvas) text(face text.Face, s string, x, top float64, col gg.RGBA) {
	c.dc.SetFont(face)
	c.dc.SetColor(col.Color())
	c.dc.DrawString(s, x, top+face.Metrics().Ascent)
}

// textCenteredX draws s horizontally centered on cx with its top at top.
func (c *canvas) textCenteredX(face text.Face, s string, cx, top float64, col gg.RGBA) {
	c.dc.SetFont(face)
	w, _ := c.dc.MeasureString(s)
	c.text(face, s, cx-w/2, top, col)
}

// textCentered draws s centered on (cx, cy) in both axes.
func (c *canvas) textCentered(face text.Face, s string, cx, cy float64, col gg.RGBA) {
	c.dc.SetFont(face)
	w, _ := c.dc.MeasureString(s)
	m := face.Metrics()
	c.dc.SetColor(col.Color())
	c.dc.DrawString(s, cx-w/2, cy+(m.Ascent-m.Descent)/2)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// withAlpha returns col with its alpha replaced.
func withAlpha(col gg.RGBA, a float64) gg.RGBA {
	col.A = a
	return col
}
