// Package draw renders 2D diagrams of solved gear trains: pitch circles and
// arbor centers, the drawing a clockmaker lays out before cutting anything.
package draw

import (
	"math"

	"github.com/watchmakers/gears"
	"github.com/watchmakers/gears/train"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Train writes a pitch-circle diagram of a layout to an image file. The
// format follows the file extension (png, svg, pdf, ...).
func Train(l *train.Layout, path string) error {
	p := plot.New()
	p.Title.Text = "gear train layout"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	c := l.Counts
	teeth := [4]struct{ wheel, pinion int }{
		{0, c.InputPinion},
		{c.SecondWheel, c.SecondPinion},
		{c.ThirdWheel, c.ThirdPinion},
		{c.FourthWheel, 0},
	}
	for i, node := range l.Nodes {
		if node.HasWheel {
			if err := addCircle(p, node.Pos, 0.5*gears.PitchDiameter(teeth[i].wheel, l.Module)); err != nil {
				return err
			}
		}
		if node.HasPinion {
			if err := addCircle(p, node.Pos, 0.5*gears.PitchDiameter(teeth[i].pinion, l.Module)); err != nil {
				return err
			}
		}
	}

	centers := make(plotter.XYs, len(l.Nodes))
	for i, node := range l.Nodes {
		centers[i] = plotter.XY{X: node.Pos.X, Y: node.Pos.Y}
	}
	scatter, err := plotter.NewScatter(centers)
	if err != nil {
		return err
	}
	p.Add(scatter)
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func addCircle(p *plot.Plot, center r2.Vec, radius float64) error {
	const segments = 128
	pts := make(plotter.XYs, segments+1)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / segments)
		pts[i] = plotter.XY{X: center.X + radius*cos, Y: center.Y + radius*sin}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return nil
}
