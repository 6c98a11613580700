package analysis

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	pointColor = color.RGBA{R: 255, A: 255}
	barColor   = color.RGBA{R: 50, G: 50, B: 255, A: 255}
)

// finitePairs keeps the rows where both x and y are finite.
func finitePairs(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

func toXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

func addScatter(p *plot.Plot, x, y []float64, radius vg.Length) error {
	if len(x) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(toXYs(x, y))
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = pointColor
	s.GlyphStyle.Shape = draw.CrossGlyph{}
	s.GlyphStyle.Radius = radius
	p.Add(s)
	return nil
}

func addHistogram(p *plot.Plot, x []float64, bins int) error {
	vals, _ := finitePairs(x, x)
	if len(vals) == 0 {
		return nil
	}
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return err
	}
	h.FillColor = barColor
	p.Add(h)
	return nil
}

// Scatter plots y against x and queues the figure. It returns both columns
// row-aligned over every row, missing values included; rows where either
// value is missing are left out of the plot. With DropMissing the returned
// slices hold only the plotted rows.
func (a *Analysis) Scatter(x, y, title string) ([]float64, []float64, error) {
	cols, err := a.columns([]string{x, y}, nil)
	if err != nil {
		return nil, nil, err
	}
	xs, ys := cols[0], cols[1]
	px, py := finitePairs(xs, ys)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	if err := addScatter(p, px, py, vg.Points(3)); err != nil {
		return nil, nil, fmt.Errorf("scatter %s vs %s: %w", y, x, err)
	}

	a.push(newFigure(ScatterFigure, title, [][]*plot.Plot{{p}}, a.opts.Width, a.opts.Height))
	a.opts.Logger.Debug("scatter queued", "x", x, "y", y, "points", len(px), "rows", len(xs))
	if a.opts.DropMissing {
		return px, py, nil
	}
	return xs, ys, nil
}

// PairPlot builds an N×N grid over headers and queues it. Cell (i, j) plots
// headers[i] on the y axis against headers[j] on the x axis; diagonal cells
// hold a histogram of headers[i]. Only the left column and the bottom row are
// labeled.
func (a *Analysis) PairPlot(headers []string, title string) (*Figure, [][]*plot.Plot, error) {
	if len(headers) < 2 {
		return nil, nil, fmt.Errorf("%w: pair plot needs at least 2 headers, got %d", ErrInvalidArgument, len(headers))
	}
	cols, err := a.columns(headers, nil)
	if err != nil {
		return nil, nil, err
	}

	n := len(headers)
	grid := make([][]*plot.Plot, n)
	for i := 0; i < n; i++ {
		grid[i] = make([]*plot.Plot, n)
		for j := 0; j < n; j++ {
			p := plot.New()
			p.X.Tick.Label.Font.Size = vg.Points(8)
			p.Y.Tick.Label.Font.Size = vg.Points(8)
			if i == j {
				err = addHistogram(p, cols[i], a.opts.HistBins)
			} else {
				px, py := finitePairs(cols[j], cols[i])
				err = addScatter(p, px, py, vg.Points(1))
			}
			if err != nil {
				return nil, nil, fmt.Errorf("pair plot cell %s/%s: %w", headers[i], headers[j], err)
			}
			if j == 0 {
				p.Y.Label.Text = headers[i]
			}
			if i == n-1 {
				p.X.Label.Text = headers[j]
			}
			grid[i][j] = p
		}
	}

	side := a.opts.PairCell * vg.Length(n)
	fig := newFigure(PairPlotFigure, title, grid, side, side)
	a.push(fig)
	a.opts.Logger.Debug("pair plot queued", "headers", headers)
	return fig, grid, nil
}

func (a *Analysis) push(f *Figure) { a.pending = append(a.pending, f) }

// Pending returns the figures waiting for Show, oldest first.
func (a *Analysis) Pending() []*Figure {
	out := make([]*Figure, len(a.pending))
	copy(out, a.pending)
	return out
}

// PendingCount returns the number of figures waiting for Show.
func (a *Analysis) PendingCount() int { return len(a.pending) }

// Show renders the pending figures in order and clears the queue. If a
// figure fails to render, it and the figures after it stay pending.
func (a *Analysis) Show() error {
	for len(a.pending) > 0 {
		f := a.pending[0]
		if err := a.opts.Renderer.Render(f); err != nil {
			return fmt.Errorf("render %s figure %q: %w", f.Kind, f.Title, err)
		}
		a.pending[0] = nil
		a.pending = a.pending[1:]
		a.opts.Logger.Debug("figure rendered", "id", f.ID, "kind", f.Kind, "title", f.Title)
	}
	a.pending = nil
	return nil
}

// Reset drops the pending figures without rendering them.
func (a *Analysis) Reset() { a.pending = nil }
