package analysis

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// FigureKind tells which operation built a figure.
type FigureKind string

const (
	ScatterFigure  FigureKind = "scatter"
	PairPlotFigure FigureKind = "pairplot"
)

// Figure is a titled grid of plots waiting to be rendered.
type Figure struct {
	ID    uuid.UUID
	Kind  FigureKind
	Title string
	// Axes is indexed [row][col].
	Axes          [][]*plot.Plot
	Width, Height vg.Length
}

func newFigure(kind FigureKind, title string, axes [][]*plot.Plot, w, h vg.Length) *Figure {
	return &Figure{ID: uuid.New(), Kind: kind, Title: title, Axes: axes, Width: w, Height: h}
}

// Shape returns the number of rows and columns of the axes grid.
func (f *Figure) Shape() (int, int) {
	if len(f.Axes) == 0 {
		return 0, 0
	}
	return len(f.Axes), len(f.Axes[0])
}

var titleStyle = text.Style{
	Color:   color.Black,
	Font:    font.From(plot.DefaultFont, vg.Points(16)),
	XAlign:  draw.XCenter,
	YAlign:  draw.YTop,
	Handler: plot.DefaultTextHandler,
}

// Draw draws the figure on c. Grids larger than one cell get the figure title
// above them; a single plot carries the title itself.
func (f *Figure) Draw(c draw.Canvas) {
	rows, cols := f.Shape()
	if rows == 0 {
		return
	}
	if rows == 1 && cols == 1 {
		f.Axes[0][0].Draw(c)
		return
	}
	var top vg.Length
	if f.Title != "" {
		pt := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: c.Max.Y}
		c.FillText(titleStyle, pt, f.Title)
		top = titleStyle.Height(f.Title) + vg.Millimeter*2
	}
	tiles := draw.Tiles{
		Rows:   rows,
		Cols:   cols,
		PadTop: top,
		PadX:   vg.Millimeter,
		PadY:   vg.Millimeter,
	}
	canvases := plot.Align(f.Axes, tiles, c)
	for i := range f.Axes {
		for j, p := range f.Axes[i] {
			p.Draw(canvases[i][j])
		}
	}
}

// Encode renders the figure in format (png, svg, pdf, jpg, eps, tiff) to w.
func (f *Figure) Encode(w io.Writer, format string) error {
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return err
	}
	f.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

// Renderer displays or persists figures.
type Renderer interface {
	Render(f *Figure) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f *Figure) error

func (fn RendererFunc) Render(f *Figure) error { return fn(f) }

// FileRenderer writes each figure to its own file in Dir.
type FileRenderer struct {
	Dir    string
	Format string
	// Paths lists the files written so far.
	Paths []string
}

func (r *FileRenderer) Render(f *Figure) error {
	format := r.Format
	if format == "" {
		format = "png"
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir figure dir: %w", err)
	}
	name := fmt.Sprintf("%02d-%s-%s.%s", len(r.Paths)+1, slug(f), f.ID.String()[:8], format)
	path := filepath.Join(r.Dir, name)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure file: %w", err)
	}
	if err := f.Encode(out, format); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close figure file: %w", err)
	}
	r.Paths = append(r.Paths, path)
	return nil
}

func slug(f *Figure) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(f.Title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
		if b.Len() >= 40 {
			break
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return string(f.Kind)
	}
	return s
}
