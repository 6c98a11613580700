// Package analysis computes descriptive statistics over the numeric columns
// of a data.Dataset and builds scatter and pair-plot figures from them.
//
// An Analysis queues every figure it builds until Show hands them to a
// Renderer. It is not safe for concurrent use.
package analysis

import (
	"errors"
	"io"
	"log/slog"

	"gonum.org/v1/plot/vg"

	"edakit/pkg/data"
)

// ErrInvalidArgument is returned for arguments of the wrong shape.
var ErrInvalidArgument = errors.New("invalid argument")

// Options controls figure layout and rendering.
type Options struct {
	Renderer Renderer
	Logger   *slog.Logger
	// DropMissing makes Scatter return only the rows it plotted.
	DropMissing bool
	// Width and Height size a scatter figure.
	Width, Height vg.Length
	// PairCell is the side of one cell of a pair plot.
	PairCell vg.Length
	// HistBins is the number of bins of the pair-plot histograms.
	HistBins int
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		Renderer: &FileRenderer{Dir: "figures", Format: "png"},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Width:    6 * vg.Inch,
		Height:   4 * vg.Inch,
		PairCell: 3 * vg.Inch,
		HistBins: 10,
	}
}

func WithRenderer(r Renderer) Option { return func(o *Options) { o.Renderer = r } }

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func WithDropMissing(drop bool) Option { return func(o *Options) { o.DropMissing = drop } }

func WithFigureSize(w, h vg.Length) Option {
	return func(o *Options) { o.Width, o.Height = w, h }
}

func WithPairCell(side vg.Length) Option { return func(o *Options) { o.PairCell = side } }

func WithHistBins(n int) Option { return func(o *Options) { o.HistBins = n } }

// Analysis runs statistics and builds figures over a Dataset it does not own.
type Analysis struct {
	ds      *data.Dataset
	opts    Options
	pending []*Figure
}

// New returns an Analysis over ds.
func New(ds *data.Dataset, opts ...Option) *Analysis {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.HistBins <= 0 {
		o.HistBins = 10
	}
	return &Analysis{ds: ds, opts: o}
}

// Dataset returns the dataset under analysis.
func (a *Analysis) Dataset() *data.Dataset { return a.ds }

// SetDataset points the analysis at another dataset. Pending figures are kept.
func (a *Analysis) SetDataset(ds *data.Dataset) { a.ds = ds }
