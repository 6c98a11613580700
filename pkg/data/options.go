package data

import (
	"io"
	"log/slog"
	"time"
)

// DefaultMissingTokens are the cell values treated as absent.
var DefaultMissingTokens = []string{"", "NA", "NaN", "nan", "null", "NULL"}

// DefaultDateLayouts are tried in order when recognizing dates.
var DefaultDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"2006/01/02",
}

// DefaultSampleSize is the number of non-missing cells considered during inference.
const DefaultSampleSize = 100

// Options controls how a CSV file becomes a Dataset.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
	// MissingTokens lists cell values treated as missing.
	MissingTokens []string
	// DateLayouts lists time.Parse layouts recognized as dates.
	DateLayouts []string
	// SampleSize limits how many non-missing cells vote on a column's kind.
	SampleSize int
	// Strict makes unparseable numeric or date cells fail the load instead of
	// becoming missing.
	Strict bool
	// TypeRow enables detection of a second row declaring column kinds.
	TypeRow bool
	Logger  *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the loader defaults.
func DefaultOptions() Options {
	return Options{
		Delimiter:     ',',
		MissingTokens: DefaultMissingTokens,
		DateLayouts:   DefaultDateLayouts,
		SampleSize:    DefaultSampleSize,
		TypeRow:       true,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func WithDelimiter(d rune) Option { return func(o *Options) { o.Delimiter = d } }

func WithMissingTokens(tokens ...string) Option {
	return func(o *Options) { o.MissingTokens = tokens }
}

func WithDateLayouts(layouts ...string) Option {
	return func(o *Options) { o.DateLayouts = layouts }
}

func WithSampleSize(n int) Option { return func(o *Options) { o.SampleSize = n } }

// WithStrict turns per-cell coercion failures into ErrFormat.
func WithStrict(strict bool) Option { return func(o *Options) { o.Strict = strict } }

func WithTypeRow(enabled bool) Option { return func(o *Options) { o.TypeRow = enabled } }

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o Options) missingSet() map[string]struct{} {
	set := make(map[string]struct{}, len(o.MissingTokens))
	for _, t := range o.MissingTokens {
		set[t] = struct{}{}
	}
	return set
}
