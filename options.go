package ggline

// Option configures a rasterizer call.
// Use functional options to customize rounding behavior.
//
// Example:
//
//	// Default rounding: exact midpoint ties step the minor axis
//	ggline.Bresenham(pm, 0, 0, 4, 2, ggline.Red)
//
//	// Keep the minor axis on exact midpoint ties
//	ggline.Bresenham(pm, 0, 0, 4, 2, ggline.Red, ggline.WithTieBreak(ggline.TieHold))
type Option func(*options)

// options holds the optional configuration shared by the rasterizers.
type options struct {
	tie    TieBreak
	endCap EndCap
}

// defaultOptions returns the default rasterizer options.
func defaultOptions() options {
	return options{
		tie:    TieAdvance,
		endCap: EndCapExact,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// TieBreak decides what Bresenham does when the ideal line passes exactly
// through the midpoint between two candidate pixels.
type TieBreak int

const (
	// TieAdvance steps the minor axis on a tie: the accumulated error is
	// compared with >= 0.5. This is the default. From (0,0) to (4,2) it
	// plots (0,0) (1,1) (2,1) (3,2) (4,2).
	TieAdvance TieBreak = iota

	// TieHold keeps the minor axis on a tie. From (0,0) to (4,2) this
	// plots (0,0) (1,0) (2,1) (3,1) (4,2).
	TieHold
)

// String returns the tie-break name.
func (t TieBreak) String() string {
	if t == TieHold {
		return "hold"
	}
	return "advance"
}

// WithTieBreak sets Bresenham's midpoint tie-break. Wu ignores it.
func WithTieBreak(t TieBreak) Option {
	return func(o *options) {
		o.tie = t
	}
}

// EndCap decides how much coverage Wu gives the two endpoint columns.
type EndCap int

const (
	// EndCapExact weights an endpoint column by 1 - |round(x) - x|, the
	// horizontal distance between the endpoint and its pixel center.
	// Integer endpoints get full coverage.
	EndCapExact EndCap = iota

	// EndCapHalf uses the classic gap terms rfpart(x0+0.5) for the first
	// endpoint and fpart(x1+0.5) for the second. Integer endpoints get
	// half coverage.
	EndCapHalf
)

// String returns the end-cap name.
func (e EndCap) String() string {
	if e == EndCapHalf {
		return "half"
	}
	return "exact"
}

// WithEndCap sets Wu's endpoint weighting. Bresenham ignores it.
func WithEndCap(e EndCap) Option {
	return func(o *options) {
		o.endCap = e
	}
}
