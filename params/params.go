package params

// Parameter bounds. Values outside these ranges are clamped, never rejected,
// so a held-down key can ride the limit without erroring.
const (
	MinWidth = 20
	MaxWidth = 250

	MinBrightness = -100
	MaxBrightness = 100

	MinContrast = 0.1
	MaxContrast = 3.0
)

// Defaults applied at startup when neither flags nor a config file override
// them.
const (
	DefaultWidth      = 100
	DefaultBrightness = 0
	DefaultContrast   = 1.0
)

// Snapshot is an immutable copy of the parameters at the moment a request is
// issued. Snapshots are comparable; two snapshots are equal exactly when
// every parameter matches, which is what preview staleness checks rely on.
type Snapshot struct {
	Width      int
	Brightness int
	Contrast   float64
}

// Store holds the live parameter values. Only user input handlers mutate it;
// in-flight work reads a [Snapshot] taken at request time instead.
//
// Create instances with [NewStore].
type Store struct {
	width      int
	brightness int
	contrast   float64
}

// NewStore creates a [Store] seeded from the given snapshot, clamping each
// value into range.
func NewStore(s Snapshot) *Store {
	st := &Store{}
	st.SetWidth(s.Width)
	st.SetBrightness(s.Brightness)
	st.SetContrast(s.Contrast)

	return st
}

// Snapshot returns an immutable copy of the current values.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Width:      s.width,
		Brightness: s.brightness,
		Contrast:   s.contrast,
	}
}

// Width returns the current render width in glyph columns.
func (s *Store) Width() int { return s.width }

// Brightness returns the current brightness offset.
func (s *Store) Brightness() int { return s.brightness }

// Contrast returns the current contrast multiplier.
func (s *Store) Contrast() float64 { return s.contrast }

// SetWidth sets the render width, clamped to [MinWidth, MaxWidth].
func (s *Store) SetWidth(w int) {
	s.width = clampInt(w, MinWidth, MaxWidth)
}

// SetBrightness sets the brightness offset, clamped to
// [MinBrightness, MaxBrightness].
func (s *Store) SetBrightness(b int) {
	s.brightness = clampInt(b, MinBrightness, MaxBrightness)
}

// SetContrast sets the contrast multiplier, clamped to
// [MinContrast, MaxContrast].
func (s *Store) SetContrast(c float64) {
	s.contrast = clampFloat(c, MinContrast, MaxContrast)
}

// AdjustWidth shifts the render width by delta, clamped into range.
func (s *Store) AdjustWidth(delta int) {
	s.SetWidth(s.width + delta)
}

// AdjustBrightness shifts the brightness offset by delta, clamped into range.
func (s *Store) AdjustBrightness(delta int) {
	s.SetBrightness(s.brightness + delta)
}

// AdjustContrast shifts the contrast multiplier by delta, clamped into range.
func (s *Store) AdjustContrast(delta float64) {
	s.SetContrast(s.contrast + delta)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
