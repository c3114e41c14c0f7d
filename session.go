package tripaint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"
)

// Every loaded image is normalized to this window size, so click
// coordinates and mesh coordinates share one space.
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// DefaultRebuildDelay is the quiet interval after the last parameter
// change before the mesh rebuilds. Slider drags emit a burst of changes;
// rebuilding on every intermediate value would stall input.
const DefaultRebuildDelay = 150 * time.Millisecond

// Session is the interaction state of one coloring surface: the source
// image, its extracted contours, the paintable mesh, the palette
// selection and the composed canvas. All mutable state lives here; event
// handlers receive the session explicitly instead of closing over
// ambient variables.
//
// A mutex serializes the input stream against the debounced rebuild
// timer, and the mesh swaps under that lock: a click never observes a
// partially built mesh.
type Session struct {
	mu        sync.Mutex
	src       *image.NRGBA
	extractor ContourExtractor
	contours  []Contour
	mesh      *PaintableMesh
	params    Parameters
	pending   Parameters
	palette   []color.RGBA
	colorIdx  int
	renderer  *Renderer
	debounce  *Debouncer
}

// NewSession loads an image into a fresh session: the image is scaled to
// the window size, contours are extracted once, and the mesh is built
// with the given parameters. A nil extractor falls back to
// NewEdgeExtractor. A uniform image yields zero contours and an empty
// mesh; the session still works, every click just misses.
func NewSession(img image.Image, extractor ContourExtractor, params Parameters) (*Session, error) {
	if img == nil {
		return nil, errors.New("tripaint: nil source image")
	}
	if extractor == nil {
		extractor = NewEdgeExtractor()
	}

	src := Resize(img, DefaultWindowWidth, DefaultWindowHeight)
	contours, err := extractor.Extract(src)
	if err != nil {
		return nil, fmt.Errorf("tripaint: contour extraction: %w", err)
	}

	s := &Session{
		src:       src,
		extractor: extractor,
		contours:  contours,
		mesh:      NewPaintableMesh(DefaultWindowWidth, DefaultWindowHeight),
		params:    params.Clamp(),
		palette:   DefaultPalette,
		renderer:  NewRenderer(src),
		debounce:  NewDebouncer(DefaultRebuildDelay),
	}
	s.pending = s.params
	s.mesh.Rebuild(s.params, s.contours)
	s.renderer.DrawMesh(s.mesh)
	logger().Debug("session ready", "contours", len(contours), "triangles", s.mesh.Len())
	return s, nil
}

// Click hit-tests the pointer position and paints the first matching
// triangle with the selected color, returning its index. A miss returns
// (-1, false) and changes nothing.
func (s *Session) Click(x, y float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.mesh.HitTest(Pt(x, y))
	if !ok {
		return -1, false
	}
	c := s.palette[s.colorIdx]
	s.mesh.Paint(i, c)
	s.renderer.FillTriangle(s.mesh.Triangle(i), c)
	return i, true
}

// SelectColor picks a palette entry; out-of-range indices are ignored.
func (s *Session) SelectColor(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < len(s.palette) {
		s.colorIdx = i
	}
}

// SelectedColor returns the active palette index and color.
func (s *Session) SelectedColor() (int, color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorIdx, s.palette[s.colorIdx]
}

// Palette returns the session's color choices.
func (s *Session) Palette() []color.RGBA {
	return s.palette
}

// SetParameters records a parameter change and schedules a rebuild after
// the quiet interval. A newer change supersedes a pending one, so a
// slider drag costs a single rebuild on release.
func (s *Session) SetParameters(p Parameters) {
	s.mu.Lock()
	s.pending = p.Clamp()
	s.mu.Unlock()
	s.debounce.Trigger(s.applyPending)
}

// ApplyParameters rebuilds synchronously with the given parameters.
func (s *Session) ApplyParameters(p Parameters) {
	s.mu.Lock()
	s.pending = p.Clamp()
	s.mu.Unlock()
	s.applyPending()
}

func (s *Session) applyPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.params = s.pending
	s.mesh.Rebuild(s.params, s.contours)
	s.redrawLocked()
	logger().Debug("mesh rebuilt",
		"points", s.params.ContourPoints,
		"density", s.params.InteriorDensity,
		"triangles", s.mesh.Len(),
		"took", time.Since(start))
}

// Reset clears all paint; the mesh stays as built.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mesh.Reset()
	s.redrawLocked()
}

func (s *Session) redrawLocked() {
	s.renderer.DrawBase()
	s.renderer.DrawMesh(s.mesh)
}

// Parameters returns the parameters of the current mesh.
func (s *Session) Parameters() Parameters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Mesh exposes the paintable mesh for inspection.
func (s *Session) Mesh() *PaintableMesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mesh
}

// Contours returns the boundaries extracted from the source image.
func (s *Session) Contours() []Contour {
	return s.contours
}

// Snapshot returns the composed canvas: base image, wireframe and fills.
func (s *Session) Snapshot() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.Image()
}

// SavePNG writes the composed canvas to path.
func (s *Session) SavePNG(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.SavePNG(path)
}

// Close cancels any pending rebuild.
func (s *Session) Close() {
	s.debounce.Stop()
}

// Debouncer coalesces bursts of triggers into one callback after a quiet
// interval. A new trigger cancels and replaces the pending one, so at
// most one callback is ever outstanding.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet interval. A zero
// or negative delay fires synchronously.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet interval, canceling any pending
// callback.
func (d *Debouncer) Trigger(fn func()) {
	if d.delay <= 0 {
		fn()
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
