package tripaint

import (
	"sync/atomic"
	"testing"
	"time"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	img := blackSquareImage(200, 200, 40, 160)
	s, err := NewSession(img, &EdgeExtractor{SobelThreshold: 48, MinArea: 1000}, DefaultParameters())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestSessionClick(t *testing.T) {
	s := newTestSession(t)
	if s.Mesh().Len() == 0 {
		t.Fatal("session built an empty mesh")
	}

	s.SelectColor(2)
	c := s.Mesh().Triangle(0).Centroid()
	i, ok := s.Click(c.X, c.Y)
	if !ok || i != 0 {
		t.Fatalf("Click at triangle 0 centroid = (%d, %v), want (0, true)", i, ok)
	}
	if got, ok := s.Mesh().Color(0); !ok || got != DefaultPalette[2] {
		t.Errorf("painted color = (%v, %v), want %v", got, ok, DefaultPalette[2])
	}
}

func TestSessionClickMiss(t *testing.T) {
	s := newTestSession(t)
	// The image border is far from the traced square.
	if i, ok := s.Click(1, 1); ok {
		t.Errorf("Click outside the mesh = (%d, true), want miss", i)
	}
	if s.Mesh().Painted() != 0 {
		t.Error("missed click painted a triangle")
	}
}

func TestSessionUniformImage(t *testing.T) {
	img := whiteImage(200, 200)
	s, err := NewSession(img, &EdgeExtractor{SobelThreshold: 48, MinArea: 1000}, DefaultParameters())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	if s.Mesh().Len() != 0 {
		t.Errorf("uniform image produced %d triangles", s.Mesh().Len())
	}
	if _, ok := s.Click(400, 300); ok {
		t.Error("click hit on an empty mesh")
	}
}

func TestSessionNilImage(t *testing.T) {
	if _, err := NewSession(nil, nil, DefaultParameters()); err == nil {
		t.Fatal("NewSession(nil) did not fail")
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t)
	c := s.Mesh().Triangle(0).Centroid()
	if _, ok := s.Click(c.X, c.Y); !ok {
		t.Fatal("setup click missed")
	}

	s.Reset()
	if s.Mesh().Painted() != 0 {
		t.Error("Reset left paint behind")
	}
	if s.Mesh().Len() == 0 {
		t.Error("Reset dropped the mesh")
	}
}

func TestSessionApplyParameters(t *testing.T) {
	s := newTestSession(t)
	c := s.Mesh().Triangle(0).Centroid()
	if _, ok := s.Click(c.X, c.Y); !ok {
		t.Fatal("setup click missed")
	}

	p := Parameters{ContourPoints: 50, InteriorDensity: 12}
	s.ApplyParameters(p)
	if got := s.Parameters(); got != p {
		t.Errorf("Parameters() = %+v, want %+v", got, p)
	}
	if s.Mesh().Painted() != 0 {
		t.Error("rebuild kept paint across a parameter change")
	}
	if s.Mesh().Len() == 0 {
		t.Error("rebuild produced an empty mesh")
	}
}

func TestSessionParameterClamp(t *testing.T) {
	s := newTestSession(t)
	s.ApplyParameters(Parameters{ContourPoints: 100000, InteriorDensity: -3})
	got := s.Parameters()
	if got.ContourPoints != MaxContourPoints || got.InteriorDensity != MinInteriorDensity {
		t.Errorf("Parameters() = %+v, want clamped bounds", got)
	}
}

func TestSessionSelectColorBounds(t *testing.T) {
	s := newTestSession(t)
	s.SelectColor(3)
	s.SelectColor(-1)
	s.SelectColor(len(DefaultPalette))
	if i, _ := s.SelectedColor(); i != 3 {
		t.Errorf("selected index = %d, want 3", i)
	}
}

func TestSessionSetParametersDebounced(t *testing.T) {
	s := newTestSession(t)

	// A burst of changes settles on the last value after the quiet
	// interval.
	s.SetParameters(Parameters{ContourPoints: 20, InteriorDensity: 4})
	s.SetParameters(Parameters{ContourPoints: 40, InteriorDensity: 6})
	s.SetParameters(Parameters{ContourPoints: 60, InteriorDensity: 10})

	deadline := time.Now().Add(2 * time.Second)
	want := Parameters{ContourPoints: 60, InteriorDensity: 10}
	for time.Now().Before(deadline) {
		if s.Parameters() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("Parameters() = %+v after debounce window, want %+v", s.Parameters(), want)
}

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
	}

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("callback ran %d times after Stop, want 0", got)
	}
}

func TestDebouncerSynchronous(t *testing.T) {
	d := NewDebouncer(0)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	if got := calls.Load(); got != 1 {
		t.Errorf("zero-delay trigger ran %d times, want 1", got)
	}
}
