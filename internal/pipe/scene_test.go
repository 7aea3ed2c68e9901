package pipe

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

func TestSynthesizeShapes(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {3, 5}, {300, 20}} {
		p := DefaultParams()
		p.LengthPoints, p.RadiusPoints = dims[0], dims[1]

		s, err := Synthesize(p)
		if err != nil {
			t.Fatalf("synthesize %v: %v", dims, err)
		}
		for name, m := range map[string]*mat.Dense{
			"X": s.Cloud.X, "Y": s.Cloud.Y, "Z": s.Cloud.Z,
			"pressure": s.Pressure, "velocity": s.Velocity,
		} {
			r, c := m.Dims()
			if r != p.RadiusPoints || c != p.LengthPoints {
				t.Errorf("%v %s shape (%d, %d), want (%d, %d)", dims, name, r, c, p.RadiusPoints, p.LengthPoints)
			}
		}
	}
}

func TestInletPointUnbent(t *testing.T) {
	s, err := Synthesize(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	x, y, z := s.Straight.Point(0, 0)
	if x != 2 || y != 0 || z != 0 {
		t.Errorf("straight inlet = (%v, %v, %v), want (2, 0, 0)", x, y, z)
	}
	x, y, z = s.Cloud.Point(0, 0)
	if x != 2 || y != 0 || z != 0 {
		t.Errorf("bent inlet = (%v, %v, %v), want (2, 0, 0)", x, y, z)
	}

	for i := 0; i < s.Params.RadiusPoints; i++ {
		if s.Cloud.X.At(i, 0) != s.Straight.X.At(i, 0) || s.Cloud.Z.At(i, 0) != s.Straight.Z.At(i, 0) {
			t.Errorf("inlet row %d moved by bend", i)
		}
	}
}

func TestOutletPointFullyBent(t *testing.T) {
	p := DefaultParams()
	s, err := Synthesize(p)
	if err != nil {
		t.Fatal(err)
	}

	last := p.LengthPoints - 1
	x, y, z := s.Straight.Point(0, last)
	if x != 2 || y != 0 || z != 30 {
		t.Errorf("straight outlet = (%v, %v, %v), want (2, 0, 30)", x, y, z)
	}

	a := math.Pi / 1.33
	wantX := 2*math.Cos(a) + 30*math.Sin(a)
	wantZ := -2*math.Sin(a) + 30*math.Cos(a)
	x, y, z = s.Cloud.Point(0, last)
	if math.Abs(x-wantX) > tol || math.Abs(z-wantZ) > tol || y != 0 {
		t.Errorf("bent outlet = (%v, %v, %v), want (%v, 0, %v)", x, y, z, wantX, wantZ)
	}
}

func TestBendKeepsY(t *testing.T) {
	s, err := Synthesize(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(s.Cloud.Y, s.Straight.Y) {
		t.Error("bend changed Y")
	}
}

func TestBendPreservesDistanceFromYAxis(t *testing.T) {
	s, err := Synthesize(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	r, c := s.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x0, _, z0 := s.Straight.Point(i, j)
			x1, _, z1 := s.Cloud.Point(i, j)
			if d := math.Hypot(x0, z0) - math.Hypot(x1, z1); math.Abs(d) > 1e-9 {
				t.Fatalf("rotation changed radius at (%d, %d) by %v", i, j, d)
			}
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a, err := Synthesize(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Synthesize(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	pairs := [][2]*mat.Dense{
		{a.Cloud.X, b.Cloud.X},
		{a.Cloud.Y, b.Cloud.Y},
		{a.Cloud.Z, b.Cloud.Z},
		{a.Pressure, b.Pressure},
		{a.Velocity, b.Velocity},
	}
	for i, pr := range pairs {
		if !mat.Equal(pr[0], pr[1]) {
			t.Errorf("array %d differs between runs", i)
		}
	}
}

func TestBounds(t *testing.T) {
	p := DefaultParams()
	p.BendAngle = 0
	p.RadiusPoints = 21
	s, err := Synthesize(p)
	if err != nil {
		t.Fatal(err)
	}

	b := s.Cloud.Bounds()
	span := b.Span()
	if math.Abs(span[0]-4) > 1e-9 {
		t.Errorf("x span = %v, want 4", span[0])
	}
	if span[2] != 30 {
		t.Errorf("z span = %v, want 30", span[2])
	}
	if b.Extent() != 30 {
		t.Errorf("extent = %v, want 30", b.Extent())
	}
	if c := b.Center(); c[2] != 15 {
		t.Errorf("z center = %v, want 15", c[2])
	}
}

func TestProfiles(t *testing.T) {
	s, err := Synthesize(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	pp := s.PressureProfile()
	if len(pp) != 300 || pp[0] != 100 || pp[299] != 10 {
		t.Errorf("pressure profile: len %d, ends %v..%v", len(pp), pp[0], pp[len(pp)-1])
	}
	vp := s.VelocityProfile()
	if len(vp) != 20 || vp[0] != 1 || vp[19] != 0 {
		t.Errorf("velocity profile: len %d, ends %v..%v", len(vp), vp[0], vp[len(vp)-1])
	}
}
