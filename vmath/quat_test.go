package vmath

import (
	"math"
	"testing"
)

func v3Near(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func qNear(a, b Quat, eps float64) bool {
	// Orientations are double-covered: q and -q rotate identically
	if QDot(a, b) < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
	}
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Z-b.Z) < eps && math.Abs(a.W-b.W) < eps
}

func TestQIdentityRotatesNothing(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := QRotate(QIdentity(), v); !v3Near(got, v, 1e-12) {
		t.Errorf("identity rotated %v to %v", v, got)
	}
}

func TestQLookAtForward(t *testing.T) {
	up := Vec3{0, 1, 0}
	tests := []struct {
		name        string
		eye, target Vec3
	}{
		{"down -z", Vec3{0, 0, 5}, Vec3{0, 0, 0}},
		{"down +x", Vec3{-3, 0, 0}, Vec3{2, 0, 0}},
		{"oblique", Vec3{1, 2, 3}, Vec3{-2, 0.5, -1}},
		{"gallery frame", Vec3{-2, 1, 2.2}, Vec3{-2, 1, 0.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QLookAt(tt.eye, tt.target, up)
			want := V3Normalize(V3Sub(tt.target, tt.eye))
			got := QForward(q)
			if !v3Near(got, want, 1e-9) {
				t.Errorf("forward = %v, want %v", got, want)
			}
			// Up reference is respected: rotated +Y has no negative world-Y
			// component for these non-inverted views
			if worldUp := QRotate(q, Vec3{0, 1, 0}); worldUp.Y <= 0 {
				t.Errorf("rotated up %v points below the horizon", worldUp)
			}
		})
	}
}

func TestQLookAtDegenerate(t *testing.T) {
	up := Vec3{0, 1, 0}
	if q := QLookAt(Vec3{1, 1, 1}, Vec3{1, 1, 1}, up); q != QIdentity() {
		t.Errorf("coincident eye/target gave %v, want identity", q)
	}
	// Up parallel to view direction has no stable roll
	if q := QLookAt(Vec3{0, 5, 0}, Vec3{0, 0, 0}, up); q != QIdentity() {
		t.Errorf("up-parallel view gave %v, want identity", q)
	}
}

func TestQMulComposes(t *testing.T) {
	// Two quarter turns about Y compose to a half turn: +X maps to -X
	s, c := math.Sin(math.Pi/4), math.Cos(math.Pi/4)
	quarter := Quat{Y: s, W: c}
	half := QMul(quarter, quarter)
	got := QRotate(half, Vec3{1, 0, 0})
	if !v3Near(got, Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("composed rotation maps +X to %v, want -X", got)
	}
}

func TestQConjugateInverts(t *testing.T) {
	q := QLookAt(Vec3{1, 2, 3}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	v := Vec3{0.3, -1.2, 2.5}
	round := QRotate(QConjugate(q), QRotate(q, v))
	if !v3Near(round, v, 1e-9) {
		t.Errorf("conjugate round trip gave %v, want %v", round, v)
	}
}

func TestQSlerpEndpoints(t *testing.T) {
	a := QIdentity()
	s, c := math.Sin(math.Pi/4), math.Cos(math.Pi/4)
	b := Quat{Y: s, W: c}

	if got := QSlerp(a, b, 0); !qNear(got, a, 1e-12) {
		t.Errorf("slerp(0) = %v, want %v", got, a)
	}
	if got := QSlerp(a, b, 1); !qNear(got, b, 1e-12) {
		t.Errorf("slerp(1) = %v, want %v", got, b)
	}

	// Midpoint of a quarter turn is an eighth turn
	mid := QSlerp(a, b, 0.5)
	want := Quat{Y: math.Sin(math.Pi / 8), W: math.Cos(math.Pi / 8)}
	if !qNear(mid, want, 1e-9) {
		t.Errorf("slerp(0.5) = %v, want %v", mid, want)
	}
}

func TestQSlerpShortestArc(t *testing.T) {
	a := QIdentity()
	b := Quat{Y: -math.Sin(math.Pi / 4), W: -math.Cos(math.Pi / 4)} // -q of a quarter turn
	mid := QSlerp(a, b, 0.5)
	// Shortest arc: the eighth turn, not the three-quarter path
	forward := QRotate(mid, Vec3{0, 0, -1})
	want := QRotate(Quat{Y: math.Sin(math.Pi / 8), W: math.Cos(math.Pi / 8)}, Vec3{0, 0, -1})
	if !v3Near(forward, want, 1e-9) {
		t.Errorf("mid forward = %v, want %v", forward, want)
	}
}

func TestQDampToConverges(t *testing.T) {
	current := QIdentity()
	target := QLookAt(Vec3{0, 0, 5}, Vec3{3, 1, 0}, Vec3{0, 1, 0})

	dt := 1.0 / 60
	for i := 0; i < 600; i++ {
		current = QDampTo(current, target, 0.2, dt)
	}
	if !qNear(current, target, 1e-4) {
		t.Errorf("damped orientation %v did not converge to %v", current, target)
	}
}

func TestQDampToFrameRateIndependent(t *testing.T) {
	target := QLookAt(Vec3{0, 0, 5}, Vec3{2, 0, 0}, Vec3{0, 1, 0})

	// One second of damping at 30 Hz and at 120 Hz lands on the same orientation
	a := QIdentity()
	for i := 0; i < 30; i++ {
		a = QDampTo(a, target, 0.25, 1.0/30)
	}
	b := QIdentity()
	for i := 0; i < 120; i++ {
		b = QDampTo(b, target, 0.25, 1.0/120)
	}
	if !qNear(a, b, 1e-2) {
		t.Errorf("30 Hz result %v diverges from 120 Hz result %v", a, b)
	}
}
