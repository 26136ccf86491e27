package profile

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-motion/dsp/filter/fir"
	"github.com/cwbudde/algo-motion/internal/testutil"
)

const tol = 1e-9

// stepResponse feeds n unit steps through gains and returns the velocity.
func stepResponse(gains []float64, n int) []float64 {
	f := fir.New(gains)
	out := make([]float64, n)
	for i := range out {
		out[i] = f.ProcessSample(1)
	}
	return out
}

func TestTrapezoid(t *testing.T) {
	gains, err := Trapezoid(1, 2, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(gains) != 50 {
		t.Fatalf("len = %d, want 50", len(gains))
	}
	for i, g := range gains {
		if math.Abs(g-0.02) > 1e-15 {
			t.Fatalf("gains[%d] = %v, want 0.02", i, g)
		}
	}
	if math.Abs(Sum(gains)-1) > tol {
		t.Fatalf("Sum = %v, want maxVel", Sum(gains))
	}
}

func TestTrapezoidRoundsLengthUp(t *testing.T) {
	gains, err := Trapezoid(1, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(gains) != 4 {
		t.Fatalf("len = %d, want ceil(10/3) = 4", len(gains))
	}
}

func TestTrapezoidStepResponseBounds(t *testing.T) {
	const (
		maxVel, maxAccel, rate = 0.8, 1.5, 200.0
	)
	gains, err := Trapezoid(maxVel, maxAccel, rate)
	if err != nil {
		t.Fatal(err)
	}
	vel := stepResponse(gains, 3*len(gains))
	testutil.RequireMonotonic(t, vel, 1, tol)
	testutil.RequireBounded(t, vel, maxVel, tol)
	testutil.RequireBounded(t, testutil.Diff(vel, rate), maxAccel, tol)
	if math.Abs(vel[len(vel)-1]-maxVel) > tol {
		t.Fatalf("steady velocity = %v, want %v", vel[len(vel)-1], maxVel)
	}
}

func TestJerkLimitedShape(t *testing.T) {
	gains, jerkLen, err := JerkLimited(5, 5, 5, 50)
	if err != nil {
		t.Fatal(err)
	}
	if jerkLen != 50 {
		t.Fatalf("jerkLen = %d, want 50", jerkLen)
	}
	if len(gains) != 125 {
		t.Fatalf("len = %d, want 2*50+25", len(gains))
	}

	h := 5.0 / 75
	if gains[0] != 0 || gains[len(gains)-1] != 0 {
		t.Fatalf("ramps must start and end at 0: %v .. %v", gains[0], gains[len(gains)-1])
	}
	for i := 50; i < 75; i++ {
		if math.Abs(gains[i]-h) > 1e-15 {
			t.Fatalf("plateau gains[%d] = %v, want %v", i, gains[i], h)
		}
	}
	for i := range jerkLen {
		if gains[i] != gains[len(gains)-1-i] {
			t.Fatalf("ramp not mirrored at %d: %v vs %v", i, gains[i], gains[len(gains)-1-i])
		}
	}
}

func TestJerkLimitedStepResponseBounds(t *testing.T) {
	const (
		maxVel, maxAccel, maxJerk, rate = 1.0, 2.0, 20.0, 100.0
	)
	gains, _, err := JerkLimited(maxVel, maxAccel, maxJerk, rate)
	if err != nil {
		t.Fatal(err)
	}
	vel := stepResponse(gains, 2*len(gains))
	acc := testutil.Diff(vel, rate)
	jerk := testutil.Diff(acc, rate)

	testutil.RequireMonotonic(t, vel, 1, tol)
	testutil.RequireBounded(t, vel, maxVel, tol)
	testutil.RequireBounded(t, acc, maxAccel, tol)
	testutil.RequireBounded(t, jerk, maxJerk, 1e-6)
}

func TestJerkLimitedInfeasible(t *testing.T) {
	// jerkLen = 100 ticks, reaching 0.5*100*1/10 = 5 > maxVel.
	_, _, err := JerkLimited(1, 1, 0.1, 10)
	if !errors.Is(err, ErrJerkInfeasible) {
		t.Fatalf("err = %v, want ErrJerkInfeasible", err)
	}
}

func TestInvalidLimits(t *testing.T) {
	bad := []float64{0, -1, math.NaN(), math.Inf(1)}
	for _, v := range bad {
		if _, err := Trapezoid(v, 1, 1); !errors.Is(err, ErrInvalidLimits) {
			t.Errorf("Trapezoid(maxVel=%v) err = %v", v, err)
		}
		if _, err := Trapezoid(1, 1, v); !errors.Is(err, ErrInvalidLimits) {
			t.Errorf("Trapezoid(rate=%v) err = %v", v, err)
		}
		if _, _, err := JerkLimited(1, 1, v, 1); !errors.Is(err, ErrInvalidLimits) {
			t.Errorf("JerkLimited(maxJerk=%v) err = %v", v, err)
		}
	}
}

func TestOversizedProfilesRejected(t *testing.T) {
	if _, err := Trapezoid(1e10, 1e-10, 1000); !errors.Is(err, ErrInvalidLimits) {
		t.Errorf("Trapezoid err = %v, want ErrInvalidLimits", err)
	}
	if _, _, err := JerkLimited(1, 1, 1e-300, 100); !errors.Is(err, ErrJerkInfeasible) {
		t.Errorf("JerkLimited(tiny jerk) err = %v, want ErrJerkInfeasible", err)
	}
	// jerkLen is small but the flat run needs ~1e12 taps.
	if _, _, err := JerkLimited(1e9, 1, 1, 1000); !errors.Is(err, ErrInvalidLimits) {
		t.Errorf("JerkLimited(long flat run) err = %v, want ErrInvalidLimits", err)
	}

	gains, err := Trapezoid(MaxTaps, 1, 1)
	if err != nil {
		t.Fatalf("Trapezoid at MaxTaps: %v", err)
	}
	if len(gains) != MaxTaps {
		t.Fatalf("len = %d, want %d", len(gains), MaxTaps)
	}
}

func TestUnderflowingLengthKeepsOneTap(t *testing.T) {
	gains, err := Trapezoid(1e-300, 1e300, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(gains) != 1 || gains[0] != 1e-300 {
		t.Fatalf("gains = %v, want [1e-300]", gains)
	}
}

func TestJerkLimitedContinuousFirstDifference(t *testing.T) {
	for _, c := range []struct{ v, a, j, rate float64 }{
		{5, 5, 5, 50},
		{1, 2, 20, 100},
		{0.3, 1, 4, 1000},
	} {
		gains, jerkLen, err := JerkLimited(c.v, c.a, c.j, c.rate)
		if err != nil {
			t.Fatal(err)
		}
		h := c.v / float64(len(gains)-jerkLen)
		slope := h / float64(jerkLen)
		for i := 1; i < len(gains); i++ {
			if d := math.Abs(gains[i] - gains[i-1]); d > slope+1e-12 {
				t.Fatalf("%+v: |g[%d]-g[%d]| = %v exceeds ramp slope %v", c, i, i-1, d, slope)
			}
		}
	}
}
