package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/gaslab/internal/gas"
)

func TestHistogram(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	counts, width := Histogram(values, 5)

	if len(counts) != 5 {
		t.Fatalf("expected 5 bins, got %d", len(counts))
	}
	if math.Abs(width-1.8) > 1e-12 {
		t.Errorf("bin width = %f, want 1.8", width)
	}

	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != float64(len(values)) {
		t.Errorf("histogram lost samples: %f of %d", total, len(values))
	}
}

func TestHistogram_Empty(t *testing.T) {
	if counts, _ := Histogram(nil, 10); counts != nil {
		t.Error("expected nil counts for empty input")
	}
	if counts, _ := Histogram([]float64{1, 2}, 0); counts != nil {
		t.Error("expected nil counts for zero bins")
	}
}

func TestHistogram_UniformValues(t *testing.T) {
	counts, _ := Histogram([]float64{5, 5, 5}, 4)
	if counts[0] != 3 {
		t.Errorf("identical samples must land in the first bin, got %v", counts)
	}
}

func TestMaxwellBoltzmann2D(t *testing.T) {
	mass := 4.65e-26
	temp := 300.0

	if MaxwellBoltzmann2D(0, mass, temp) != 0 {
		t.Error("density at v=0 must be zero")
	}
	if MaxwellBoltzmann2D(-1, mass, temp) != 0 {
		t.Error("density at negative speed must be zero")
	}

	// The 2D distribution peaks at v_p = sqrt(k_B*T/m).
	peak := math.Sqrt(gas.Boltzmann * temp / mass)
	fPeak := MaxwellBoltzmann2D(peak, mass, temp)
	if MaxwellBoltzmann2D(peak*0.5, mass, temp) >= fPeak {
		t.Error("density below the peak speed must be smaller than at the peak")
	}
	if MaxwellBoltzmann2D(peak*2, mass, temp) >= fPeak {
		t.Error("density above the peak speed must be smaller than at the peak")
	}
}

func TestMaxwellBoltzmann2D_Normalized(t *testing.T) {
	// Trapezoid-integrate the density; it should come out near 1.
	mass := 4.65e-26
	temp := 300.0
	vMax := 5 * math.Sqrt(gas.Boltzmann*temp/mass)
	n := 10000
	dv := vMax / float64(n)

	sum := 0.0
	for i := 0; i < n; i++ {
		v0 := float64(i) * dv
		v1 := v0 + dv
		sum += 0.5 * (MaxwellBoltzmann2D(v0, mass, temp) + MaxwellBoltzmann2D(v1, mass, temp)) * dv
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Errorf("distribution integrates to %f, want ~1", sum)
	}
}

func TestMeanSpeed(t *testing.T) {
	if MeanSpeed(nil) != 0 {
		t.Error("mean of empty slice must be 0")
	}
	if got := MeanSpeed([]float64{1, 2, 3}); math.Abs(got-2) > 1e-12 {
		t.Errorf("mean = %f, want 2", got)
	}
}
