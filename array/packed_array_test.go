package array

import (
	"math"
	"testing"

	"github.com/finlakes/hllpack/hll"
)

func mustLogic(t *testing.T, log2m, r uint64) *hll.Logic[uint64, uint64] {
	t.Helper()
	logic, err := hll.Build[uint64, uint64](hll.NewBuilder[uint64]().Log2NumReg(log2m).RegisterWidth(r))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return logic
}

func TestNewArrayAllZero(t *testing.T) {
	logic := mustLogic(t, 6, 6)
	a := New(logic, 4)
	if a.Len() != 4 || a.IsEmpty() {
		t.Fatalf("Len/IsEmpty mismatch")
	}
	for i := uint64(0); i < a.Len(); i++ {
		v, err := a.GetEstimator(i)
		if err != nil {
			t.Fatal(err)
		}
		if v.Estimate() != 0 {
			t.Errorf("slot %d should estimate 0 fresh, got %v", i, v.Estimate())
		}
	}
}

func TestOutOfRangeIndex(t *testing.T) {
	logic := mustLogic(t, 6, 6)
	a := New(logic, 2)
	if _, err := a.GetBackend(2); err == nil {
		t.Error("index 2 on a 2-slot array should error")
	}
}

func TestArrayIsolation(t *testing.T) {
	// scenario 5: disjoint element streams in different slots don't
	// interfere, and clearing one slot leaves the other untouched.
	logic := mustLogic(t, 8, 6)
	a := New(logic, 2)

	v0, err := a.GetEstimatorMut(0)
	if err != nil {
		t.Fatal(err)
	}
	v1, err := a.GetEstimatorMut(1)
	if err != nil {
		t.Fatal(err)
	}

	const n = 2000
	for i := uint64(0); i < n; i++ {
		v0.Add(i)
	}
	for i := uint64(100000); i < 100000+n; i++ {
		v1.Add(i)
	}

	rsd := hll.RelStd(8)
	if relErr := math.Abs(float64(n)-v0.Estimate()) / n; relErr > 2*rsd {
		t.Errorf("slot 0 estimate off by %v, tolerance %v", relErr, 2*rsd)
	}
	if relErr := math.Abs(float64(n)-v1.Estimate()) / n; relErr > 2*rsd {
		t.Errorf("slot 1 estimate off by %v, tolerance %v", relErr, 2*rsd)
	}

	v0.Clear()
	if v0.Estimate() != 0 {
		t.Error("slot 0 should read 0 after Clear")
	}
	if relErr := math.Abs(float64(n)-v1.Estimate()) / n; relErr > 2*rsd {
		t.Errorf("slot 1 should be unaffected by clearing slot 0")
	}
}

func TestArrayLevelMerge(t *testing.T) {
	// scenario 6: merge slot 1's backend into slot 0; slot 0 reads ~2n,
	// slot 1 is untouched and still reads ~n, both judged against 2n.
	logic := mustLogic(t, 8, 6)
	a := New(logic, 2)

	v0, _ := a.GetEstimatorMut(0)
	v1, _ := a.GetEstimatorMut(1)

	const n = 3000
	for i := uint64(0); i < n; i++ {
		v0.Add(2 * i)
		v1.Add(2*i + 1)
	}

	toMerge, err := a.GetBackend(1)
	if err != nil {
		t.Fatal(err)
	}
	toMergeCopy := append([]uint64(nil), toMerge...)
	if err := v0.Merge(toMergeCopy); err != nil {
		t.Fatal(err)
	}

	rsd := hll.RelStd(8)
	twoN := float64(2 * n)
	if relErr := math.Abs(twoN-v0.Estimate()) / twoN; relErr > 2*rsd {
		t.Errorf("slot 0 after merge off by %v, tolerance %v", relErr, 2*rsd)
	}
	if relErr := math.Abs(float64(n)-v1.Estimate()) / twoN; relErr > 2*rsd {
		t.Errorf("slot 1 after merge off by %v, tolerance %v", relErr, 2*rsd)
	}
}

func TestArrayClearZeroesWholeBuffer(t *testing.T) {
	logic := mustLogic(t, 6, 6)
	a := New(logic, 3)
	for i := uint64(0); i < a.Len(); i++ {
		v, _ := a.GetEstimatorMut(i)
		v.Add(i + 1)
	}
	a.Clear()
	for i := uint64(0); i < a.Len(); i++ {
		v, _ := a.GetEstimator(i)
		if v.Estimate() != 0 {
			t.Errorf("slot %d not cleared", i)
		}
	}
}
