package pwm2base_api

import (
	"bytes"
	"testing"
)

// chi-square critical values at p=0.001 by degrees of freedom
var chiSquareCritical = map[int]float64{1: 10.828, 2: 13.816, 3: 16.266}

func chiSquare(counts map[byte]int, set string, n int) float64 {
	expected := float64(n) / float64(len(set))
	sum := 0.0
	for i := 0; i < len(set); i++ {
		d := float64(counts[set[i]]) - expected
		sum += d * d / expected
	}
	return sum
}

func assertUniform(t *testing.T, counts map[byte]int, set string, n int) {
	t.Helper()
	total := 0
	for c, count := range counts {
		if bytes.IndexByte([]byte(set), c) < 0 {
			t.Fatalf("%q is not in the candidate set %q", c, set)
		}
		total += count
	}
	if total != n {
		t.Fatalf("counted %d picks, want %d", total, n)
	}
	if x2 := chiSquare(counts, set, n); x2 > chiSquareCritical[len(set)-1] {
		t.Fatalf("set %q is not uniform: chi-square %.2f, counts %v", set, x2, counts)
	}
}

func TestPickUniform(t *testing.T) {
	picker := NewRandomPicker(42)
	const n = 40000
	for _, set := range []string{"AG", "CGT", "ATGC"} {
		counts := map[byte]int{}
		for i := 0; i < n; i++ {
			counts[picker.Pick(set)]++
		}
		assertUniform(t, counts, set, n)
	}
}

func TestPickSeedDeterministic(t *testing.T) {
	a, b := NewRandomPicker(7), NewRandomPicker(7)
	for i := 0; i < 1000; i++ {
		if x, y := a.Pick("ACGT"), b.Pick("ACGT"); x != y {
			t.Fatalf("pick %d differs for the same seed: %q vs %q", i, x, y)
		}
	}
	if a.Seed() != 7 {
		t.Fatalf("seed: got %d want 7", a.Seed())
	}
}

func TestPickInvalidSetSize(t *testing.T) {
	picker := NewRandomPicker(1)
	for _, set := range []string{"", "A", "ACGTN"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Pick(%q) should panic", set)
				}
			}()
			picker.Pick(set)
		}()
	}
}

func TestEntropyPicker(t *testing.T) {
	picker, err := NewEntropyPicker()
	if err != nil {
		t.Fatal(err)
	}
	if c := picker.Pick("AC"); c != 'A' && c != 'C' {
		t.Fatalf("unexpected pick %q", c)
	}
}
