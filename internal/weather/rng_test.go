package weather

import "testing"

func TestNewRNGDeterministic(t *testing.T) {
	rngA := NewRNG(12345)
	rngB := NewRNG(12345)

	for i := 0; i < 50; i++ {
		gotA := rngA()
		gotB := rngB()
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %v != %v", i, gotA, gotB)
		}
	}
}

func TestNewRNGStaysInUnitInterval(t *testing.T) {
	for seed := uint32(0); seed < 200; seed++ {
		rng := NewRNG(seed)
		for i := 0; i < 20; i++ {
			v := rng()
			if v < 0 || v >= 1 {
				t.Fatalf("seed %d draw %d out of [0,1): %v", seed, i, v)
			}
		}
	}
}

func TestNewRNGNeighbouringSeedsDiverge(t *testing.T) {
	a := NewRNG(DateSeed(2024, 5, 15))()
	b := NewRNG(DateSeed(2024, 5, 16))()
	if a == b {
		t.Fatalf("expected different first draws for adjacent dates, both %v", a)
	}
}

func TestDateSeed(t *testing.T) {
	if got := DateSeed(2024, 5, 15); got != 20240515 {
		t.Fatalf("expected 20240515, got %d", got)
	}
	if got := DateSeed(2024, 5, 16); got != 20240516 {
		t.Fatalf("expected 20240516, got %d", got)
	}
	if DateSeed(2024, 5, 16) <= DateSeed(2024, 5, 15) {
		t.Fatalf("expected seeds to increase within a month")
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]float64{
		2.5:  3,
		-2.5: -2,
		-2.6: -3,
		0.49: 0,
	}
	for in, want := range cases {
		if got := roundHalfUp(in); got != want {
			t.Fatalf("roundHalfUp(%v) = %v, want %v", in, got, want)
		}
	}
}
