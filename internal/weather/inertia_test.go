package weather

import (
	"math"
	"testing"
)

func TestApplyInertiaClampsEffectiveInertia(t *testing.T) {
	table := Probabilities{{ID: "overcast", Weight: 10}, {ID: "clear", Weight: 30}}

	got := ApplyInertia("overcast", table, 0.8, DefaultCatalog(), nil)
	if math.Abs(got.Get("overcast")-40) > 1e-9 {
		t.Fatalf("expected overcast to absorb every weight, got %v", got.Get("overcast"))
	}
	if got.Get("clear") > 1e-9 {
		t.Fatalf("expected clear to collapse to zero, got %v", got.Get("clear"))
	}
	if table.Get("clear") != 30 {
		t.Fatalf("expected input table to be left untouched")
	}
}

func TestApplyInertiaPreservesTotal(t *testing.T) {
	table := Probabilities{
		{ID: "clear", Weight: 40},
		{ID: "rain", Weight: 25},
		{ID: "fog", Weight: 10},
		{ID: "snow", Weight: 7.5},
	}
	for _, inertia := range []float64{0.05, 0.3, 0.5, 0.99} {
		got := ApplyInertia("rain", table, inertia, DefaultCatalog(), nil)
		if math.Abs(got.Total()-table.Total()) > 1e-9 {
			t.Fatalf("inertia %v changed total: %v -> %v", inertia, table.Total(), got.Total())
		}
		if got.Get("rain") <= table.Get("rain") {
			t.Fatalf("inertia %v did not favour the current condition", inertia)
		}
	}
}

func TestApplyInertiaNoOps(t *testing.T) {
	table := Probabilities{{ID: "clear", Weight: 40}, {ID: "rain", Weight: 60}}

	if got := ApplyInertia("snow", table, 0.5, nil, nil); got.Get("clear") != 40 || got.Get("rain") != 60 {
		t.Fatalf("expected absent current id to be a no-op, got %+v", got)
	}
	if got := ApplyInertia("rain", table, 0, nil, nil); got.Get("rain") != 60 {
		t.Fatalf("expected zero inertia to be a no-op, got %+v", got)
	}
	// tornado never persists.
	tornado := Probabilities{{ID: "tornado", Weight: 5}, {ID: "clear", Weight: 95}}
	if got := ApplyInertia("tornado", tornado, 1, DefaultCatalog(), nil); got.Get("tornado") != 5 {
		t.Fatalf("expected zero inertia weight to be a no-op, got %+v", got)
	}
}

func TestApplyInertiaZoneWeightWins(t *testing.T) {
	table := Probabilities{{ID: "overcast", Weight: 10}, {ID: "clear", Weight: 30}}

	got := ApplyInertia("overcast", table, 0.8, DefaultCatalog(), map[string]float64{"overcast": 0})
	if got.Get("overcast") != 10 || got.Get("clear") != 30 {
		t.Fatalf("expected zone weight 0 to disable persistence, got %+v", got)
	}

	got = ApplyInertia("overcast", table, 0.5, DefaultCatalog(), map[string]float64{"overcast": 1})
	if math.Abs(got.Get("overcast")-25) > 1e-9 || math.Abs(got.Get("clear")-15) > 1e-9 {
		t.Fatalf("expected zone weight 1 to give 25/15, got %+v", got)
	}
}

func TestApplyInertiaSingleEntryTable(t *testing.T) {
	table := Probabilities{{ID: "clear", Weight: 100}}
	got := ApplyInertia("clear", table, 1, DefaultCatalog(), nil)
	if len(got) != 1 || got.Get("clear") != 100 {
		t.Fatalf("expected single entry to be unchanged, got %+v", got)
	}
}

func TestApplyInertiaUnknownPresetDefaultsToWeightOne(t *testing.T) {
	table := Probabilities{{ID: "custom-mire", Weight: 20}, {ID: "clear", Weight: 20}}
	got := ApplyInertia("custom-mire", table, 0.5, DefaultCatalog(), nil)
	if math.Abs(got.Get("custom-mire")-30) > 1e-9 {
		t.Fatalf("expected weight-1 boost to 30, got %v", got.Get("custom-mire"))
	}
}
