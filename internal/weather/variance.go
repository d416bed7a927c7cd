package weather

import "math"

// maxVarianceDegrees is the temperature swing at zero accuracy on the last
// day of the window.
const maxVarianceDegrees = 8

// ApplyVariance simulates an imperfect prediction of w for a day dayDistance
// days out (1-indexed) in a window of totalDays. Lower accuracy and greater
// distance widen the temperature jitter and raise the chance the condition is
// swapped for another preset of the same category. It reports whether the
// result differs noticeably from w.
//
// At accuracy 100 or above w is returned untouched.
func ApplyVariance(w Weather, dayDistance, totalDays int, accuracy float64, rng RNG, catalog *Catalog) (Weather, bool) {
	if accuracy >= 100 {
		return w, false
	}
	rng = orRandom(rng)
	if accuracy < 0 {
		accuracy = 0
	}
	if totalDays <= 0 {
		totalDays = 1
	}
	inaccuracy := 1 - accuracy/100
	distance := float64(dayDistance) / float64(totalDays)

	varied := false
	spread := maxVarianceDegrees * inaccuracy * distance
	drawn := (rng()*2 - 1) * spread
	w.Temperature += int(roundHalfUp(drawn))
	if math.Abs(drawn) > 1 {
		varied = true
	}

	if rng() < inaccuracy*distance {
		if alternatives := substitutes(catalogOrDefault(catalog), w.Preset); len(alternatives) > 0 {
			idx := int(math.Floor(rng() * float64(len(alternatives))))
			if idx >= len(alternatives) {
				idx = len(alternatives) - 1
			}
			w.Preset = alternatives[idx]
			varied = true
		}
	}
	return w, varied
}

func substitutes(catalog *Catalog, current Preset) []Preset {
	var out []Preset
	for _, p := range catalog.ByCategory(current.Category) {
		if p.ID != current.ID {
			out = append(out, p)
		}
	}
	return out
}
