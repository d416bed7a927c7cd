package weather

// Weight is one outcome in a Probabilities table.
type Weight struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

// Probabilities is an ordered outcome table. Order is insertion order and is
// part of the deterministic contract of SelectWeighted.
type Probabilities []Weight

func (p Probabilities) Get(id string) float64 {
	for _, w := range p {
		if w.ID == id {
			return w.Weight
		}
	}
	return 0
}

func (p Probabilities) Has(id string) bool {
	for _, w := range p {
		if w.ID == id {
			return true
		}
	}
	return false
}

// Set replaces the weight of id in place, or appends it.
func (p *Probabilities) Set(id string, weight float64) {
	for i := range *p {
		if (*p)[i].ID == id {
			(*p)[i].Weight = weight
			return
		}
	}
	*p = append(*p, Weight{ID: id, Weight: weight})
}

func (p *Probabilities) Delete(id string) {
	out := (*p)[:0]
	for _, w := range *p {
		if w.ID != id {
			out = append(out, w)
		}
	}
	*p = out
}

func (p Probabilities) Total() float64 {
	total := 0.0
	for _, w := range p {
		total += w.Weight
	}
	return total
}

func (p Probabilities) Clone() Probabilities {
	if p == nil {
		return nil
	}
	out := make(Probabilities, len(p))
	copy(out, p)
	return out
}

// Map is a convenience view for callers that do not care about order.
func (p Probabilities) Map() map[string]float64 {
	out := make(map[string]float64, len(p))
	for _, w := range p {
		out[w.ID] = w.Weight
	}
	return out
}

// SelectWeighted picks one outcome with a single draw from rng. A nil rng
// uses RandomRNG. A table whose weights sum to zero or less yields its first
// id; rounding that exhausts every subtraction yields the last id. An empty
// table yields "".
func SelectWeighted(table Probabilities, rng RNG) string {
	if len(table) == 0 {
		return ""
	}
	total := table.Total()
	if total <= 0 {
		return table[0].ID
	}

	roll := orRandom(rng)() * total
	for _, entry := range table {
		roll -= entry.Weight
		if roll <= 0 {
			return entry.ID
		}
	}
	return table[len(table)-1].ID
}
