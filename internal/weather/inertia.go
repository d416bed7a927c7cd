package weather

// ApplyInertia reshapes table to favour currentID. The boost given to the
// current condition equals what the others lose, so the table's total is
// preserved. zoneWeights, when it has an entry for currentID, wins over the
// preset's own inertia weight. The input table is never modified.
func ApplyInertia(currentID string, table Probabilities, inertia float64, catalog *Catalog, zoneWeights map[string]float64) Probabilities {
	out := table.Clone()
	if inertia <= 0 || currentID == "" || !table.Has(currentID) || len(table) < 2 {
		return out
	}

	weight := 1.0
	if w, ok := zoneWeights[currentID]; ok {
		weight = w
	} else if preset, ok := catalogOrDefault(catalog).Lookup(currentID); ok {
		weight = preset.inertiaWeight()
	}

	effective := inertia * weight
	if effective > 1 {
		effective = 1
	}
	if effective <= 0 {
		return out
	}

	others := table.Total() - table.Get(currentID)
	boost := effective * others
	kept := out[:0]
	for _, entry := range out {
		if entry.ID == currentID {
			entry.Weight += boost
		} else {
			entry.Weight *= 1 - effective
		}
		if entry.Weight <= 0 {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}
