package weather

// FallbackPresetID is the condition synthesized when no configuration enables
// any preset.
const FallbackPresetID = "clear"

// MergedClimate is the resolved outcome table and temperature range for one
// zone in one season.
type MergedClimate struct {
	Probabilities Probabilities `json:"probabilities"`
	TempRange     TempRange     `json:"tempRange"`
}

// MergeClimate layers a zone's season override on top of the calendar's base
// season climate. The zone's own presets and temperatures stand in when the
// override (or the season) says nothing.
func MergeClimate(season *SeasonClimate, override *SeasonOverride, fallback *ZoneConfig, seasonName string) MergedClimate {
	return MergedClimate{
		Probabilities: mergeProbabilities(season, override, fallback),
		TempRange:     mergeTempRange(season, override, fallback, seasonName),
	}
}

func mergeProbabilities(season *SeasonClimate, override *SeasonOverride, fallback *ZoneConfig) Probabilities {
	probs := Probabilities{}
	if season != nil {
		for _, entry := range season.Presets {
			if entry.ID == "" || entry.Chance <= 0 {
				continue
			}
			probs.Set(entry.ID, entry.Chance)
		}
	}

	switch {
	case override != nil && len(override.Presets) > 0:
		for _, zp := range override.Presets {
			if zp.ID == "" {
				continue
			}
			if !zp.enabled() {
				probs.Delete(zp.ID)
				continue
			}
			applyChance(&probs, zp.ID, zp.Chance)
		}
	case fallback != nil:
		for _, zp := range fallback.Presets {
			if zp.ID == "" || !zp.enabled() {
				continue
			}
			if zp.Chance.Kind == ModifierAbsolute && zp.Chance.Value <= 0 {
				continue
			}
			applyChance(&probs, zp.ID, zp.Chance)
		}
	}

	if len(probs) == 0 {
		probs.Set(FallbackPresetID, 100)
	}
	return probs
}

// applyChance resolves a zone chance against the accumulated table. Deltas
// floor at zero and a resolved zero removes the entry.
func applyChance(probs *Probabilities, id string, chance ChanceModifier) {
	switch chance.Kind {
	case ModifierDelta:
		next := probs.Get(id) + chance.Value
		if next <= 0 {
			probs.Delete(id)
			return
		}
		probs.Set(id, next)
	case ModifierAbsolute:
		if chance.Value <= 0 {
			probs.Delete(id)
			return
		}
		probs.Set(id, chance.Value)
	}
}

func mergeTempRange(season *SeasonClimate, override *SeasonOverride, fallback *ZoneConfig, seasonName string) TempRange {
	r := DefaultTempRange
	switch {
	case season != nil && season.Temperatures != nil:
		r = *season.Temperatures
	case season == nil && fallback != nil:
		if t, ok := fallback.Temperatures[seasonName]; ok && seasonName != "" {
			r = resolveTempRange(t, DefaultTempRange)
		} else if t, ok := fallback.Temperatures[DefaultSeasonKey]; ok {
			r = resolveTempRange(t, DefaultTempRange)
		}
	}

	if override != nil && override.Temperatures != nil {
		r = resolveTempRange(*override.Temperatures, r)
	}
	return r.normalized()
}

func resolveTempRange(m TempModifierRange, base TempRange) TempRange {
	return TempRange{
		Min: m.Min.Apply(base.Min),
		Max: m.Max.Apply(base.Max),
	}
}
