package weather

// sequence returns an RNG cycling through values.
func sequence(values ...float64) RNG {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func seedPtr(v uint32) *uint32 { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func testZone() *ZoneConfig {
	return &ZoneConfig{
		ID: "test",
		Presets: []ZonePreset{
			{ID: "clear", Chance: ParseChanceModifier(40)},
			{ID: "rain", Chance: ParseChanceModifier(30)},
			{ID: "snow", Chance: ParseChanceModifier(20)},
			{ID: "fog", Chance: ParseChanceModifier(10)},
		},
		Temperatures: map[string]TempModifierRange{
			DefaultSeasonKey: {Min: Absolute(-4), Max: Absolute(16)},
		},
		WindSpeedRange: &SpeedRange{Min: 1, Max: 3},
	}
}
