package weather

const (
	CategoryStandard      = "standard"
	CategorySevere        = "severe"
	CategoryEnvironmental = "environmental"
	CategoryFantasy       = "fantasy"
)

func deg(v float64) *float64 { return &v }

func weight(v float64) *float64 { return &v }

// BuiltinPresets returns a fresh copy of the built-in catalogue.
func BuiltinPresets() []Preset {
	return []Preset{
		// Standard
		{ID: "clear", Label: "Clear", Category: CategoryStandard, Icon: "fa-sun", Color: "#FFEE88",
			Chance: 15, TempMin: 18, TempMax: 32, Wind: WindDefaults{Speed: 0}, InertiaWeight: weight(1.2)},
		{ID: "partly-cloudy", Label: "Partly Cloudy", Category: CategoryStandard, Icon: "fa-cloud-sun", Color: "#D0E8FF",
			Chance: 15, TempMin: 15, TempMax: 28, Wind: WindDefaults{Speed: 1}},
		{ID: "cloudy", Label: "Cloudy", Category: CategoryStandard, Icon: "fa-cloud", Color: "#B0C4DE",
			Chance: 12, TempMin: 12, TempMax: 24, Wind: WindDefaults{Speed: 1}},
		{ID: "overcast", Label: "Overcast", Category: CategoryStandard, Icon: "fa-smog", Color: "#CCCCCC",
			Chance: 10, TempMin: 10, TempMax: 20, Wind: WindDefaults{Speed: 1}, InertiaWeight: weight(1.5)},
		{ID: "drizzle", Label: "Drizzle", Category: CategoryStandard, Icon: "fa-cloud-rain", Color: "#CDEFFF",
			Chance: 8, TempMin: 8, TempMax: 18, Wind: WindDefaults{Speed: 1},
			Precipitation: Precipitation{Type: "drizzle", Intensity: 0.2}},
		{ID: "rain", Label: "Rain", Category: CategoryStandard, Icon: "fa-cloud-showers-heavy", Color: "#A0D8EF",
			Chance: 10, TempMin: 8, TempMax: 20, Wind: WindDefaults{Speed: 2},
			Precipitation: Precipitation{Type: "rain", Intensity: 0.5}},
		{ID: "fog", Label: "Fog", Category: CategoryStandard, Icon: "fa-smog", Color: "#E6E6E6",
			Chance: 5, TempMin: 5, TempMax: 15, Wind: WindDefaults{Speed: 0}, InertiaWeight: weight(0.5)},
		{ID: "mist", Label: "Mist", Category: CategoryStandard, Icon: "fa-water", Color: "#F0F8FF",
			Chance: 5, TempMin: 8, TempMax: 18, Wind: WindDefaults{Speed: 0}, InertiaWeight: weight(0.5)},
		{ID: "windy", Label: "Windy", Category: CategoryStandard, Icon: "fa-wind", Color: "#E0F7FA",
			Chance: 6, TempMin: 10, TempMax: 25, Wind: WindDefaults{Speed: 3}},
		{ID: "sunshower", Label: "Sunshower", Category: CategoryStandard, Icon: "fa-cloud-sun-rain", Color: "#FCEABB",
			Chance: 3, TempMin: 15, TempMax: 28, Wind: WindDefaults{Speed: 1},
			Precipitation: Precipitation{Type: "rain", Intensity: 0.2}, InertiaWeight: weight(0.3)},

		// Severe
		{ID: "thunderstorm", Label: "Thunderstorm", Category: CategorySevere, Icon: "fa-bolt", Color: "#FFD966",
			Chance: 4, TempMin: 15, TempMax: 28, Wind: WindDefaults{Speed: 3},
			Precipitation: Precipitation{Type: "rain", Intensity: 0.8}, InertiaWeight: weight(0.6)},
		{ID: "blizzard", Label: "Blizzard", Category: CategorySevere, Icon: "fa-snowman", Color: "#E0F7FF",
			Chance: 2, TempMin: -20, TempMax: -5, Wind: WindDefaults{Speed: 4},
			Precipitation: Precipitation{Type: "snow", Intensity: 0.9}},
		{ID: "snow", Label: "Snow", Category: CategorySevere, Icon: "fa-snowflake", Color: "#FFFFFF",
			Chance: 6, TempMin: -10, TempMax: 2, Wind: WindDefaults{Speed: 1},
			Precipitation: Precipitation{Type: "snow", Intensity: 0.5}, InertiaWeight: weight(1.3)},
		{ID: "sleet", Label: "Sleet", Category: CategorySevere, Icon: "fa-cloud-meatball", Color: "#D8E4F0",
			Chance: 3, TempMin: -2, TempMax: 4, Wind: WindDefaults{Speed: 2},
			Precipitation: Precipitation{Type: "sleet", Intensity: 0.5}},
		{ID: "hail", Label: "Hail", Category: CategorySevere, Icon: "fa-cloud-meatball", Color: "#D1EFFF",
			Chance: 2, TempMin: 5, TempMax: 18, Wind: WindDefaults{Speed: 2},
			Precipitation: Precipitation{Type: "hail", Intensity: 0.6}, InertiaWeight: weight(0.3)},
		{ID: "heatwave", Label: "Heatwave", Category: CategorySevere, Icon: "fa-temperature-full", Color: "#FF9944",
			Chance: 3, TempMin: 32, TempMax: 45, Wind: WindDefaults{Speed: 0}, InertiaWeight: weight(1.8)},
		{ID: "tornado", Label: "Tornado", Category: CategorySevere, Icon: "fa-tornado", Color: "#A0A0A0",
			Chance: 1, TempMin: 18, TempMax: 30, Wind: WindDefaults{Speed: 5, Forced: true},
			Precipitation: Precipitation{Type: "rain", Intensity: 0.7}, InertiaWeight: weight(0)},
		{ID: "hurricane", Label: "Hurricane", Category: CategorySevere, Icon: "fa-hurricane", Color: "#8899AA",
			Chance: 1, TempMin: 22, TempMax: 32, Wind: WindDefaults{Speed: 5, Forced: true},
			Precipitation: Precipitation{Type: "rain", Intensity: 1}, InertiaWeight: weight(0.8)},

		// Environmental
		{ID: "sandstorm", Label: "Sandstorm", Category: CategoryEnvironmental, Icon: "fa-wind", Color: "#E1C699",
			Chance: 2, TempMin: 25, TempMax: 40, Wind: WindDefaults{Speed: 4, Direction: deg(90)}},
		{ID: "ashfall", Label: "Ashfall", Category: CategoryEnvironmental, Icon: "fa-volcano", Color: "#9E9E9E",
			Chance: 1, TempMin: 12, TempMax: 28, Wind: WindDefaults{Speed: 1},
			Precipitation: Precipitation{Type: "ash", Intensity: 0.4}, InertiaWeight: weight(1.4)},
		{ID: "aurora", Label: "Aurora", Category: CategoryEnvironmental, Icon: "fa-star", Color: "#66FFCC",
			Chance: 1, TempMin: -20, TempMax: 0, Wind: WindDefaults{Speed: 0}, InertiaWeight: weight(0.4)},
		{ID: "polar-twilight", Label: "Polar Twilight", Category: CategoryEnvironmental, Icon: "fa-moon", Color: "#6677AA",
			Chance: 1, TempMin: -30, TempMax: -10, Wind: WindDefaults{Speed: 1}},

		// Fantasy
		{ID: "black-sun", Label: "Black Sun", Category: CategoryFantasy, Icon: "fa-circle", Color: "#333333",
			Chance: 1, TempMin: 5, TempMax: 15, Wind: WindDefaults{Speed: 0}},
		{ID: "ley-surge", Label: "Ley Surge", Category: CategoryFantasy, Icon: "fa-bolt-lightning", Color: "#7FFFD4",
			Chance: 1, TempMin: 10, TempMax: 20, Wind: WindDefaults{Speed: 2}, InertiaWeight: weight(0.2)},
		{ID: "aether-haze", Label: "Aether Haze", Category: CategoryFantasy, Icon: "fa-smog", Color: "#E6CCFF",
			Chance: 1, TempMin: 12, TempMax: 22, Wind: WindDefaults{Speed: 1}},
		{ID: "arcane-winds", Label: "Arcane Winds", Category: CategoryFantasy, Icon: "fa-wind", Color: "#CCCCFF",
			Chance: 1, TempMin: 8, TempMax: 18, Wind: WindDefaults{Speed: 4, Direction: deg(270), Forced: true}},
		{ID: "blood-rain", Label: "Blood Rain", Category: CategoryFantasy, Icon: "fa-droplet", Color: "#8B0000",
			Chance: 1, TempMin: 12, TempMax: 24, Wind: WindDefaults{Speed: 1},
			Precipitation: Precipitation{Type: "blood", Intensity: 0.5}, InertiaWeight: weight(0.3)},
	}
}
