package badges

// Environmental requirement definitions carry a human-facing category label
// ("windy", "muddy") that maps to a set of accepted raw values on the
// record. Each dimension's vocabulary lives here so the "unrecognized
// category means no match" fallback is enforced in exactly one place.

type envDimension struct {
	// column is the activities column holding the raw value.
	column string
	// metaKey is the extension-map key carrying the category label.
	metaKey    string
	categories map[string][]string
}

var envDimensions = map[string]envDimension{
	KindWeather: {
		column:  "weather",
		metaKey: "weather",
		categories: map[string][]string{
			"sunny":  {"clear", "sunny"},
			"cloudy": {"cloudy", "partly_cloudy", "overcast"},
			"rain":   {"drizzle", "rain", "storm"},
			"snow":   {"snow", "sleet", "hail"},
			"fog":    {"fog", "mist"},
		},
	},
	KindWind: {
		column:  "wind",
		metaKey: "wind",
		categories: map[string][]string{
			"calm":  {"calm", "light"},
			"windy": {"moderate", "strong", "gusty"},
		},
	},
	KindPressure: {
		column:  "pressure",
		metaKey: "pressure",
		categories: map[string][]string{
			"low":    {"low", "falling"},
			"stable": {"stable"},
			"high":   {"high", "rising"},
		},
	},
	KindWaterClarity: {
		column:  "water_clarity",
		metaKey: "clarity",
		categories: map[string][]string{
			"clear":   {"clear", "slightly_stained"},
			"stained": {"stained"},
			"muddy":   {"muddy", "chocolate"},
		},
	},
	KindWaterLevel: {
		column:  "water_level",
		metaKey: "level",
		categories: map[string][]string{
			"low":    {"low"},
			"normal": {"normal"},
			"high":   {"high", "flood"},
		},
	},
	KindWaterSpeed: {
		column:  "water_speed",
		metaKey: "speed",
		categories: map[string][]string{
			"slow":     {"still", "slow"},
			"moderate": {"moderate"},
			"fast":     {"fast", "raging"},
		},
	},
	KindTide: {
		column:  "tide",
		metaKey: "tide",
		categories: map[string][]string{
			"low":      {"low"},
			"high":     {"high"},
			"incoming": {"incoming"},
			"outgoing": {"outgoing"},
			"slack":    {"slack"},
		},
	},
	KindSurface: {
		column:  "surface",
		metaKey: "surface",
		categories: map[string][]string{
			"calm":   {"glass", "calm"},
			"ripple": {"ripple"},
			"rough":  {"choppy", "whitecaps"},
			"ice":    {"ice", "slush"},
		},
	},
}

// rawValuesFor resolves a category label for one environmental dimension.
// Unknown dimension or category yields nil, which every caller treats as
// an always-false predicate.
func rawValuesFor(kind, category string) []string {
	dim, ok := envDimensions[kind]
	if !ok {
		return nil
	}
	return dim.categories[category]
}
